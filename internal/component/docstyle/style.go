// Package docstyle carries the color, typography, and spacing scale
// shared by the document.* custom components, ported from the
// style/theme constant modules of
// original_source/custom_components/src/document/mod.rs.
package docstyle

const (
	PrimaryText   = "#212529"
	SecondaryText = "#495057"
	MutedText     = "#6c757d"
	AccentText    = "#0d6efd"

	BgPrimary   = "white"
	BgSecondary = "#f8f9fa"
	BgMuted     = "#f1f3f4"
	BgAccent    = "#e3f2fd"

	BorderLight  = "#dee2e6"
	BorderMedium = "#adb5bd"
	BorderStrong = "#6c757d"

	Success = "#198754"
	Warning = "#ffc107"
	Danger  = "#dc3545"
	Info    = "#0dcaf0"

	FontSerif = "Georgia"
	FontSans  = "Arial"
	FontMono  = "Consolas"
)

const (
	TextXS  = 10.0
	TextSM  = 12.0
	TextMD  = 14.0
	TextLG  = 16.0
	TextXL  = 18.0
	Text2XL = 24.0
	Text3XL = 32.0
)

const spaceUnit = 8.0

const (
	SpaceXS  = spaceUnit * 0.5
	SpaceSM  = spaceUnit * 1.0
	SpaceMD  = spaceUnit * 2.0
	SpaceLG  = spaceUnit * 3.0
	SpaceXL  = spaceUnit * 4.0
	Space2XL = spaceUnit * 6.0
	Space3XL = spaceUnit * 8.0
)

const (
	PaddingTight   = SpaceSM
	PaddingNormal  = SpaceMD
	PaddingRelaxed = SpaceLG
	PaddingLoose   = SpaceXL
)

const (
	WidthSM   = 480.0
	WidthMD   = 640.0
	WidthLG   = 800.0
	WidthXL   = 1024.0
	WidthFull = 1200.0
)

const (
	RadiusSM = 4.0
	RadiusMD = 8.0
	RadiusLG = 12.0
)

const (
	BorderWidthThin   = 1.0
	BorderWidthMedium = 2.0
	BorderWidthThick  = 4.0
)

const (
	LineWidthNarrow = 300
	LineWidthNormal = 500
	LineWidthWide   = 700
	LineWidthFull   = 900
)

const (
	DocumentWidthDefault = WidthLG
	DocumentPadding      = PaddingLoose
	DocumentBorderRadius = RadiusMD

	HeaderPadding      = PaddingRelaxed
	HeaderTitleSize    = Text2XL
	HeaderSubtitleSize = TextMD

	ContentPadding   = PaddingLoose
	ContentLineWidth = LineWidthWide

	FooterPadding  = PaddingNormal
	FooterTextSize = TextXS
)

const (
	DocumentHeaderBG  = BgSecondary
	DocumentContentBG = BgPrimary
	DocumentFooterBG  = BgMuted
	DocumentBorder    = BorderLight

	TitleColor    = PrimaryText
	SubtitleColor = SecondaryText
	BodyColor     = PrimaryText
	MetaColor     = MutedText
	LinkColor     = AccentText
)
