package layout

import "strings"

// FontMetrics is the pluggable text-measurement boundary spec.md §6.4
// requires: the core never measures glyphs itself.
type FontMetrics interface {
	Measure(text, fontFamily string, fontSize float64) (widthPx, lineHeightPx float64)
	Advance(fontFamily string, fontSize float64) float64
}

// DefaultMetrics is the fixed-advance approximation spec.md §6.4
// explicitly sanctions: one advance per character, independent of the
// actual glyph, with line height derived from font size alone.
type DefaultMetrics struct {
	// AdvanceRatio scales font size to per-character advance. 0 uses 0.6,
	// a reasonable monospace advance-to-font-size ratio.
	AdvanceRatio float64
}

func (m DefaultMetrics) ratio() float64 {
	if m.AdvanceRatio > 0 {
		return m.AdvanceRatio
	}
	return 0.6
}

func (m DefaultMetrics) Advance(_ string, fontSize float64) float64 {
	return fontSize * m.ratio()
}

func (m DefaultMetrics) Measure(text, fontFamily string, fontSize float64) (float64, float64) {
	advance := m.Advance(fontFamily, fontSize)
	longest := 0
	for _, line := range strings.Split(text, "\n") {
		if len(line) > longest {
			longest = len(line)
		}
	}
	return float64(longest) * advance, fontSize
}

// wrapText greedily packs content into lines of at most lineWidth
// characters, breaking on whitespace and never splitting a word unless
// the word alone exceeds lineWidth (non-goal: real text shaping;
// spec.md §1 restricts this to monospaced character-count wrapping).
func wrapText(content string, lineWidth int) []string {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	var lines []string
	for _, para := range strings.Split(content, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var cur string
		for _, w := range words {
			switch {
			case cur == "":
				cur = w
			case len(cur)+1+len(w) <= lineWidth:
				cur = cur + " " + w
			default:
				lines = append(lines, cur)
				cur = w
			}
			for len(cur) > lineWidth {
				lines = append(lines, cur[:lineWidth])
				cur = cur[lineWidth:]
			}
		}
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func longestLine(lines []string) int {
	longest := 0
	for _, l := range lines {
		if len(l) > longest {
			longest = len(l)
		}
	}
	return longest
}
