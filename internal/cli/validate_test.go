package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunValidate_Success(t *testing.T) {
	path := writeTemp(t, "doc.jsonl", `{"id":"root","type":"rect","width":10,"height":10}`)
	c := New(io.Discard, LogInfo)
	require.NoError(t, c.runValidate(path))
}

func TestRunValidate_ParseErrorIsWrapped(t *testing.T) {
	path := writeTemp(t, "bad.jsonl", `not json at all`)
	c := New(io.Discard, LogInfo)
	err := c.runValidate(path)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse:"))
}

func TestRunValidate_MissingFile(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := c.runValidate(filepath.Join(t.TempDir(), "missing.jsonl"))
	require.Error(t, err)
}
