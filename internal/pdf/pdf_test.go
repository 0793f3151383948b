package pdf

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdftags/internal/pdf/pdftest"
)

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	path := pdftest.WriteFile(t, dir, "doc.pdf", pdftest.Minimal(
		"Hello world\nSecond line",
		"Another page",
	))

	text := Extract(path)
	assert.Equal(t, "Hello world Second line Another page", strings.Join(strings.Fields(text), " "))
	assert.Contains(t, text, "Hello world\nSecond line")
}

func TestPlainTextPageRange(t *testing.T) {
	dir := t.TempDir()
	path := pdftest.WriteFile(t, dir, "doc.pdf", pdftest.Minimal("one", "two", "three"))

	f, r, err := Open(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	rd, err := PlainText(r, PageRange{Start: 2, End: 9})
	require.NoError(t, err)
	b, err := io.ReadAll(rd)
	require.NoError(t, err)
	assert.Equal(t, "two three", strings.Join(strings.Fields(string(b)), " "))
}

func TestExtractDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()

	corrupt := pdftest.WriteFile(t, dir, "corrupt.pdf", []byte("this is not a pdf at all"))
	assert.Equal(t, "", Extract(corrupt))

	truncated := pdftest.Minimal("Hello world")
	path := pdftest.WriteFile(t, dir, "truncated.pdf", truncated[:len(truncated)/2])
	assert.Equal(t, "", Extract(path))

	assert.Equal(t, "", Extract(dir+"/missing.pdf"))
}

func TestExtractLogsFailures(t *testing.T) {
	var out bytes.Buffer
	Log.SetOutput(&out)
	defer Log.SetOutput(os.Stdout)

	dir := t.TempDir()
	path := pdftest.WriteFile(t, dir, "corrupt.pdf", []byte("this is not a pdf at all"))
	assert.Equal(t, "", Extract(path))
	assert.Contains(t, out.String(), "Error reading PDF")
	assert.Contains(t, out.String(), "corrupt.pdf")

	out.Reset()
	valid := pdftest.WriteFile(t, dir, "valid.pdf", pdftest.Minimal("Hello world"))
	assert.Contains(t, Extract(valid), "Hello world")
	assert.Empty(t, out.String())
}
