package extractor

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"virtual-interviewer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Senior </w:t></w:r><w:r><w:t>Go developer</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>Skills: Go, Redis</w:t></w:r></w:p>
  </w:body>
</w:document>`

func writeDocx(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "resume.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestFileExtractor_TXT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Jane Doe  \r\n\r\nGo, Redis\n\n"), 0o644))

	ex, err := New("")
	require.NoError(t, err)

	text, err := ex.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo, Redis", text)
}

func TestFileExtractor_DOCX(t *testing.T) {
	path := writeDocx(t, t.TempDir())

	ex, err := New("")
	require.NoError(t, err)

	text, err := ex.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior Go developer")
	assert.Contains(t, text, "Skills: Go, Redis")
}

func TestParagraphsFromXML(t *testing.T) {
	text, err := readDOCXXML(writeDocx(t, t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Go developer\nSkills: Go, Redis", CleanText(text))
}

func TestCleanText_InvalidUTF8(t *testing.T) {
	got := CleanText("ab\xffcd\n  \xfe\xfeef  ")
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ab\uFFFDcd\n\uFFFDef", got)
}

func TestFileExtractor_InvalidUTF8Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane\xff Doe\n"), 0o644))
	ex, err := New("")
	require.NoError(t, err)

	text, err := ex.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Jane\uFFFD Doe", text)
}

func TestFileExtractor_Errors(t *testing.T) {
	ex, err := New("")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = ex.Extract(ctx, filepath.Join(t.TempDir(), "missing.pdf"))
	assert.True(t, domain.HasCode(err, domain.CodeResourceUnavailable))

	_, err = ex.Extract(ctx, "resume.odt")
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))

	broken := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(broken, []byte("not a pdf"), 0o644))
	_, err = ex.Extract(ctx, broken)
	assert.True(t, domain.HasCode(err, domain.CodeUpstreamFailure))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ex.Extract(cancelled, broken)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSupported(t *testing.T) {
	ex, err := New("")
	require.NoError(t, err)
	assert.True(t, ex.Supported(".PDF"))
	assert.True(t, ex.Supported(".docx"))
	assert.False(t, ex.Supported(".exe"))
}
