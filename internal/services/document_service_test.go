package services

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wingman/pkg/utils"
)

func TestExtractTextPlain(t *testing.T) {
	svc := NewDocumentService()

	content, err := svc.ExtractText("notes.txt", "text/plain", []byte("hello there"))
	require.NoError(t, err)
	assert.Equal(t, "hello there", content)

	// Charset parameters are tolerated.
	content, err = svc.ExtractText("notes.txt", "text/plain; charset=utf-8", []byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi", content)
}

func TestExtractTextDetectsByExtension(t *testing.T) {
	svc := NewDocumentService()

	content, err := svc.ExtractText("notes.txt", "application/octet-stream", []byte("plain by extension"))
	require.NoError(t, err)
	assert.Equal(t, "plain by extension", content)
}

func TestExtractTextEmptyDocument(t *testing.T) {
	svc := NewDocumentService()

	_, err := svc.ExtractText("blank.txt", "text/plain", []byte("   \n\t"))
	assert.ErrorIs(t, err, utils.ErrEmptyDocument)
}

func TestExtractTextUnsupportedType(t *testing.T) {
	svc := NewDocumentService()

	_, err := svc.ExtractText("image.png", "image/png", []byte{0x89, 0x50})
	assert.ErrorIs(t, err, utils.ErrUnsupportedFileType)
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExtractTextDocx(t *testing.T) {
	svc := NewDocumentService()

	docx := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	content, err := svc.ExtractText("resume.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", docx)
	require.NoError(t, err)
	assert.Contains(t, content, "First paragraph.")
	assert.Contains(t, content, "Second paragraph.")
	assert.Contains(t, content, "\n")
}

func TestExtractTextDocxMissingDocument(t *testing.T) {
	svc := NewDocumentService()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("unrelated.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("nope"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = svc.ExtractText("broken.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", buf.Bytes())
	assert.Error(t, err)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	svc := NewDocumentService()

	_, err := svc.ExtractText("file.pdf", "application/pdf", []byte("not a pdf"))
	assert.Error(t, err)
}
