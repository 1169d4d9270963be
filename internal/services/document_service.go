package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"wingman/pkg/utils"
)

const (
	contentTypePDF   = "application/pdf"
	contentTypeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	contentTypePlain = "text/plain"
)

type DocumentServiceInterface interface {
	ExtractText(filename, contentType string, data []byte) (string, error)
}

type DocumentService struct{}

func NewDocumentService() DocumentServiceInterface {
	return &DocumentService{}
}

// detectContentType falls back to the file extension when the upload arrives
// with a generic or missing content type.
func detectContentType(filename, contentType string) string {
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return contentTypePDF
	case ".docx":
		return contentTypeDocx
	case ".txt", ".md":
		return contentTypePlain
	default:
		return contentType
	}
}

func (s *DocumentService) ExtractText(filename, contentType string, data []byte) (string, error) {
	contentType = detectContentType(filename, contentType)

	var (
		content string
		err     error
	)
	switch {
	case contentType == contentTypePDF:
		content, err = extractPDF(data)
	case contentType == contentTypeDocx:
		content, err = extractDocx(data)
	case strings.HasPrefix(contentType, contentTypePlain):
		content = string(data)
	default:
		return "", utils.ErrUnsupportedFileType
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", utils.ErrEmptyDocument
	}
	return content, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	return sb.String(), nil
}

// extractDocx pulls the text runs out of word/document.xml. A docx file is a
// zip archive; the w:t elements hold the visible text.
func extractDocx(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("docx has no word/document.xml")
	}

	rc, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var sb strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parsing docx xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "p":
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
