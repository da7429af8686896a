package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/gen2brain/go-fitz"
)

var (
	// ErrUnsupportedFormat is returned for any extension other than .pdf or .docx.
	ErrUnsupportedFormat = errors.New("unsupported file type")

	// ErrNoText is returned when a document parses but contains no text, e.g. a
	// scanned image-only PDF.
	ErrNoText = errors.New("no extractable text")
)

// Extract converts a document's bytes into plain text based on the declared
// extension. It operates entirely in memory; the caller owns any temporary
// file the bytes came from.
func Extract(data []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractPdf(data)
	case ".docx":
		return extractDocx(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func extractPdf(data []byte) (string, error) {
	pdf, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("error opening pdf: %w", err)
	}
	defer pdf.Close()

	pages := make([]string, 0, pdf.NumPage())
	for i := 0; i < pdf.NumPage(); i++ {
		pageText, err := pdf.Text(i)
		if err != nil {
			return "", fmt.Errorf("error reading pdf page %d: %w", i, err)
		}
		pages = append(pages, pageText)
	}

	text := strings.Join(pages, "\n\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: pdf appears to have no extractable text", ErrNoText)
	}
	return text, nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("error opening docx: %w", err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p.String())
		}
	}

	text := strings.Join(paragraphs, "\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: docx appears to have no readable text", ErrNoText)
	}
	return text, nil
}
