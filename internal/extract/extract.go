// Package extract pulls plain text out of uploaded documents. Dispatch is by
// file extension only; the binary parsing itself is delegated to go-fitz for
// PDF and to the docx archive reader for Word documents.
package extract

import (
	"encoding/xml"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/nguyenthenguyen/docx"
)

const (
	PDF  = ".pdf"
	DOCX = ".docx"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Text extracts the full plain-text content of the file at path. PDF pages
// are concatenated into a single string; a DOCX yields the text of its main
// document part.
func Text(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case PDF:
		return pdfText(path)
	case DOCX:
		return docxText(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func pdfText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", n+1, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func docxText(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer r.Close()

	return flattenDocxXML(r.Editable().GetContent()), nil
}

// flattenDocxXML strips WordprocessingML markup, keeping the character data
// of w:t runs and turning paragraph ends into newlines.
func flattenDocxXML(content string) string {
	dec := xml.NewDecoder(strings.NewReader(content))

	var (
		sb    strings.Builder
		inRun bool
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inRun {
				sb.Write(t)
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
