package service

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/SuyashJain1994/Contract-Analyzer/config"
	"github.com/SuyashJain1994/Contract-Analyzer/pkg/apperrors"
)

// Extractor extracts plain text from uploaded contract documents
type Extractor struct {
	supported   map[string]bool
	maxFileSize int64
}

func NewExtractor(cfg *config.UploadConfig) *Extractor {
	supported := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		supported[strings.ToLower(ext)] = true
	}
	return &Extractor{
		supported:   supported,
		maxFileSize: cfg.MaxFileSize,
	}
}

// Validate rejects unsupported extensions and oversized payloads before any
// content is read
func (e *Extractor) Validate(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !e.supported[ext] {
		return apperrors.UnsupportedFormat(ext)
	}
	if size > e.maxFileSize {
		return apperrors.FileTooLarge(size, e.maxFileSize)
	}
	return nil
}

// Extract returns the text content of a document, dispatching on the
// filename's extension. The result is trimmed and never empty.
func (e *Extractor) Extract(content []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !e.supported[ext] {
		return "", apperrors.UnsupportedFormat(ext)
	}

	switch ext {
	case ".pdf":
		return extractPDF(content)
	case ".doc", ".docx":
		return extractWord(content)
	case ".txt":
		return extractPlainText(content)
	default:
		return "", apperrors.UnsupportedFormat(ext)
	}
}

// extractPDF concatenates per-page text with newline separators
func extractPDF(content []byte) (text string, err error) {
	// The pdf library panics on some malformed documents
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apperrors.ExtractionFailed(fmt.Errorf("%v", r), "PDF")
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", apperrors.ExtractionFailed(err, "PDF")
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", apperrors.ExtractionFailed(err, "PDF")
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", apperrors.EmptyExtraction("No text could be extracted from PDF. The document might be image-based or corrupted.")
	}
	return result, nil
}

// extractWord concatenates paragraph text, then table-cell text joined with
// spaces within a row and a newline after each row
func extractWord(content []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", apperrors.ExtractionFailed(err, "DOCX")
	}

	var paragraphs strings.Builder
	var tables strings.Builder

	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			paragraphs.WriteString(it.String())
			paragraphs.WriteString("\n")
		case *docx.Table:
			for _, row := range it.TableRows {
				for _, cell := range row.TableCells {
					for _, p := range cell.Paragraphs {
						tables.WriteString(p.String())
					}
					tables.WriteString(" ")
				}
				tables.WriteString("\n")
			}
		}
	}

	result := strings.TrimSpace(paragraphs.String() + tables.String())
	if result == "" {
		return "", apperrors.EmptyExtraction("No text could be extracted from document.")
	}
	return result, nil
}

// textEncodings is the ordered list of encodings tried for plain-text files
var textEncodings = []struct {
	name    string
	charmap *charmap.Charmap
}{
	{"utf-8", nil},
	{"latin-1", charmap.ISO8859_1},
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

// extractPlainText returns the first successful decode, trimmed
func extractPlainText(content []byte) (string, error) {
	for _, enc := range textEncodings {
		var text string
		if enc.charmap == nil {
			if !utf8.Valid(content) {
				continue
			}
			text = string(content)
		} else {
			decoded, err := enc.charmap.NewDecoder().Bytes(content)
			if err != nil {
				continue
			}
			text = string(decoded)
		}

		result := strings.TrimSpace(text)
		if result == "" {
			return "", apperrors.EmptyExtraction("No text content found in file.")
		}
		return result, nil
	}

	return "", apperrors.UndecodableText()
}
