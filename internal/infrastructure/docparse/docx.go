package docparse

import (
	"bytes"
	"errors"
	"strings"

	"github.com/fumiama/go-docx"
)

var ErrNoText = errors.New("document contains no extractable text")

type DocxExtractor struct{}

func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// ExtractText converts a .docx body into plain text, one line per
// paragraph. Tables are flattened the same way.
func (e *DocxExtractor) ExtractText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch block := item.(type) {
		case *docx.Paragraph:
			sb.WriteString(block.String())
			sb.WriteByte('\n')
		case *docx.Table:
			sb.WriteString(block.String())
			sb.WriteByte('\n')
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
