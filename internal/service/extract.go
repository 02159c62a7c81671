package service

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	// Unicode dash variants show up constantly in filenames typed on
	// macOS, so they are folded into a plain hyphen before matching.
	dashVariants    = strings.NewReplacer("–", "-", "—", "-", "−", "-")
	filenamePattern = regexp.MustCompile(`^(\d{8})\s*-\s*(.+)$`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// ParsedFilename is the date and person name derived from the
// "YYYYMMDD - Person Name.docx" upload naming convention.
type ParsedFilename struct {
	MeetingDate time.Time
	Name        string
}

// ParseDocumentFilename matches an uploaded filename against the fixed
// naming convention. There is no fallback source for the meeting date or
// the person's name, so a mismatch fails the whole ingestion request.
func ParseDocumentFilename(filename string) (*ParsedFilename, bool) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	normalized := dashVariants.Replace(base)
	normalized = whitespaceRun.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	match := filenamePattern.FindStringSubmatch(normalized)
	if match == nil {
		return nil, false
	}

	date, err := time.Parse("20060102", match[1])
	if err != nil {
		return nil, false
	}

	name := titleCase(match[2])
	if name == "" {
		return nil, false
	}

	return &ParsedFilename{MeetingDate: date, Name: name}, true
}

// ScannedFields is the result of the best-effort label scan over the
// extracted document text. Missing company/role fall back to placeholder
// strings; this is a human-reviewed draft, never authoritative data.
type ScannedFields struct {
	Company string
	Role    string
	Email   string
}

// ScanContactFields greps the text line by line for colon-delimited
// labels. Matching is case-insensitive and the first hit per field wins.
func ScanContactFields(text string) ScannedFields {
	var fields ScannedFields

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if fields.Company == "" {
			if v, ok := labelValue(trimmed, lower, "company:"); ok {
				fields.Company = v
			} else if v, ok := labelValue(trimmed, lower, "organization:"); ok {
				fields.Company = v
			}
		}

		if fields.Role == "" {
			for _, label := range []string{"role:", "title:", "position:"} {
				if v, ok := labelValue(trimmed, lower, label); ok {
					fields.Role = v
					break
				}
			}
		}

		if fields.Email == "" {
			if v, ok := labelValue(trimmed, lower, "email:"); ok {
				fields.Email = v
			}
		}
	}

	if fields.Company == "" {
		fields.Company = "Unknown Company"
	}
	if fields.Role == "" {
		fields.Role = "Unknown Role"
	}
	return fields
}

func labelValue(line, lower, label string) (string, bool) {
	if !strings.HasPrefix(lower, label) {
		return "", false
	}

	value := strings.TrimSpace(line[len(label):])
	if value == "" {
		return "", false
	}
	return value, true
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
