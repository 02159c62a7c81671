package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"plain date", "2024-01-15", "2024-01-15T00:00:00Z", false},
		{"rfc3339", "2024-01-15T10:30:00Z", "2024-01-15T10:30:00Z", false},
		{"rfc3339 with offset", "2024-01-15T10:30:00+02:00", "2024-01-15T08:30:00Z", false},
		{"slashes", "15/01/2024", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			millis, err := ParseDate(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatEpoch(millis))
		})
	}
}

func TestSanitize(t *testing.T) {
	linkedin := "  https://linkedin.example/jane  "
	req := struct {
		Name  string
		URL   *string
		Tags  []string
		Count int
	}{
		Name: "  Jane Doe ",
		URL:  &linkedin,
		Tags: []string{" a ", "b "},
	}

	Sanitize(&req)

	assert.Equal(t, "Jane Doe", req.Name)
	assert.Equal(t, "https://linkedin.example/jane", *req.URL)
	assert.Equal(t, []string{"a", "b"}, req.Tags)
}
