package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
		hasError bool
	}{
		{
			name:     "String vazia não é erro, apenas ausência de valor",
			input:    "",
			expected: nil,
		},
		{
			name:     "Data simples",
			input:    "2024-05-01",
			expected: timePtr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Data com horário",
			input:    "2024-05-01 08:30:00",
			expected: timePtr(time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)),
		},
		{
			name:     "RFC3339",
			input:    "2024-05-01T08:30:00Z",
			expected: timePtr(time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)),
		},
		{
			name:     "Epoch em segundos",
			input:    "1714552200",
			expected: timePtr(time.Unix(1714552200, 0).UTC()),
		},
		{
			name:     "Formato desconhecido é erro",
			input:    "01/05/2024",
			hasError: true,
		},
		{
			name:     "Epoch negativo é erro",
			input:    "-42",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDate(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				assert.Nil(t, parsed)
				return
			}

			assert.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, parsed)
				return
			}

			assert.NotNil(t, parsed)
			assert.True(t, tt.expected.Equal(*parsed))
		})
	}
}

func timePtr(value time.Time) *time.Time {
	return &value
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, 6)
}
