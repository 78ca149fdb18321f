package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Language
		expectErr bool
	}{
		{"empty means auto", "", Auto, false},
		{"explicit auto", "auto", Auto, false},
		{"chinese", "chinese", Chinese, false},
		{"english", "english", English, false},
		{"japanese", "japanese", Japanese, false},
		{"unknown language", "french", Auto, true},
		{"wire code is not a flag value", "zh", Auto, true},
		{"case sensitive", "English", Auto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid language")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, "zh", Chinese.Code())
	assert.Equal(t, "en", English.Code())
	assert.Equal(t, "jp", Japanese.Code())
	assert.Equal(t, "auto", Auto.Code())
}

func TestString(t *testing.T) {
	assert.Equal(t, "chinese", Chinese.String())
	assert.Equal(t, "english", English.String())
	assert.Equal(t, "japanese", Japanese.String())
	assert.Equal(t, "auto", Auto.String())
}

func TestTargetFor(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"zh", "en"},
		{"en", "zh"},
		{"jp", "zh"},
		{"fr", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.expected, TargetFor(tt.source))
		})
	}
}
