package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/txcv/cli/internal/translate"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Mode
		expectErr bool
	}{
		{"empty means auto", "", ModeAuto, false},
		{"auto", "auto", ModeAuto, false},
		{"always", "always", ModeAlways, false},
		{"disable", "disable", ModeDisable, false},
		{"unknown", "never", ModeAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestLine(t *testing.T) {
	Apply(ModeDisable)

	line := Line(translate.Result{Word: "test", Translated: "测试"})
	assert.Equal(t, "test -> 测试", line)
}
