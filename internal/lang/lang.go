// Package lang models the languages txcv translates between and the
// auto-selection rules used when no language is given on the command line.
package lang

import "fmt"

// Language is one of the supported translation languages, or Auto when the
// choice is left to detection.
type Language int

const (
	Auto Language = iota
	Chinese
	English
	Japanese
)

// Parse converts a CLI flag value into a Language. The empty string means
// Auto so an unset flag needs no special casing.
func Parse(s string) (Language, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "chinese":
		return Chinese, nil
	case "english":
		return English, nil
	case "japanese":
		return Japanese, nil
	default:
		return Auto, fmt.Errorf("invalid language %q: must be 'chinese', 'english' or 'japanese'", s)
	}
}

// Code returns the TMT wire code for the language. Auto has no fixed code;
// callers resolve it through detection first.
func (l Language) Code() string {
	switch l {
	case Chinese:
		return "zh"
	case English:
		return "en"
	case Japanese:
		return "jp"
	default:
		return "auto"
	}
}

// String returns the flag spelling of the language.
func (l Language) String() string {
	switch l {
	case Chinese:
		return "chinese"
	case English:
		return "english"
	case Japanese:
		return "japanese"
	default:
		return "auto"
	}
}

// TargetFor picks the translation target paired with a detected source code:
// Chinese translates to English, English and Japanese translate to Chinese,
// and any other detected language falls back to English.
func TargetFor(sourceCode string) string {
	switch sourceCode {
	case "zh":
		return "en"
	case "en", "jp":
		return "zh"
	default:
		return "en"
	}
}
