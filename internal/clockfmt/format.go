package clockfmt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Conversions rendered by strftime.Format. Anything else after a '%' is
// rejected.
const supportedDirectives = "aAbBhcCdDeFgGHIjklLfNmMnpPrRsQStTuUvVwWxXyYzZ+%"

// Optional flags and the conversions each locale modifier may prefix.
const (
	flags        = "-:"
	eConversions = "cCxXyY"
	oConversions = "deHImMSuUVwWy"
)

var ErrEmptyPattern = errors.New("empty format pattern")

// DirectiveError reports a pattern that cannot be rendered.
// Directive is zero when the pattern ends with a lone '%'.
type DirectiveError struct {
	Pattern   string
	Directive rune
	Offset    int
}

func (e *DirectiveError) Error() string {
	if e.Directive == 0 {
		return fmt.Sprintf("format %q: dangling %% at offset %d", e.Pattern, e.Offset)
	}
	return fmt.Sprintf("format %q: unsupported directive %%%c at offset %d", e.Pattern, e.Directive, e.Offset)
}

// Validate checks that every directive in pattern is one the formatter supports.
// A directive is '%', an optional flag, an optional E or O modifier and a
// conversion character.
func Validate(pattern string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		start := i
		i++
		if i < len(pattern) && strings.IndexByte(flags, pattern[i]) >= 0 {
			i++
		}
		allowed := supportedDirectives
		if i < len(pattern) && (pattern[i] == 'E' || pattern[i] == 'O') {
			allowed = eConversions
			if pattern[i] == 'O' {
				allowed = oConversions
			}
			i++
		}
		if i >= len(pattern) {
			return &DirectiveError{Pattern: pattern, Offset: start}
		}
		if strings.IndexByte(allowed, pattern[i]) < 0 {
			return &DirectiveError{Pattern: pattern, Directive: rune(pattern[i]), Offset: start}
		}
	}
	return nil
}

// Format renders t with a strftime pattern.
func Format(pattern string, t time.Time) (string, error) {
	if err := Validate(pattern); err != nil {
		return "", err
	}
	return strftime.Format(pattern, t), nil
}
