package clockfmt

import "strings"

// Is12Hour reports whether pattern renders the hour on a 12-hour clock.
func Is12Hour(pattern string) bool {
	return strings.Contains(pattern, "%I")
}

// HasSeconds reports whether pattern renders seconds.
func HasSeconds(pattern string) bool {
	return strings.Contains(pattern, "%S")
}

// To12Hour swaps %H for %I and appends an AM/PM marker when none is present.
// Patterns without a 24-hour directive are returned unchanged.
func To12Hour(pattern string) string {
	if !strings.Contains(pattern, "%H") {
		return pattern
	}
	pattern = strings.ReplaceAll(pattern, "%H", "%I")
	if !strings.Contains(pattern, "%p") {
		pattern += " %p"
	}
	return pattern
}

// To24Hour swaps %I for %H and drops the AM/PM marker with one adjoining space.
func To24Hour(pattern string) string {
	if !Is12Hour(pattern) {
		return pattern
	}
	pattern = strings.ReplaceAll(pattern, "%I", "%H")
	switch {
	case strings.Contains(pattern, " %p"):
		pattern = strings.Replace(pattern, " %p", "", 1)
	case strings.Contains(pattern, "%p "):
		pattern = strings.Replace(pattern, "%p ", "", 1)
	default:
		pattern = strings.Replace(pattern, "%p", "", 1)
	}
	return pattern
}

// WithSeconds inserts ":%S" after the first minute directive.
func WithSeconds(pattern string) string {
	if HasSeconds(pattern) {
		return pattern
	}
	i := strings.Index(pattern, "%M")
	if i < 0 {
		return pattern
	}
	return pattern[:i+2] + ":%S" + pattern[i+2:]
}

// WithoutSeconds removes the seconds directive and its leading colon.
func WithoutSeconds(pattern string) string {
	if strings.Contains(pattern, ":%S") {
		return strings.Replace(pattern, ":%S", "", 1)
	}
	return strings.Replace(pattern, "%S", "", 1)
}
