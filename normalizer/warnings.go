package normalizer

import "fmt"

// WarningSink accumulates non-fatal issues during extraction.
//
// A sink is created per Normalize call and threaded explicitly through every
// extraction function, so concurrent normalizations never share state and
// extraction functions stay independently testable.
type WarningSink struct {
	warnings []string
}

// Addf formats and records a warning.
func (s *WarningSink) Addf(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

// Add records a warning verbatim.
func (s *WarningSink) Add(warning string) {
	s.warnings = append(s.warnings, warning)
}

// Warnings returns the accumulated warnings in insertion order.
func (s *WarningSink) Warnings() []string {
	return s.warnings
}

// Len returns the number of accumulated warnings.
func (s *WarningSink) Len() int {
	return len(s.warnings)
}
