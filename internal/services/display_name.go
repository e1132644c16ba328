package services

import "strings"

// nameSource produces one candidate display name; empty means "no answer".
type nameSource func() string

// resolveName walks the sources in order and returns the first non-empty
// candidate. Fallback chains (creator name -> brand name -> first/last ->
// raw id) are spelled out as explicit source lists at the call sites.
func resolveName(sources ...nameSource) string {
	for _, source := range sources {
		if name := strings.TrimSpace(source()); name != "" {
			return name
		}
	}
	return ""
}

func literal(s string) nameSource {
	return func() string { return s }
}

func fullName(first, last string) nameSource {
	return func() string {
		return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	}
}
