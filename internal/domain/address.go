package domain

import "strings"

// NormalizeAddress joins address fragments with commas and trims the result.
// It returns "" when every fragment is blank.
func NormalizeAddress(parts ...string) string {
	blank := true
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			blank = false
			break
		}
	}
	if blank {
		return ""
	}
	return strings.TrimSpace(strings.Join(parts, ","))
}
