// Package branch extracts ticket identifiers and descriptions from branch names.
//
// A branch name is read as an optional prefix segment, an optional ticket
// identifier at the start of the remainder, and a free-text description:
//
//	feature/JIRA-123-add-new-feature
//	└─────┘ └──────┘ └─────────────┘
//	prefix   ticket   description
//
// Parsing never fails. Names without a recognizable ticket yield an empty
// Ticket and the whole remainder as Description.
package branch

import "strings"

// Prefix is a known branch-type segment such as "feature".
type Prefix string

const (
	PrefixNone    Prefix = ""
	PrefixFeature Prefix = "feature"
	PrefixBugfix  Prefix = "bugfix"
	PrefixHotfix  Prefix = "hotfix"
	PrefixFix     Prefix = "fix"
)

var knownPrefixes = []Prefix{PrefixFeature, PrefixBugfix, PrefixHotfix, PrefixFix}

// Parsed is the result of parsing a branch name.
type Parsed struct {
	Prefix      Prefix // stripped prefix, PrefixNone if absent
	Ticket      string // e.g. "JIRA-123", empty if none
	Description string // remainder with separators normalized to spaces
}

// HasTicket reports whether a ticket identifier was found.
func (p Parsed) HasTicket() bool {
	return p.Ticket != ""
}

// Parse splits a branch name into prefix, ticket and description.
func Parse(name string) Parsed {
	prefix, rest := StripPrefix(name)
	ticket, raw := ScanTicket(rest)
	return Parsed{
		Prefix:      prefix,
		Ticket:      ticket,
		Description: NormalizeSeparators(raw),
	}
}

// StripPrefix removes a leading "feature/", "bugfix/", "hotfix/" or "fix/".
// Returns PrefixNone and the unchanged name when no known prefix matches.
func StripPrefix(name string) (Prefix, string) {
	for _, p := range knownPrefixes {
		if rest, ok := strings.CutPrefix(name, string(p)+"/"); ok {
			return p, rest
		}
	}
	return PrefixNone, name
}

// ScanTicket looks for a ticket identifier at the very start of s.
// The ticket must be followed by a separator or the end of s. On a match it
// returns the ticket and the rest of s after one separator; otherwise it
// returns "" and s unchanged.
func ScanTicket(s string) (ticket, rest string) {
	n := ticketLen(s)
	if n == 0 {
		return "", s
	}
	if n == len(s) {
		return s, ""
	}
	if !isSeparator(s[n]) {
		return "", s
	}
	return s[:n], s[n+1:]
}

// IsTicket reports whether s is exactly one ticket identifier.
func IsTicket(s string) bool {
	n := ticketLen(s)
	return n > 0 && n == len(s)
}

// ticketLen returns the length of the ticket identifier at the start of s,
// or 0 if s does not start with [A-Z][A-Z0-9]+-[0-9]+.
func ticketLen(s string) int {
	i := 0

	// project key: one uppercase letter, then at least one uppercase letter or digit
	if i >= len(s) || !isUpper(s[i]) {
		return 0
	}
	i++
	keyStart := i
	for i < len(s) && (isUpper(s[i]) || isDigit(s[i])) {
		i++
	}
	if i == keyStart {
		return 0
	}

	if i >= len(s) || s[i] != '-' {
		return 0
	}
	i++

	numStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == numStart {
		return 0
	}
	return i
}

// NormalizeSeparators replaces '-' and '_' with spaces, collapses runs of
// whitespace and trims the result.
func NormalizeSeparators(s string) string {
	if s == "" {
		return ""
	}
	replaced := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(replaced), " ")
}

func isSeparator(c byte) bool { return c == '-' || c == '_' }
func isUpper(c byte) bool     { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool     { return c >= '0' && c <= '9' }
