// Package commitmsg synthesizes default commit messages from branch names.
//
// The pipeline is:
//
//	branch name -> [branch.Parse] -> [Title] -> [Compose] -> message
//
// [Title] and [Compose] are pure. [RewriteFile] is the boundary that reads
// the commit message file git hands to prepare-commit-msg and replaces its
// contents atomically when a message was synthesized.
package commitmsg

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/raphi011/hookmaster/internal/branch"
)

// Title converts a branch description into a human-readable title.
// Separators become single spaces and the first letter of each
// whitespace-delimited word is title-cased. The rest of each word is left
// byte-identical, so acronyms and "api/v2" survive.
func Title(description string) string {
	words := strings.Fields(branch.NormalizeSeparators(description))
	if len(words) == 0 {
		return ""
	}

	caser := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = caser.String(w[:size]) + w[size:]
	}
	return strings.Join(words, " ")
}

// Compose returns the default commit message for a parsed branch.
//
// An existing message with user content is returned unchanged, as is the
// existing message when the branch carries no ticket. Otherwise the result
// is "TICKET: Title", or just "TICKET" when the description is empty.
func Compose(p branch.Parsed, existing string) string {
	if HasContent(existing) {
		return existing
	}
	if !p.HasTicket() {
		return existing
	}

	title := Title(p.Description)
	if title == "" {
		return p.Ticket
	}
	return p.Ticket + ": " + title
}

// HasContent reports whether msg contains anything besides blank lines and
// git comment lines.
func HasContent(msg string) bool {
	for line := range strings.Lines(msg) {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return true
	}
	return false
}
