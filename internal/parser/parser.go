// Package parser splits a commit message into header, body and footer and
// extracts the conventional-commit fields.
package parser

import (
	"strings"

	"github.com/Tomas-vilte/matelint/internal/domain/models"
	"github.com/Tomas-vilte/matelint/internal/regex"
)

// CommentChar marks lines git strips from the message.
const CommentChar = "#"

// Parse parses a raw commit message. It never fails: text that does not
// follow the conventional format yields empty type, scope and subject.
func Parse(raw string) *models.Commit {
	commit := &models.Commit{Raw: raw, FooterStart: -1}

	lines := clean(raw)
	commit.Lines = lines
	if len(lines) == 0 {
		return commit
	}

	commit.Header = lines[0]
	if m := regex.Header.FindStringSubmatch(commit.Header); m != nil {
		commit.Type = m[1]
		commit.Scope = m[2]
		commit.Bang = m[3] == "!"
		commit.Subject = m[4]
	}

	rest := lines[1:]
	footerAt := len(rest)
	for i := range rest {
		if startsFooter(rest, i) {
			footerAt = i
			break
		}
	}

	commit.Body = strings.Join(trimBlank(rest[:footerAt]), "\n")
	if footerAt < len(rest) {
		commit.FooterStart = footerAt + 1
		footer := trimBlank(rest[footerAt:])
		commit.Footer = strings.Join(footer, "\n")
		parseFooter(commit, footer)
	}

	commit.Breaking = commit.Bang || len(commit.Notes) > 0
	return commit
}

// clean drops comment lines and anything below a scissors line, then trims
// surrounding blank lines.
func clean(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if regex.Scissors.MatchString(line) {
			break
		}
		if strings.HasPrefix(line, CommentChar) {
			continue
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return trimBlank(lines)
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// startsFooter reports whether lines[i] opens the footer. Breaking change
// notes and issue actions do so anywhere; a trailer only when it opens the
// last paragraph and every line after it is a footer token or a continuation.
func startsFooter(lines []string, i int) bool {
	line := lines[i]
	if regex.BreakingChange.MatchString(line) || regex.ReferenceAction.MatchString(line) {
		return true
	}
	if !regex.Trailer.MatchString(line) || i == 0 || strings.TrimSpace(lines[i-1]) != "" {
		return false
	}
	for _, next := range lines[i+1:] {
		if !isFooterToken(next) && !isContinuation(next) {
			return false
		}
	}
	return true
}

func isFooterToken(line string) bool {
	return regex.BreakingChange.MatchString(line) ||
		regex.ReferenceAction.MatchString(line) ||
		regex.Trailer.MatchString(line)
}

// isContinuation matches folded trailer values, indented like git does.
func isContinuation(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

func parseFooter(commit *models.Commit, footer []string) {
	var current *models.Note
	for _, line := range footer {
		if m := regex.BreakingChange.FindStringSubmatch(line); m != nil {
			commit.Notes = append(commit.Notes, models.Note{Title: "BREAKING CHANGE", Text: m[1]})
			current = &commit.Notes[len(commit.Notes)-1]
			continue
		}
		if regex.ReferenceAction.MatchString(line) {
			current = nil
			commit.References = append(commit.References, referencesIn(line)...)
			continue
		}
		if m := regex.Trailer.FindStringSubmatch(line); m != nil {
			current = nil
			commit.Trailers = append(commit.Trailers, models.Trailer{Token: m[1], Value: m[2]})
			continue
		}
		if current != nil {
			current.Text = strings.TrimSpace(current.Text + "\n" + line)
		}
	}
}

func referencesIn(line string) []models.Reference {
	m := regex.ReferenceAction.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	action := strings.ToLower(strings.TrimSpace(strings.SplitN(line, m[1], 2)[0]))
	action = strings.TrimSuffix(action, ":")

	var refs []models.Reference
	for _, issue := range regex.IssueReference.FindAllStringSubmatch(m[1], -1) {
		refs = append(refs, models.Reference{
			Action:     action,
			Repository: issue[1],
			Issue:      issue[2],
		})
	}
	return refs
}
