// Package poll turns free-text questions into reaction polls.
package poll

import (
	"errors"
	"regexp"
	"strings"
)

// Option count bounds for a poll.
const (
	MinOptions = 2
	MaxOptions = 6
)

// NumberEmoji are the reaction emoji attached to a poll, in option order.
var NumberEmoji = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣"}

// ErrBadOptionCount is returned when the resolved options fall outside the
// 2–6 range. The handler replies with a usage hint and posts nothing.
var ErrBadOptionCount = errors.New("provide 2-6 options using fields, a list like `Yes;No;Maybe`, or phrase the question as `X or Y`")

// "X or Y" / "X vs Y" at the end of the question.
var reSmartPair = regexp.MustCompile(`(?i)\b(.+?)\s+(?:or|vs)\s+(.+?)\s*\??$`)

// leading "Best: " style prefix before the first alternative.
var reColonPrefix = regexp.MustCompile(`.*:\s*`)

// smartFromQuestion extracts a two-way poll from natural phrasing like
// "soup or salad?".
func smartFromQuestion(q string) []string {
	m := reSmartPair.FindStringSubmatch(q)
	if m == nil {
		return nil
	}
	a := strings.TrimSpace(reColonPrefix.ReplaceAllString(m[1], ""))
	b := strings.TrimSpace(m[2])
	if a == "" || b == "" {
		return nil
	}
	return []string{a, b}
}

// splitList splits a delimited option list. Semicolons win over commas so
// option text may itself contain commas.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	sep := ","
	if strings.Contains(s, ";") {
		sep = ";"
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 1 && sep == "," {
		return out // no delimiter present, single literal option
	}
	return out
}

// Resolve determines the final option list. Priority: explicit option
// fields, then the delimited list, then smart parsing of the question.
func Resolve(question string, fields []string, list string) ([]string, error) {
	options := make([]string, 0, MaxOptions)
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			options = append(options, t)
		}
	}
	if len(options) == 0 {
		options = splitList(list)
	}
	if len(options) == 0 {
		options = smartFromQuestion(question)
	}

	if len(options) < MinOptions || len(options) > MaxOptions {
		return nil, ErrBadOptionCount
	}
	return options, nil
}

// Render formats the poll message body: bolded question plus one numbered
// line per option.
func Render(question string, options []string) string {
	var b strings.Builder
	b.WriteString("**")
	b.WriteString(strings.TrimRight(strings.TrimSpace(question), "?"))
	b.WriteString("?**")
	for i, opt := range options {
		b.WriteString("\n")
		b.WriteString(NumberEmoji[i])
		b.WriteString(" ")
		b.WriteString(opt)
	}
	return b.String()
}
