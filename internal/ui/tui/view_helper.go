package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderDayResult(t Theme, d domain.DayResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Fixture: %s\n\n", d.Fixture))

	if d.Error != nil {
		b.WriteString("Error:\n")
		b.WriteString("  - kind: ")
		b.WriteString(string(d.Error.Kind))
		b.WriteString("\n  - msg: ")
		b.WriteString(clampString(d.Error.Message, 200))
		b.WriteString("\n")
		return b.String()
	}

	for _, p := range d.Parts {
		b.WriteString(fmt.Sprintf("Part %d ", p.Part))
		b.WriteString(renderStatus(t, p.Status))
		b.WriteString(fmt.Sprintf("  %dms\n", p.DurationMS))

		if strings.Contains(p.Answer, "\n") {
			for _, line := range strings.Split(p.Answer, "\n") {
				b.WriteString("    ")
				b.WriteString(line)
				b.WriteString("\n")
			}
		} else if p.Answer != "" {
			b.WriteString("  answer:   ")
			b.WriteString(clampString(p.Answer, 60))
			b.WriteString("\n")
		}

		if p.Expected != "" && p.Status == domain.StatusFail && !strings.Contains(p.Expected, "\n") {
			b.WriteString("  expected: ")
			b.WriteString(clampString(p.Expected, 60))
			b.WriteString("\n")
		}
		if p.Error != nil {
			b.WriteString("  error:    ")
			b.WriteString(clampString(p.Error.Message, 200))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderStatus(t Theme, s domain.PartStatus) string {
	label := "[" + strings.ToUpper(string(s)) + "]"
	switch s {
	case domain.StatusPass:
		return t.Pass.Render(label)
	case domain.StatusFail, domain.StatusError:
		return t.Fail.Render(label)
	default:
		return t.Subtitle.Render(label)
	}
}
