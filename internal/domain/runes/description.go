package runes

import (
	"strings"
)

// ParagraphSeparator joins description sections
const ParagraphSeparator = "\n\n"

// DescribeOptions adds optional sections around a rune's own text
type DescribeOptions struct {
	Prologue   string
	Epilogue   string
	WithFlavor bool
}

// Description composes the rune's text heightened to level. Sections that are
// empty are left out without leaving extra separators.
func (r *Rune) Description(level int, opts DescribeOptions) string {
	sections := []string{opts.Prologue}
	if opts.WithFlavor {
		sections = append(sections, r.FlavorText)
	}
	sections = append(sections,
		labelled("Usage", r.UsageText),
		r.HeightenPassive(r, level),
		labelled("Invocation", r.HeightenInvoke(r, level)),
		r.HeightenLevel(r, level),
		opts.Epilogue,
	)

	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, ParagraphSeparator)
}

func labelled(label, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return label + ": " + text
}
