package planner

import (
	"regexp"
	"strings"
)

// Section is one recognized day block of a generated plan.
type Section struct {
	Day     string `json:"day"`
	Details string `json:"details"`
}

// ParsedPlan is the tagged result of parsing generated text: either an
// ordered sequence of day sections, or the original text untouched when no
// day header was recognized.
type ParsedPlan struct {
	Structured bool      `json:"structured"`
	Sections   []Section `json:"sections,omitempty"`
	Text       string    `json:"text,omitempty"`
}

// Header = "Day <n>" or a weekday name at the start of a line,
// case-insensitive. The upstream format is uncontrolled, so this is a
// best-effort heuristic and must never fail.
var dayHeaderRe = regexp.MustCompile(`(?i)^(day \d+|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)

// ParsePlan scans the generated text line by line. Each recognized header
// flushes the previous (day, details) block and starts a new one; all other
// lines accumulate under the current day. Headers may repeat and appear in
// any order; day order is order of first appearance, not calendar order.
// With zero recognized headers the whole input is returned as opaque text.
func ParsePlan(text string) ParsedPlan {
	var sections []Section
	var currentDay string
	var currentDetails []string

	flush := func() {
		if currentDay != "" {
			sections = append(sections, Section{
				Day:     currentDay,
				Details: strings.Join(currentDetails, "\n"),
			})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if dayHeaderRe.MatchString(trimmed) {
			flush()
			currentDay = trimmed
			currentDetails = nil
		} else if currentDay != "" {
			currentDetails = append(currentDetails, trimmed)
		}
		// Lines before the first header are dropped; if no header ever
		// appears the opaque fallback below returns them intact anyway.
	}
	flush()

	if len(sections) == 0 {
		return ParsedPlan{Structured: false, Text: text}
	}
	return ParsedPlan{Structured: true, Sections: sections}
}
