// Package formatter turns the plain text answers returned by Gemini into the
// HTML fragment the chat page renders inside a message bubble.
package formatter

import "strings"

const (
	summaryOpen  = "<div class='mb-2'><span class='text-blue-400 font-semibold'>📝 Summary:</span><br>"
	summaryClose = "</div>"
	listOpen     = "<ul class='list-disc pl-5 space-y-1'>"
	listClose    = "</ul>"

	// Disclaimer is appended to every formatted answer.
	Disclaimer = "<div class='mt-4 text-sm text-gray-400'>⚠️ <strong>Disclaimer:</strong> " +
		"This is for educational purposes only and does not constitute financial advice. " +
		"Please consult a SEBI-registered advisor before making investment decisions.</div>"
)

type state int

const (
	awaitingSummary state = iota
	inBody
	inList
)

type renderer struct {
	sb    strings.Builder
	state state
}

// Format renders raw as a summary block (its first non-blank line), then
// paragraphs and bullet lists in input order, then the disclaimer.
// Line text is copied verbatim.
func Format(raw string) string {
	r := &renderer{}
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		r.line(strings.TrimSpace(line))
	}
	r.closeList()
	r.sb.WriteString(Disclaimer)
	return r.sb.String()
}

func (r *renderer) line(line string) {
	if r.state == awaitingSummary {
		if line == "" {
			return
		}
		r.sb.WriteString(summaryOpen)
		r.sb.WriteString(line)
		r.sb.WriteString(summaryClose)
		r.state = inBody
		return
	}

	switch {
	case isListItem(line):
		if r.state != inList {
			r.sb.WriteString(listOpen)
			r.state = inList
		}
		r.sb.WriteString("<li>")
		r.sb.WriteString(strings.TrimSpace(line[1:]))
		r.sb.WriteString("</li>")
	case line == "":
		r.closeList()
	default:
		r.closeList()
		r.sb.WriteString("<p>")
		r.sb.WriteString(line)
		r.sb.WriteString("</p>")
	}
}

func (r *renderer) closeList() {
	if r.state == inList {
		r.sb.WriteString(listClose)
		r.state = inBody
	}
}

// isListItem reports whether line starts with a "-" or "*" bullet marker.
func isListItem(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}
