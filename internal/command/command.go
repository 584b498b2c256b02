// Package command models the textual commands that drive the browser and the
// FIFO bus that carries them from producers to the main loop.
//
// A command is a single line: a verb followed by labelled arguments, e.g.
//
//	open history:1 url:gemini://example.org/a b
//
// Arguments are looked up by label. A value is either a bare token or a
// double-quoted Go string. The url: argument is always last and runs to the
// end of the line, so it may contain spaces.
package command

import (
	"strconv"
	"strings"
)

const urlLabel = "url"

// Command is an immutable parsed command line.
type Command struct {
	text string
	verb string
}

// Parse never fails; an empty line yields a command with an empty verb.
func Parse(text string) Command {
	text = strings.TrimSpace(text)
	verb := text
	if i := strings.IndexByte(text, ' '); i >= 0 {
		verb = text[:i]
	}
	return Command{text: text, verb: verb}
}

// Text returns the full command line.
func (c Command) Text() string { return c.text }

// Verb returns the first token of the line.
func (c Command) Verb() string { return c.verb }

// Is reports whether the command's verb equals verb.
func (c Command) Is(verb string) bool { return c.verb == verb }

// valueStart returns the offset just past " label:" or -1. Labels other than
// url are only searched before the url: suffix, which may contain anything.
func (c Command) valueStart(label string) int {
	needle := " " + label + ":"
	head := c.text
	if label != urlLabel {
		if j := strings.Index(head, " "+urlLabel+":"); j >= 0 {
			head = head[:j]
		}
	}
	i := strings.Index(head, needle)
	if i < 0 {
		return -1
	}
	return i + len(needle)
}

// HasArg reports whether the label appears in the command.
func (c Command) HasArg(label string) bool { return c.valueStart(label) >= 0 }

// String returns the value for label. Quoted values are unquoted; bare values
// stop at the next space.
func (c Command) String(label string) string {
	start := c.valueStart(label)
	if start < 0 {
		return ""
	}
	rest := c.text[start:]
	if strings.HasPrefix(rest, `"`) {
		if quoted, err := strconv.QuotedPrefix(rest); err == nil {
			if s, err := strconv.Unquote(quoted); err == nil {
				return s
			}
		}
		return strings.TrimPrefix(firstToken(rest), `"`)
	}
	return firstToken(rest)
}

// Suffix returns everything after "label:" up to the end of the line.
func (c Command) Suffix(label string) string {
	start := c.valueStart(label)
	if start < 0 {
		return ""
	}
	return c.text[start:]
}

// ArgInt parses the value for label as an integer, returning 0 when missing or
// malformed.
func (c Command) ArgInt(label string) int {
	n, err := strconv.Atoi(c.String(label))
	if err != nil {
		return 0
	}
	return n
}

// ArgFloat parses the value for label as a float.
func (c Command) ArgFloat(label string) float64 {
	f, err := strconv.ParseFloat(c.String(label), 64)
	if err != nil {
		return 0
	}
	return f
}

// Arg is shorthand for ArgInt("arg").
func (c Command) Arg() int { return c.ArgInt("arg") }

// Coord returns the two integers following "coord:".
func (c Command) Coord() (x, y int) {
	start := c.valueStart("coord")
	if start < 0 {
		return 0, 0
	}
	fields := strings.Fields(c.text[start:])
	if len(fields) > 0 {
		x, _ = strconv.Atoi(fields[0])
	}
	if len(fields) > 1 {
		y, _ = strconv.Atoi(fields[1])
	}
	return x, y
}

func firstToken(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// Quote formats s so String can recover it verbatim.
func Quote(s string) string { return strconv.Quote(s) }

// Open builds an open command for url. url is written last so it may contain
// spaces.
func Open(url string, suppressHistory, redirect bool) string {
	var b strings.Builder
	b.WriteString("open")
	if suppressHistory {
		b.WriteString(" history:1")
	}
	if redirect {
		b.WriteString(" redirect:1")
	}
	b.WriteString(" url:")
	b.WriteString(url)
	return b.String()
}
