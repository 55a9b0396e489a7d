package timeline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxMessageLength is the longest message a tweet holds, in runes.
const DefaultMaxMessageLength = 99

// Message is the bounded text of a tweet. It is always a single printable
// line no longer than the limit it was built with.
type Message struct {
	text string
}

// NewMessage normalises raw into a Message of at most max runes.
// Non-printable runes become spaces; anything past max runes is dropped.
func NewMessage(raw string, max int) Message {
	if max <= 0 {
		max = DefaultMaxMessageLength
	}

	var b strings.Builder
	n := 0
	for _, r := range raw {
		if n == max {
			break
		}
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			r = ' '
		}
		b.WriteRune(r)
		n++
	}
	return Message{text: b.String()}
}

func (m Message) String() string { return m.text }

// Len returns the message length in runes.
func (m Message) Len() int { return utf8.RuneCountInString(m.text) }
