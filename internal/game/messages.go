package game

import "strings"

// MsgPriority controls the color of a message in the comms log.
type MsgPriority uint8

const (
	MsgInfo     MsgPriority = iota // cyan
	MsgWarning                     // yellow
	MsgCritical                    // red
	MsgReward                      // green
)

// commsWidth is the widest line the HUD comms panel can show.
const commsWidth = 40

// Message is a single entry in the comms log.
type Message struct {
	Text     string
	Priority MsgPriority
	Tick     uint64
}

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends a message stamped with tick, evicting the oldest if full.
// Long messages are wrapped to the comms panel width.
func (l *MessageLog) Add(text string, priority MsgPriority, tick uint64) {
	for _, line := range wrapText(text, commsWidth) {
		msg := Message{Text: line, Priority: priority, Tick: tick}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// Clear empties the log.
func (l *MessageLog) Clear() {
	l.Messages = l.Messages[:0]
}

// wrapText splits text into lines no longer than maxWidth.
// A single word longer than maxWidth gets a line of its own.
func wrapText(s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
