package logging

import (
	"strings"
	"sync"
)

// MessageLog keeps the most recent log lines for on-screen display
type MessageLog struct {
	mu          sync.Mutex
	messages    []string
	maxMessages int
}

// NewMessageLog creates a message log holding up to max lines
func NewMessageLog(max int) *MessageLog {
	if max <= 0 {
		max = 100
	}
	return &MessageLog{
		messages:    []string{},
		maxMessages: max,
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.addLocked(message)
}

func (ml *MessageLog) addLocked(message string) {
	ml.messages = append(ml.messages, message)

	// Truncate if we have too many messages
	if len(ml.messages) > ml.maxMessages {
		ml.messages = ml.messages[len(ml.messages)-ml.maxMessages:]
	}
}

// Write implements io.Writer so the log can back a zap core. Each non-empty
// line becomes one message.
func (ml *MessageLog) Write(p []byte) (int, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			ml.addLocked(line)
		}
	}
	return len(p), nil
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if n > len(ml.messages) {
		n = len(ml.messages)
	}
	if n < 0 {
		n = 0
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.messages[len(ml.messages)-1-i]
	}
	return result
}

// Len returns the number of stored messages
func (ml *MessageLog) Len() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return len(ml.messages)
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.messages = []string{}
}
