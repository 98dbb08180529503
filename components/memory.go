package components

import (
	"sync"
)

// Memory is the append-only conversation history of one analysis run.
// Messages are never removed, reordered or truncated.
// threadsafe
type Memory struct {
	//	history is a list of messages representing the chat history.
	history []Message
	//	turnID is the ID of the current turn.
	turnID string
	// mtx sync lock
	mtx *sync.RWMutex
}

// NewMemory initializes an empty Memory
func NewMemory() *Memory {
	return &Memory{
		history: make([]Message, 0, 10),
		mtx:     new(sync.RWMutex),
	}
}

// TurnID returns the current turn ID
func (m *Memory) TurnID() string {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.turnID
}

// NewTurn starts a new turn with a random turn ID and returns the ID.
func (m *Memory) NewTurn() string {
	turnID := NewTurnID()
	m.mtx.Lock()
	m.turnID = turnID
	m.mtx.Unlock()
	return turnID
}

// NewMessage appends a message stamped with the current turn ID
func (m *Memory) NewMessage(role MessageRole, parts ...Part) *Message {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	msg := NewMessage(role, parts...).SetTurnID(m.turnID)
	m.history = append(m.history, *msg)
	return msg
}

// Append adds a message to the end of the history
func (m *Memory) Append(msg Message) {
	m.mtx.Lock()
	m.history = append(m.history, msg)
	m.mtx.Unlock()
}

// History returns a snapshot of the ordered history.
// Later appends do not affect the returned slice.
func (m *Memory) History() []Message {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	ret := make([]Message, len(m.history))
	copy(ret, m.history)
	return ret
}

// MessageCount returns the number of messages in the chat history.
func (m *Memory) MessageCount() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return len(m.history)
}

// TokenCount estimates the size of the text in the history
func (m *Memory) TokenCount(counter TokenCounter) int {
	if counter == nil {
		return 0
	}
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	var total int
	for _, msg := range m.history {
		total += counter.Count(msg.Text())
	}
	return total
}
