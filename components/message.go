package components

import (
	"encoding/json"
	"strings"

	"github.com/rs/xid"
)

// NewTurnID returns a new turn ID.
func NewTurnID() string {
	return xid.New().String()
}

// MessageRole is the role of the message sender
type MessageRole = string

const (
	UserRole  MessageRole = "user"
	ModelRole MessageRole = "model"
)

// Part is one piece of message content, either text or an image
type Part struct {
	Text  string `json:"text,omitempty"`
	Image *Image `json:"image,omitempty"`
}

// TextPart returns a text Part
func TextPart(text string) Part {
	return Part{Text: text}
}

// ImagePart returns an image Part
func ImagePart(img *Image) Part {
	return Part{Image: img}
}

// IsImage reports whether the part carries an image
func (p Part) IsImage() bool {
	return p.Image != nil
}

// Message represents one turn of the conversation.
type Message struct {
	// role is the role of the message sender
	role MessageRole
	// parts are the ordered content parts
	parts []Part
	// turnID links a user message to the model reply it produced
	turnID string
}

// NewMessage returns a new Message
func NewMessage(role MessageRole, parts ...Part) *Message {
	return &Message{
		role:  role,
		parts: parts,
	}
}

// SetTurnID set message turnID
func (m *Message) SetTurnID(turnID string) *Message {
	m.turnID = turnID
	return m
}

// Role returns message role
func (m Message) Role() MessageRole {
	return m.role
}

// Parts returns a copy of the message parts
func (m Message) Parts() []Part {
	ret := make([]Part, len(m.parts))
	copy(ret, m.parts)
	return ret
}

// TurnID returns message turnID
func (m Message) TurnID() string {
	return m.turnID
}

// Text joins all text parts with blank lines
func (m Message) Text() string {
	texts := make([]string, 0, len(m.parts))
	for _, p := range m.parts {
		if p.IsImage() {
			continue
		}
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n\n")
}

// Images returns the images attached to the message
func (m Message) Images() []*Image {
	var ret []*Image
	for _, p := range m.parts {
		if p.IsImage() {
			ret = append(ret, p.Image)
		}
	}
	return ret
}

type messageJSON struct {
	Role   MessageRole `json:"role"`
	TurnID string      `json:"turn_id,omitempty"`
	Parts  []Part      `json:"parts"`
}

// MarshalJSON implements json.Marshaler interface
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageJSON{
		Role:   m.role,
		TurnID: m.turnID,
		Parts:  m.parts,
	})
}
