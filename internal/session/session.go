package session

import "time"

// Stage identifies the visitor's position in the scripted dialogue.
type Stage string

const (
	StageGreeting     Stage = "GREETING"
	StageNeeds        Stage = "NEEDS"
	StageDeepDive     Stage = "DEEP_DIVE"
	StageContactInfo  Stage = "CONTACT_INFO"
	StageConfirmEmail Stage = "CONFIRM_EMAIL"
	StageClosing      Stage = "CLOSING"
)

// Turn senders. Escalation replies are recorded as ordinary "ai" turns.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// Turn is one transcript entry.
type Turn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Session is the server-side state for one visitor's conversation.
type Session struct {
	ID         string    `json:"id"`
	Stage      Stage     `json:"stage"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company,omitempty"`
	Interest   string    `json:"interest,omitempty"`
	Details    []string  `json:"details"`
	Transcript []Turn    `json:"transcript"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// New creates an initial session at the greeting stage.
func New(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:         id,
		Stage:      StageGreeting,
		Details:    []string{},
		Transcript: []Turn{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AppendTurn adds a transcript entry. The transcript is append-only.
func (s *Session) AppendTurn(sender, text string) {
	s.Transcript = append(s.Transcript, Turn{Sender: sender, Text: text})
}

// Clone returns a deep copy, safe to hand to a background notifier while
// later turns keep mutating the original.
func (s *Session) Clone() *Session {
	dup := *s
	dup.Details = append([]string(nil), s.Details...)
	dup.Transcript = append([]Turn(nil), s.Transcript...)
	return &dup
}
