package chat

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/schardosin/askhook/pkg/webhook"
)

// Origin identifies who produced a chat message.
type Origin string

const (
	OriginUser   Origin = "user"
	OriginSystem Origin = "system"
)

// Fixed texts for the system side of the conversation. The acknowledgement
// and error texts can be overridden per session via SetSystemTexts.
const (
	DefaultAckText   = "Analysis received. Check the results panel for details."
	DefaultErrorText = "The webhook request failed. Nothing was recorded; adjust the URL or try again."
	MissingURLNotice = "No webhook URL is configured. Set one before asking a question."
)

var (
	// ErrBusy is returned when a new exchange starts while one is in flight.
	ErrBusy = errors.New("an exchange is already in progress")
	// ErrEmptyQuestion is returned when the submitted question trims to nothing.
	ErrEmptyQuestion = errors.New("question is empty")
)

// Message is a single entry in the conversation transcript.
type Message struct {
	ID     int64     `json:"id"`
	Origin Origin    `json:"origin"`
	Text   string    `json:"text"`
	Time   time.Time `json:"timestamp"`
}

// AnalysisRecord stores one webhook result together with the question
// that produced it.
type AnalysisRecord struct {
	ID       int64          `json:"id"`
	Question string         `json:"question"`
	Result   webhook.Result `json:"result"`
	Time     time.Time      `json:"timestamp"`
}

// Session holds the state of one running conversation: the transcript,
// the analysis records, and the in-flight flag. Both lists are
// append-only and insertion-ordered; entries are never mutated or
// removed. Nothing survives the session.
type Session struct {
	mu       sync.RWMutex
	ackText  string
	errText  string
	messages []Message
	analyses []AnalysisRecord
	lastID   int64
	busy     bool
	touched  time.Time
}

// NewSession creates an empty session with the default system texts.
func NewSession() *Session {
	return &Session{
		ackText: DefaultAckText,
		errText: DefaultErrorText,
		touched: time.Now(),
	}
}

// SetSystemTexts overrides the acknowledgement and error texts.
// Empty strings keep the current values.
func (s *Session) SetSystemTexts(ack, errText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ack != "" {
		s.ackText = ack
	}
	if errText != "" {
		s.errText = errText
	}
}

// Begin starts an exchange: it trims the question, appends the user
// message, and marks the session busy. ErrEmptyQuestion is returned for
// blank input and ErrBusy while another exchange is in flight; in both
// cases the session is left untouched.
func (s *Session) Begin(question string, at time.Time) (Message, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return Message{}, ErrEmptyQuestion
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return Message{}, ErrBusy
	}

	msg := Message{
		ID:     s.nextID(at),
		Origin: OriginUser,
		Text:   trimmed,
		Time:   at,
	}
	s.messages = append(s.messages, msg)
	s.busy = true
	s.touched = at
	return msg, nil
}

// Complete settles a successful exchange: exactly one system
// acknowledgement message and exactly one analysis record are appended,
// and the session stops being busy.
func (s *Session) Complete(question string, result webhook.Result, at time.Time) (Message, AnalysisRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:     s.nextID(at),
		Origin: OriginSystem,
		Text:   s.ackText,
		Time:   at,
	}
	s.messages = append(s.messages, msg)

	rec := AnalysisRecord{
		ID:       s.nextID(at),
		Question: question,
		Result:   result,
		Time:     at,
	}
	s.analyses = append(s.analyses, rec)

	s.busy = false
	s.touched = at
	return msg, rec
}

// Fail settles a failed exchange: exactly one system error message is
// appended, no analysis record is created, and the session stops being
// busy.
func (s *Session) Fail(at time.Time) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:     s.nextID(at),
		Origin: OriginSystem,
		Text:   s.errText,
		Time:   at,
	}
	s.messages = append(s.messages, msg)
	s.busy = false
	s.touched = at
	return msg
}

// Busy reports whether an exchange is currently in flight.
func (s *Session) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

// Messages returns a copy of the transcript, oldest first.
func (s *Session) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Analyses returns a copy of the analysis records, oldest first.
// Displays that want newest-first reverse at render time.
func (s *Session) Analyses() []AnalysisRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]AnalysisRecord, len(s.analyses))
	copy(out, s.analyses)
	return out
}

// LastActive returns the time of the most recent session activity.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched
}

// nextID derives an identifier from the submission time, bumping past
// the previous one so IDs stay unique and strictly increasing even when
// two entries land in the same millisecond. Messages and records share
// the sequence. Callers must hold the lock.
func (s *Session) nextID(at time.Time) int64 {
	id := at.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
