package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"navtitle/internal/config"
)

// Kind is the semantic category of a subtitle payload.
type Kind string

const (
	KindStandard Kind = "standard"
	KindSuccess  Kind = "success"
	KindWarning  Kind = "warning"
	KindFailure  Kind = "failure"
)

// FeedbackCategory is the haptic/notification signal emitted when a message is shown.
type FeedbackCategory string

const (
	FeedbackNone    FeedbackCategory = "none"
	FeedbackSuccess FeedbackCategory = "success"
	FeedbackWarning FeedbackCategory = "warning"
	FeedbackError   FeedbackCategory = "error"
)

// Payload is the text of a subtitle message plus its category.
// A nil *Payload means "no message"; Text is never empty otherwise.
type Payload struct {
	Kind Kind
	Text string
}

// NewPayload returns nil when text is blank.
func NewPayload(kind Kind, text string) *Payload {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return &Payload{Kind: kind, Text: text}
}

// Standard creates a plain status payload.
func Standard(text string) *Payload { return NewPayload(KindStandard, text) }

// Success creates a success payload.
func Success(text string) *Payload { return NewPayload(KindSuccess, text) }

// Warning creates a warning payload.
func Warning(text string) *Payload { return NewPayload(KindWarning, text) }

// Failure creates a failure payload.
func Failure(text string) *Payload { return NewPayload(KindFailure, text) }

// FeedbackCategory maps the payload kind to the feedback it triggers.
func (p Payload) FeedbackCategory() FeedbackCategory {
	switch p.Kind {
	case KindSuccess:
		return FeedbackSuccess
	case KindWarning:
		return FeedbackWarning
	case KindFailure:
		return FeedbackError
	default:
		return FeedbackNone
	}
}

// Message is a queued request to show a payload for Duration.
type Message struct {
	ID               string
	Payload          Payload
	GenerateFeedback bool
	Duration         time.Duration
	CreatedAt        time.Time
}

// NewMessage creates a message; durations below config.MinHideAfter are clamped.
func NewMessage(p Payload, generateFeedback bool, d time.Duration) *Message {
	return &Message{
		ID:               uuid.New().String(),
		Payload:          p,
		GenerateFeedback: generateFeedback,
		Duration:         config.ClampHideAfter(d),
		CreatedAt:        time.Now(),
	}
}

// Text returns the payload text.
func (m *Message) Text() string {
	return m.Payload.Text
}

// ShortID returns the first 8 characters of the ID for log lines.
func (m *Message) ShortID() string {
	if len(m.ID) <= 8 {
		return m.ID
	}
	return m.ID[:8]
}

// StatusIcon returns an emoji icon representing the payload kind
func (k Kind) StatusIcon() string {
	switch k {
	case KindSuccess:
		return "✅"
	case KindWarning:
		return "⚠️"
	case KindFailure:
		return "❌"
	default:
		return "•"
	}
}
