package models

import (
	"testing"
	"time"

	"navtitle/internal/config"
)

func TestNewPayload_BlankIsAbsent(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n"} {
		if p := Standard(text); p != nil {
			t.Errorf("Standard(%q) = %+v, want nil", text, p)
		}
	}

	p := Warning("Low battery")
	if p == nil {
		t.Fatal("Warning(\"Low battery\") = nil, want payload")
	}
	if p.Kind != KindWarning {
		t.Errorf("Kind = %q, want %q", p.Kind, KindWarning)
	}
	if p.Text != "Low battery" {
		t.Errorf("Text = %q, want 'Low battery'", p.Text)
	}
}

func TestPayload_FeedbackCategory(t *testing.T) {
	tests := []struct {
		payload *Payload
		want    FeedbackCategory
	}{
		{Standard("Syncing..."), FeedbackNone},
		{Success("Done"), FeedbackSuccess},
		{Warning("Offline"), FeedbackWarning},
		{Failure("Upload failed"), FeedbackError},
		{&Payload{Kind: Kind("unknown"), Text: "x"}, FeedbackNone},
	}

	for _, tt := range tests {
		if got := tt.payload.FeedbackCategory(); got != tt.want {
			t.Errorf("%s.FeedbackCategory() = %q, want %q", tt.payload.Kind, got, tt.want)
		}
	}
}

func TestNewMessage(t *testing.T) {
	m := NewMessage(*Success("Saved"), true, 2*time.Second)

	if m.ID == "" {
		t.Error("expected non-empty ID")
	}
	if len(m.ShortID()) != 8 {
		t.Errorf("ShortID() = %q, want 8 characters", m.ShortID())
	}
	if m.Text() != "Saved" {
		t.Errorf("Text() = %q, want 'Saved'", m.Text())
	}
	if !m.GenerateFeedback {
		t.Error("expected GenerateFeedback to be true")
	}
	if m.Duration != 2*time.Second {
		t.Errorf("Duration = %v, want 2s", m.Duration)
	}
	if m.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestNewMessage_ClampsDuration(t *testing.T) {
	for _, d := range []time.Duration{-time.Second, 0, time.Millisecond} {
		m := NewMessage(*Standard("x"), false, d)
		if m.Duration != config.MinHideAfter {
			t.Errorf("NewMessage(d=%v).Duration = %v, want %v", d, m.Duration, config.MinHideAfter)
		}
	}
}

func TestNewMessage_UniqueIDs(t *testing.T) {
	a := NewMessage(*Standard("a"), false, time.Second)
	b := NewMessage(*Standard("a"), false, time.Second)
	if a.ID == b.ID {
		t.Errorf("expected unique IDs, both are %s", a.ID)
	}
}

func TestKind_StatusIcon(t *testing.T) {
	if KindFailure.StatusIcon() != "❌" {
		t.Errorf("KindFailure.StatusIcon() = %q, want ❌", KindFailure.StatusIcon())
	}
	if KindStandard.StatusIcon() != "•" {
		t.Errorf("KindStandard.StatusIcon() = %q, want •", KindStandard.StatusIcon())
	}
}
