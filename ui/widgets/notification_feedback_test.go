package widgets

import (
	"io"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"navtitle/internal/logger"
	"navtitle/models"
)

func TestNotificationFeedback_Emit(t *testing.T) {
	a := test.NewApp()

	f := NewNotificationFeedback(a, "Inbox", true)
	f.Log = logger.New(logger.LevelError, io.Discard)

	test.AssertNotificationSent(t, fyne.NewNotification("Inbox", "Something went wrong"), func() {
		f.Emit(models.FeedbackError)
	})
	test.AssertNotificationSent(t, nil, func() {
		f.Emit(models.FeedbackSuccess)
	})
}

func TestNotificationFeedback_Disabled(t *testing.T) {
	a := test.NewApp()

	f := NewNotificationFeedback(a, "Inbox", false)
	f.Log = nil

	test.AssertNotificationSent(t, nil, func() {
		f.Emit(models.FeedbackError)
	})
}
