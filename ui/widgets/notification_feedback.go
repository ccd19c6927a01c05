package widgets

import (
	"fyne.io/fyne/v2"

	"navtitle/internal/logger"
	"navtitle/models"
)

// NotificationFeedback turns subtitle feedback into desktop notifications.
// Categories not listed in Notify are only logged.
type NotificationFeedback struct {
	App    fyne.App
	Title  string
	Notify map[models.FeedbackCategory]bool
	Log    *logger.Logger
}

// NewNotificationFeedback creates feedback for app. When notifyOnFailure is
// set, error feedback is sent as a notification titled title.
func NewNotificationFeedback(app fyne.App, title string, notifyOnFailure bool) *NotificationFeedback {
	return &NotificationFeedback{
		App:    app,
		Title:  title,
		Notify: map[models.FeedbackCategory]bool{models.FeedbackError: notifyOnFailure},
		Log:    logger.Default().Named("feedback"),
	}
}

// Emit implements subtitle.Feedback. It never blocks.
func (f *NotificationFeedback) Emit(category models.FeedbackCategory) {
	if f.Log != nil {
		f.Log.Debug("feedback %s", category)
	}
	if !f.Notify[category] || f.App == nil {
		return
	}
	n := fyne.NewNotification(f.Title, notificationBody(category))
	fyne.Do(func() { f.App.SendNotification(n) })
}

func notificationBody(category models.FeedbackCategory) string {
	switch category {
	case models.FeedbackError:
		return "Something went wrong"
	case models.FeedbackWarning:
		return "Needs attention"
	case models.FeedbackSuccess:
		return "Done"
	default:
		return string(category)
	}
}
