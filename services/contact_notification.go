package services

import (
	"fmt"
	"html"

	"github.com/ksalau/learnflow-backend/config"
	"github.com/ksalau/learnflow-backend/models"
	"github.com/rs/zerolog/log"
)

// SendContactNotification emails the site owner about a new contact form
// submission. It is best-effort: callers fire it on a goroutine and never
// see a failure, which is only logged here.
func SendContactNotification(submission *models.ContactSubmission) {
	cfg := config.New()
	recipient := config.GetString(cfg, "CONTACT_NOTIFICATION_EMAIL", "")
	if recipient == "" {
		log.Debug().Msg("CONTACT_NOTIFICATION_EMAIL not set, skipping contact notification")
		return
	}

	subject := fmt.Sprintf("New contact form submission from %s %s", submission.FirstName, submission.LastName)
	if err := SendEmail(subject, contactEmailHTML(submission), []string{recipient}); err != nil {
		log.Error().Err(err).
			Str("submissionId", submission.ID.String()).
			Msg("Failed to send contact notification email")
	}
}

func contactEmailHTML(s *models.ContactSubmission) string {
	optional := func(v *string) string {
		if v == nil || *v == "" {
			return "Not provided"
		}
		return html.EscapeString(*v)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> %s %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Company:</strong> %s</p>
  <p><strong>Project Type:</strong> %s</p>
  <p><strong>Message:</strong></p>
  <p>%s</p>
  <hr>
  <p style="color: #888; font-size: 12px;">Received %s</p>
</body>
</html>`,
		html.EscapeString(s.FirstName),
		html.EscapeString(s.LastName),
		html.EscapeString(s.Email),
		optional(s.Company),
		optional(s.ProjectType),
		html.EscapeString(s.Message),
		s.CreatedAt.Format("Mon, 02 Jan 2006 15:04:05 MST"),
	)
}
