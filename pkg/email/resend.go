package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) *EmailService {
	return &EmailService{
		client:   resend.NewClient(apiKey),
		from:     from,
		fromName: fromName,
	}
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<h2>Welcome to DreamPix, {{.FullName}}!</h2>
<p>Your account is ready. Pick a credit plan and start turning prompts into images.</p>
<p>&copy; {{.Year}} DreamPix</p>
`))

func (s *EmailService) SendWelcomeEmail(email, fullName string) error {
	var html bytes.Buffer
	err := welcomeTemplate.Execute(&html, map[string]interface{}{
		"FullName": fullName,
		"Year":     time.Now().Year(),
	})
	if err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Welcome to DreamPix!",
		Html:    html.String(),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
