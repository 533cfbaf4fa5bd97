package domain

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InvitationEmailData holds data for invitation notification emails.
type InvitationEmailData struct {
	RecipientName string
	SenderName    string
	EventTitle    string
	TeamName      string
	IsRequest     bool
	Accepted      bool
}
