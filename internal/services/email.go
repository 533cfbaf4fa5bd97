package services

import (
	"context"
	"fmt"
	"log/slog"

	"campusevents/internal/domain"
)

// Email template names.
const (
	templateInvitationReceived  = "invitation_received"
	templateInvitationResponded = "invitation_responded"
)

type invitationNotifier struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	profiles domain.ProfileRepository
	logger   *slog.Logger
}

// NewInvitationNotifier returns an InvitationNotifier that emails the affected student.
func NewInvitationNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, profiles domain.ProfileRepository, logger *slog.Logger) domain.InvitationNotifier {
	return &invitationNotifier{mailer: mailer, renderer: renderer, profiles: profiles, logger: logger}
}

// InvitationCreated tells the target about a new invite or join request.
func (n *invitationNotifier) InvitationCreated(ctx context.Context, inv domain.Invitation) error {
	env := inv.Envelope()
	data := &domain.InvitationEmailData{
		RecipientName: env.TargetName,
		SenderName:    env.SenderName,
		EventTitle:    env.EventTitle,
		TeamName:      env.TeamName,
		IsRequest:     env.Type == domain.InvitationTypeRequest,
	}
	return n.send(ctx, env.TargetUserID, templateInvitationReceived, data)
}

// InvitationResponded tells the sender how the target answered.
func (n *invitationNotifier) InvitationResponded(ctx context.Context, inv domain.Invitation, decision domain.Decision) error {
	env := inv.Envelope()
	data := &domain.InvitationEmailData{
		RecipientName: env.SenderName,
		SenderName:    env.TargetName,
		EventTitle:    env.EventTitle,
		TeamName:      env.TeamName,
		IsRequest:     env.Type == domain.InvitationTypeRequest,
		Accepted:      decision == domain.DecisionAccept,
	}
	return n.send(ctx, env.SenderID, templateInvitationResponded, data)
}

func (n *invitationNotifier) send(ctx context.Context, userID, templateName string, data *domain.InvitationEmailData) error {
	recipient, err := n.profiles.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get recipient profile: %w", err)
	}
	if recipient.Email == "" {
		return fmt.Errorf("recipient %s has no email address", userID)
	}
	subject, htmlBody, textBody, err := n.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := n.mailer.Send(recipient.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	n.logger.InfoContext(ctx, "invitation email sent", "template", templateName, "user_id", userID)
	return nil
}
