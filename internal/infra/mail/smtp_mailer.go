// Package mail implements outbound email delivery over SMTP.
package mail

import (
	"context"
	"fmt"
	"time"

	"easy/config"
	"easy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
)

type smtpMailer struct {
	cfg       *config.SMTPConfig
	acceptURL string
}

// NewSMTPMailer creates a mailer backed by the configured SMTP server.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host must be provided")
	}
	if cfg.Invite == nil || cfg.Invite.AcceptURL == "" {
		return nil, errors.New("invite accept url must be provided")
	}

	return &smtpMailer{
		cfg:       cfg.SMTP,
		acceptURL: cfg.Invite.AcceptURL,
	}, nil
}

// SendInviteEmail sends the onboarding invitation for a new resident or staff member.
func (m *smtpMailer) SendInviteEmail(ctx context.Context, invite *service.InviteEmail) error {
	inviteURL := fmt.Sprintf("%s?token=%s", m.acceptURL, invite.Token)

	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.cfg.FromName, m.cfg.FromEmail); err != nil {
		return errors.Wrap(err, "set email from address")
	}
	if err := msg.To(invite.To); err != nil {
		return errors.Wrap(err, "set email recipient")
	}

	msg.Subject("Convite para o EASY - Gestão de Entregas")

	unitLine := ""
	if invite.UnitLabel != "" {
		unitLine = fmt.Sprintf("<p>Sua unidade: <strong>%s</strong></p>", invite.UnitLabel)
	}

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1>Você foi convidado para o EASY!</h1>
			<p>Olá,</p>
			<p>Você recebeu um convite para acessar o sistema de gestão de entregas do seu condomínio.</p>
			%s
			<p>Clique no link abaixo para criar sua conta:</p>
			<p><a href="%s">Aceitar convite</a></p>
			<p>Se o link não funcionar, copie e cole este endereço no seu navegador:</p>
			<p>%s</p>
			<p>Este convite expira em 7 dias.</p>
			<p>Obrigado,<br>Equipe EASY</p>
		</body>
	</html>`, unitLine, inviteURL, inviteURL)

	plainBody := fmt.Sprintf(
		"Olá,\n\nVocê recebeu um convite para acessar o sistema de gestão de entregas do seu condomínio.\n\n"+
			"Use o seguinte link para criar sua conta: %s\n\n"+
			"Este convite expira em 7 dias.\n\n"+
			"Obrigado,\nEquipe EASY", inviteURL)

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "send invite email")
	}

	return nil
}

// createSMTPClient creates and configures a new SMTP client
func (m *smtpMailer) createSMTPClient() (*mail.Client, error) {
	clientOptions := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Only add authentication if username and password are provided.
	// This allows for unauthenticated SMTP servers (e.g., local relays, port 25).
	if m.cfg.Username != "" && m.cfg.Password != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, clientOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "create SMTP client")
	}

	return client, nil
}
