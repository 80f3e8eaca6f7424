package email

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/spangleswebx/backoffice/internal/config"
	"go.uber.org/zap"
)

type SMTPProvider struct {
	host string
	port int
	user string
	pass string
	from string
	log  *zap.Logger
}

func NewSMTP(cfg config.Config, log *zap.Logger) *SMTPProvider {
	return &SMTPProvider{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUsername,
		pass: cfg.SMTPPassword,
		from: cfg.SMTPFrom,
		log:  log.Named("email.smtp"),
	}
}

func (p *SMTPProvider) Send(ctx context.Context, msg Message) error {
	addr := fmt.Sprintf("%s:%d", p.host, p.port)
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		p.from, msg.To, msg.Subject, msg.Body)

	var auth smtp.Auth
	if p.user != "" {
		auth = smtp.PlainAuth("", p.user, p.pass, p.host)
	}

	if err := smtp.SendMail(addr, auth, p.from, []string{msg.To}, []byte(body)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	p.log.Info("mail sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
