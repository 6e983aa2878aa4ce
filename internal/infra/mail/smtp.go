package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"zen-booking/internal/pkg/config"
	"zen-booking/internal/pkg/errs"
)

// SMTPBackend sends through one SMTP server. The context deadline is applied
// to the underlying connection so a stuck server cannot hold a request.
type SMTPBackend struct {
	addr     string
	user     string
	password string
	fromName string
}

func NewSMTPBackends(cfg config.MailConfig) []Backend {
	backends := make([]Backend, 0, len(cfg.Addrs))
	for _, addr := range cfg.Addrs {
		backends = append(backends, &SMTPBackend{
			addr:     addr,
			user:     cfg.User,
			password: cfg.Password,
			fromName: cfg.FromName,
		})
	}
	return backends
}

func (s *SMTPBackend) Name() string {
	return "smtp:" + s.addr
}

func (s *SMTPBackend) Send(ctx context.Context, from string, msg Message) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return errs.Wrap(err, "smtp dial failed")
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	host := s.addr
	if h, _, splitErr := net.SplitHostPort(s.addr); splitErr == nil {
		host = h
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return errs.Wrap(err, "smtp handshake failed")
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return errs.Wrap(err, "smtp starttls failed")
		}
	}
	if s.user != "" {
		auth := smtp.PlainAuth("", s.user, s.password, host)
		if err := c.Auth(auth); err != nil {
			return errs.Wrap(err, "smtp auth failed")
		}
	}

	if err := c.Mail(from); err != nil {
		return errs.Wrap(err, "smtp mail failed")
	}
	if err := c.Rcpt(msg.To); err != nil {
		return errs.Wrap(err, "smtp rcpt failed")
	}

	w, err := c.Data()
	if err != nil {
		return errs.Wrap(err, "smtp data failed")
	}
	if _, err := w.Write([]byte(s.format(from, msg))); err != nil {
		return errs.Wrap(err, "smtp write failed")
	}
	if err := w.Close(); err != nil {
		return errs.Wrap(err, "smtp close failed")
	}

	return c.Quit()
}

func (s *SMTPBackend) format(from string, msg Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.fromName, from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return b.String()
}
