// Package mail sends offer notifications to the operator mailbox through
// an authenticated SMTP relay.
package mail

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/nichebay/domain-offer/pkg/config"
)

// defaultPort is used when the relay host carries no explicit port.
// 465 is implicit TLS, which gomail enables automatically for this port.
const defaultPort = 465

// Sender transmits one plain-text notification per call. The call blocks
// until the relay accepts or rejects the message; there is no retry and
// no queue, each invocation is exactly one attempt.
type Sender interface {
	Send(subject, body string) error
}

type sender struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewSender builds a Sender from the mail configuration. The configured
// address doubles as the relay login user.
func NewSender(cfg config.Mail) Sender {
	host, port := splitServer(cfg.Server)
	return &sender{
		dialer: gomail.NewDialer(host, port, cfg.Address, cfg.Password),
		from:   cfg.Address,
		to:     cfg.To,
	}
}

func (s *sender) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", s.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending offer notification via %s: %w", s.dialer.Host, err)
	}
	return nil
}

// splitServer splits an optional ":port" suffix off the relay host.
func splitServer(server string) (string, int) {
	host, rawPort, found := strings.Cut(server, ":")
	if !found {
		return server, defaultPort
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil || port <= 0 {
		return host, defaultPort
	}
	return host, port
}
