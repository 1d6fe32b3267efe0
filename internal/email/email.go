package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/traveldesk/internal/logger"
)

// Message is an outgoing email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers mail by writing it to the log. It stands in for an SMTP relay.
type Sender struct {
	log *logger.Logger
}

func NewSender(log *logger.Logger) *Sender {
	if log == nil {
		log = logger.Nop()
	}
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" {
		return fmt.Errorf("email recipient is required")
	}
	s.log.WithFields(logger.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("email sent")
	return nil
}

// Welcome builds the greeting sent to a newly registered traveler.
func Welcome(to, firstName string) Message {
	return Message{
		To:      to,
		Subject: "Welcome to TravelDesk",
		Body:    fmt.Sprintf("Hi %s, your traveler profile is ready. Happy travels!", firstName),
	}
}
