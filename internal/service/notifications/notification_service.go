package notifications

import (
	"context"
	"fmt"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/Domenick1991/traveldesk/internal/email"
	"github.com/Domenick1991/traveldesk/internal/kafka"
	"github.com/Domenick1991/traveldesk/internal/logger"
	"github.com/Domenick1991/traveldesk/internal/repository"
)

const ChannelEmail = "email"

type Sender interface {
	Send(ctx context.Context, msg email.Message) error
}

type NotificationService struct {
	repo   repository.NotificationRepository
	sender Sender
	log    *logger.Logger
}

func NewNotificationService(repo repository.NotificationRepository, sender Sender, log *logger.Logger) *NotificationService {
	if log == nil {
		log = logger.Nop()
	}
	return &NotificationService{repo: repo, sender: sender, log: log}
}

// HandleTravelerEvent records a welcome notification for a newly registered traveler
// and emails it. Only store failures are returned; they stop the consumer before the
// offset is committed, so the message is read again after a restart.
func (s *NotificationService) HandleTravelerEvent(ctx context.Context, event kafka.TravelerEvent) error {
	entry := s.log.WithFields(logger.Fields{
		"event_id":    event.EventID,
		"event_type":  event.Type,
		"traveler_id": event.TravelerID,
	})
	if event.Type != kafka.EventTravelerRegistered {
		entry.Debug("ignoring traveler event")
		return nil
	}

	n := &domain.Notification{
		TravelerID: event.TravelerID,
		Message:    fmt.Sprintf("Welcome, %s! Your traveler profile has been created.", event.FirstName),
		Channel:    ChannelEmail,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		if domain.IsKind(err, domain.ErrorKindDependency) {
			entry.Warn("traveler no longer exists, dropping welcome notification")
			return nil
		}
		return fmt.Errorf("record notification: %w", err)
	}

	if s.sender != nil {
		if err := s.sender.Send(ctx, email.Welcome(event.Email, event.FirstName)); err != nil {
			entry.WithError(err).Warn("failed to send welcome email")
			return nil
		}
	}
	entry.WithField("notification_id", n.ID).Info("welcome notification recorded")
	return nil
}
