package domain

import (
	"strings"
	"time"
)

type Traveler struct {
	ID          string    `json:"id" validate:"required,max=32"`
	FirstName   string    `json:"firstName" validate:"required,max=100"`
	LastName    string    `json:"lastName" validate:"required,max=100"`
	Email       string    `json:"eMail" validate:"required,email,max=255"`
	PhoneNumber string    `json:"phoneNumber" validate:"max=32"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Normalize trims surrounding whitespace so blank fields fail the required check.
func (t *Traveler) Normalize() {
	t.ID = strings.TrimSpace(t.ID)
	t.FirstName = strings.TrimSpace(t.FirstName)
	t.LastName = strings.TrimSpace(t.LastName)
	t.Email = strings.TrimSpace(t.Email)
	t.PhoneNumber = strings.TrimSpace(t.PhoneNumber)
}

type TravelAgent struct {
	ID          int64  `json:"id"`
	AgentName   string `json:"agentName"`
	Agency      string `json:"agency"`
	Email       string `json:"eMail"`
	PhoneNumber string `json:"phoneNumber"`
}

type Notification struct {
	ID         int64     `json:"notificationID"`
	TravelerID string    `json:"travelerID"`
	Message    string    `json:"message"`
	Channel    string    `json:"channel"`
	CreatedAt  time.Time `json:"createdAt"`
}
