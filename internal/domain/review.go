package domain

import "strings"

// ReviewTargetKind names the entity type a review is about.
type ReviewTargetKind string

const (
	ReviewTargetHotel     ReviewTargetKind = "Hotel"
	ReviewTargetFlight    ReviewTargetKind = "Flight"
	ReviewTargetRentalCar ReviewTargetKind = "RentalCar"
	ReviewTargetActivity  ReviewTargetKind = "Activity"
)

var reviewTargetKinds = []ReviewTargetKind{
	ReviewTargetHotel,
	ReviewTargetFlight,
	ReviewTargetRentalCar,
	ReviewTargetActivity,
}

// ParseReviewTargetKind accepts a kind name case-insensitively.
func ParseReviewTargetKind(s string) (ReviewTargetKind, error) {
	for _, k := range reviewTargetKinds {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", Validationf("unknown review target type %q", s)
}

// ReviewTarget is the tagged reference from a review to the reviewed row.
type ReviewTarget struct {
	Kind ReviewTargetKind `json:"reviewedEntityType"`
	ID   int64            `json:"reviewedEntityID"`
}

type Review struct {
	ReviewID    int64  `json:"reviewID"`
	Name        string `json:"name" validate:"required,max=200"`
	Rating      int    `json:"rating" validate:"gte=1,lte=5"`
	Description string `json:"description" validate:"max=4000"`
	Author      string `json:"author" validate:"required,max=100"`
	ReviewTarget
}

// Check validates the review fields and its target.
func (r *Review) Check() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Author = strings.TrimSpace(r.Author)
	if err := Validate(r); err != nil {
		return err
	}
	kind, err := ParseReviewTargetKind(string(r.Kind))
	if err != nil {
		return err
	}
	r.Kind = kind
	if r.ID <= 0 {
		return Validationf("reviewedEntityID must be positive")
	}
	return nil
}
