package domain

type ReservationType string

const (
	ReservationTypeFlight    ReservationType = "Flight"
	ReservationTypeHotel     ReservationType = "Hotel"
	ReservationTypeRentalCar ReservationType = "RentalCar"
	ReservationTypeActivity  ReservationType = "Activity"
	ReservationTypePackage   ReservationType = "Package"
)

type Reservation struct {
	ReservationID   int64           `json:"reservationID"`
	ReservationName string          `json:"reservationName"`
	ReservationType ReservationType `json:"reservationType"`
	CustomerID      string          `json:"customerID"`
	HotelID         *int64          `json:"hotelID,omitempty"`
	FlightID        *int64          `json:"flightID,omitempty"`
	CarID           *int64          `json:"carID,omitempty"`
}

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}
