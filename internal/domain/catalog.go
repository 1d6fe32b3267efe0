package domain

import "time"

type Hotel struct {
	HotelID       int64      `json:"hotelID"`
	HotelName     string     `json:"hotelName"`
	City          string     `json:"city"`
	AverageRating float64    `json:"averageRating"`
	CheckInTime   *time.Time `json:"checkInTime,omitempty"`
}

// HotelFilter selects hotels by exact city and a minimum average rating.
// An empty City matches every hotel.
type HotelFilter struct {
	City      string
	MinRating float64
}

type Airline struct {
	ID          int64  `json:"id"`
	AirlineName string `json:"airlineName"`
}

// Flight is a flight row joined with its airline.
type Flight struct {
	ID            int64  `json:"id"`
	AirlineID     int64  `json:"airline"`
	AirlineName   string `json:"airlineName"`
	DepartureCity string `json:"departureCity"`
}

type Activity struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cities      []string `json:"cities"`
}

// RentalCar is a rental offer joined with the car it rents.
type RentalCar struct {
	CarID             int64   `json:"carID"`
	CarModel          string  `json:"carModel"`
	CarType           string  `json:"carType"`
	RentalPricePerDay float64 `json:"rentalPricePerDay"`
}
