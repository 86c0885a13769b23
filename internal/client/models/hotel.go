package models

import "time"

// Hotel is a listing as returned by the API.
type Hotel struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	AdultCount    int       `json:"adultCount"`
	ChildCount    int       `json:"childCount"`
	Facilities    []string  `json:"facilities"`
	PricePerNight float64   `json:"pricePerNight"`
	StarRating    int       `json:"starRating"`
	ImageURLs     []string  `json:"imageUrls"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// HotelInput carries the text fields of a new listing. Image files are
// passed separately.
type HotelInput struct {
	Name          string
	City          string
	Country       string
	Description   string
	Type          string
	AdultCount    int
	ChildCount    int
	Facilities    []string
	PricePerNight float64
	StarRating    int
}

// ImageFile is an image read from disk before upload.
type ImageFile struct {
	Name string
	Data []byte
}

// Registration is the sign-up payload.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
