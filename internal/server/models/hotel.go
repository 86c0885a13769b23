package models

import "time"

// Hotel is a listing owned by the user with UserID.
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
