package models

import "time"

type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Estado      string    `json:"estado"`
	Phone       string    `json:"phone,omitempty"`
	Discount    string    `json:"discount"` // e.g. "20% na conta"
	ImageURL    string    `json:"imageUrl,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
