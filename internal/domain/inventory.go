package domain

import "time"

type Venue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

type Resource struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TotalQuantity int       `json:"total_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateVenueInput struct {
	Name     string
	Capacity int
}

type CreateResourceInput struct {
	Name          string
	TotalQuantity int
}
