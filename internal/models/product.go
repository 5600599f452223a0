package models

import "time"

// Product represents a product in the catalog.
//
// The id is generated by the database and never changes. Availability
// always holds a value: it defaults to true when a product is created
// and is flipped through the PATCH operation, never set there directly
// by the client.
type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Price        float64   `json:"price" gorm:"not null"`
	Availability bool      `json:"availability" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
