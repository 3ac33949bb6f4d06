package models

import "time"

// Unit represents an organizational sub-division of the central office,
// distinct from a faculty union.
type Unit struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	OrderInd  int       `json:"orderInd"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
