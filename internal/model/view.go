package model

import "time"

// View is a named filter that selects a grouped slice of spending, e.g. recurring business costs.
type View struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Filter      string    `json:"filter"`
	Description string    `json:"description,omitempty"`
	ID          int       `json:"id"`
}
