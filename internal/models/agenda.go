package models

import "time"

// Agenda represents a discussion item created by a user.
type Agenda struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	AgreeCount    int       `json:"agreeCount"`
	DisagreeCount int       `json:"disagreeCount"`
}
