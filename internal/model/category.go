package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies products. Color is the badge color shown by the
// admin panel (e.g. "blue", "green").
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
