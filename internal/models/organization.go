package models

import "time"

// Organization is the tenant entity of the directory. Slug is the unique,
// URL-safe identifier derived from the submitted token at create time.
type Organization struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Slug            string    `gorm:"uniqueIndex;not null" json:"slug"`
	SupportEmail    string    `json:"support_email"`
	Phone           string    `json:"phone"`
	AltPhone        string    `json:"alt_phone"`
	Website         string    `json:"website"`
	MaxCoordinators int       `gorm:"default:5" json:"max_coordinators"`
	Timezone        string    `gorm:"default:Asia/Kolkata" json:"timezone"`
	Language        string    `gorm:"default:English" json:"language"`
	Status          string    `gorm:"default:Active" json:"status"`
	PendingRequests int       `gorm:"default:0" json:"pending_requests"`
	CreatedAt       time.Time `json:"created_at"`

	// Deleting an organization removes its users with it.
	Users []User `gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE" json:"users,omitempty"`
}
