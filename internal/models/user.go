package models

import "time"

// User is a directory member. OrgID is nullable in the schema; the create
// path requires it, so a NULL org only ever appears through direct writes.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrgID     *uint     `gorm:"index" json:"org_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Role      string    `gorm:"not null" json:"role"`
	Phone     string    `json:"phone"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

// UserWithOrg is the read model for user listings: user columns flattened
// together with the owning organization's name and slug from a LEFT JOIN.
type UserWithOrg struct {
	ID               uint      `json:"id"`
	OrgID            *uint     `json:"org_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Phone            string    `json:"phone"`
	Timezone         string    `json:"timezone"`
	CreatedAt        time.Time `json:"created_at"`
	OrganizationName *string   `json:"organization_name"`
	OrganizationSlug *string   `json:"organization_slug"`
}
