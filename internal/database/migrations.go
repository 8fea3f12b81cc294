package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rvishnuram/orgdir/internal/models"
)

// AutoMigrate creates or updates the database schema for all models.
// Existing tables are never dropped or destructively altered.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Organization{},
		&models.User{},
	)
}

// SeedData inserts the fixed sample institutions and members when the
// corresponding tables are empty. Re-running on a populated store is a
// no-op beyond the count checks.
func SeedData(db *gorm.DB) error {
	if err := seedOrganizations(db); err != nil {
		return fmt.Errorf("seed organizations: %w", err)
	}
	if err := seedUsers(db); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	return nil
}

func seedOrganizations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Organization{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	orgs := []models.Organization{
		{
			Name:            "Massachusetts Institute of Technology",
			Slug:            "mit",
			SupportEmail:    "support@mit.edu",
			Phone:           "+1-617-253-1000",
			AltPhone:        "+1-617-253-9999",
			Website:         "https://mit.edu",
			MaxCoordinators: 5,
			Timezone:        "America/New_York",
			Language:        "English",
			Status:          "Active",
			PendingRequests: 45,
		},
		{
			Name:            "GITAM Institute of Technology",
			Slug:            "gitam",
			SupportEmail:    "gitam@gitam.in",
			Phone:           "+91-9676456543",
			AltPhone:        "+91-93473294913",
			Website:         "https://gitam.edu",
			MaxCoordinators: 5,
			Timezone:        "Asia/Kolkata",
			Language:        "English",
			Status:          "Active",
			PendingRequests: 45,
		},
	}

	return db.Create(&orgs).Error
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	gitamID := seedOrgID(db, "gitam", 1)
	mitID := seedOrgID(db, "mit", 2)

	users := []models.User{
		{OrgID: &gitamID, Name: "Dave Richards", Email: "dave.richards@example.com", Role: "Admin", Phone: "+91-9000000001", Timezone: "Asia/Kolkata"},
		{OrgID: &gitamID, Name: "Abhishek Hari", Email: "abhishek.hari@example.com", Role: "Co-ordinator", Phone: "+91-9000000002", Timezone: "Asia/Kolkata"},
		{OrgID: &mitID, Name: "Nishta Gupta", Email: "nishta.gupta@example.com", Role: "Admin", Phone: "+1-617-0000003", Timezone: "America/New_York"},
	}

	return db.Create(&users).Error
}

// seedOrgID resolves a seed organization id by slug, falling back to the
// historical numeric default when the lookup fails.
func seedOrgID(db *gorm.DB, slug string, fallback uint) uint {
	var org models.Organization
	if err := db.Select("id").Where("slug = ?", slug).First(&org).Error; err != nil {
		return fallback
	}
	return org.ID
}
