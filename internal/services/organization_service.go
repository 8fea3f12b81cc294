package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/rvishnuram/orgdir/internal/models"
)

var (
	// ErrOrganizationNotFound indicates the requested organization does not exist.
	ErrOrganizationNotFound = errors.New("organization service: organization not found")

	// ErrOrganizationConflict indicates the insert violated an integrity
	// constraint. Duplicate slugs and any other constraint failure are
	// deliberately not distinguished.
	ErrOrganizationConflict = errors.New("organization service: conflicting organization data")
)

// Field defaults applied when the caller omits or zeroes the value.
const (
	DefaultMaxCoordinators = 5
	DefaultTimezone        = "Asia/Kolkata"
	DefaultLanguage        = "English"
	DefaultStatus          = "Active"
)

// CreateOrganizationInput captures the attributes accepted when registering
// an organization. Zero-valued optional fields fall back to the defaults.
type CreateOrganizationInput struct {
	Name            string
	Slug            string
	SupportEmail    string
	Phone           string
	AltPhone        string
	Website         string
	MaxCoordinators int
	Timezone        string
	Language        string
	Status          string
	PendingRequests int
}

// OrganizationService manages lifecycle operations for organizations.
type OrganizationService struct {
	db *gorm.DB
}

// NewOrganizationService constructs an OrganizationService instance.
func NewOrganizationService(db *gorm.DB) (*OrganizationService, error) {
	if db == nil {
		return nil, errors.New("organization service: db is required")
	}
	return &OrganizationService{db: db}, nil
}

// List returns all organizations, newest id first.
func (s *OrganizationService) List(ctx context.Context) ([]models.Organization, error) {
	ctx = ensureContext(ctx)

	orgs := make([]models.Organization, 0)
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("organization service: list organizations: %w", err)
	}
	return orgs, nil
}

// GetByID loads a single organization.
func (s *OrganizationService) GetByID(ctx context.Context, id uint) (*models.Organization, error) {
	ctx = ensureContext(ctx)

	var org models.Organization
	err := s.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("organization service: get organization: %w", err)
	}
	return &org, nil
}

// Create registers a new organization. The slug is sanitized before the
// insert and the created row, identified by the key the insert itself
// returns, is handed back with all defaults applied.
func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput) (*models.Organization, error) {
	ctx = ensureContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.New("organization service: name is required")
	}
	if strings.TrimSpace(input.Slug) == "" {
		return nil, errors.New("organization service: slug is required")
	}

	org := &models.Organization{
		Name:            name,
		Slug:            Slugify(input.Slug),
		SupportEmail:    strings.TrimSpace(input.SupportEmail),
		Phone:           strings.TrimSpace(input.Phone),
		AltPhone:        strings.TrimSpace(input.AltPhone),
		Website:         strings.TrimSpace(input.Website),
		MaxCoordinators: input.MaxCoordinators,
		Timezone:        strings.TrimSpace(input.Timezone),
		Language:        strings.TrimSpace(input.Language),
		Status:          strings.TrimSpace(input.Status),
		PendingRequests: input.PendingRequests,
	}
	applyOrganizationDefaults(org)

	if err := s.db.WithContext(ctx).Create(org).Error; err != nil {
		if isIntegrityViolationError(err) {
			return nil, fmt.Errorf("%w: %v", ErrOrganizationConflict, err)
		}
		return nil, fmt.Errorf("organization service: create organization: %w", err)
	}

	return org, nil
}

// UpdateStatus sets the status field and returns the refreshed row. Any
// string is accepted; there are no transition rules.
func (s *OrganizationService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Organization, error) {
	ctx = ensureContext(ctx)

	var org models.Organization
	err := s.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("organization service: load organization: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&org).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("organization service: update status: %w", err)
	}

	if err := s.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("organization service: reload organization: %w", err)
	}

	return &org, nil
}

// Search matches the query as a substring of name or slug, newest id
// first. An empty query behaves exactly like List.
func (s *OrganizationService) Search(ctx context.Context, query string) ([]models.Organization, error) {
	ctx = ensureContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}

	pattern := "%" + query + "%"
	orgs := make([]models.Organization, 0)
	err := s.db.WithContext(ctx).
		Where("name LIKE ? OR slug LIKE ?", pattern, pattern).
		Order("id DESC").
		Find(&orgs).Error
	if err != nil {
		return nil, fmt.Errorf("organization service: search organizations: %w", err)
	}
	return orgs, nil
}

func applyOrganizationDefaults(org *models.Organization) {
	if org.MaxCoordinators == 0 {
		org.MaxCoordinators = DefaultMaxCoordinators
	}
	if org.Timezone == "" {
		org.Timezone = DefaultTimezone
	}
	if org.Language == "" {
		org.Language = DefaultLanguage
	}
	if org.Status == "" {
		org.Status = DefaultStatus
	}
}
