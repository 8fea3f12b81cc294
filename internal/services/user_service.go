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
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user service: user not found")

	// ErrOrganizationMissing indicates the org_id supplied on create does
	// not reference an existing organization. This is a client error, not
	// a lookup failure.
	ErrOrganizationMissing = errors.New("user service: organization does not exist")
)

// CreateUserInput captures the attributes accepted when registering a user.
type CreateUserInput struct {
	OrgID    uint
	Name     string
	Email    string
	Role     string
	Phone    string
	Timezone string
}

// UserService manages directory members.
type UserService struct {
	db *gorm.DB
}

// NewUserService constructs a UserService instance.
func NewUserService(db *gorm.DB) (*UserService, error) {
	if db == nil {
		return nil, errors.New("user service: db is required")
	}
	return &UserService{db: db}, nil
}

// List returns all users joined with their organization's name and slug,
// newest id first. Users without an organization carry NULL org columns.
func (s *UserService) List(ctx context.Context) ([]models.UserWithOrg, error) {
	ctx = ensureContext(ctx)

	rows := make([]models.UserWithOrg, 0)
	err := s.joinedUsers(ctx).Order("users.id DESC").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("user service: list users: %w", err)
	}
	return rows, nil
}

// Create registers a user after verifying the referenced organization
// exists, then returns the joined row identified by the insert's key.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.UserWithOrg, error) {
	ctx = ensureContext(ctx)

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	role := strings.TrimSpace(input.Role)
	if name == "" || email == "" || role == "" || input.OrgID == 0 {
		return nil, errors.New("user service: name, email, role and org_id are required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Organization{}).Where("id = ?", input.OrgID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("user service: check organization: %w", err)
	}
	if count == 0 {
		return nil, ErrOrganizationMissing
	}

	orgID := input.OrgID
	user := &models.User{
		OrgID:    &orgID,
		Name:     name,
		Email:    email,
		Role:     role,
		Phone:    strings.TrimSpace(input.Phone),
		Timezone: strings.TrimSpace(input.Timezone),
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("user service: create user: %w", err)
	}

	return s.getJoinedByID(ctx, user.ID)
}

// Search matches the query as a substring of the user's name, email, or
// joined organization name, newest id first. An empty query behaves like List.
func (s *UserService) Search(ctx context.Context, query string) ([]models.UserWithOrg, error) {
	ctx = ensureContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}

	pattern := "%" + query + "%"
	rows := make([]models.UserWithOrg, 0)
	err := s.joinedUsers(ctx).
		Where("users.name LIKE ? OR users.email LIKE ? OR organizations.name LIKE ?", pattern, pattern, pattern).
		Order("users.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("user service: search users: %w", err)
	}
	return rows, nil
}

func (s *UserService) getJoinedByID(ctx context.Context, id uint) (*models.UserWithOrg, error) {
	var row models.UserWithOrg
	err := s.joinedUsers(ctx).Where("users.id = ?", id).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("user service: load user: %w", err)
	}
	if row.ID == 0 {
		return nil, ErrUserNotFound
	}
	return &row, nil
}

func (s *UserService) joinedUsers(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("users").
		Select("users.*, organizations.name AS organization_name, organizations.slug AS organization_slug").
		Joins("LEFT JOIN organizations ON organizations.id = users.org_id")
}
