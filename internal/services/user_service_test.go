package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rvishnuram/orgdir/internal/database/testutil"
	"github.com/rvishnuram/orgdir/internal/models"
)

func seedTestOrg(t *testing.T, db *gorm.DB, name, slug string) *models.Organization {
	t.Helper()

	org := &models.Organization{Name: name, Slug: slug, Timezone: "UTC", Language: "English", Status: "Active", MaxCoordinators: 5}
	require.NoError(t, db.Create(org).Error)
	return org
}

func TestUserServiceCreateReturnsJoinedRow(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewUserService(db)
	require.NoError(t, err)

	org := seedTestOrg(t, db, "Acme Corp", "acme")

	user, err := svc.Create(context.Background(), CreateUserInput{
		OrgID: org.ID,
		Name:  "Dave Richards",
		Email: "dave@example.com",
		Role:  "Admin",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotNil(t, user.OrgID)
	require.Equal(t, org.ID, *user.OrgID)
	require.NotNil(t, user.OrganizationName)
	require.Equal(t, "Acme Corp", *user.OrganizationName)
	require.NotNil(t, user.OrganizationSlug)
	require.Equal(t, "acme", *user.OrganizationSlug)
}

func TestUserServiceCreateRejectsUnknownOrganization(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewUserService(db)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateUserInput{
		OrgID: 9999,
		Name:  "Ghost",
		Email: "ghost@example.com",
		Role:  "Admin",
	})
	require.ErrorIs(t, err, ErrOrganizationMissing)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUserServiceCreateAllowsDuplicateEmails(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewUserService(db)
	require.NoError(t, err)

	org := seedTestOrg(t, db, "Acme Corp", "acme")

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, CreateUserInput{OrgID: org.ID, Name: "Dup", Email: "dup@example.com", Role: "Admin"})
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestUserServiceListJoinsOrganizationAndOrdersByIDDescending(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewUserService(db)
	require.NoError(t, err)

	org := seedTestOrg(t, db, "Acme Corp", "acme")

	ctx := context.Background()
	_, err = svc.Create(ctx, CreateUserInput{OrgID: org.ID, Name: "First", Email: "first@example.com", Role: "Admin"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateUserInput{OrgID: org.ID, Name: "Second", Email: "second@example.com", Role: "Member"})
	require.NoError(t, err)

	// A user without an organization carries NULL org columns in the join.
	require.NoError(t, db.Create(&models.User{Name: "Orphan", Email: "orphan@example.com", Role: "Member"}).Error)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "Orphan", users[0].Name)
	require.Nil(t, users[0].OrganizationName)
	require.Equal(t, "Second", users[1].Name)
	require.NotNil(t, users[1].OrganizationName)
	require.Equal(t, "Acme Corp", *users[1].OrganizationName)
	require.Equal(t, "First", users[2].Name)
}

func TestUserServiceSearch(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewUserService(db)
	require.NoError(t, err)

	acme := seedTestOrg(t, db, "Acme Corp", "acme")
	globex := seedTestOrg(t, db, "Globex", "globex")

	ctx := context.Background()
	_, err = svc.Create(ctx, CreateUserInput{OrgID: acme.ID, Name: "Dave Richards", Email: "dave@acme.test", Role: "Admin"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateUserInput{OrgID: globex.ID, Name: "Nishta Gupta", Email: "nishta@globex.test", Role: "Admin"})
	require.NoError(t, err)

	// By user name.
	users, err := svc.Search(ctx, "Dave")
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Dave Richards", users[0].Name)

	// By email.
	users, err = svc.Search(ctx, "nishta@")
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Nishta Gupta", users[0].Name)

	// By joined organization name.
	users, err = svc.Search(ctx, "Globex")
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Nishta Gupta", users[0].Name)

	// No match yields an empty slice.
	users, err = svc.Search(ctx, "no-such-user")
	require.NoError(t, err)
	require.Empty(t, users)

	// Empty query behaves like List.
	users, err = svc.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestNewUserServiceRequiresDB(t *testing.T) {
	_, err := NewUserService(nil)
	require.Error(t, err)
}
