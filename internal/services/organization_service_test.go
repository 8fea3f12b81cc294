package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvishnuram/orgdir/internal/database/testutil"
	"github.com/rvishnuram/orgdir/internal/models"
)

func TestOrganizationServiceCreateAppliesDefaultsAndSanitizesSlug(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewOrganizationService(db)
	require.NoError(t, err)

	ctx := context.Background()

	org, err := svc.Create(ctx, CreateOrganizationInput{
		Name: "Test U",
		Slug: "Test U!",
	})
	require.NoError(t, err)
	require.NotZero(t, org.ID)
	require.Equal(t, "test_u", org.Slug)
	require.Equal(t, DefaultMaxCoordinators, org.MaxCoordinators)
	require.Equal(t, DefaultTimezone, org.Timezone)
	require.Equal(t, DefaultLanguage, org.Language)
	require.Equal(t, DefaultStatus, org.Status)
	require.Zero(t, org.PendingRequests)
	require.False(t, org.CreatedAt.IsZero())

	// A subsequent get-by-id returns an identical row.
	retrieved, err := svc.GetByID(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, org.ID, retrieved.ID)
	require.Equal(t, org.Slug, retrieved.Slug)
	require.Equal(t, org.Name, retrieved.Name)
	require.Equal(t, org.Status, retrieved.Status)
}

func TestOrganizationServiceCreateRejectsMissingFields(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewOrganizationService(db)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateOrganizationInput{Slug: "acme"})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), CreateOrganizationInput{Name: "Acme"})
	require.Error(t, err)
}

func TestOrganizationServiceCreateConflictOnDuplicateSlug(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewOrganizationService(db)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = svc.Create(ctx, CreateOrganizationInput{Name: "First", Slug: "Acme Corp"})
	require.NoError(t, err)

	// Sanitizes to the same "acme_corp" slug.
	_, err = svc.Create(ctx, CreateOrganizationInput{Name: "Second", Slug: "ACME corp!"})
	require.ErrorIs(t, err, ErrOrganizationConflict)

	var count int64
	require.NoError(t, db.Model(&models.Organization{}).Where("slug = ?", "acme_corp").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestOrganizationServiceListOrdersByIDDescending(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewOrganizationService(db)
	require.NoError(t, err)

	ctx := context.Background()
	for _, slug := range []string{"one", "two", "three"} {
		_, err := svc.Create(ctx, CreateOrganizationInput{Name: slug, Slug: slug})
		require.NoError(t, err)
	}

	orgs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orgs, 3)
	require.Equal(t, "three", orgs[0].Slug)
	require.Equal(t, "one", orgs[2].Slug)
}

func TestOrganizationServiceGetByIDNotFound(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewOrganizationService(db)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 9999)
	require.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestOrganizationServiceUpdateStatus(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewOrganizationService(db)
	require.NoError(t, err)

	ctx := context.Background()

	org, err := svc.Create(ctx, CreateOrganizationInput{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)
	require.Equal(t, "Active", org.Status)

	updated, err := svc.UpdateStatus(ctx, org.ID, "Suspended")
	require.NoError(t, err)
	require.Equal(t, "Suspended", updated.Status)

	retrieved, err := svc.GetByID(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, "Suspended", retrieved.Status)

	// Any string is accepted; there are no transition rules.
	updated, err = svc.UpdateStatus(ctx, org.ID, "whatever")
	require.NoError(t, err)
	require.Equal(t, "whatever", updated.Status)
}

func TestOrganizationServiceUpdateStatusNotFoundLeavesStoreUnchanged(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewOrganizationService(db)
	require.NoError(t, err)

	ctx := context.Background()

	org, err := svc.Create(ctx, CreateOrganizationInput{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, 9999, "Suspended")
	require.ErrorIs(t, err, ErrOrganizationNotFound)

	retrieved, err := svc.GetByID(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, "Active", retrieved.Status)
}

func TestOrganizationServiceSearch(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewOrganizationService(db)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = svc.Create(ctx, CreateOrganizationInput{Name: "Massachusetts Institute of Technology", Slug: "mit"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateOrganizationInput{Name: "GITAM Institute of Technology", Slug: "gitam"})
	require.NoError(t, err)

	// Substring of name.
	results, err := svc.Search(ctx, "Massachusetts")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "mit", results[0].Slug)

	// Substring of slug.
	results, err = svc.Search(ctx, "gita")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "gitam", results[0].Slug)

	// No match is an empty slice, not an error.
	results, err = svc.Search(ctx, "zzz-no-such-org")
	require.NoError(t, err)
	require.Empty(t, results)

	// Empty query behaves like List.
	results, err = svc.Search(ctx, "   ")
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "gitam", results[0].Slug)
}

func TestNewOrganizationServiceRequiresDB(t *testing.T) {
	_, err := NewOrganizationService(nil)
	require.Error(t, err)
}
