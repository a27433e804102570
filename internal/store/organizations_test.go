package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocket-crm/internal/models"
	"pocket-crm/internal/store"
)

func TestCreateOrganization_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateOrganization(ctx, models.OrganizationInput{
		Name:    "Hillcrest Academy",
		Type:    models.OrgTypeSchool,
		Website: strPtr("https://hillcrest.example.org"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := s.GetOrganization(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hillcrest Academy", got.Name)
	assert.Equal(t, "school", got.Type)
	assert.Nil(t, got.Address)
}

func TestCreateOrganization_Validation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var verr *store.ValidationError

	_, err := s.CreateOrganization(ctx, models.OrganizationInput{Type: models.OrgTypeTrust})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name", verr.Field)

	_, err = s.CreateOrganization(ctx, models.OrganizationInput{Name: "No Type"})
	require.ErrorAs(t, err, &verr)

	_, err = s.CreateOrganization(ctx, models.OrganizationInput{Name: "Bad Type", Type: "charity"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "school, trust, or organization")
}

func TestListOrganizations_OrderedByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Zeta Trust", "Alpha School"} {
		orgType := models.OrgTypeTrust
		if name == "Alpha School" {
			orgType = models.OrgTypeSchool
		}
		_, err := s.CreateOrganization(ctx, models.OrganizationInput{Name: name, Type: orgType})
		require.NoError(t, err)
	}

	orgs, err := s.ListOrganizations(ctx)
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, "Alpha School", orgs[0].Name)
	assert.Equal(t, "Zeta Trust", orgs[1].Name)
}

func TestUpdateOrganization_FullReplace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateOrganization(ctx, models.OrganizationInput{
		Name:    "Hillcrest Academy",
		Type:    models.OrgTypeSchool,
		Address: strPtr("1 Hill Road"),
	})
	require.NoError(t, err)

	updated, err := s.UpdateOrganization(ctx, created.ID, models.OrganizationInput{
		Name: "Hillcrest Trust",
		Type: models.OrgTypeTrust,
	})
	require.NoError(t, err)
	assert.Equal(t, "trust", updated.Type)
	assert.Nil(t, updated.Address)
}

func TestDeleteOrganization_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.DeleteOrganization(context.Background(), 123)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
