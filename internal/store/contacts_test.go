package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocket-crm/internal/models"
	"pocket-crm/internal/store"
)

func TestCreateContact_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateContact(ctx, models.ContactInput{
		Name:     "Jane Doe",
		Email:    strPtr("jane@example.com"),
		Position: strPtr("Headteacher"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.NotEmpty(t, created.UpdatedAt)

	got, err := s.GetContact(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	require.NotNil(t, got.Email)
	assert.Equal(t, "jane@example.com", *got.Email)
	assert.Nil(t, got.Phone)
	require.NotNil(t, got.Position)
	assert.Equal(t, "Headteacher", *got.Position)
}

func TestCreateContact_RequiresName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateContact(context.Background(), models.ContactInput{})
	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name", verr.Field)
}

func TestGetContact_Errors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetContact(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetContact(ctx, -1)
	assert.ErrorIs(t, err, store.ErrInvalidID)
}

func TestListContacts_OrderedByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		_, err := s.CreateContact(ctx, models.ContactInput{Name: name})
		require.NoError(t, err)
	}

	contacts, err := s.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "Alice", contacts[0].Name)
	assert.Equal(t, "Bob", contacts[1].Name)
	assert.Equal(t, "Charlie", contacts[2].Name)
}

func TestUpdateContact_FullReplace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateContact(ctx, models.ContactInput{
		Name:  "Jane Doe",
		Email: strPtr("jane@example.com"),
		Phone: strPtr("0123456789"),
	})
	require.NoError(t, err)

	// Omitted optional fields are nulled, not left at their prior value.
	updated, err := s.UpdateContact(ctx, created.ID, models.ContactInput{Name: "Jane Smith"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Nil(t, updated.Email)
	assert.Nil(t, updated.Phone)

	got, err := s.GetContact(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Email)
	assert.Nil(t, got.Phone)
}

func TestUpdateContact_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateContact(context.Background(), 41, models.ContactInput{Name: "Ghost"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteContact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateContact(ctx, models.ContactInput{Name: "Jane Doe"})
	require.NoError(t, err)

	ack, err := s.DeleteContact(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, ack.ID)

	_, err = s.GetContact(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.DeleteContact(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
