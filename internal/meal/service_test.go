package meal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "dietlog.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&Meal{}))
	return &Service{DB: gdb}
}

func testInput(name string, onDiet bool) Input {
	return Input{
		Name:        name,
		Description: "d",
		DateTime:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		IsOnDiet:    onDiet,
	}
}

func TestService_CreateGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := uuid.NewString()

	created, err := svc.Create(ctx, owner, testInput("Lunch", true))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, owner, created.UserID)

	got, err := svc.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", got.Name)
	assert.True(t, got.IsOnDiet)
	assert.True(t, got.DateTime.Equal(created.DateTime))
}

func TestService_GetUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_OwnershipChecks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := uuid.NewString()
	other := uuid.NewString()

	created, err := svc.Create(ctx, owner, testInput("Lunch", true))
	require.NoError(t, err)

	_, err = svc.Get(ctx, other, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, other, created.ID, testInput("Dinner", false))
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, other, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// record must be untouched for the owner
	got, err := svc.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", got.Name)
}

func TestService_Update(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := uuid.NewString()

	created, err := svc.Create(ctx, owner, testInput("Lunch", true))
	require.NoError(t, err)

	in := Input{
		Name:        "Dinner",
		Description: "pizza",
		DateTime:    time.Date(2024, 2, 2, 20, 0, 0, 0, time.UTC),
		IsOnDiet:    false,
	}
	updated, err := svc.Update(ctx, owner, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Dinner", updated.Name)
	assert.Equal(t, "pizza", updated.Description)
	assert.False(t, updated.IsOnDiet)
	assert.True(t, updated.DateTime.Equal(in.DateTime))
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := uuid.NewString()

	created, err := svc.Create(ctx, owner, testInput("Lunch", true))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, created.ID))

	_, err = svc.Get(ctx, owner, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListScopedToUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	a := uuid.NewString()
	b := uuid.NewString()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, a, testInput("a-meal", i%2 == 0))
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, b, testInput("b-meal", true))
	require.NoError(t, err)

	rows, err := svc.ListByUser(ctx, a)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	for _, m := range rows {
		assert.Equal(t, a, m.UserID)
	}

	rows, err = svc.ListByUser(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
