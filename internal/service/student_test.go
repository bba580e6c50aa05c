package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"institute-registry-backend/internal/dto"
	"institute-registry-backend/internal/model"
	"institute-registry-backend/internal/store"
)

func studentOf(instituteID int64, code, name string) model.Student {
	now := time.Now().UTC()
	return model.Student{
		InstituteCode: code,
		Name:          name,
		InstituteID:   &instituteID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newStudentService() *StudentService {
	return NewStudentService(store.NewMemStudentStore(), time.Minute)
}

func TestStudentService_CreateThenFindByID(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService()

	created, err := svc.Create(ctx, dto.StudentCreate{InstituteCode: "LMG-1234", Name: "Pepito"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestStudentService_FindByCode(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService()

	_, err := svc.Create(ctx, dto.StudentCreate{InstituteCode: "LMG-1234", Name: "Pepito"})
	require.NoError(t, err)

	got, err := svc.FindByCode(ctx, "lmg-1234")
	require.NoError(t, err)
	assert.Equal(t, "Pepito", got.Name)

	// Malformed code fails before the store is consulted.
	_, err = svc.FindByCode(ctx, "not a code")
	assert.ErrorIs(t, err, store.ErrBadKey)

	_, err = svc.FindByCode(ctx, "XXX-9999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStudentService_FindAllFilter(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService()

	_, err := svc.Create(ctx, dto.StudentCreate{InstituteCode: "LMG-1234", Name: "Pepito"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.StudentCreate{InstituteCode: "GMZ-0007", Name: "Manolita"})
	require.NoError(t, err)

	all, err := svc.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.FindAll(ctx, "gmz")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Manolita", filtered[0].Name)
}

func TestStudentService_UpdateKeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService()

	created, err := svc.Create(ctx, dto.StudentCreate{InstituteCode: "LMG-1234", Name: "Pepito"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.StudentUpdate{})
	require.NoError(t, err)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.InstituteCode, updated.InstituteCode)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestStudentService_SoftDelete(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService()

	created, err := svc.Create(ctx, dto.StudentCreate{InstituteCode: "LMG-1234", Name: "Pepito"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(ctx, created.ID))

	// Deleted is terminal: the row is gone from every read path.
	_, err = svc.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := svc.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)

	err = svc.DeleteByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
