package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"institute-registry-backend/internal/dto"
	"institute-registry-backend/internal/store"
)

func newNameService() *NameService {
	return NewNameService(store.NewMemNameStore(), time.Minute)
}

func TestNameService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newNameService()

	created, err := svc.Create(ctx, dto.NameCreate{InstituteCode: "LMG-1234"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.FindByCode(ctx, "lmg-1234")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	code := "GMZ-0007"
	updated, err := svc.Update(ctx, created.ID, dto.NameUpdate{InstituteCode: &code})
	require.NoError(t, err)
	assert.Equal(t, "GMZ-0007", updated.InstituteCode)

	// The old code no longer resolves once the entry moved.
	_, err = svc.FindByCode(ctx, "LMG-1234")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, svc.DeleteByID(ctx, created.ID))
	_, err = svc.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteByID(ctx, created.ID), store.ErrNotFound)
}

func TestNameService_BadKey(t *testing.T) {
	ctx := context.Background()
	svc := newNameService()

	_, err := svc.FindByCode(ctx, "123-ABCD")
	assert.ErrorIs(t, err, store.ErrBadKey)
}
