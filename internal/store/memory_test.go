package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"institute-registry-backend/internal/model"
)

func newInstitute(code, name, city string) model.Institute {
	now := time.Now().UTC()
	return model.Institute{
		Code:      code,
		Name:      name,
		City:      city,
		UUID:      uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemInstituteStore_SaveAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemInstituteStore()

	first, err := s.Save(ctx, newInstitute("AAA-0001", "Gomez Moreno", "Madrid"))
	require.NoError(t, err)
	second, err := s.Save(ctx, newInstitute("BBB-0002", "Francisco de Quevedo", "Sevilla"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Insertion order is preserved.
	assert.Equal(t, "AAA-0001", all[0].Code)
	assert.Equal(t, "BBB-0002", all[1].Code)
}

func TestMemInstituteStore_NextIDNeverReused(t *testing.T) {
	ctx := context.Background()
	s := NewMemInstituteStore()

	var last model.Institute
	codes := []string{"AAA-0001", "BBB-0002", "CCC-0003"}
	for _, code := range codes {
		var err error
		last, err = s.Save(ctx, newInstitute(code, "Inst "+code, ""))
		require.NoError(t, err)
	}

	// Deleting the most recent entry must not free its id.
	require.NoError(t, s.DeleteByID(ctx, last.ID))

	next, err := s.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), next)

	again, err := s.Save(ctx, newInstitute("DDD-0004", "Nuevo", ""))
	require.NoError(t, err)
	assert.Equal(t, int64(4), again.ID)
}

func TestMemInstituteStore_FindByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemInstituteStore()

	saved, err := s.Save(ctx, newInstitute("AAA-0001", "Gomez Moreno", "Madrid"))
	require.NoError(t, err)

	got, err := s.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	_, err = s.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemInstituteStore_FindByUUID(t *testing.T) {
	ctx := context.Background()
	s := NewMemInstituteStore()

	saved, err := s.Save(ctx, newInstitute("AAA-0001", "Gomez Moreno", "Madrid"))
	require.NoError(t, err)

	got, err := s.FindByUUID(ctx, saved.UUID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = s.FindByUUID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemInstituteStore_Filters(t *testing.T) {
	ctx := context.Background()
	s := NewMemInstituteStore()

	seed := []model.Institute{
		newInstitute("AAA-0001", "Las Meigas", "Galicia"),
		newInstitute("BBB-0002", "Gomez Moreno", "Madrid"),
		newInstitute("CCC-0003", "Meigas Nuevas", "Galicia"),
	}
	for _, inst := range seed {
		_, err := s.Save(ctx, inst)
		require.NoError(t, err)
	}

	testCases := []struct {
		name          string
		query         func() ([]model.Institute, error)
		expectedCodes []string
	}{
		{
			name:          "by city, case-insensitive substring",
			query:         func() ([]model.Institute, error) { return s.FindByCity(ctx, "gali") },
			expectedCodes: []string{"AAA-0001", "CCC-0003"},
		},
		{
			name:          "by name, case-insensitive substring",
			query:         func() ([]model.Institute, error) { return s.FindByName(ctx, "MEIGAS") },
			expectedCodes: []string{"AAA-0001", "CCC-0003"},
		},
		{
			name:          "by city and name, AND semantics",
			query:         func() ([]model.Institute, error) { return s.FindByCityAndName(ctx, "galicia", "nuevas") },
			expectedCodes: []string{"CCC-0003"},
		},
		{
			name:          "empty city filter equals find all",
			query:         func() ([]model.Institute, error) { return s.FindByCity(ctx, "") },
			expectedCodes: []string{"AAA-0001", "BBB-0002", "CCC-0003"},
		},
		{
			name:          "no match",
			query:         func() ([]model.Institute, error) { return s.FindByName(ctx, "nope") },
			expectedCodes: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.query()
			require.NoError(t, err)
			codes := make([]string, 0, len(got))
			for _, inst := range got {
				codes = append(codes, inst.Code)
			}
			assert.Equal(t, tc.expectedCodes, codes)
		})
	}
}

func TestMemInstituteStore_SaveConflicts(t *testing.T) {
	ctx := context.Background()
	s := NewMemInstituteStore()

	saved, err := s.Save(ctx, newInstitute("AAA-0001", "Gomez Moreno", "Madrid"))
	require.NoError(t, err)

	// Duplicate code, case-insensitive.
	dup := newInstitute("aaa-0001", "Other", "")
	_, err = s.Save(ctx, dup)
	assert.ErrorIs(t, err, ErrConflict)

	// Replacing the record at its own id is not a conflict.
	saved.Name = "Renamed"
	replaced, err := s.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", replaced.Name)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemInstituteStore_DeleteByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemInstituteStore()

	saved, err := s.Save(ctx, newInstitute("AAA-0001", "Gomez Moreno", "Madrid"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteByID(ctx, saved.ID))
	assert.ErrorIs(t, s.DeleteByID(ctx, saved.ID), ErrNotFound)

	_, err = s.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStudentStore_SoftDeletedRowsAreInvisible(t *testing.T) {
	ctx := context.Background()
	s := NewMemStudentStore()

	st, err := s.Save(ctx, model.Student{InstituteCode: "AAA-0001", Name: "Pepito"})
	require.NoError(t, err)

	st.IsDeleted = true
	_, err = s.Save(ctx, st)
	require.NoError(t, err)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "soft-deleted students must not be listed")

	_, err = s.FindByID(ctx, st.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindByCode(ctx, "AAA-0001")
	assert.ErrorIs(t, err, ErrNotFound)

	// The code stays reserved while the row exists.
	_, err = s.Save(ctx, model.Student{InstituteCode: "AAA-0001", Name: "Clone"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMemStudentStore_FindByCode(t *testing.T) {
	ctx := context.Background()
	s := NewMemStudentStore()

	_, err := s.Save(ctx, model.Student{InstituteCode: "LMG-1234", Name: "Manolita"})
	require.NoError(t, err)

	got, err := s.FindByCode(ctx, "lmg-1234")
	require.NoError(t, err)
	assert.Equal(t, "Manolita", got.Name)
}

func TestMemStudentStore_DeleteByInstituteID(t *testing.T) {
	ctx := context.Background()
	s := NewMemStudentStore()

	instID := int64(7)
	_, err := s.Save(ctx, model.Student{InstituteCode: "AAA-0001", Name: "A", InstituteID: &instID})
	require.NoError(t, err)
	_, err = s.Save(ctx, model.Student{InstituteCode: "BBB-0002", Name: "B", InstituteID: &instID})
	require.NoError(t, err)
	kept, err := s.Save(ctx, model.Student{InstituteCode: "CCC-0003", Name: "C"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteByInstituteID(ctx, instID))

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept.ID, all[0].ID)
}

func TestMemNameStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemNameStore()

	saved, err := s.Save(ctx, model.Name{InstituteCode: "LMG-1234"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	got, err := s.FindByCode(ctx, "LMG-1234")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	matches, err := s.FindByCodeContains(ctx, "lmg")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	require.NoError(t, s.DeleteByID(ctx, saved.ID))
	assert.ErrorIs(t, s.DeleteByID(ctx, 99), ErrNotFound)
}
