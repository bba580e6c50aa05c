package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"institute-registry-backend/internal/dto"
	"institute-registry-backend/internal/mapper"
	"institute-registry-backend/internal/model"
	"institute-registry-backend/internal/store"
	"institute-registry-backend/internal/validate"
)

// StudentService implements the business operations for students. Students
// are soft-deleted: DeleteByID flips the IsDeleted flag and the row stays.
type StudentService struct {
	students store.StudentStore
	cache    *cache.Cache
	ttl      time.Duration
}

// NewStudentService creates a student service with its own entity cache.
func NewStudentService(students store.StudentStore, ttl time.Duration) *StudentService {
	return &StudentService{students: students, cache: cache.New(ttl, 2*ttl), ttl: ttl}
}

func studentIDKey(id int64) string      { return fmt.Sprintf("id:%d", id) }
func studentCodeKey(code string) string { return "code:" + strings.ToLower(code) }

func (s *StudentService) cachePut(st model.Student) {
	s.cache.Set(studentIDKey(st.ID), st, s.ttl)
	s.cache.Set(studentCodeKey(st.InstituteCode), st, s.ttl)
}

func (s *StudentService) cacheEvict(st model.Student) {
	s.cache.Delete(studentIDKey(st.ID))
	s.cache.Delete(studentCodeKey(st.InstituteCode))
}

// FindAll lists active students, optionally filtered by a case-insensitive
// substring of the institute code.
func (s *StudentService) FindAll(ctx context.Context, code string) ([]dto.StudentResponse, error) {
	var (
		students []model.Student
		err      error
	)
	if code == "" {
		students, err = s.students.FindAll(ctx)
	} else {
		students, err = s.students.FindByCodeContains(ctx, code)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		out = append(out, mapper.StudentToResponse(st))
	}
	return out, nil
}

// FindByID returns a single student, reading through the cache.
func (s *StudentService) FindByID(ctx context.Context, id int64) (dto.StudentResponse, error) {
	if v, found := s.cache.Get(studentIDKey(id)); found {
		return mapper.StudentToResponse(v.(model.Student)), nil
	}

	st, err := s.students.FindByID(ctx, id)
	if err != nil {
		return dto.StudentResponse{}, fmt.Errorf("student %d: %w", id, err)
	}
	s.cachePut(st)
	return mapper.StudentToResponse(st), nil
}

// FindByCode looks a student up by institute code (exact, case-insensitive).
// The code is format-checked before any store lookup.
func (s *StudentService) FindByCode(ctx context.Context, code string) (dto.StudentResponse, error) {
	if !validate.IsInstituteCode(strings.ToUpper(code)) {
		return dto.StudentResponse{}, fmt.Errorf("student code %q: %w", code, store.ErrBadKey)
	}

	if v, found := s.cache.Get(studentCodeKey(code)); found {
		return mapper.StudentToResponse(v.(model.Student)), nil
	}

	st, err := s.students.FindByCode(ctx, code)
	if err != nil {
		return dto.StudentResponse{}, fmt.Errorf("student code %q: %w", code, err)
	}
	s.cachePut(st)
	return mapper.StudentToResponse(st), nil
}

// Create persists a new student.
func (s *StudentService) Create(ctx context.Context, d dto.StudentCreate) (dto.StudentResponse, error) {
	saved, err := s.students.Save(ctx, mapper.StudentFromCreate(d))
	if err != nil {
		return dto.StudentResponse{}, fmt.Errorf("student code %q: %w", d.InstituteCode, err)
	}
	s.cachePut(saved)
	return mapper.StudentToResponse(saved), nil
}

// Update applies a partial update to an existing student.
func (s *StudentService) Update(ctx context.Context, id int64, p dto.StudentUpdate) (dto.StudentResponse, error) {
	existing, err := s.students.FindByID(ctx, id)
	if err != nil {
		return dto.StudentResponse{}, fmt.Errorf("student %d: %w", id, err)
	}

	saved, err := s.students.Save(ctx, mapper.ApplyStudentPatch(existing, p))
	if err != nil {
		return dto.StudentResponse{}, fmt.Errorf("student %d: %w", id, err)
	}
	// The code may have changed; drop the entry filed under the old one.
	s.cacheEvict(existing)
	s.cachePut(saved)
	return mapper.StudentToResponse(saved), nil
}

// DeleteByID soft-deletes a student. A second delete of the same id reports
// NotFound because the row is no longer active.
func (s *StudentService) DeleteByID(ctx context.Context, id int64) error {
	st, err := s.students.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("student %d: %w", id, err)
	}

	st.IsDeleted = true
	st.UpdatedAt = time.Now().UTC()
	if _, err := s.students.Save(ctx, st); err != nil {
		return fmt.Errorf("student %d: %w", id, err)
	}
	s.cacheEvict(st)
	return nil
}
