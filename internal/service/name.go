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

// NameService implements the business operations for name records. Names are
// soft-deleted, same as students.
type NameService struct {
	names store.NameStore
	cache *cache.Cache
	ttl   time.Duration
}

// NewNameService creates a name service with its own entity cache.
func NewNameService(names store.NameStore, ttl time.Duration) *NameService {
	return &NameService{names: names, cache: cache.New(ttl, 2*ttl), ttl: ttl}
}

func nameIDKey(id int64) string      { return fmt.Sprintf("id:%d", id) }
func nameCodeKey(code string) string { return "code:" + strings.ToLower(code) }

func (s *NameService) cachePut(n model.Name) {
	s.cache.Set(nameIDKey(n.ID), n, s.ttl)
	s.cache.Set(nameCodeKey(n.InstituteCode), n, s.ttl)
}

func (s *NameService) cacheEvict(n model.Name) {
	s.cache.Delete(nameIDKey(n.ID))
	s.cache.Delete(nameCodeKey(n.InstituteCode))
}

// FindAll lists active name records, optionally filtered by a substring of
// the institute code.
func (s *NameService) FindAll(ctx context.Context, code string) ([]dto.NameResponse, error) {
	var (
		names []model.Name
		err   error
	)
	if code == "" {
		names, err = s.names.FindAll(ctx)
	} else {
		names, err = s.names.FindByCodeContains(ctx, code)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.NameResponse, 0, len(names))
	for _, n := range names {
		out = append(out, mapper.NameToResponse(n))
	}
	return out, nil
}

// FindByID returns a single name record, reading through the cache.
func (s *NameService) FindByID(ctx context.Context, id int64) (dto.NameResponse, error) {
	if v, found := s.cache.Get(nameIDKey(id)); found {
		return mapper.NameToResponse(v.(model.Name)), nil
	}

	n, err := s.names.FindByID(ctx, id)
	if err != nil {
		return dto.NameResponse{}, fmt.Errorf("name %d: %w", id, err)
	}
	s.cachePut(n)
	return mapper.NameToResponse(n), nil
}

// FindByCode looks a name record up by institute code. The code is
// format-checked before any store lookup.
func (s *NameService) FindByCode(ctx context.Context, code string) (dto.NameResponse, error) {
	if !validate.IsInstituteCode(strings.ToUpper(code)) {
		return dto.NameResponse{}, fmt.Errorf("name code %q: %w", code, store.ErrBadKey)
	}

	if v, found := s.cache.Get(nameCodeKey(code)); found {
		return mapper.NameToResponse(v.(model.Name)), nil
	}

	n, err := s.names.FindByCode(ctx, code)
	if err != nil {
		return dto.NameResponse{}, fmt.Errorf("name code %q: %w", code, err)
	}
	s.cachePut(n)
	return mapper.NameToResponse(n), nil
}

// Create persists a new name record.
func (s *NameService) Create(ctx context.Context, d dto.NameCreate) (dto.NameResponse, error) {
	saved, err := s.names.Save(ctx, mapper.NameFromCreate(d))
	if err != nil {
		return dto.NameResponse{}, fmt.Errorf("name code %q: %w", d.InstituteCode, err)
	}
	s.cachePut(saved)
	return mapper.NameToResponse(saved), nil
}

// Update applies a partial update to an existing name record.
func (s *NameService) Update(ctx context.Context, id int64, p dto.NameUpdate) (dto.NameResponse, error) {
	existing, err := s.names.FindByID(ctx, id)
	if err != nil {
		return dto.NameResponse{}, fmt.Errorf("name %d: %w", id, err)
	}

	saved, err := s.names.Save(ctx, mapper.ApplyNamePatch(existing, p))
	if err != nil {
		return dto.NameResponse{}, fmt.Errorf("name %d: %w", id, err)
	}
	s.cacheEvict(existing)
	s.cachePut(saved)
	return mapper.NameToResponse(saved), nil
}

// DeleteByID soft-deletes a name record.
func (s *NameService) DeleteByID(ctx context.Context, id int64) error {
	n, err := s.names.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("name %d: %w", id, err)
	}

	n.IsDeleted = true
	n.UpdatedAt = time.Now().UTC()
	if _, err := s.names.Save(ctx, n); err != nil {
		return fmt.Errorf("name %d: %w", id, err)
	}
	s.cacheEvict(n)
	return nil
}
