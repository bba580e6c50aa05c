// Package service orchestrates the repositories and mappers behind the HTTP
// handlers: filter dispatch, not-found handling, delete policy and the
// read-through entity cache.
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"institute-registry-backend/internal/dto"
	"institute-registry-backend/internal/mapper"
	"institute-registry-backend/internal/model"
	"institute-registry-backend/internal/store"
)

// InstituteService implements the business operations for institutes.
// Institutes are hard-deleted; deleting one also removes its students.
type InstituteService struct {
	institutes store.InstituteStore
	students   store.StudentStore
	cache      *cache.Cache
	ttl        time.Duration
}

// NewInstituteService creates an institute service with its own entity cache.
func NewInstituteService(institutes store.InstituteStore, students store.StudentStore, ttl time.Duration) *InstituteService {
	return &InstituteService{
		institutes: institutes,
		students:   students,
		cache:      cache.New(ttl, 2*ttl),
		ttl:        ttl,
	}
}

func instIDKey(id int64) string      { return fmt.Sprintf("id:%d", id) }
func instUUIDKey(u uuid.UUID) string { return "uuid:" + u.String() }

func (s *InstituteService) cachePut(inst model.Institute) {
	s.cache.Set(instIDKey(inst.ID), inst, s.ttl)
	s.cache.Set(instUUIDKey(inst.UUID), inst, s.ttl)
}

func (s *InstituteService) cacheEvict(inst model.Institute) {
	s.cache.Delete(instIDKey(inst.ID))
	s.cache.Delete(instUUIDKey(inst.UUID))
}

func (s *InstituteService) toResponse(ctx context.Context, inst model.Institute) (dto.InstituteResponse, error) {
	students, err := s.students.FindByInstituteID(ctx, inst.ID)
	if err != nil {
		return dto.InstituteResponse{}, fmt.Errorf("failed to load students of institute %d: %w", inst.ID, err)
	}
	return mapper.InstituteToResponse(inst, students), nil
}

func (s *InstituteService) toResponseList(ctx context.Context, insts []model.Institute) ([]dto.InstituteResponse, error) {
	out := make([]dto.InstituteResponse, 0, len(insts))
	for _, inst := range insts {
		resp, err := s.toResponse(ctx, inst)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// FindAll lists institutes, optionally filtered by city and/or name
// (case-insensitive substring, AND semantics when both are given).
func (s *InstituteService) FindAll(ctx context.Context, city, name string) ([]dto.InstituteResponse, error) {
	var (
		insts []model.Institute
		err   error
	)
	switch {
	case city == "" && name == "":
		insts, err = s.institutes.FindAll(ctx)
	case name == "":
		insts, err = s.institutes.FindByCity(ctx, city)
	case city == "":
		insts, err = s.institutes.FindByName(ctx, name)
	default:
		insts, err = s.institutes.FindByCityAndName(ctx, city, name)
	}
	if err != nil {
		return nil, err
	}
	return s.toResponseList(ctx, insts)
}

// FindByID returns a single institute, reading through the cache.
func (s *InstituteService) FindByID(ctx context.Context, id int64) (dto.InstituteResponse, error) {
	if v, found := s.cache.Get(instIDKey(id)); found {
		return s.toResponse(ctx, v.(model.Institute))
	}

	inst, err := s.institutes.FindByID(ctx, id)
	if err != nil {
		return dto.InstituteResponse{}, fmt.Errorf("institute %d: %w", id, err)
	}
	s.cachePut(inst)
	return s.toResponse(ctx, inst)
}

// FindByUUID returns a single institute by its opaque secondary identifier.
// The key is parsed before any store lookup; a malformed uuid is ErrBadKey.
func (s *InstituteService) FindByUUID(ctx context.Context, raw string) (dto.InstituteResponse, error) {
	u, err := uuid.Parse(raw)
	if err != nil {
		return dto.InstituteResponse{}, fmt.Errorf("institute uuid %q: %w", raw, store.ErrBadKey)
	}

	if v, found := s.cache.Get(instUUIDKey(u)); found {
		return s.toResponse(ctx, v.(model.Institute))
	}

	inst, err := s.institutes.FindByUUID(ctx, u)
	if err != nil {
		return dto.InstituteResponse{}, fmt.Errorf("institute uuid %q: %w", raw, err)
	}
	s.cachePut(inst)
	return s.toResponse(ctx, inst)
}

// Create persists a new institute. Code uniqueness is enforced by the store;
// a collision surfaces as ErrConflict.
func (s *InstituteService) Create(ctx context.Context, d dto.InstituteCreate) (dto.InstituteResponse, error) {
	saved, err := s.institutes.Save(ctx, mapper.InstituteFromCreate(d))
	if err != nil {
		return dto.InstituteResponse{}, fmt.Errorf("institute code %q: %w", d.Code, err)
	}
	log.Printf("created institute %d (%s)", saved.ID, saved.Code)
	s.cachePut(saved)
	return s.toResponse(ctx, saved)
}

// Update applies a partial update to an existing institute.
func (s *InstituteService) Update(ctx context.Context, id int64, p dto.InstituteUpdate) (dto.InstituteResponse, error) {
	existing, err := s.institutes.FindByID(ctx, id)
	if err != nil {
		return dto.InstituteResponse{}, fmt.Errorf("institute %d: %w", id, err)
	}

	saved, err := s.institutes.Save(ctx, mapper.ApplyInstitutePatch(existing, p))
	if err != nil {
		return dto.InstituteResponse{}, fmt.Errorf("institute %d: %w", id, err)
	}
	s.cachePut(saved)
	return s.toResponse(ctx, saved)
}

// DeleteByID removes an institute and its students, then evicts the cache
// entries for both lookup keys.
func (s *InstituteService) DeleteByID(ctx context.Context, id int64) error {
	inst, err := s.institutes.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("institute %d: %w", id, err)
	}

	if err := s.students.DeleteByInstituteID(ctx, id); err != nil {
		return fmt.Errorf("failed to remove students of institute %d: %w", id, err)
	}
	if err := s.institutes.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("institute %d: %w", id, err)
	}
	log.Printf("deleted institute %d (%s)", id, inst.Code)
	s.cacheEvict(inst)
	return nil
}
