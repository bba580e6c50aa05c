package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"institute-registry-backend/internal/model"
)

// memInstituteStore is a map-backed InstituteStore. All access is serialized
// behind a single mutex so concurrent saves cannot race on id assignment.
type memInstituteStore struct {
	mu     sync.RWMutex
	byID   map[int64]model.Institute
	order  []int64
	nextID int64
}

// NewMemInstituteStore creates an empty in-memory institute store.
func NewMemInstituteStore() InstituteStore {
	return &memInstituteStore{byID: make(map[int64]model.Institute), nextID: 1}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *memInstituteStore) filter(keep func(model.Institute) bool) []model.Institute {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Institute, 0, len(s.order))
	for _, id := range s.order {
		inst := s.byID[id]
		if inst.IsDeleted {
			continue
		}
		if keep == nil || keep(inst) {
			out = append(out, inst)
		}
	}
	return out
}

func (s *memInstituteStore) FindAll(_ context.Context) ([]model.Institute, error) {
	return s.filter(nil), nil
}

func (s *memInstituteStore) FindByCity(_ context.Context, city string) ([]model.Institute, error) {
	if city == "" {
		return s.filter(nil), nil
	}
	return s.filter(func(i model.Institute) bool { return containsFold(i.City, city) }), nil
}

func (s *memInstituteStore) FindByName(_ context.Context, name string) ([]model.Institute, error) {
	if name == "" {
		return s.filter(nil), nil
	}
	return s.filter(func(i model.Institute) bool { return containsFold(i.Name, name) }), nil
}

func (s *memInstituteStore) FindByCityAndName(_ context.Context, city, name string) ([]model.Institute, error) {
	return s.filter(func(i model.Institute) bool {
		return containsFold(i.City, city) && containsFold(i.Name, name)
	}), nil
}

func (s *memInstituteStore) FindByID(_ context.Context, id int64) (model.Institute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, ok := s.byID[id]
	if !ok || inst.IsDeleted {
		return model.Institute{}, ErrNotFound
	}
	return inst, nil
}

func (s *memInstituteStore) FindByUUID(_ context.Context, u uuid.UUID) (model.Institute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if inst := s.byID[id]; inst.UUID == u && !inst.IsDeleted {
			return inst, nil
		}
	}
	return model.Institute{}, ErrNotFound
}

func (s *memInstituteStore) Save(_ context.Context, inst model.Institute) (model.Institute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		other := s.byID[id]
		if id == inst.ID {
			continue
		}
		if strings.EqualFold(other.Code, inst.Code) || other.UUID == inst.UUID {
			return model.Institute{}, ErrConflict
		}
	}

	if inst.ID == 0 {
		inst.ID = s.nextID
		s.nextID++
		s.order = append(s.order, inst.ID)
	} else if _, ok := s.byID[inst.ID]; !ok {
		s.order = append(s.order, inst.ID)
		if inst.ID >= s.nextID {
			s.nextID = inst.ID + 1
		}
	}
	s.byID[inst.ID] = inst
	return inst, nil
}

func (s *memInstituteStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// NextID never hands out a previously freed id, even after the newest record
// is deleted.
func (s *memInstituteStore) NextID(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID, nil
}

// memStudentStore is the map-backed StudentStore.
type memStudentStore struct {
	mu     sync.RWMutex
	byID   map[int64]model.Student
	order  []int64
	nextID int64
}

// NewMemStudentStore creates an empty in-memory student store.
func NewMemStudentStore() StudentStore {
	return &memStudentStore{byID: make(map[int64]model.Student), nextID: 1}
}

func (s *memStudentStore) filter(keep func(model.Student) bool) []model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Student, 0, len(s.order))
	for _, id := range s.order {
		st := s.byID[id]
		if st.IsDeleted {
			continue
		}
		if keep == nil || keep(st) {
			out = append(out, st)
		}
	}
	return out
}

func (s *memStudentStore) FindAll(_ context.Context) ([]model.Student, error) {
	return s.filter(nil), nil
}

func (s *memStudentStore) FindByCodeContains(_ context.Context, code string) ([]model.Student, error) {
	if code == "" {
		return s.filter(nil), nil
	}
	return s.filter(func(st model.Student) bool { return containsFold(st.InstituteCode, code) }), nil
}

func (s *memStudentStore) FindByCode(_ context.Context, code string) (model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if st := s.byID[id]; strings.EqualFold(st.InstituteCode, code) && !st.IsDeleted {
			return st, nil
		}
	}
	return model.Student{}, ErrNotFound
}

func (s *memStudentStore) FindByID(_ context.Context, id int64) (model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.byID[id]
	if !ok || st.IsDeleted {
		return model.Student{}, ErrNotFound
	}
	return st, nil
}

func (s *memStudentStore) FindByInstituteID(_ context.Context, instituteID int64) ([]model.Student, error) {
	return s.filter(func(st model.Student) bool {
		return st.InstituteID != nil && *st.InstituteID == instituteID
	}), nil
}

func (s *memStudentStore) Save(_ context.Context, st model.Student) (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		if id != st.ID && strings.EqualFold(s.byID[id].InstituteCode, st.InstituteCode) {
			return model.Student{}, ErrConflict
		}
	}

	if st.ID == 0 {
		st.ID = s.nextID
		s.nextID++
		s.order = append(s.order, st.ID)
	} else if _, ok := s.byID[st.ID]; !ok {
		s.order = append(s.order, st.ID)
		if st.ID >= s.nextID {
			s.nextID = st.ID + 1
		}
	}
	s.byID[st.ID] = st
	return st, nil
}

func (s *memStudentStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *memStudentStore) DeleteByInstituteID(_ context.Context, instituteID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	for _, id := range s.order {
		st := s.byID[id]
		if st.InstituteID != nil && *st.InstituteID == instituteID {
			delete(s.byID, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return nil
}

func (s *memStudentStore) NextID(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID, nil
}

// memNameStore is the map-backed NameStore.
type memNameStore struct {
	mu     sync.RWMutex
	byID   map[int64]model.Name
	order  []int64
	nextID int64
}

// NewMemNameStore creates an empty in-memory name store.
func NewMemNameStore() NameStore {
	return &memNameStore{byID: make(map[int64]model.Name), nextID: 1}
}

func (s *memNameStore) filter(keep func(model.Name) bool) []model.Name {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Name, 0, len(s.order))
	for _, id := range s.order {
		n := s.byID[id]
		if n.IsDeleted {
			continue
		}
		if keep == nil || keep(n) {
			out = append(out, n)
		}
	}
	return out
}

func (s *memNameStore) FindAll(_ context.Context) ([]model.Name, error) {
	return s.filter(nil), nil
}

func (s *memNameStore) FindByCodeContains(_ context.Context, code string) ([]model.Name, error) {
	if code == "" {
		return s.filter(nil), nil
	}
	return s.filter(func(n model.Name) bool { return containsFold(n.InstituteCode, code) }), nil
}

func (s *memNameStore) FindByCode(_ context.Context, code string) (model.Name, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if n := s.byID[id]; strings.EqualFold(n.InstituteCode, code) && !n.IsDeleted {
			return n, nil
		}
	}
	return model.Name{}, ErrNotFound
}

func (s *memNameStore) FindByID(_ context.Context, id int64) (model.Name, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.byID[id]
	if !ok || n.IsDeleted {
		return model.Name{}, ErrNotFound
	}
	return n, nil
}

func (s *memNameStore) Save(_ context.Context, n model.Name) (model.Name, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		if id != n.ID && strings.EqualFold(s.byID[id].InstituteCode, n.InstituteCode) {
			return model.Name{}, ErrConflict
		}
	}

	if n.ID == 0 {
		n.ID = s.nextID
		s.nextID++
		s.order = append(s.order, n.ID)
	} else if _, ok := s.byID[n.ID]; !ok {
		s.order = append(s.order, n.ID)
		if n.ID >= s.nextID {
			s.nextID = n.ID + 1
		}
	}
	s.byID[n.ID] = n
	return n, nil
}

func (s *memNameStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *memNameStore) NextID(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID, nil
}
