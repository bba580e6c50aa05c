package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"institute-registry-backend/internal/model"
)

const (
	seqInstitutes = "institutes"
	seqStudents   = "students"
	seqNames      = "names"
)

// translate maps GORM's sentinel errors onto the repository error taxonomy.
// Requires gorm.Config{TranslateError: true} so driver-specific unique
// violations surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

// allocateID hands out the next id from the named counter row. The counter
// only moves forward, so a hard delete of the newest record never frees its
// id. Must run inside the transaction that inserts the record.
func allocateID(tx *gorm.DB, name string, mdl any) (int64, error) {
	// Seed the counter from the current maximum on first use. Soft-deleted
	// rows count; they still occupy their ids.
	var maxID int64
	if err := tx.Model(mdl).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return 0, fmt.Errorf("failed to seed %s sequence: %w", name, err)
	}
	seed := model.Sequence{Name: name, NextID: maxID + 1}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, fmt.Errorf("failed to seed %s sequence: %w", name, err)
	}

	res := tx.Model(&model.Sequence{}).Where("name = ?", name).
		UpdateColumn("next_id", gorm.Expr("next_id + 1"))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", name, res.Error)
	}

	var seq model.Sequence
	if err := tx.First(&seq, "name = ?", name).Error; err != nil {
		return 0, fmt.Errorf("failed to read %s sequence: %w", name, err)
	}
	return seq.NextID - 1, nil
}

// peekNextID reports the id the next insert would get without advancing the
// counter. Before the counter exists it falls back to the current maximum.
func peekNextID(db *gorm.DB, name string, mdl any) (int64, error) {
	var seq model.Sequence
	err := db.First(&seq, "name = ?", name).Error
	switch {
	case err == nil:
		return seq.NextID, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		var maxID int64
		if err := db.Model(mdl).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return 0, fmt.Errorf("failed to compute next %s id: %w", name, err)
		}
		return maxID + 1, nil
	default:
		return 0, fmt.Errorf("failed to read %s sequence: %w", name, err)
	}
}

// gormInstituteStore implements InstituteStore on a relational database.
// Uniqueness is delegated to the database; id generation goes through the
// sequence table so concurrent saves are safe without store-level locking.
type gormInstituteStore struct {
	db *gorm.DB
}

// NewGormInstituteStore creates a GORM-backed institute store.
func NewGormInstituteStore(db *gorm.DB) InstituteStore {
	return &gormInstituteStore{db: db}
}

func (s *gormInstituteStore) active(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Where("is_deleted = ?", false)
}

func (s *gormInstituteStore) FindAll(ctx context.Context) ([]model.Institute, error) {
	var insts []model.Institute
	err := s.active(ctx).Order("id").Find(&insts).Error
	return insts, translate(err)
}

func (s *gormInstituteStore) FindByCity(ctx context.Context, city string) ([]model.Institute, error) {
	var insts []model.Institute
	err := s.active(ctx).
		Where("LOWER(city) LIKE LOWER(?)", "%"+city+"%").
		Order("id").Find(&insts).Error
	return insts, translate(err)
}

func (s *gormInstituteStore) FindByName(ctx context.Context, name string) ([]model.Institute, error) {
	var insts []model.Institute
	err := s.active(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("id").Find(&insts).Error
	return insts, translate(err)
}

func (s *gormInstituteStore) FindByCityAndName(ctx context.Context, city, name string) ([]model.Institute, error) {
	var insts []model.Institute
	err := s.active(ctx).
		Where("LOWER(city) LIKE LOWER(?)", "%"+city+"%").
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("id").Find(&insts).Error
	return insts, translate(err)
}

func (s *gormInstituteStore) FindByID(ctx context.Context, id int64) (model.Institute, error) {
	var inst model.Institute
	err := s.active(ctx).First(&inst, id).Error
	return inst, translate(err)
}

func (s *gormInstituteStore) FindByUUID(ctx context.Context, u uuid.UUID) (model.Institute, error) {
	var inst model.Institute
	err := s.active(ctx).First(&inst, "uuid = ?", u).Error
	return inst, translate(err)
}

func (s *gormInstituteStore) Save(ctx context.Context, inst model.Institute) (model.Institute, error) {
	var err error
	if inst.ID == 0 {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			id, err := allocateID(tx, seqInstitutes, &model.Institute{})
			if err != nil {
				return err
			}
			inst.ID = id
			return tx.Create(&inst).Error
		})
	} else {
		err = s.db.WithContext(ctx).Save(&inst).Error
	}
	if err != nil {
		return model.Institute{}, translate(err)
	}
	return inst, nil
}

func (s *gormInstituteStore) DeleteByID(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Institute{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormInstituteStore) NextID(ctx context.Context) (int64, error) {
	return peekNextID(s.db.WithContext(ctx), seqInstitutes, &model.Institute{})
}

// gormStudentStore implements StudentStore on a relational database.
type gormStudentStore struct {
	db *gorm.DB
}

// NewGormStudentStore creates a GORM-backed student store.
func NewGormStudentStore(db *gorm.DB) StudentStore {
	return &gormStudentStore{db: db}
}

func (s *gormStudentStore) active(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Where("is_deleted = ?", false)
}

func (s *gormStudentStore) FindAll(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := s.active(ctx).Order("id").Find(&students).Error
	return students, translate(err)
}

func (s *gormStudentStore) FindByCodeContains(ctx context.Context, code string) ([]model.Student, error) {
	var students []model.Student
	err := s.active(ctx).
		Where("LOWER(institute_code) LIKE LOWER(?)", "%"+code+"%").
		Order("id").Find(&students).Error
	return students, translate(err)
}

func (s *gormStudentStore) FindByCode(ctx context.Context, code string) (model.Student, error) {
	var st model.Student
	err := s.active(ctx).First(&st, "LOWER(institute_code) = LOWER(?)", code).Error
	return st, translate(err)
}

func (s *gormStudentStore) FindByID(ctx context.Context, id int64) (model.Student, error) {
	var st model.Student
	err := s.active(ctx).First(&st, id).Error
	return st, translate(err)
}

func (s *gormStudentStore) FindByInstituteID(ctx context.Context, instituteID int64) ([]model.Student, error) {
	var students []model.Student
	err := s.active(ctx).Where("institute_id = ?", instituteID).Order("id").Find(&students).Error
	return students, translate(err)
}

func (s *gormStudentStore) Save(ctx context.Context, st model.Student) (model.Student, error) {
	var err error
	if st.ID == 0 {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			id, err := allocateID(tx, seqStudents, &model.Student{})
			if err != nil {
				return err
			}
			st.ID = id
			return tx.Create(&st).Error
		})
	} else {
		err = s.db.WithContext(ctx).Save(&st).Error
	}
	if err != nil {
		return model.Student{}, translate(err)
	}
	return st, nil
}

func (s *gormStudentStore) DeleteByID(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Student{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStudentStore) DeleteByInstituteID(ctx context.Context, instituteID int64) error {
	return translate(s.db.WithContext(ctx).
		Where("institute_id = ?", instituteID).
		Delete(&model.Student{}).Error)
}

func (s *gormStudentStore) NextID(ctx context.Context) (int64, error) {
	return peekNextID(s.db.WithContext(ctx), seqStudents, &model.Student{})
}

// gormNameStore implements NameStore on a relational database.
type gormNameStore struct {
	db *gorm.DB
}

// NewGormNameStore creates a GORM-backed name store.
func NewGormNameStore(db *gorm.DB) NameStore {
	return &gormNameStore{db: db}
}

func (s *gormNameStore) active(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Where("is_deleted = ?", false)
}

func (s *gormNameStore) FindAll(ctx context.Context) ([]model.Name, error) {
	var names []model.Name
	err := s.active(ctx).Order("id").Find(&names).Error
	return names, translate(err)
}

func (s *gormNameStore) FindByCodeContains(ctx context.Context, code string) ([]model.Name, error) {
	var names []model.Name
	err := s.active(ctx).
		Where("LOWER(institute_code) LIKE LOWER(?)", "%"+code+"%").
		Order("id").Find(&names).Error
	return names, translate(err)
}

func (s *gormNameStore) FindByCode(ctx context.Context, code string) (model.Name, error) {
	var n model.Name
	err := s.active(ctx).First(&n, "LOWER(institute_code) = LOWER(?)", code).Error
	return n, translate(err)
}

func (s *gormNameStore) FindByID(ctx context.Context, id int64) (model.Name, error) {
	var n model.Name
	err := s.active(ctx).First(&n, id).Error
	return n, translate(err)
}

func (s *gormNameStore) Save(ctx context.Context, n model.Name) (model.Name, error) {
	var err error
	if n.ID == 0 {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			id, err := allocateID(tx, seqNames, &model.Name{})
			if err != nil {
				return err
			}
			n.ID = id
			return tx.Create(&n).Error
		})
	} else {
		err = s.db.WithContext(ctx).Save(&n).Error
	}
	if err != nil {
		return model.Name{}, translate(err)
	}
	return n, nil
}

func (s *gormNameStore) DeleteByID(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Name{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormNameStore) NextID(ctx context.Context) (int64, error) {
	return peekNextID(s.db.WithContext(ctx), seqNames, &model.Name{})
}
