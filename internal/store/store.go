package store

import (
	"context"

	"github.com/google/uuid"

	"institute-registry-backend/internal/model"
)

// InstituteStore defines the repository contract for institutes. Absence is
// always reported as ErrNotFound, never as a zero value.
type InstituteStore interface {
	FindAll(ctx context.Context) ([]model.Institute, error)
	FindByCity(ctx context.Context, city string) ([]model.Institute, error)
	FindByName(ctx context.Context, name string) ([]model.Institute, error)
	FindByCityAndName(ctx context.Context, city, name string) ([]model.Institute, error)
	FindByID(ctx context.Context, id int64) (model.Institute, error)
	FindByUUID(ctx context.Context, u uuid.UUID) (model.Institute, error)
	Save(ctx context.Context, inst model.Institute) (model.Institute, error)
	DeleteByID(ctx context.Context, id int64) error
	NextID(ctx context.Context) (int64, error)
}

// StudentStore defines the repository contract for students.
type StudentStore interface {
	FindAll(ctx context.Context) ([]model.Student, error)
	FindByCodeContains(ctx context.Context, code string) ([]model.Student, error)
	FindByCode(ctx context.Context, code string) (model.Student, error)
	FindByID(ctx context.Context, id int64) (model.Student, error)
	FindByInstituteID(ctx context.Context, instituteID int64) ([]model.Student, error)
	Save(ctx context.Context, st model.Student) (model.Student, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByInstituteID(ctx context.Context, instituteID int64) error
	NextID(ctx context.Context) (int64, error)
}

// NameStore defines the repository contract for name records.
type NameStore interface {
	FindAll(ctx context.Context) ([]model.Name, error)
	FindByCodeContains(ctx context.Context, code string) ([]model.Name, error)
	FindByCode(ctx context.Context, code string) (model.Name, error)
	FindByID(ctx context.Context, id int64) (model.Name, error)
	Save(ctx context.Context, n model.Name) (model.Name, error)
	DeleteByID(ctx context.Context, id int64) error
	NextID(ctx context.Context) (int64, error)
}
