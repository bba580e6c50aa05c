// Package mapper converts between wire DTOs and stored entities. Mapping is
// pure: no I/O, deterministic except for the uuid and timestamps minted on
// create.
package mapper

import (
	"time"

	"github.com/google/uuid"

	"institute-registry-backend/internal/dto"
	"institute-registry-backend/internal/model"
)

// InstituteFromCreate builds a new entity from a create request. The id is
// left unset for the store to assign; uuid and timestamps are minted here.
func InstituteFromCreate(d dto.InstituteCreate) model.Institute {
	now := time.Now().UTC()
	return model.Institute{
		Code:        d.Code,
		Name:        d.Name,
		City:        d.City,
		Address:     d.Address,
		Phone:       d.Phone,
		Email:       d.Email,
		NumTeachers: d.NumTeachers,
		Type:        d.Type,
		FoundedOn:   d.FoundedOn,
		UUID:        uuid.New(),
		IsDeleted:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyInstitutePatch merges a partial update into an existing institute.
// Id, uuid and CreatedAt are preserved; every nil patch field falls back to
// the stored value; UpdatedAt is refreshed.
func ApplyInstitutePatch(existing model.Institute, p dto.InstituteUpdate) model.Institute {
	out := existing
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.City != nil {
		out.City = *p.City
	}
	if p.Address != nil {
		out.Address = *p.Address
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.NumTeachers != nil {
		out.NumTeachers = *p.NumTeachers
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.FoundedOn != nil {
		out.FoundedOn = *p.FoundedOn
	}
	if p.Code != nil {
		out.Code = *p.Code
	}
	out.UpdatedAt = time.Now().UTC()
	return out
}

// InstituteToResponse flattens an institute plus the names of its students.
func InstituteToResponse(inst model.Institute, students []model.Student) dto.InstituteResponse {
	names := make([]string, 0, len(students))
	for _, st := range students {
		names = append(names, st.Name)
	}
	return dto.InstituteResponse{
		ID:          inst.ID,
		Name:        inst.Name,
		City:        inst.City,
		Address:     inst.Address,
		Phone:       inst.Phone,
		Email:       inst.Email,
		NumTeachers: inst.NumTeachers,
		Type:        inst.Type,
		FoundedOn:   inst.FoundedOn,
		Code:        inst.Code,
		UUID:        inst.UUID.String(),
		Students:    names,
		CreatedAt:   inst.CreatedAt,
		UpdatedAt:   inst.UpdatedAt,
	}
}

// StudentFromCreate builds a new student entity from a create request.
func StudentFromCreate(d dto.StudentCreate) model.Student {
	now := time.Now().UTC()
	return model.Student{
		InstituteCode: d.InstituteCode,
		Name:          d.Name,
		InstituteID:   d.InstituteID,
		IsDeleted:     false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ApplyStudentPatch merges a partial update into an existing student.
func ApplyStudentPatch(existing model.Student, p dto.StudentUpdate) model.Student {
	out := existing
	if p.InstituteCode != nil {
		out.InstituteCode = *p.InstituteCode
	}
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.InstituteID != nil {
		out.InstituteID = p.InstituteID
	}
	out.UpdatedAt = time.Now().UTC()
	return out
}

// StudentToResponse flattens a student entity.
func StudentToResponse(st model.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:            st.ID,
		InstituteCode: st.InstituteCode,
		Name:          st.Name,
		InstituteID:   st.InstituteID,
		CreatedAt:     st.CreatedAt,
		UpdatedAt:     st.UpdatedAt,
	}
}

// NameFromCreate builds a new name entity from a create request.
func NameFromCreate(d dto.NameCreate) model.Name {
	now := time.Now().UTC()
	return model.Name{
		InstituteCode: d.InstituteCode,
		IsDeleted:     false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ApplyNamePatch merges a partial update into an existing name record.
func ApplyNamePatch(existing model.Name, p dto.NameUpdate) model.Name {
	out := existing
	if p.InstituteCode != nil {
		out.InstituteCode = *p.InstituteCode
	}
	out.UpdatedAt = time.Now().UTC()
	return out
}

// NameToResponse flattens a name entity.
func NameToResponse(n model.Name) dto.NameResponse {
	return dto.NameResponse{
		ID:            n.ID,
		InstituteCode: n.InstituteCode,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}
