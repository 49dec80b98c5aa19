package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/nguyentuanthien2384/unishare-be-main/models"
	"github.com/nguyentuanthien2384/unishare-be-main/repositories"

	"gorm.io/gorm"
)

type CreateSubjectInput struct {
	Name            string
	Code            string
	ManagingFaculty string
}

type UpdateSubjectInput struct {
	Name            *string
	Code            *string
	ManagingFaculty *string
}

type CreateMajorInput struct {
	Name        string
	Code        string
	Description string
	SubjectIDs  []uint
}

type UpdateMajorInput struct {
	Name        *string
	Code        *string
	Description *string
	SubjectIDs  *[]uint
}

type CatalogService interface {
	CreateSubject(ctx context.Context, in CreateSubjectInput) (models.Subject, error)
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	UpdateSubject(ctx context.Context, subjectID uint, in UpdateSubjectInput) (models.Subject, error)
	RemoveSubject(ctx context.Context, subjectID uint) error

	CreateMajor(ctx context.Context, in CreateMajorInput) (models.Major, error)
	ListMajors(ctx context.Context) ([]models.Major, error)
	GetMajor(ctx context.Context, majorID uint) (models.Major, error)
	UpdateMajor(ctx context.Context, majorID uint, in UpdateMajorInput) (models.Major, error)
	RemoveMajor(ctx context.Context, majorID uint) error
}

type catalogService struct {
	subjects repositories.SubjectRepository
	majors   repositories.MajorRepository
}

func NewCatalogService(subjects repositories.SubjectRepository, majors repositories.MajorRepository) CatalogService {
	return &catalogService{subjects: subjects, majors: majors}
}

func (s *catalogService) CreateSubject(ctx context.Context, in CreateSubjectInput) (models.Subject, error) {
	count, err := s.subjects.CountByNameOrCode(ctx, in.Name, in.Code, 0)
	if err != nil {
		return models.Subject{}, newAppError(http.StatusInternalServerError, "failed to check subject", err)
	}
	if count > 0 {
		return models.Subject{}, newAppError(http.StatusConflict, "subject code or name already exists", nil)
	}

	subject := models.Subject{
		Name:            in.Name,
		Code:            in.Code,
		ManagingFaculty: in.ManagingFaculty,
	}
	if err := s.subjects.Create(ctx, &subject); err != nil {
		return models.Subject{}, newAppError(http.StatusInternalServerError, "failed to create subject", err)
	}
	return subject, nil
}

func (s *catalogService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list subjects", err)
	}
	return subjects, nil
}

func (s *catalogService) UpdateSubject(ctx context.Context, subjectID uint, in UpdateSubjectInput) (models.Subject, error) {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Code != nil {
		updates["code"] = *in.Code
	}
	if in.ManagingFaculty != nil {
		updates["managing_faculty"] = *in.ManagingFaculty
	}

	if len(updates) > 0 {
		if err := s.subjects.UpdateByID(ctx, subjectID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Subject{}, newAppError(http.StatusNotFound, "subject not found", nil)
			}
			return models.Subject{}, newAppError(http.StatusInternalServerError, "failed to update subject", err)
		}
	}

	subject, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Subject{}, newAppError(http.StatusNotFound, "subject not found", nil)
		}
		return models.Subject{}, newAppError(http.StatusInternalServerError, "failed to reload subject", err)
	}
	return subject, nil
}

// RemoveSubject deletes the subject only. Documents referencing it keep
// their dangling subject id; read paths tolerate the orphan.
func (s *catalogService) RemoveSubject(ctx context.Context, subjectID uint) error {
	if err := s.subjects.DeleteByID(ctx, subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "subject not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to delete subject", err)
	}
	return nil
}

func (s *catalogService) CreateMajor(ctx context.Context, in CreateMajorInput) (models.Major, error) {
	count, err := s.majors.CountByName(ctx, in.Name, 0)
	if err != nil {
		return models.Major{}, newAppError(http.StatusInternalServerError, "failed to check major", err)
	}
	if count > 0 {
		return models.Major{}, newAppError(http.StatusConflict, "major name already exists", nil)
	}

	major := models.Major{
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
	}
	for _, id := range in.SubjectIDs {
		major.Subjects = append(major.Subjects, models.Subject{ID: id})
	}
	if err := s.majors.Create(ctx, &major); err != nil {
		return models.Major{}, newAppError(http.StatusInternalServerError, "failed to create major", err)
	}

	created, err := s.majors.GetByID(ctx, major.ID, true)
	if err != nil {
		return models.Major{}, newAppError(http.StatusInternalServerError, "failed to reload major", err)
	}
	return created, nil
}

func (s *catalogService) ListMajors(ctx context.Context) ([]models.Major, error) {
	majors, err := s.majors.List(ctx, true)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list majors", err)
	}
	return majors, nil
}

func (s *catalogService) GetMajor(ctx context.Context, majorID uint) (models.Major, error) {
	major, err := s.majors.GetByID(ctx, majorID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Major{}, newAppError(http.StatusNotFound, "major not found", nil)
		}
		return models.Major{}, newAppError(http.StatusInternalServerError, "failed to query major", err)
	}
	return major, nil
}

func (s *catalogService) UpdateMajor(ctx context.Context, majorID uint, in UpdateMajorInput) (models.Major, error) {
	if _, err := s.majors.GetByID(ctx, majorID, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Major{}, newAppError(http.StatusNotFound, "major not found", nil)
		}
		return models.Major{}, newAppError(http.StatusInternalServerError, "failed to query major", err)
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Code != nil {
		updates["code"] = *in.Code
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if len(updates) > 0 {
		if err := s.majors.UpdateByID(ctx, majorID, updates); err != nil {
			return models.Major{}, newAppError(http.StatusInternalServerError, "failed to update major", err)
		}
	}

	if in.SubjectIDs != nil {
		if err := s.majors.ReplaceSubjects(ctx, majorID, *in.SubjectIDs); err != nil {
			return models.Major{}, newAppError(http.StatusInternalServerError, "failed to update major subjects", err)
		}
	}

	major, err := s.majors.GetByID(ctx, majorID, true)
	if err != nil {
		return models.Major{}, newAppError(http.StatusInternalServerError, "failed to reload major", err)
	}
	return major, nil
}

func (s *catalogService) RemoveMajor(ctx context.Context, majorID uint) error {
	if err := s.majors.DeleteByID(ctx, majorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "major not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to delete major", err)
	}
	return nil
}
