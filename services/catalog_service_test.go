package services

import (
	"context"
	"testing"

	"github.com/nguyentuanthien2384/unishare-be-main/models"
)

func TestCatalogServiceCreateSubjectConflict(t *testing.T) {
	subjects := newFakeSubjectRepo()
	subjects.put(models.Subject{Name: "Calculus", Code: "MATH101"})
	svc := NewCatalogService(subjects, newFakeMajorRepo())

	_, err := svc.CreateSubject(context.Background(), CreateSubjectInput{Name: "Calculus", Code: "MATH999"})
	if err == nil {
		t.Fatalf("expected conflict error")
	}
	if appErr := err.(*AppError); appErr.HTTPCode != 409 {
		t.Fatalf("expected HTTP 409, got %d", appErr.HTTPCode)
	}

	_, err = svc.CreateSubject(context.Background(), CreateSubjectInput{Name: "Algebra", Code: "MATH101"})
	if err == nil {
		t.Fatalf("expected conflict on duplicate code")
	}
}

func TestCatalogServiceUpdateSubject(t *testing.T) {
	subjects := newFakeSubjectRepo()
	subject := subjects.put(models.Subject{Name: "Calculus", Code: "MATH101"})
	svc := NewCatalogService(subjects, newFakeMajorRepo())

	faculty := "Mathematics"
	out, err := svc.UpdateSubject(context.Background(), subject.ID, UpdateSubjectInput{ManagingFaculty: &faculty})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if out.ManagingFaculty != "Mathematics" {
		t.Fatalf("expected updated faculty, got %q", out.ManagingFaculty)
	}
	if out.Name != "Calculus" {
		t.Fatalf("untouched fields must survive, got %q", out.Name)
	}
}

func TestCatalogServiceRemoveSubjectNotFound(t *testing.T) {
	svc := NewCatalogService(newFakeSubjectRepo(), newFakeMajorRepo())

	err := svc.RemoveSubject(context.Background(), 42)
	if err == nil {
		t.Fatalf("expected not-found error")
	}
	if appErr := err.(*AppError); appErr.HTTPCode != 404 {
		t.Fatalf("expected HTTP 404, got %d", appErr.HTTPCode)
	}
}

func TestCatalogServiceCreateMajorConflict(t *testing.T) {
	majors := newFakeMajorRepo()
	existing := models.Major{Name: "Computer Science"}
	if err := majors.Create(context.Background(), &existing); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	svc := NewCatalogService(newFakeSubjectRepo(), majors)

	_, err := svc.CreateMajor(context.Background(), CreateMajorInput{Name: "Computer Science"})
	if err == nil {
		t.Fatalf("expected conflict error")
	}
	if appErr := err.(*AppError); appErr.HTTPCode != 409 {
		t.Fatalf("expected HTTP 409, got %d", appErr.HTTPCode)
	}
}

func TestCatalogServiceUpdateMajorReplacesSubjects(t *testing.T) {
	majors := newFakeMajorRepo()
	major := models.Major{Name: "Computer Science", Subjects: []models.Subject{{ID: 1}, {ID: 2}}}
	if err := majors.Create(context.Background(), &major); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	svc := NewCatalogService(newFakeSubjectRepo(), majors)

	newSubjects := []uint{3}
	out, err := svc.UpdateMajor(context.Background(), major.ID, UpdateMajorInput{SubjectIDs: &newSubjects})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if len(out.Subjects) != 1 || out.Subjects[0].ID != 3 {
		t.Fatalf("expected subject set replaced, got %+v", out.Subjects)
	}
}

func TestCatalogServiceUpdateMajorKeepsSubjectsWhenOmitted(t *testing.T) {
	majors := newFakeMajorRepo()
	major := models.Major{Name: "Computer Science", Subjects: []models.Subject{{ID: 1}}}
	if err := majors.Create(context.Background(), &major); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	svc := NewCatalogService(newFakeSubjectRepo(), majors)

	name := "Software Engineering"
	out, err := svc.UpdateMajor(context.Background(), major.ID, UpdateMajorInput{Name: &name})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if out.Name != "Software Engineering" {
		t.Fatalf("expected renamed major, got %q", out.Name)
	}
	if len(out.Subjects) != 1 {
		t.Fatalf("subject set must survive a rename, got %+v", out.Subjects)
	}
}
