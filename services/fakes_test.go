package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/nguyentuanthien2384/unishare-be-main/models"
	"github.com/nguyentuanthien2384/unishare-be-main/repositories"

	"gorm.io/gorm"
)

type fakeUserRepo struct {
	usersByID map[uint]models.User
	nextID    uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{usersByID: map[uint]models.User{}, nextID: 1}
}

func (r *fakeUserRepo) put(user models.User) models.User {
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	} else if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.usersByID[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	*user = r.put(*user)
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range r.usersByID {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID uint) (models.User, error) {
	user, ok := r.usersByID[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Count(_ context.Context, _ repositories.ListUsersInput) (int64, error) {
	return int64(len(r.usersByID)), nil
}

func (r *fakeUserRepo) List(_ context.Context, _ repositories.ListUsersInput) ([]models.User, error) {
	ids := make([]uint, 0, len(r.usersByID))
	for id := range r.usersByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, r.usersByID[id])
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateByID(_ context.Context, userID uint, updates map[string]interface{}) error {
	user, ok := r.usersByID[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for column, value := range updates {
		switch column {
		case "full_name":
			user.FullName = value.(string)
		case "avatar_url":
			user.AvatarURL = value.(string)
		case "password":
			user.Password = value.(string)
		case "role":
			user.Role = value.(models.UserRole)
		case "status":
			user.Status = value.(models.UserStatus)
		}
	}
	r.usersByID[userID] = user
	return nil
}

func (r *fakeUserRepo) DeleteByID(_ context.Context, userID uint) error {
	if _, ok := r.usersByID[userID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.usersByID, userID)
	return nil
}

func (r *fakeUserRepo) AddUploadsCount(_ context.Context, userID uint, delta int64) error {
	user, ok := r.usersByID[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.UploadsCount += delta
	r.usersByID[userID] = user
	return nil
}

func (r *fakeUserRepo) AddDownloadsCount(_ context.Context, userID uint, delta int64) error {
	user, ok := r.usersByID[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.DownloadsCount += delta
	r.usersByID[userID] = user
	return nil
}

type fakeDocumentRepo struct {
	docsByID  map[uint]models.Document
	nextID    uint
	buckets   []repositories.DailyCount
	lastInput repositories.ListDocumentsInput
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docsByID: map[uint]models.Document{}, nextID: 1}
}

func (r *fakeDocumentRepo) put(doc models.Document) models.Document {
	if doc.ID == 0 {
		doc.ID = r.nextID
		r.nextID++
	} else if doc.ID >= r.nextID {
		r.nextID = doc.ID + 1
	}
	r.docsByID[doc.ID] = doc
	return doc
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *models.Document) error {
	*doc = r.put(*doc)
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, docID uint, _ bool) (models.Document, error) {
	doc, ok := r.docsByID[docID]
	if !ok {
		return models.Document{}, gorm.ErrRecordNotFound
	}
	return doc, nil
}

func (r *fakeDocumentRepo) matches(doc models.Document, in repositories.ListDocumentsInput) bool {
	if in.UploaderID != 0 && doc.UploaderID != in.UploaderID {
		return false
	}
	if in.Search != "" {
		needle := strings.ToLower(in.Search)
		if !strings.Contains(strings.ToLower(doc.Title), needle) &&
			!strings.Contains(strings.ToLower(doc.Description), needle) {
			return false
		}
	}
	if len(in.SubjectIDs) > 0 {
		found := false
		for _, id := range in.SubjectIDs {
			if doc.SubjectID == id {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if in.DocumentType != "" && doc.DocumentType != in.DocumentType {
		return false
	}
	if len(in.Statuses) > 0 {
		found := false
		for _, status := range in.Statuses {
			if doc.Status == status {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *fakeDocumentRepo) Count(_ context.Context, in repositories.ListDocumentsInput) (int64, error) {
	r.lastInput = in
	var total int64
	for _, doc := range r.docsByID {
		if r.matches(doc, in) {
			total++
		}
	}
	return total, nil
}

func (r *fakeDocumentRepo) List(_ context.Context, in repositories.ListDocumentsInput) ([]models.Document, error) {
	r.lastInput = in
	ids := make([]uint, 0, len(r.docsByID))
	for id := range r.docsByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var matched []models.Document
	for _, id := range ids {
		if r.matches(r.docsByID[id], in) {
			matched = append(matched, r.docsByID[id])
		}
	}
	if in.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[in.Offset:]
	if in.Limit > 0 && in.Limit < len(matched) {
		matched = matched[:in.Limit]
	}
	return matched, nil
}

func (r *fakeDocumentRepo) UpdateByID(_ context.Context, docID uint, updates map[string]interface{}) error {
	doc, ok := r.docsByID[docID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for column, value := range updates {
		switch column {
		case "title":
			doc.Title = value.(string)
		case "description":
			doc.Description = value.(string)
		case "subject_id":
			doc.SubjectID = value.(uint)
		case "document_type":
			doc.DocumentType = value.(string)
		case "school_year":
			doc.SchoolYear = value.(string)
		case "status":
			doc.Status = value.(models.DocumentStatus)
		}
	}
	r.docsByID[docID] = doc
	return nil
}

func (r *fakeDocumentRepo) DeleteByID(_ context.Context, docID uint) error {
	if _, ok := r.docsByID[docID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.docsByID, docID)
	return nil
}

func (r *fakeDocumentRepo) AddViewCount(_ context.Context, docID uint, delta int64) error {
	doc, ok := r.docsByID[docID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	doc.ViewCount += delta
	r.docsByID[docID] = doc
	return nil
}

func (r *fakeDocumentRepo) AddDownloadCount(_ context.Context, docID uint, delta int64) error {
	doc, ok := r.docsByID[docID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	doc.DownloadCount += delta
	r.docsByID[docID] = doc
	return nil
}

func (r *fakeDocumentRepo) CountUploadsByDay(_ context.Context, _ time.Time, _ *time.Time, _ uint) ([]repositories.DailyCount, error) {
	return r.buckets, nil
}

type fakeSubjectRepo struct {
	subjectsByID map[uint]models.Subject
	nextID       uint
}

func newFakeSubjectRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{subjectsByID: map[uint]models.Subject{}, nextID: 1}
}

func (r *fakeSubjectRepo) put(subject models.Subject) models.Subject {
	if subject.ID == 0 {
		subject.ID = r.nextID
		r.nextID++
	} else if subject.ID >= r.nextID {
		r.nextID = subject.ID + 1
	}
	r.subjectsByID[subject.ID] = subject
	return subject
}

func (r *fakeSubjectRepo) Create(_ context.Context, subject *models.Subject) error {
	*subject = r.put(*subject)
	return nil
}

func (r *fakeSubjectRepo) GetByID(_ context.Context, subjectID uint) (models.Subject, error) {
	subject, ok := r.subjectsByID[subjectID]
	if !ok {
		return models.Subject{}, gorm.ErrRecordNotFound
	}
	return subject, nil
}

func (r *fakeSubjectRepo) List(_ context.Context) ([]models.Subject, error) {
	ids := make([]uint, 0, len(r.subjectsByID))
	for id := range r.subjectsByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	subjects := make([]models.Subject, 0, len(ids))
	for _, id := range ids {
		subjects = append(subjects, r.subjectsByID[id])
	}
	return subjects, nil
}

func (r *fakeSubjectRepo) CountByNameOrCode(_ context.Context, name, code string, excludeID uint) (int64, error) {
	var count int64
	for _, subject := range r.subjectsByID {
		if subject.ID == excludeID {
			continue
		}
		if subject.Name == name || subject.Code == code {
			count++
		}
	}
	return count, nil
}

func (r *fakeSubjectRepo) UpdateByID(_ context.Context, subjectID uint, updates map[string]interface{}) error {
	subject, ok := r.subjectsByID[subjectID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for column, value := range updates {
		switch column {
		case "name":
			subject.Name = value.(string)
		case "code":
			subject.Code = value.(string)
		case "managing_faculty":
			subject.ManagingFaculty = value.(string)
		}
	}
	r.subjectsByID[subjectID] = subject
	return nil
}

func (r *fakeSubjectRepo) DeleteByID(_ context.Context, subjectID uint) error {
	if _, ok := r.subjectsByID[subjectID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.subjectsByID, subjectID)
	return nil
}

type fakeMajorRepo struct {
	majorsByID map[uint]models.Major
	nextID     uint
}

func newFakeMajorRepo() *fakeMajorRepo {
	return &fakeMajorRepo{majorsByID: map[uint]models.Major{}, nextID: 1}
}

func (r *fakeMajorRepo) Create(_ context.Context, major *models.Major) error {
	if major.ID == 0 {
		major.ID = r.nextID
		r.nextID++
	}
	r.majorsByID[major.ID] = *major
	return nil
}

func (r *fakeMajorRepo) GetByID(_ context.Context, majorID uint, _ bool) (models.Major, error) {
	major, ok := r.majorsByID[majorID]
	if !ok {
		return models.Major{}, gorm.ErrRecordNotFound
	}
	return major, nil
}

func (r *fakeMajorRepo) List(_ context.Context, _ bool) ([]models.Major, error) {
	ids := make([]uint, 0, len(r.majorsByID))
	for id := range r.majorsByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	majors := make([]models.Major, 0, len(ids))
	for _, id := range ids {
		majors = append(majors, r.majorsByID[id])
	}
	return majors, nil
}

func (r *fakeMajorRepo) CountByName(_ context.Context, name string, excludeID uint) (int64, error) {
	var count int64
	for _, major := range r.majorsByID {
		if major.ID != excludeID && major.Name == name {
			count++
		}
	}
	return count, nil
}

func (r *fakeMajorRepo) UpdateByID(_ context.Context, majorID uint, updates map[string]interface{}) error {
	major, ok := r.majorsByID[majorID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for column, value := range updates {
		switch column {
		case "name":
			major.Name = value.(string)
		case "code":
			major.Code = value.(string)
		case "description":
			major.Description = value.(string)
		}
	}
	r.majorsByID[majorID] = major
	return nil
}

func (r *fakeMajorRepo) ReplaceSubjects(_ context.Context, majorID uint, subjectIDs []uint) error {
	major, ok := r.majorsByID[majorID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	major.Subjects = nil
	for _, id := range subjectIDs {
		major.Subjects = append(major.Subjects, models.Subject{ID: id})
	}
	r.majorsByID[majorID] = major
	return nil
}

func (r *fakeMajorRepo) DeleteByID(_ context.Context, majorID uint) error {
	if _, ok := r.majorsByID[majorID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.majorsByID, majorID)
	return nil
}

type fakeLogRepo struct {
	entries []models.Log
}

func (r *fakeLogRepo) Create(_ context.Context, entry *models.Log) error {
	entry.ID = uint(len(r.entries) + 1)
	r.entries = append(r.entries, *entry)
	return nil
}

type fakeStatsRepo struct {
	stats repositories.PlatformStats
}

func (r *fakeStatsRepo) Get(_ context.Context) (repositories.PlatformStats, error) {
	return r.stats, nil
}

func (r *fakeStatsRepo) IncrTotalUploads(_ context.Context, delta int64) error {
	r.stats.TotalUploads += delta
	return nil
}

func (r *fakeStatsRepo) IncrTotalDownloads(_ context.Context, delta int64) error {
	r.stats.TotalDownloads += delta
	return nil
}

func (r *fakeStatsRepo) IncrActiveUsers(_ context.Context, delta int64) error {
	r.stats.ActiveUsers += delta
	return nil
}
