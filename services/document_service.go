package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentuanthien2384/unishare-be-main/config"
	"github.com/nguyentuanthien2384/unishare-be-main/models"
	"github.com/nguyentuanthien2384/unishare-be-main/repositories"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadDocumentInput struct {
	Title        string
	Description  string
	SubjectID    uint
	DocumentType string
	SchoolYear   string
	Faculty      string
}

type ListDocumentsQuery struct {
	Search       string
	SubjectIDs   []uint
	DocumentType string
	SortBy       string // "uploadDate" or "downloads"
	SortOrder    string // "asc" or "desc"
	Page         int
	Limit        int
}

type DocumentListOutput struct {
	Data       []models.Document    `json:"data"`
	Pagination utils.PaginationData `json:"pagination"`
}

type UpdateDocumentInput struct {
	Title        *string
	Description  *string
	SubjectID    *uint
	DocumentType *string
	SchoolYear   *string
}

type FileAccessOutput struct {
	Document models.Document
	AbsPath  string
	// Filename is the stored name, the final segment of the file URL.
	Filename string
}

type DocumentService interface {
	Upload(ctx context.Context, in UploadDocumentInput, file multipart.File, header *multipart.FileHeader, uploaderID uint) (models.Document, error)
	List(ctx context.Context, q ListDocumentsQuery) (DocumentListOutput, error)
	ListMine(ctx context.Context, userID uint, q ListDocumentsQuery) (DocumentListOutput, error)
	ListByUser(ctx context.Context, userID uint, q ListDocumentsQuery) (DocumentListOutput, error)
	Get(ctx context.Context, docID uint) (models.Document, error)
	Update(ctx context.Context, docID uint, in UpdateDocumentInput, requesterID uint) (models.Document, error)
	Delete(ctx context.Context, docID uint, requesterID uint) error
	Download(ctx context.Context, docID uint) (FileAccessOutput, error)
	Preview(ctx context.Context, docID uint) (FileAccessOutput, error)
	Thumbnail(ctx context.Context, docID uint) (FileAccessOutput, error)
}

type documentService struct {
	documents repositories.DocumentRepository
	users     repositories.UserRepository
	subjects  repositories.SubjectRepository
	logs      repositories.LogRepository
	stats     repositories.StatsRepository
}

func NewDocumentService(
	documents repositories.DocumentRepository,
	users repositories.UserRepository,
	subjects repositories.SubjectRepository,
	logs repositories.LogRepository,
	stats repositories.StatsRepository,
) DocumentService {
	return &documentService{
		documents: documents,
		users:     users,
		subjects:  subjects,
		logs:      logs,
		stats:     stats,
	}
}

func (s *documentService) Upload(ctx context.Context, in UploadDocumentInput, file multipart.File, header *multipart.FileHeader, uploaderID uint) (models.Document, error) {
	if header.Size > config.AppConfig.Storage.MaxFileSize {
		return models.Document{}, newAppErrorWithData(http.StatusBadRequest, "file size exceeds the limit",
			map[string]int64{"max_file_size": config.AppConfig.Storage.MaxFileSize}, nil)
	}
	if !isFileExtensionAllowed(header.Filename) {
		return models.Document{}, newAppError(http.StatusBadRequest, "file type is not allowed", nil)
	}
	if in.Title == "" {
		return models.Document{}, newAppError(http.StatusBadRequest, "title is required", nil)
	}
	if in.SubjectID == 0 {
		return models.Document{}, newAppError(http.StatusBadRequest, "subject is required", nil)
	}

	if _, err := s.subjects.GetByID(ctx, in.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Document{}, newAppError(http.StatusBadRequest, "subject does not exist", nil)
		}
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to check subject", err)
	}

	now := time.Now()
	fileUUID := uuid.New().String()
	storageName := fileUUID + "_" + sanitizeFilename(header.Filename)
	relDir := filepath.Join("uploads", now.Format("2006"), now.Format("01"))
	absDir := filepath.Join(config.AppConfig.Storage.BasePath, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to create storage directory", err)
	}

	relPath := filepath.Join(relDir, storageName)
	absPath := filepath.Join(absDir, storageName)
	dst, err := os.Create(absPath)
	if err != nil {
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to create file", err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		_ = os.Remove(absPath)
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to store file", err)
	}
	_ = dst.Close()

	var thumbnailPath string
	if IsImageFile(header.Filename) {
		thumbName := fileUUID + "_thumb.jpg"
		thumbRel := filepath.Join("thumbnails", now.Format("2006"), now.Format("01"), thumbName)
		thumbAbs := filepath.Join(config.AppConfig.Storage.BasePath, thumbRel)
		if err := GenerateThumbnail(absPath, thumbAbs); err == nil {
			thumbnailPath = thumbRel
		}
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	doc := models.Document{
		Title:         in.Title,
		Description:   in.Description,
		FileURL:       config.AppConfig.Server.BaseURL + "/" + filepath.ToSlash(relPath),
		FilePath:      relPath,
		ThumbnailPath: thumbnailPath,
		FileType:      mimeType,
		FileSize:      header.Size,
		UploaderID:    uploaderID,
		Status:        models.DocumentVisible,
		SubjectID:     in.SubjectID,
		DocumentType:  in.DocumentType,
		SchoolYear:    in.SchoolYear,
		Faculty:       in.Faculty,
	}
	if err := s.documents.Create(ctx, &doc); err != nil {
		_ = os.Remove(absPath)
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to save document", err)
	}

	if err := s.users.AddUploadsCount(ctx, uploaderID, 1); err != nil {
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to update uploader stats", err)
	}
	if err := s.stats.IncrTotalUploads(ctx, 1); err != nil {
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to update platform stats", err)
	}

	created, err := s.documents.GetByID(ctx, doc.ID, true)
	if err != nil {
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to reload document", err)
	}
	return created, nil
}

func normalizeListQuery(q *ListDocumentsQuery) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > config.AppConfig.Pagination.MaxPageSize {
		q.Limit = config.AppConfig.Pagination.DefaultPageSize
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = "desc"
	}
}

func sortField(sortBy string) string {
	if sortBy == "downloads" {
		return "downloads"
	}
	return "upload_date"
}

func (s *documentService) list(ctx context.Context, q ListDocumentsQuery, uploaderID uint, statuses []models.DocumentStatus) (DocumentListOutput, error) {
	normalizeListQuery(&q)

	in := repositories.ListDocumentsInput{
		Search:       q.Search,
		SubjectIDs:   q.SubjectIDs,
		DocumentType: q.DocumentType,
		UploaderID:   uploaderID,
		Statuses:     statuses,
		SortBy:       sortField(q.SortBy),
		Order:        q.SortOrder,
		Offset:       (q.Page - 1) * q.Limit,
		Limit:        q.Limit,
	}

	total, err := s.documents.Count(ctx, in)
	if err != nil {
		return DocumentListOutput{}, newAppError(http.StatusInternalServerError, "failed to count documents", err)
	}
	docs, err := s.documents.List(ctx, in)
	if err != nil {
		return DocumentListOutput{}, newAppError(http.StatusInternalServerError, "failed to list documents", err)
	}
	if docs == nil {
		docs = []models.Document{}
	}

	return DocumentListOutput{
		Data:       docs,
		Pagination: utils.NewPaginationData(q.Page, q.Limit, total),
	}, nil
}

func (s *documentService) List(ctx context.Context, q ListDocumentsQuery) (DocumentListOutput, error) {
	return s.list(ctx, q, 0, []models.DocumentStatus{models.DocumentVisible})
}

// ListMine includes the caller's non-visible documents.
func (s *documentService) ListMine(ctx context.Context, userID uint, q ListDocumentsQuery) (DocumentListOutput, error) {
	return s.list(ctx, q, userID, nil)
}

func (s *documentService) ListByUser(ctx context.Context, userID uint, q ListDocumentsQuery) (DocumentListOutput, error) {
	return s.list(ctx, q, userID, []models.DocumentStatus{models.DocumentVisible})
}

func (s *documentService) Get(ctx context.Context, docID uint) (models.Document, error) {
	doc, err := s.documents.GetByID(ctx, docID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Document{}, newAppError(http.StatusNotFound, "document not found", nil)
		}
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to query document", err)
	}

	// The view counter write is awaited so a fetched count is never stale
	// by more than concurrent in-flight requests.
	if err := s.documents.AddViewCount(ctx, docID, 1); err != nil {
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to record view", err)
	}
	doc.ViewCount++

	return doc, nil
}

func (s *documentService) getOwned(ctx context.Context, docID, requesterID uint) (models.Document, error) {
	doc, err := s.documents.GetByID(ctx, docID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Document{}, newAppError(http.StatusNotFound, "document not found", nil)
		}
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to query document", err)
	}
	if doc.UploaderID != requesterID {
		return models.Document{}, newAppError(http.StatusForbidden, "you do not have permission to modify this document", nil)
	}
	return doc, nil
}

func (s *documentService) Update(ctx context.Context, docID uint, in UpdateDocumentInput, requesterID uint) (models.Document, error) {
	if _, err := s.getOwned(ctx, docID, requesterID); err != nil {
		return models.Document{}, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.SubjectID != nil {
		if _, err := s.subjects.GetByID(ctx, *in.SubjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Document{}, newAppError(http.StatusBadRequest, "subject does not exist", nil)
			}
			return models.Document{}, newAppError(http.StatusInternalServerError, "failed to check subject", err)
		}
		updates["subject_id"] = *in.SubjectID
	}
	if in.DocumentType != nil {
		updates["document_type"] = *in.DocumentType
	}
	if in.SchoolYear != nil {
		updates["school_year"] = *in.SchoolYear
	}

	if len(updates) > 0 {
		if err := s.documents.UpdateByID(ctx, docID, updates); err != nil {
			return models.Document{}, newAppError(http.StatusInternalServerError, "failed to update document", err)
		}
	}

	updated, err := s.documents.GetByID(ctx, docID, true)
	if err != nil {
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to reload document", err)
	}
	return updated, nil
}

func (s *documentService) Delete(ctx context.Context, docID uint, requesterID uint) error {
	doc, err := s.getOwned(ctx, docID, requesterID)
	if err != nil {
		return err
	}

	if err := s.documents.DeleteByID(ctx, docID); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete document", err)
	}

	removeStoredFiles(doc)

	if err := s.users.AddUploadsCount(ctx, requesterID, -1); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to update uploader stats", err)
	}
	if err := s.stats.IncrTotalUploads(ctx, -1); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to update platform stats", err)
	}

	entry := models.Log{ActorID: requesterID, Action: models.ActionDeleteOwnDocument, TargetID: docID}
	if err := s.logs.Create(ctx, &entry); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to write audit log", err)
	}
	return nil
}

func removeStoredFiles(doc models.Document) {
	base := config.AppConfig.Storage.BasePath
	if doc.FilePath != "" {
		_ = os.Remove(filepath.Join(base, doc.FilePath))
	}
	if doc.ThumbnailPath != "" {
		_ = os.Remove(filepath.Join(base, doc.ThumbnailPath))
	}
}

func (s *documentService) access(ctx context.Context, docID uint) (FileAccessOutput, error) {
	doc, err := s.documents.GetByID(ctx, docID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FileAccessOutput{}, newAppError(http.StatusNotFound, "document not found", nil)
		}
		return FileAccessOutput{}, newAppError(http.StatusInternalServerError, "failed to query document", err)
	}

	absPath := filepath.Join(config.AppConfig.Storage.BasePath, doc.FilePath)
	if _, err := os.Stat(absPath); err != nil {
		return FileAccessOutput{}, newAppError(http.StatusNotFound, "file not found on server storage", err)
	}

	segments := strings.Split(doc.FileURL, "/")
	return FileAccessOutput{
		Document: doc,
		AbsPath:  absPath,
		Filename: segments[len(segments)-1],
	}, nil
}

// Download resolves the stored binary and applies the download-side
// counter policy: exactly once per download, never on preview.
func (s *documentService) Download(ctx context.Context, docID uint) (FileAccessOutput, error) {
	out, err := s.access(ctx, docID)
	if err != nil {
		return FileAccessOutput{}, err
	}

	if err := s.documents.AddDownloadCount(ctx, docID, 1); err != nil {
		return FileAccessOutput{}, newAppError(http.StatusInternalServerError, "failed to record download", err)
	}
	if err := s.users.AddDownloadsCount(ctx, out.Document.UploaderID, 1); err != nil {
		return FileAccessOutput{}, newAppError(http.StatusInternalServerError, "failed to update uploader stats", err)
	}
	if err := s.stats.IncrTotalDownloads(ctx, 1); err != nil {
		return FileAccessOutput{}, newAppError(http.StatusInternalServerError, "failed to update platform stats", err)
	}

	out.Document.DownloadCount++
	return out, nil
}

func (s *documentService) Preview(ctx context.Context, docID uint) (FileAccessOutput, error) {
	return s.access(ctx, docID)
}

func (s *documentService) Thumbnail(ctx context.Context, docID uint) (FileAccessOutput, error) {
	doc, err := s.documents.GetByID(ctx, docID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FileAccessOutput{}, newAppError(http.StatusNotFound, "document not found", nil)
		}
		return FileAccessOutput{}, newAppError(http.StatusInternalServerError, "failed to query document", err)
	}
	if doc.ThumbnailPath == "" {
		return FileAccessOutput{}, newAppError(http.StatusNotFound, "document has no thumbnail", nil)
	}

	absPath := filepath.Join(config.AppConfig.Storage.BasePath, doc.ThumbnailPath)
	if _, err := os.Stat(absPath); err != nil {
		return FileAccessOutput{}, newAppError(http.StatusNotFound, "thumbnail not found on server storage", err)
	}

	return FileAccessOutput{
		Document: doc,
		AbsPath:  absPath,
		Filename: fmt.Sprintf("thumb_%d.jpg", doc.ID),
	}, nil
}
