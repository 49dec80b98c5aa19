package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nguyentuanthien2384/unishare-be-main/models"
	"github.com/nguyentuanthien2384/unishare-be-main/repositories"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"

	"gorm.io/gorm"
)

// resetPasswordValue is the fixed recovery password handed back to the
// moderator. Known weakness of the recovery flow; kept for contract
// compatibility. TODO: replace with a generated one-time credential.
const resetPasswordValue = "123456"

type ListUsersQuery struct {
	Search    string
	Role      models.UserRole
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type UserListOutput struct {
	Data       []models.User        `json:"data"`
	Pagination utils.PaginationData `json:"pagination"`
}

type ResetPasswordOutput struct {
	Message     string `json:"message"`
	NewPassword string `json:"new_password"`
}

type AdminService interface {
	BlockUser(ctx context.Context, userID, actorID uint) (models.User, error)
	UnblockUser(ctx context.Context, userID, actorID uint) (models.User, error)
	DeleteUser(ctx context.Context, userID, actorID uint) error
	SetUserRole(ctx context.Context, userID uint, role models.UserRole, actorID uint) (models.User, error)
	DelegateAdmin(ctx context.Context, targetUserID, actorID uint) (models.User, error)
	ResetPassword(ctx context.Context, userID, actorID uint) (ResetPasswordOutput, error)
	GetUsers(ctx context.Context, q ListUsersQuery) (UserListOutput, error)

	BlockDocument(ctx context.Context, docID, actorID uint) (models.Document, error)
	UnblockDocument(ctx context.Context, docID, actorID uint) (models.Document, error)
	DeleteDocument(ctx context.Context, docID, actorID uint) error
	GetDocuments(ctx context.Context, q ListDocumentsQuery) (DocumentListOutput, error)
}

type adminService struct {
	users     repositories.UserRepository
	documents repositories.DocumentRepository
	logs      repositories.LogRepository
	stats     repositories.StatsRepository
}

func NewAdminService(
	users repositories.UserRepository,
	documents repositories.DocumentRepository,
	logs repositories.LogRepository,
	stats repositories.StatsRepository,
) AdminService {
	return &adminService{users: users, documents: documents, logs: logs, stats: stats}
}

func (s *adminService) audit(ctx context.Context, actorID uint, action string, targetID uint, detail string) error {
	entry := models.Log{ActorID: actorID, Action: action, TargetID: targetID, Detail: detail}
	if err := s.logs.Create(ctx, &entry); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to write audit log", err)
	}
	return nil
}

func (s *adminService) setUserStatus(ctx context.Context, userID uint, status models.UserStatus) (models.User, error) {
	if err := s.users.UpdateByID(ctx, userID, map[string]interface{}{"status": status}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, newAppError(http.StatusNotFound, "user not found", nil)
		}
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to update user", err)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to reload user", err)
	}
	return user, nil
}

// BlockUser writes its audit entry before the status mutation.
func (s *adminService) BlockUser(ctx context.Context, userID, actorID uint) (models.User, error) {
	if err := s.audit(ctx, actorID, models.ActionBlockUser, userID, ""); err != nil {
		return models.User{}, err
	}
	if err := s.stats.IncrActiveUsers(ctx, -1); err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to update platform stats", err)
	}
	return s.setUserStatus(ctx, userID, models.UserBlocked)
}

func (s *adminService) UnblockUser(ctx context.Context, userID, actorID uint) (models.User, error) {
	if err := s.audit(ctx, actorID, models.ActionUnblockUser, userID, ""); err != nil {
		return models.User{}, err
	}
	if err := s.stats.IncrActiveUsers(ctx, 1); err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to update platform stats", err)
	}
	return s.setUserStatus(ctx, userID, models.UserActive)
}

func (s *adminService) DeleteUser(ctx context.Context, userID, actorID uint) error {
	if err := s.users.DeleteByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "user not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to delete user", err)
	}
	if err := s.stats.IncrActiveUsers(ctx, -1); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to update platform stats", err)
	}
	return s.audit(ctx, actorID, models.ActionDeleteUser, userID, "")
}

func (s *adminService) SetUserRole(ctx context.Context, userID uint, role models.UserRole, actorID uint) (models.User, error) {
	if err := s.users.UpdateByID(ctx, userID, map[string]interface{}{"role": role}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, newAppError(http.StatusNotFound, "user not found", nil)
		}
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to update role", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to reload user", err)
	}

	if err := s.audit(ctx, actorID, models.ActionChangeRole, userID, fmt.Sprintf("role changed to %s", role)); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DelegateAdmin transfers the ADMIN role to a moderator: the acting
// admin is demoted to MODERATOR and the target promoted to ADMIN.
func (s *adminService) DelegateAdmin(ctx context.Context, targetUserID, actorID uint) (models.User, error) {
	if targetUserID == actorID {
		return models.User{}, newAppError(http.StatusBadRequest, "cannot delegate admin to yourself", nil)
	}

	target, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, newAppError(http.StatusNotFound, "user not found", nil)
		}
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to query user", err)
	}

	if target.Role != models.RoleModerator {
		return models.User{}, newAppError(http.StatusForbidden, "admin can only be delegated to a moderator", nil)
	}

	if err := s.users.UpdateByID(ctx, actorID, map[string]interface{}{"role": models.RoleModerator}); err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to demote actor", err)
	}
	if err := s.users.UpdateByID(ctx, targetUserID, map[string]interface{}{"role": models.RoleAdmin}); err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to promote target", err)
	}

	newAdmin, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to reload user", err)
	}

	if err := s.audit(ctx, actorID, models.ActionDelegateAdmin, targetUserID, fmt.Sprintf("admin delegated to %s", target.FullName)); err != nil {
		return models.User{}, err
	}
	return newAdmin, nil
}

func (s *adminService) ResetPassword(ctx context.Context, userID, actorID uint) (ResetPasswordOutput, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResetPasswordOutput{}, newAppError(http.StatusNotFound, "user not found", nil)
		}
		return ResetPasswordOutput{}, newAppError(http.StatusInternalServerError, "failed to query user", err)
	}

	hashed, err := utils.HashPassword(resetPasswordValue)
	if err != nil {
		return ResetPasswordOutput{}, newAppError(http.StatusInternalServerError, "failed to hash password", err)
	}
	if err := s.users.UpdateByID(ctx, userID, map[string]interface{}{"password": hashed}); err != nil {
		return ResetPasswordOutput{}, newAppError(http.StatusInternalServerError, "failed to update password", err)
	}

	if err := s.audit(ctx, actorID, models.ActionResetPassword, userID, ""); err != nil {
		return ResetPasswordOutput{}, err
	}

	return ResetPasswordOutput{
		Message:     fmt.Sprintf("password for %s has been reset", user.Email),
		NewPassword: resetPasswordValue,
	}, nil
}

func (s *adminService) GetUsers(ctx context.Context, q ListUsersQuery) (UserListOutput, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = "desc"
	}

	in := repositories.ListUsersInput{
		Search: q.Search,
		Role:   q.Role,
		SortBy: q.SortBy,
		Order:  q.SortOrder,
		Offset: (q.Page - 1) * q.Limit,
		Limit:  q.Limit,
	}

	total, err := s.users.Count(ctx, in)
	if err != nil {
		return UserListOutput{}, newAppError(http.StatusInternalServerError, "failed to count users", err)
	}
	users, err := s.users.List(ctx, in)
	if err != nil {
		return UserListOutput{}, newAppError(http.StatusInternalServerError, "failed to list users", err)
	}
	if users == nil {
		users = []models.User{}
	}

	return UserListOutput{
		Data:       users,
		Pagination: utils.NewPaginationData(q.Page, q.Limit, total),
	}, nil
}

func (s *adminService) setDocumentStatus(ctx context.Context, docID uint, status models.DocumentStatus) (models.Document, error) {
	if err := s.documents.UpdateByID(ctx, docID, map[string]interface{}{"status": status}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Document{}, newAppError(http.StatusNotFound, "document not found", nil)
		}
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to update document", err)
	}
	doc, err := s.documents.GetByID(ctx, docID, false)
	if err != nil {
		return models.Document{}, newAppError(http.StatusInternalServerError, "failed to reload document", err)
	}
	return doc, nil
}

func (s *adminService) BlockDocument(ctx context.Context, docID, actorID uint) (models.Document, error) {
	if err := s.audit(ctx, actorID, models.ActionBlockDocument, docID, ""); err != nil {
		return models.Document{}, err
	}
	return s.setDocumentStatus(ctx, docID, models.DocumentBlocked)
}

func (s *adminService) UnblockDocument(ctx context.Context, docID, actorID uint) (models.Document, error) {
	if err := s.audit(ctx, actorID, models.ActionUnblockDocument, docID, ""); err != nil {
		return models.Document{}, err
	}
	return s.setDocumentStatus(ctx, docID, models.DocumentVisible)
}

func (s *adminService) DeleteDocument(ctx context.Context, docID, actorID uint) error {
	if err := s.documents.DeleteByID(ctx, docID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "document not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to delete document", err)
	}
	if err := s.stats.IncrTotalUploads(ctx, -1); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to update platform stats", err)
	}
	return s.audit(ctx, actorID, models.ActionDeleteDocument, docID, "")
}

// GetDocuments lists with no status restriction.
func (s *adminService) GetDocuments(ctx context.Context, q ListDocumentsQuery) (DocumentListOutput, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = "desc"
	}

	in := repositories.ListDocumentsInput{
		Search:       q.Search,
		SubjectIDs:   q.SubjectIDs,
		DocumentType: q.DocumentType,
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
