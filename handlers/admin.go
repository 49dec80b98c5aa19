package handlers

import (
	"net/http"
	"strconv"

	"github.com/nguyentuanthien2384/unishare-be-main/middleware"
	"github.com/nguyentuanthien2384/unishare-be-main/models"
	"github.com/nguyentuanthien2384/unishare-be-main/services"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"

	"github.com/gin-gonic/gin"
)

type SetUserRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required,oneof=USER MODERATOR"`
}

func AdminListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	q := services.ListUsersQuery{
		Search:    c.Query("search"),
		Role:      models.UserRole(c.Query("role")),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      page,
		Limit:     limit,
	}

	out, err := getServices().Admin.GetUsers(c.Request.Context(), q)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func AdminBlockUser(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	user, err := getServices().Admin.BlockUser(c.Request.Context(), userID, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "user blocked", user)
}

func AdminUnblockUser(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	user, err := getServices().Admin.UnblockUser(c.Request.Context(), userID, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "user unblocked", user)
}

func AdminDeleteUser(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	if userID == middleware.CurrentUserID(c) {
		utils.Error(c, http.StatusBadRequest, "cannot delete your own account here")
		return
	}
	err := getServices().Admin.DeleteUser(c.Request.Context(), userID, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "user deleted", nil)
}

func AdminSetUserRole(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	var req SetUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	user, err := getServices().Admin.SetUserRole(c.Request.Context(), userID, req.Role, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "role updated", user)
}

func AdminDelegateAdmin(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	user, err := getServices().Admin.DelegateAdmin(c.Request.Context(), userID, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "admin role delegated", user)
}

func AdminResetPassword(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	out, err := getServices().Admin.ResetPassword(c.Request.Context(), userID, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func AdminListDocuments(c *gin.Context) {
	out, err := getServices().Admin.GetDocuments(c.Request.Context(), parseListQuery(c))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func AdminBlockDocument(c *gin.Context) {
	docID, ok := idParam(c, "id")
	if !ok {
		return
	}
	doc, err := getServices().Admin.BlockDocument(c.Request.Context(), docID, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "document blocked", doc)
}

func AdminUnblockDocument(c *gin.Context) {
	docID, ok := idParam(c, "id")
	if !ok {
		return
	}
	doc, err := getServices().Admin.UnblockDocument(c.Request.Context(), docID, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "document unblocked", doc)
}

func AdminDeleteDocument(c *gin.Context) {
	docID, ok := idParam(c, "id")
	if !ok {
		return
	}
	err := getServices().Admin.DeleteDocument(c.Request.Context(), docID, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "document deleted", nil)
}
