package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/nguyentuanthien2384/unishare-be-main/middleware"
	"github.com/nguyentuanthien2384/unishare-be-main/services"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"

	"github.com/gin-gonic/gin"
)

type UploadDocumentRequest struct {
	Title        string `form:"title" binding:"required,max=255"`
	Description  string `form:"description"`
	SubjectID    uint   `form:"subject_id" binding:"required"`
	DocumentType string `form:"document_type"`
	SchoolYear   string `form:"school_year"`
	Faculty      string `form:"faculty"`
}

type UpdateDocumentRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=255"`
	Description  *string `json:"description"`
	SubjectID    *uint   `json:"subject_id"`
	DocumentType *string `json:"document_type"`
	SchoolYear   *string `json:"school_year"`
}

func parseListQuery(c *gin.Context) services.ListDocumentsQuery {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	var subjectIDs []uint
	raw := c.QueryArray("subjects[]")
	if len(raw) == 0 {
		raw = c.QueryArray("subjects")
	}
	if len(raw) == 0 {
		if single := c.Query("subject"); single != "" {
			raw = []string{single}
		}
	}
	for _, v := range raw {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			subjectIDs = append(subjectIDs, uint(id))
		}
	}

	return services.ListDocumentsQuery{
		Search:       c.Query("search"),
		SubjectIDs:   subjectIDs,
		DocumentType: c.Query("documentType"),
		SortBy:       c.Query("sortBy"),
		SortOrder:    c.Query("sortOrder"),
		Page:         page,
		Limit:        limit,
	}
}

func UploadDocument(c *gin.Context) {
	var req UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	doc, err := getServices().Document.Upload(c.Request.Context(), services.UploadDocumentInput{
		Title:        req.Title,
		Description:  req.Description,
		SubjectID:    req.SubjectID,
		DocumentType: req.DocumentType,
		SchoolYear:   req.SchoolYear,
		Faculty:      req.Faculty,
	}, file, header, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, doc)
}

func ListDocuments(c *gin.Context) {
	out, err := getServices().Document.List(c.Request.Context(), parseListQuery(c))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func ListMyDocuments(c *gin.Context) {
	out, err := getServices().Document.ListMine(c.Request.Context(), middleware.CurrentUserID(c), parseListQuery(c))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func ListUserDocuments(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	out, err := getServices().Document.ListByUser(c.Request.Context(), userID, parseListQuery(c))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func GetDocument(c *gin.Context) {
	docID, ok := idParam(c, "id")
	if !ok {
		return
	}
	doc, err := getServices().Document.Get(c.Request.Context(), docID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, doc)
}

func UpdateDocument(c *gin.Context) {
	docID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	doc, err := getServices().Document.Update(c.Request.Context(), docID, services.UpdateDocumentInput{
		Title:        req.Title,
		Description:  req.Description,
		SubjectID:    req.SubjectID,
		DocumentType: req.DocumentType,
		SchoolYear:   req.SchoolYear,
	}, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, doc)
}

func DeleteDocument(c *gin.Context) {
	docID, ok := idParam(c, "id")
	if !ok {
		return
	}
	err := getServices().Document.Delete(c.Request.Context(), docID, middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "document deleted successfully", nil)
}

func DownloadDocument(c *gin.Context) {
	docID, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := getServices().Document.Download(c.Request.Context(), docID)
	if respondServiceError(c, err) {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Header("Content-Type", out.Document.FileType)
	c.File(out.AbsPath)
}

func PreviewDocument(c *gin.Context) {
	docID, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := getServices().Document.Preview(c.Request.Context(), docID)
	if respondServiceError(c, err) {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", out.Filename))
	c.Header("Content-Type", out.Document.FileType)
	c.File(out.AbsPath)
}

func DocumentThumbnail(c *gin.Context) {
	docID, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := getServices().Document.Thumbnail(c.Request.Context(), docID)
	if respondServiceError(c, err) {
		return
	}

	c.Header("Content-Type", "image/jpeg")
	c.File(out.AbsPath)
}
