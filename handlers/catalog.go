package handlers

import (
	"github.com/nguyentuanthien2384/unishare-be-main/services"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"

	"github.com/gin-gonic/gin"
)

type CreateSubjectRequest struct {
	Name            string `json:"name" binding:"required,max=200"`
	Code            string `json:"code" binding:"required,max=50"`
	ManagingFaculty string `json:"managing_faculty" binding:"omitempty,max=200"`
}

type UpdateSubjectRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=200"`
	Code            *string `json:"code" binding:"omitempty,max=50"`
	ManagingFaculty *string `json:"managing_faculty" binding:"omitempty,max=200"`
}

type CreateMajorRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Code        string `json:"code" binding:"omitempty,max=50"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	SubjectIDs  []uint `json:"subject_ids"`
}

type UpdateMajorRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Code        *string `json:"code" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	SubjectIDs  *[]uint `json:"subject_ids"`
}

func ListSubjects(c *gin.Context) {
	subjects, err := getServices().Catalog.ListSubjects(c.Request.Context())
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, subjects)
}

func CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	subject, err := getServices().Catalog.CreateSubject(c.Request.Context(), services.CreateSubjectInput{
		Name:            req.Name,
		Code:            req.Code,
		ManagingFaculty: req.ManagingFaculty,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, subject)
}

func UpdateSubject(c *gin.Context) {
	subjectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	subject, err := getServices().Catalog.UpdateSubject(c.Request.Context(), subjectID, services.UpdateSubjectInput{
		Name:            req.Name,
		Code:            req.Code,
		ManagingFaculty: req.ManagingFaculty,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, subject)
}

func DeleteSubject(c *gin.Context) {
	subjectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := getServices().Catalog.RemoveSubject(c.Request.Context(), subjectID); respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "subject deleted", nil)
}

func ListMajors(c *gin.Context) {
	majors, err := getServices().Catalog.ListMajors(c.Request.Context())
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, majors)
}

func GetMajor(c *gin.Context) {
	majorID, ok := idParam(c, "id")
	if !ok {
		return
	}
	major, err := getServices().Catalog.GetMajor(c.Request.Context(), majorID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, major)
}

func CreateMajor(c *gin.Context) {
	var req CreateMajorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	major, err := getServices().Catalog.CreateMajor(c.Request.Context(), services.CreateMajorInput{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		SubjectIDs:  req.SubjectIDs,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, major)
}

func UpdateMajor(c *gin.Context) {
	majorID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateMajorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	major, err := getServices().Catalog.UpdateMajor(c.Request.Context(), majorID, services.UpdateMajorInput{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		SubjectIDs:  req.SubjectIDs,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, major)
}

func DeleteMajor(c *gin.Context) {
	majorID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := getServices().Catalog.RemoveMajor(c.Request.Context(), majorID); respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "major deleted", nil)
}
