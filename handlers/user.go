package handlers

import (
	"github.com/nguyentuanthien2384/unishare-be-main/middleware"
	"github.com/nguyentuanthien2384/unishare-be-main/services"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=500"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

func GetMyProfile(c *gin.Context) {
	user, err := getServices().User.GetProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, user)
}

func GetUserProfile(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	user, err := getServices().User.GetProfile(c.Request.Context(), userID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, user)
}

func UpdateMyProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	user, err := getServices().User.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), services.UpdateProfileInput{
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, user)
}

func ChangeMyPassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	err := getServices().User.ChangePassword(c.Request.Context(), middleware.CurrentUserID(c), services.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "password changed successfully", nil)
}

func DeleteMyAccount(c *gin.Context) {
	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	err := getServices().User.DeleteOwnAccount(c.Request.Context(), middleware.CurrentUserID(c), req.Password)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "account deleted successfully", nil)
}

func GetMyStats(c *gin.Context) {
	stats, err := getServices().User.GetStats(c.Request.Context(), middleware.CurrentUserID(c))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, stats)
}

func GetUserStats(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	stats, err := getServices().User.GetStats(c.Request.Context(), userID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, stats)
}

func GetMyUploadStats(c *gin.Context) {
	out, err := getServices().User.GetUploadStats(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		c.Query("period"),
		c.Query("fromDate"),
		c.Query("toDate"),
	)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}
