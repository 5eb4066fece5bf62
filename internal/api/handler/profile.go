package handler

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/subtrackify/subtrackify/internal/api/middleware"
	"github.com/subtrackify/subtrackify/internal/model/dto"
	"github.com/subtrackify/subtrackify/internal/pkg/response"
	"github.com/subtrackify/subtrackify/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Get 获取个人资料
// GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFoundError(c, "Profile not found")
		default:
			log.Printf("get profile failed: %v", err)
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, profile)
}

// Update 更新个人资料
// PUT /api/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.ConflictError(c, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFoundError(c, err.Error())
		default:
			log.Printf("update profile failed: %v", err)
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "Profile updated successfully", profile)
}

// ChangePassword 修改密码
// POST /api/profile/change-password
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.profileService.ChangePassword(userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFoundError(c, err.Error())
		default:
			log.Printf("change password failed: %v", err)
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "Password changed successfully", nil)
}

// Delete 删除账号（级联删除订阅）
// DELETE /api/profile
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	if err := h.profileService.DeleteAccount(userID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFoundError(c, err.Error())
		default:
			log.Printf("delete account failed: %v", err)
			response.ServerError(c, "Failed to delete account")
		}
		return
	}

	response.SuccessWithMessage(c, "Account deleted successfully", nil)
}
