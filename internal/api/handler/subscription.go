package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/subtrackify/subtrackify/internal/api/middleware"
	"github.com/subtrackify/subtrackify/internal/model/dto"
	"github.com/subtrackify/subtrackify/internal/pkg/response"
	"github.com/subtrackify/subtrackify/internal/service"
)

type SubscriptionHandler struct {
	subService *service.SubscriptionService
}

func NewSubscriptionHandler(subService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subService: subService,
	}
}

// List 获取订阅列表
// GET /api/subscriptions
func (h *SubscriptionHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var query dto.ListSubscriptionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	subs, err := h.subService.List(userID, &query)
	if err != nil {
		log.Printf("list subscriptions failed: %v", err)
		response.ServerError(c, "Failed to fetch subscriptions")
		return
	}

	response.Success(c, subs)
}

// Get 获取单个订阅
// GET /api/subscriptions/:id
func (h *SubscriptionHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		response.ParamError(c, "Invalid subscription ID")
		return
	}

	sub, err := h.subService.Get(id, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionNotFound):
			response.NotFoundError(c, err.Error())
		default:
			log.Printf("get subscription failed: %v", err)
			response.ServerError(c, "Failed to fetch subscription")
		}
		return
	}

	response.Success(c, sub)
}

// Create 创建订阅
// POST /api/subscriptions
func (h *SubscriptionHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	sub, err := h.subService.Create(userID, &req)
	if err != nil {
		log.Printf("create subscription failed: %v", err)
		response.ServerError(c, "Failed to create subscription")
		return
	}

	response.Created(c, "Subscription created successfully", sub)
}

// Update 更新订阅
// PUT /api/subscriptions/:id
func (h *SubscriptionHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		response.ParamError(c, "Invalid subscription ID")
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	sub, err := h.subService.Update(id, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFieldsToUpdate):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrSubscriptionNotFound):
			response.NotFoundError(c, err.Error())
		default:
			log.Printf("update subscription failed: %v", err)
			response.ServerError(c, "Failed to update subscription")
		}
		return
	}

	response.SuccessWithMessage(c, "Subscription updated successfully", sub)
}

// Delete 删除订阅
// DELETE /api/subscriptions/:id
func (h *SubscriptionHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		response.ParamError(c, "Invalid subscription ID")
		return
	}

	if err := h.subService.Delete(id, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionNotFound):
			response.NotFoundError(c, err.Error())
		default:
			log.Printf("delete subscription failed: %v", err)
			response.ServerError(c, "Failed to delete subscription")
		}
		return
	}

	response.SuccessWithMessage(c, "Subscription deleted successfully", nil)
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
