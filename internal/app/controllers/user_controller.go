package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examdesk/internal/app/models/dto"
	"github.com/yigit/examdesk/internal/app/services"
	"github.com/yigit/examdesk/internal/middleware"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

// UserController serves user listings and the caller's identity
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Me returns the authenticated user
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me [get]
// @Router /auth/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListUsers returns every user
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/ [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// ListTeachers returns the teachers, for exam assignment forms
// @Summary List teachers
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/teachers [get]
func (c *UserController) ListTeachers(ctx *gin.Context) {
	users, err := c.userService.ListTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponses(users))
}
