// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/examdesk/internal/app/models/dto"
	"github.com/yigit/examdesk/internal/app/services"
	"github.com/yigit/examdesk/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user and returns a bearer access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse "Too many login attempts"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, token)
}

// RegisterStudent handles student registration
// @Summary Register a student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or role"
// @Failure 404 {object} dto.ErrorResponse "Stream not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /auth/register/student [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.RegisterStudent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Student registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// RegisterTeacher handles teacher registration
// @Summary Register a teacher
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterTeacherRequest true "Teacher information"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or role"
// @Failure 404 {object} dto.ErrorResponse "Stream not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /auth/register/teacher [post]
func (c *AuthController) RegisterTeacher(ctx *gin.Context) {
	var req dto.RegisterTeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.RegisterTeacher(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Teacher registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// CreateAdmin creates another admin account
// @Summary Create an admin
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Admin information"
// @Success 201 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /auth/create-admin [post]
func (c *AuthController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.CreateAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if caller, ok := middleware.CurrentUser(ctx); ok {
		c.logger.Info().Int64("createdBy", caller.ID).Int64("adminID", user.ID).Msg("Admin created")
	}
	ctx.JSON(http.StatusCreated, dto.NewUserResponse(user))
}
