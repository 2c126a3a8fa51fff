package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// RegisterStudentRequest is the payload of POST /auth/register/student
type RegisterStudentRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,max=72"`
	CodeApoge string `json:"code_apoge" binding:"required"`
	CNE       string `json:"cne" binding:"required"`
	StreamID  int64  `json:"stream_id" binding:"required,gt=0"`
	// Role is optional; when set it must equal "student".
	Role string `json:"role,omitempty" binding:"omitempty,role"`
}

// RegisterTeacherRequest is the payload of POST /auth/register/teacher
type RegisterTeacherRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
	StreamID int64  `json:"stream_id" binding:"required,gt=0"`
	Role     string `json:"role,omitempty" binding:"omitempty,role"`
}

// CreateAdminRequest is the payload of POST /auth/create-admin
type CreateAdminRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
	Role     string `json:"role,omitempty" binding:"omitempty,role"`
}
