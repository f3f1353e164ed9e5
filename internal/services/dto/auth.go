package dto

// SendVerificationRequest asks for a code to be mailed to the address.
type SendVerificationRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
	Code  string `json:"code" binding:"required" validate:"required,len=6,numeric"`
}

type CheckEmailRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required" validate:"required,min=3"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Mobile   string `json:"mobile" binding:"required" validate:"required,mobile"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required" validate:"required"`
	NewPassword     string `json:"new_password" binding:"required" validate:"required,min=8"`
}
