package dto

// UserDTO identidad contenida en el token.
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthSuccessResponse respuesta de GET /auth/success.
type AuthSuccessResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Usage   string `json:"usage"`
}

// VerifyResponse respuesta de GET /auth/verify.
type VerifyResponse struct {
	Authenticated bool     `json:"authenticated"`
	User          *UserDTO `json:"user,omitempty"`
	Message       string   `json:"message,omitempty"`
}
