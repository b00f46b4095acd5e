package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email
	// required: true
	// example: john_doe
	Login string `json:"login"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Invalid username or password
	Error string `json:"error"`
}

// MessageResponse is returned by endpoints that only report an outcome.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}
