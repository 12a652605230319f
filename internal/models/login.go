package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: admin
	Username string `json:"username"`

	// Password
	// required: true
	// example: admin123
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return &ValidationError{Message: "Username and password are required"}
	}
	return nil
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Signed bearer token
	// example: JWT_TOKEN
	AccessToken string `json:"access_token"`

	User UserProfile `json:"user"`
}
