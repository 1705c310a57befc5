package api

// Wire types for the Tripy orchestration service, aligned to its /api/v1
// JSON contract.

// TokenResponse is returned by POST /auth/login.
type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

// User is the profile shape shared by /auth/me, /auth/register and /admin/users.
type User struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	RealName    *string  `json:"real_name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	PassengerID *string  `json:"passenger_id"`
	IsActive    bool     `json:"is_active"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

// RegisterPayload is the body for POST /auth/register.
type RegisterPayload struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	RealName    string `json:"real_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	PassengerID string `json:"passenger_id,omitempty"`
}

type graphRequest struct {
	UserInput string `json:"user_input"`
	ThreadID  string `json:"thread_id,omitempty"`
}

// GraphResponse is one assistant turn from POST /graph/execute.
type GraphResponse struct {
	Assistant   string `json:"assistant"`
	ThreadID    string `json:"thread_id"`
	Interrupted bool   `json:"interrupted"`
}

// HealthResponse is the body of the /health/live and /health/ready probes.
type HealthResponse struct {
	Status string `json:"status"`
}
