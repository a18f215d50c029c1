package models

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Type  string `json:"type,omitempty"`
}

// User is the profile returned by GET /api/users/profile.
type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// Session is the authenticated actor held by the auth slice.
type Session struct {
	User
	Token string `json:"-"`
}

func NewSession(user User, token string) *Session {
	return &Session{User: user, Token: token}
}
