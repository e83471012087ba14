package model

// Admin is a console user. Role drives menu and action visibility.
type Admin struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt Time   `json:"created_at"`
}

// AdminInput is the create/update payload. Password is omitted on update when blank.
type AdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// LoginResult is the backend's answer to POST /auth/login.
type LoginResult struct {
	Token    string `json:"token"`
	UserType string `json:"user_type"`
	User     Admin  `json:"user"`
	Message  string `json:"message,omitempty"`
}
