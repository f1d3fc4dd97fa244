package entities

// User represents a user account as stored and served by the backend.
// Password is only ever sent outward inside a LoginRequest.
type User struct {
	ID         int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	Email      string  `gorm:"unique;not null" json:"email"`
	WeightGoal *string `json:"weight_goal"`
	Password   *string `json:"password,omitempty"`
}

// UserSummary is the password-free user shape returned by the login endpoint.
type UserSummary struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	WeightGoal *string `json:"weight_goal"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is an envelope: User is only meaningful when Success is true,
// otherwise Message carries the failure reason.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *UserSummary `json:"user"`
}
