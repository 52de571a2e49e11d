package user

type NewUserReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateUserReq carries a partial update: nil fields are left untouched.
type UpdateUserReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}
