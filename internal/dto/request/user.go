package request

// UpdateUserRequest carries a partial profile edit; nil fields are left
// untouched.
type UpdateUserRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,e164ish"`
	Password     *string `json:"password" validate:"omitempty,min=6"`
	Address      *string `json:"address"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,url"`
}
