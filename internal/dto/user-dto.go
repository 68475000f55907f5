package dto

type CreateUserDTO struct {
	Username    string  `json:"username" validate:"required,min=3,max=50"`
	Email       string  `json:"email" validate:"required,max=100,custom_email"`
	FullName    string  `json:"full_name" validate:"required,min=1,max=100"`
	Password    string  `json:"password" validate:"required,min=8,max=72"`
	Role        string  `json:"role" validate:"omitempty,oneof=admin manager user"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
}

type UpdateUserDTO struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email       *string `json:"email,omitempty" validate:"omitempty,max=100,custom_email"`
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=admin manager user"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
