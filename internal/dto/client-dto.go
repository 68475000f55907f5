package dto

type CreateClientDTO struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Email         string   `json:"email" validate:"required,max=100,custom_email"`
	PhoneNumber   *string  `json:"phone_number" validate:"omitempty,max=20"`
	Address       *string  `json:"address" validate:"omitempty,max=255"`
	CompanyName   *string  `json:"company_name" validate:"omitempty,max=100"`
	ContactPerson *string  `json:"contact_person" validate:"omitempty,max=100"`
	Notes         *string  `json:"notes" validate:"omitempty,max=1000"`
	Tags          []string `json:"tags" validate:"omitempty,unique_tag_keys,dive,tag_pair"`
}

type UpdateClientDTO struct {
	Name          *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email         *string   `json:"email,omitempty" validate:"omitempty,max=100,custom_email"`
	PhoneNumber   *string   `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Address       *string   `json:"address,omitempty" validate:"omitempty,max=255"`
	CompanyName   *string   `json:"company_name,omitempty" validate:"omitempty,max=100"`
	ContactPerson *string   `json:"contact_person,omitempty" validate:"omitempty,max=100"`
	Notes         *string   `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Tags          *[]string `json:"tags,omitempty" validate:"omitempty,unique_tag_keys,dive,tag_pair"`
	IsActive      *bool     `json:"is_active,omitempty"`
}
