package entities

import (
	"github.com/aarondl/null/v8"

	"procurement-api/pkg/types"
)

type User struct {
	types.BaseEntity

	Username       string      `json:"username" db:"username" validate:"required,min=3,max=50"`
	Email          string      `json:"email" db:"email" validate:"required,max=100,custom_email"`
	FullName       string      `json:"full_name" db:"full_name" validate:"required,min=1,max=100"`
	HashedPassword string      `json:"-" db:"hashed_password" validate:"required,max=255"`
	Role           string      `json:"role" db:"role" validate:"required,oneof=admin manager user"`
	PhoneNumber    null.String `json:"phone_number" db:"phone_number" validate:"omitempty,max=20,phone_e164"`
}

// UserPatch lists the fields an update may change; nil means "leave as is".
// HashedPassword must already be hashed, the service layer owns bcrypt.
type UserPatch struct {
	Username       *string
	Email          *string
	FullName       *string
	HashedPassword *string
	Role           *string
	PhoneNumber    *string
	IsActive       *bool
}

func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.HashedPassword != nil {
		u.HashedPassword = *p.HashedPassword
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = null.StringFrom(*p.PhoneNumber)
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}
