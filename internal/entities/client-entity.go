package entities

import (
	"github.com/aarondl/null/v8"

	"procurement-api/pkg/types"
)

type Client struct {
	types.BaseEntity

	Name          string      `json:"name" db:"name" validate:"required,min=1,max=100"`
	Email         string      `json:"email" db:"email" validate:"required,max=100,custom_email"`
	PhoneNumber   null.String `json:"phone_number" db:"phone_number" validate:"omitempty,max=20,phone_e164"`
	Address       null.String `json:"address" db:"address" validate:"omitempty,max=255"`
	CompanyName   null.String `json:"company_name" db:"company_name" validate:"omitempty,max=100"`
	ContactPerson null.String `json:"contact_person" db:"contact_person" validate:"omitempty,max=100"`
	Notes         null.String `json:"notes" db:"notes" validate:"omitempty,max=1000"`
	Tags          []string    `json:"tags" db:"tags" validate:"unique_tag_keys,dive,tag_pair"`
}

type ClientPatch struct {
	Name          *string
	Email         *string
	PhoneNumber   *string
	Address       *string
	CompanyName   *string
	ContactPerson *string
	Notes         *string
	Tags          *[]string
	IsActive      *bool
}

func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = null.StringFrom(*p.PhoneNumber)
	}
	if p.Address != nil {
		c.Address = null.StringFrom(*p.Address)
	}
	if p.CompanyName != nil {
		c.CompanyName = null.StringFrom(*p.CompanyName)
	}
	if p.ContactPerson != nil {
		c.ContactPerson = null.StringFrom(*p.ContactPerson)
	}
	if p.Notes != nil {
		c.Notes = null.StringFrom(*p.Notes)
	}
	if p.Tags != nil {
		c.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
}
