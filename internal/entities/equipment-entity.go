package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"procurement-api/pkg/types"
)

type Equipment struct {
	types.BaseEntity

	Name            string                 `json:"name" db:"name" validate:"required,min=1,max=100"`
	Model           string                 `json:"model" db:"model" validate:"required,min=1,max=100"`
	SerialNumber    string                 `json:"serial_number" db:"serial_number" validate:"required,min=1,max=100"`
	Manufacturer    string                 `json:"manufacturer" db:"manufacturer" validate:"required,min=1,max=100"`
	Category        string                 `json:"category" db:"category" validate:"required,oneof=server network storage other"`
	Status          string                 `json:"status" db:"status" validate:"required,oneof=available in_use maintenance retired"`
	PurchaseDate    null.Time              `json:"purchase_date" db:"purchase_date"`
	WarrantyEndDate null.Time              `json:"warranty_end_date" db:"warranty_end_date"`
	Location        null.String            `json:"location" db:"location" validate:"omitempty,max=255"`
	Specifications  map[string]interface{} `json:"specifications" db:"specifications"`
	Tags            []string               `json:"tags" db:"tags" validate:"unique_tag_keys,dive,tag_pair"`
}

type EquipmentPatch struct {
	Name            *string
	Model           *string
	SerialNumber    *string
	Manufacturer    *string
	Category        *string
	Status          *string
	PurchaseDate    *time.Time
	WarrantyEndDate *time.Time
	Location        *string
	Specifications  map[string]interface{}
	Tags            *[]string
	IsActive        *bool
}

func (p EquipmentPatch) Apply(e *Equipment) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Model != nil {
		e.Model = *p.Model
	}
	if p.SerialNumber != nil {
		e.SerialNumber = *p.SerialNumber
	}
	if p.Manufacturer != nil {
		e.Manufacturer = *p.Manufacturer
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.PurchaseDate != nil {
		e.PurchaseDate = null.TimeFrom(*p.PurchaseDate)
	}
	if p.WarrantyEndDate != nil {
		e.WarrantyEndDate = null.TimeFrom(*p.WarrantyEndDate)
	}
	if p.Location != nil {
		e.Location = null.StringFrom(*p.Location)
	}
	if p.Specifications != nil {
		e.Specifications = p.Specifications
	}
	if p.Tags != nil {
		e.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
}
