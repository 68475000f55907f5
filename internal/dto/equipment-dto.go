package dto

import "time"

type CreateEquipmentDTO struct {
	Name            string                 `json:"name" validate:"required,min=1,max=100"`
	Model           string                 `json:"model" validate:"required,min=1,max=100"`
	SerialNumber    string                 `json:"serial_number" validate:"required,min=1,max=100"`
	Manufacturer    string                 `json:"manufacturer" validate:"required,min=1,max=100"`
	Category        string                 `json:"category" validate:"required,oneof=server network storage other"`
	Status          string                 `json:"status" validate:"required,oneof=available in_use maintenance retired"`
	PurchaseDate    *time.Time             `json:"purchase_date"`
	WarrantyEndDate *time.Time             `json:"warranty_end_date"`
	Location        *string                `json:"location" validate:"omitempty,max=255"`
	Specifications  map[string]interface{} `json:"specifications"`
	Tags            []string               `json:"tags" validate:"omitempty,unique_tag_keys,dive,tag_pair"`
}

type UpdateEquipmentDTO struct {
	Name            *string                `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Model           *string                `json:"model,omitempty" validate:"omitempty,min=1,max=100"`
	SerialNumber    *string                `json:"serial_number,omitempty" validate:"omitempty,min=1,max=100"`
	Manufacturer    *string                `json:"manufacturer,omitempty" validate:"omitempty,min=1,max=100"`
	Category        *string                `json:"category,omitempty" validate:"omitempty,oneof=server network storage other"`
	Status          *string                `json:"status,omitempty" validate:"omitempty,oneof=available in_use maintenance retired"`
	PurchaseDate    *time.Time             `json:"purchase_date,omitempty"`
	WarrantyEndDate *time.Time             `json:"warranty_end_date,omitempty"`
	Location        *string                `json:"location,omitempty" validate:"omitempty,max=255"`
	Specifications  map[string]interface{} `json:"specifications,omitempty"`
	Tags            *[]string              `json:"tags,omitempty" validate:"omitempty,unique_tag_keys,dive,tag_pair"`
	IsActive        *bool                  `json:"is_active,omitempty"`
}
