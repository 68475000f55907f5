package dto

import "time"

type CreateRequestDTO struct {
	Title                  string                 `json:"title" validate:"required,min=1,max=200"`
	Description            string                 `json:"description" validate:"required,min=1,max=2000"`
	ClientID               uint64                 `json:"client_id" validate:"required,gt=0"`
	EquipmentCategory      string                 `json:"equipment_category" validate:"required,oneof=server network storage other"`
	RequiredSpecifications map[string]interface{} `json:"required_specifications"`
	Quantity               int                    `json:"quantity" validate:"required,gt=0"`
	Priority               string                 `json:"priority" validate:"required,oneof=low medium high"`
	Status                 string                 `json:"status" validate:"omitempty,oneof=draft pending approved rejected completed cancelled"`
	BudgetMin              *float64               `json:"budget_min" validate:"omitempty,gte=0"`
	BudgetMax              *float64               `json:"budget_max" validate:"omitempty,gte=0"`
	Currency               string                 `json:"currency" validate:"required,oneof=USD EUR GBP"`
	DesiredDeliveryDate    *time.Time             `json:"desired_delivery_date"`
	Notes                  *string                `json:"notes" validate:"omitempty,max=1000"`
	Tags                   []string               `json:"tags" validate:"omitempty,unique_tag_keys,dive,tag_pair"`
}

type UpdateRequestDTO struct {
	Title                  *string                `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description            *string                `json:"description,omitempty" validate:"omitempty,min=1,max=2000"`
	ClientID               *uint64                `json:"client_id,omitempty" validate:"omitempty,gt=0"`
	EquipmentCategory      *string                `json:"equipment_category,omitempty" validate:"omitempty,oneof=server network storage other"`
	RequiredSpecifications map[string]interface{} `json:"required_specifications,omitempty"`
	Quantity               *int                   `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Priority               *string                `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Status                 *string                `json:"status,omitempty" validate:"omitempty,oneof=draft pending approved rejected completed cancelled"`
	BudgetMin              *float64               `json:"budget_min,omitempty" validate:"omitempty,gte=0"`
	BudgetMax              *float64               `json:"budget_max,omitempty" validate:"omitempty,gte=0"`
	Currency               *string                `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP"`
	DesiredDeliveryDate    *time.Time             `json:"desired_delivery_date,omitempty"`
	Notes                  *string                `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Tags                   *[]string              `json:"tags,omitempty" validate:"omitempty,unique_tag_keys,dive,tag_pair"`
	IsActive               *bool                  `json:"is_active,omitempty"`
}
