package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"

	"procurement-api/pkg/types"
)

type Request struct {
	types.BaseEntity

	Title                  string                 `json:"title" db:"title" validate:"required,min=1,max=200"`
	Description            string                 `json:"description" db:"description" validate:"required,min=1,max=2000"`
	ClientID               uint64                 `json:"client_id" db:"client_id" validate:"required,gt=0"`
	EquipmentCategory      string                 `json:"equipment_category" db:"equipment_category" validate:"required,oneof=server network storage other"`
	RequiredSpecifications map[string]interface{} `json:"required_specifications" db:"required_specifications"`
	Quantity               int                    `json:"quantity" db:"quantity" validate:"gt=0"`
	Priority               string                 `json:"priority" db:"priority" validate:"required,oneof=low medium high"`
	Status                 string                 `json:"status" db:"status" validate:"required,oneof=draft pending approved rejected completed cancelled"`
	BudgetMin              null.Float64           `json:"budget_min" db:"budget_min" validate:"omitempty,gte=0"`
	BudgetMax              null.Float64           `json:"budget_max" db:"budget_max" validate:"omitempty,gte=0"`
	Currency               string                 `json:"currency" db:"currency" validate:"required,oneof=USD EUR GBP"`
	DesiredDeliveryDate    null.Time              `json:"desired_delivery_date" db:"desired_delivery_date"`
	Notes                  null.String            `json:"notes" db:"notes" validate:"omitempty,max=1000"`
	Tags                   []string               `json:"tags" db:"tags" validate:"unique_tag_keys,dive,tag_pair"`
}

// requestBudgetRange rejects a budget whose lower bound exceeds its upper bound.
func requestBudgetRange(sl validator.StructLevel) {
	r, ok := sl.Current().Interface().(Request)
	if !ok {
		return
	}
	if r.BudgetMin.Valid && r.BudgetMax.Valid && r.BudgetMin.Float64 > r.BudgetMax.Float64 {
		sl.ReportError(r.BudgetMin, "BudgetMin", "budget_min", "ltefield", "BudgetMax")
	}
}

type RequestPatch struct {
	Title                  *string
	Description            *string
	ClientID               *uint64
	EquipmentCategory      *string
	RequiredSpecifications map[string]interface{}
	Quantity               *int
	Priority               *string
	Status                 *string
	BudgetMin              *float64
	BudgetMax              *float64
	Currency               *string
	DesiredDeliveryDate    *time.Time
	Notes                  *string
	Tags                   *[]string
	IsActive               *bool
}

func (p RequestPatch) Apply(r *Request) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.ClientID != nil {
		r.ClientID = *p.ClientID
	}
	if p.EquipmentCategory != nil {
		r.EquipmentCategory = *p.EquipmentCategory
	}
	if p.RequiredSpecifications != nil {
		r.RequiredSpecifications = p.RequiredSpecifications
	}
	if p.Quantity != nil {
		r.Quantity = *p.Quantity
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.BudgetMin != nil {
		r.BudgetMin = null.Float64From(*p.BudgetMin)
	}
	if p.BudgetMax != nil {
		r.BudgetMax = null.Float64From(*p.BudgetMax)
	}
	if p.Currency != nil {
		r.Currency = *p.Currency
	}
	if p.DesiredDeliveryDate != nil {
		r.DesiredDeliveryDate = null.TimeFrom(*p.DesiredDeliveryDate)
	}
	if p.Notes != nil {
		r.Notes = null.StringFrom(*p.Notes)
	}
	if p.Tags != nil {
		r.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
}
