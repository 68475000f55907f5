package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"procurement-api/pkg/types"
)

type Offer struct {
	types.BaseEntity

	RequestID            uint64       `json:"request_id" db:"request_id" validate:"required,gt=0"`
	EquipmentID          uint64       `json:"equipment_id" db:"equipment_id" validate:"required,gt=0"`
	Price                float64      `json:"price" db:"price" validate:"gte=0"`
	Currency             string       `json:"currency" db:"currency" validate:"required,oneof=USD EUR GBP"`
	Quantity             int          `json:"quantity" db:"quantity" validate:"gt=0"`
	DeliveryDate         null.Time    `json:"delivery_date" db:"delivery_date"`
	WarrantyPeriodMonths int          `json:"warranty_period_months" db:"warranty_period_months" validate:"gte=0"`
	Status               string       `json:"status" db:"status" validate:"required,oneof=draft pending accepted rejected cancelled"`
	TermsAndConditions   null.String  `json:"terms_and_conditions" db:"terms_and_conditions" validate:"omitempty,max=2000"`
	Notes                null.String  `json:"notes" db:"notes" validate:"omitempty,max=1000"`
	AdditionalServices   []string     `json:"additional_services" db:"additional_services" validate:"dive,required"`
	DiscountPercentage   null.Float64 `json:"discount_percentage" db:"discount_percentage" validate:"omitempty,gte=0,lte=100"`
	PaymentTerms         string       `json:"payment_terms" db:"payment_terms" validate:"required,oneof=immediate 30_days 60_days 90_days custom"`
	CustomPaymentTerms   null.String  `json:"custom_payment_terms" db:"custom_payment_terms" validate:"omitempty,max=255"`
}

type OfferPatch struct {
	RequestID            *uint64
	EquipmentID          *uint64
	Price                *float64
	Currency             *string
	Quantity             *int
	DeliveryDate         *time.Time
	WarrantyPeriodMonths *int
	Status               *string
	TermsAndConditions   *string
	Notes                *string
	AdditionalServices   *[]string
	DiscountPercentage   *float64
	PaymentTerms         *string
	CustomPaymentTerms   *string
	IsActive             *bool
}

func (p OfferPatch) Apply(o *Offer) {
	if p.RequestID != nil {
		o.RequestID = *p.RequestID
	}
	if p.EquipmentID != nil {
		o.EquipmentID = *p.EquipmentID
	}
	if p.Price != nil {
		o.Price = *p.Price
	}
	if p.Currency != nil {
		o.Currency = *p.Currency
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.DeliveryDate != nil {
		o.DeliveryDate = null.TimeFrom(*p.DeliveryDate)
	}
	if p.WarrantyPeriodMonths != nil {
		o.WarrantyPeriodMonths = *p.WarrantyPeriodMonths
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.TermsAndConditions != nil {
		o.TermsAndConditions = null.StringFrom(*p.TermsAndConditions)
	}
	if p.Notes != nil {
		o.Notes = null.StringFrom(*p.Notes)
	}
	if p.AdditionalServices != nil {
		o.AdditionalServices = append([]string(nil), (*p.AdditionalServices)...)
	}
	if p.DiscountPercentage != nil {
		o.DiscountPercentage = null.Float64From(*p.DiscountPercentage)
	}
	if p.PaymentTerms != nil {
		o.PaymentTerms = *p.PaymentTerms
	}
	if p.CustomPaymentTerms != nil {
		o.CustomPaymentTerms = null.StringFrom(*p.CustomPaymentTerms)
	}
	if p.IsActive != nil {
		o.IsActive = *p.IsActive
	}
}
