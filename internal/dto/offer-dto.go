package dto

import "time"

type CreateOfferDTO struct {
	RequestID            uint64     `json:"request_id" validate:"required,gt=0"`
	EquipmentID          uint64     `json:"equipment_id" validate:"required,gt=0"`
	Price                float64    `json:"price" validate:"gte=0"`
	Currency             string     `json:"currency" validate:"required,oneof=USD EUR GBP"`
	Quantity             int        `json:"quantity" validate:"required,gt=0"`
	DeliveryDate         *time.Time `json:"delivery_date"`
	WarrantyPeriodMonths int        `json:"warranty_period_months" validate:"gte=0"`
	Status               string     `json:"status" validate:"omitempty,oneof=draft pending accepted rejected cancelled"`
	TermsAndConditions   *string    `json:"terms_and_conditions" validate:"omitempty,max=2000"`
	Notes                *string    `json:"notes" validate:"omitempty,max=1000"`
	AdditionalServices   []string   `json:"additional_services" validate:"omitempty,dive,required"`
	DiscountPercentage   *float64   `json:"discount_percentage" validate:"omitempty,gte=0,lte=100"`
	PaymentTerms         string     `json:"payment_terms" validate:"required,oneof=immediate 30_days 60_days 90_days custom"`
	CustomPaymentTerms   *string    `json:"custom_payment_terms" validate:"omitempty,max=255"`
}

type UpdateOfferDTO struct {
	RequestID            *uint64    `json:"request_id,omitempty" validate:"omitempty,gt=0"`
	EquipmentID          *uint64    `json:"equipment_id,omitempty" validate:"omitempty,gt=0"`
	Price                *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency             *string    `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP"`
	Quantity             *int       `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	DeliveryDate         *time.Time `json:"delivery_date,omitempty"`
	WarrantyPeriodMonths *int       `json:"warranty_period_months,omitempty" validate:"omitempty,gte=0"`
	Status               *string    `json:"status,omitempty" validate:"omitempty,oneof=draft pending accepted rejected cancelled"`
	TermsAndConditions   *string    `json:"terms_and_conditions,omitempty" validate:"omitempty,max=2000"`
	Notes                *string    `json:"notes,omitempty" validate:"omitempty,max=1000"`
	AdditionalServices   *[]string  `json:"additional_services,omitempty" validate:"omitempty,dive,required"`
	DiscountPercentage   *float64   `json:"discount_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	PaymentTerms         *string    `json:"payment_terms,omitempty" validate:"omitempty,oneof=immediate 30_days 60_days 90_days custom"`
	CustomPaymentTerms   *string    `json:"custom_payment_terms,omitempty" validate:"omitempty,max=255"`
	IsActive             *bool      `json:"is_active,omitempty"`
}
