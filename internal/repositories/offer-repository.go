package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"procurement-api/internal/entities"
	"procurement-api/internal/infrastructure/bd"
	apperrors "procurement-api/pkg/errors"
)

const offerTable = "offers"

var offerSelectColumns = []string{
	"o.id", "o.request_id", "o.equipment_id", "o.price", "o.currency", "o.quantity", "o.delivery_date",
	"o.warranty_period_months", "o.status", "o.terms_and_conditions", "o.notes", "o.additional_services",
	"o.discount_percentage", "o.payment_terms", "o.custom_payment_terms",
	"o.created_at", "o.updated_at", "o.is_active",
}

var offerColumns = bd.Columns{
	IDColumn: "o.id",
	Fields: map[string]bd.Column{
		"id":                     {Expr: "o.id", Kind: bd.KindInt},
		"request_id":             {Expr: "o.request_id", Kind: bd.KindInt},
		"equipment_id":           {Expr: "o.equipment_id", Kind: bd.KindInt},
		"price":                  {Expr: "o.price", Kind: bd.KindFloat},
		"currency":               {Expr: "o.currency", Kind: bd.KindText},
		"quantity":               {Expr: "o.quantity", Kind: bd.KindInt},
		"delivery_date":          {Expr: "o.delivery_date", Kind: bd.KindTime},
		"warranty_period_months": {Expr: "o.warranty_period_months", Kind: bd.KindInt},
		"status":                 {Expr: "o.status", Kind: bd.KindText},
		"terms_and_conditions":   {Expr: "o.terms_and_conditions", Kind: bd.KindText},
		"notes":                  {Expr: "o.notes", Kind: bd.KindText},
		"discount_percentage":    {Expr: "o.discount_percentage", Kind: bd.KindFloat},
		"payment_terms":          {Expr: "o.payment_terms", Kind: bd.KindText},
		"custom_payment_terms":   {Expr: "o.custom_payment_terms", Kind: bd.KindText},
		"created_at":             {Expr: "o.created_at", Kind: bd.KindTime},
		"updated_at":             {Expr: "o.updated_at", Kind: bd.KindTime},
		"is_active":              {Expr: "o.is_active", Kind: bd.KindBool},
	},
}

type OfferRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*entities.Offer, error)
	List(ctx context.Context, filter bd.ListFilter) ([]entities.Offer, error)
	Create(ctx context.Context, offer *entities.Offer) (*entities.Offer, error)
	Update(ctx context.Context, id string, patch entities.OfferPatch) (*entities.Offer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type OfferRepository struct {
	storage Querier
}

func NewOfferRepository(storage Querier) OfferRepositoryInterface {
	return &OfferRepository{storage: storage}
}

func scanOffer(row pgx.Row) (*entities.Offer, error) {
	var o entities.Offer
	var services map[string]bool

	err := row.Scan(
		&o.ID, &o.RequestID, &o.EquipmentID, &o.Price, &o.Currency, &o.Quantity, &o.DeliveryDate,
		&o.WarrantyPeriodMonths, &o.Status, &o.TermsAndConditions, &o.Notes, &services,
		&o.DiscountPercentage, &o.PaymentTerms, &o.CustomPaymentTerms,
		&o.CreatedAt, &o.UpdatedAt, &o.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	o.AdditionalServices = entities.ServicesToList(services)
	return &o, nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*entities.Offer, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	query, args, err := psql.Select(offerSelectColumns...).From("offers o").Where(sq.Eq{"o.id": key}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanOffer(r.storage.QueryRow(ctx, query, args...))
}

func (r *OfferRepository) List(ctx context.Context, filter bd.ListFilter) ([]entities.Offer, error) {
	builder, err := bd.Apply(psql.Select(offerSelectColumns...).From("offers o"), filter, offerColumns)
	if err != nil {
		return nil, err
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]entities.Offer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, *o)
	}
	return offers, rows.Err()
}

func (r *OfferRepository) Create(ctx context.Context, offer *entities.Offer) (*entities.Offer, error) {
	if err := entities.Validate(offer); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO offers (request_id, equipment_id, price, currency, quantity, delivery_date, warranty_period_months,
		                    status, terms_and_conditions, notes, additional_services, discount_percentage,
		                    payment_terms, custom_payment_terms, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		offer.RequestID, offer.EquipmentID, offer.Price, offer.Currency, offer.Quantity, offer.DeliveryDate,
		offer.WarrantyPeriodMonths, offer.Status, offer.TermsAndConditions, offer.Notes,
		entities.ServicesFromList(offer.AdditionalServices), offer.DiscountPercentage,
		offer.PaymentTerms, offer.CustomPaymentTerms, offer.IsActive,
	).Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
	if err != nil {
		return nil, translateWriteError(err)
	}

	offer.AdditionalServices = entities.ServicesToList(entities.ServicesFromList(offer.AdditionalServices))
	return offer, nil
}

func (r *OfferRepository) Update(ctx context.Context, id string, patch entities.OfferPatch) (*entities.Offer, error) {
	offer, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(offer)
	if err := entities.Validate(offer); err != nil {
		return nil, err
	}

	query := `
		UPDATE offers
		SET request_id = $1, equipment_id = $2, price = $3, currency = $4, quantity = $5, delivery_date = $6,
		    warranty_period_months = $7, status = $8, terms_and_conditions = $9, notes = $10,
		    additional_services = $11, discount_percentage = $12, payment_terms = $13,
		    custom_payment_terms = $14, is_active = $15, updated_at = NOW()
		WHERE id = $16
		RETURNING updated_at
	`
	err = r.storage.QueryRow(ctx, query,
		offer.RequestID, offer.EquipmentID, offer.Price, offer.Currency, offer.Quantity, offer.DeliveryDate,
		offer.WarrantyPeriodMonths, offer.Status, offer.TermsAndConditions, offer.Notes,
		entities.ServicesFromList(offer.AdditionalServices), offer.DiscountPercentage,
		offer.PaymentTerms, offer.CustomPaymentTerms, offer.IsActive, offer.ID,
	).Scan(&offer.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateWriteError(err)
	}

	offer.AdditionalServices = entities.ServicesToList(entities.ServicesFromList(offer.AdditionalServices))
	return offer, nil
}

func (r *OfferRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.storage, offerTable, id)
}
