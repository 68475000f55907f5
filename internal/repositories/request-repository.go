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

const requestTable = "requests"

var requestSelectColumns = []string{
	"r.id", "r.title", "r.description", "r.client_id", "r.equipment_category", "r.required_specifications",
	"r.quantity", "r.priority", "r.status", "r.budget_min", "r.budget_max", "r.currency",
	"r.desired_delivery_date", "r.notes", "r.tags", "r.created_at", "r.updated_at", "r.is_active",
}

var requestColumns = bd.Columns{
	IDColumn: "r.id",
	Fields: map[string]bd.Column{
		"id":                    {Expr: "r.id", Kind: bd.KindInt},
		"title":                 {Expr: "r.title", Kind: bd.KindText},
		"description":           {Expr: "r.description", Kind: bd.KindText},
		"client_id":             {Expr: "r.client_id", Kind: bd.KindInt},
		"equipment_category":    {Expr: "r.equipment_category", Kind: bd.KindText},
		"quantity":              {Expr: "r.quantity", Kind: bd.KindInt},
		"priority":              {Expr: "r.priority", Kind: bd.KindText},
		"status":                {Expr: "r.status", Kind: bd.KindText},
		"budget_min":            {Expr: "r.budget_min", Kind: bd.KindFloat},
		"budget_max":            {Expr: "r.budget_max", Kind: bd.KindFloat},
		"currency":              {Expr: "r.currency", Kind: bd.KindText},
		"desired_delivery_date": {Expr: "r.desired_delivery_date", Kind: bd.KindTime},
		"notes":                 {Expr: "r.notes", Kind: bd.KindText},
		"created_at":            {Expr: "r.created_at", Kind: bd.KindTime},
		"updated_at":            {Expr: "r.updated_at", Kind: bd.KindTime},
		"is_active":             {Expr: "r.is_active", Kind: bd.KindBool},
	},
}

type RequestRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*entities.Request, error)
	List(ctx context.Context, filter bd.ListFilter) ([]entities.Request, error)
	Create(ctx context.Context, request *entities.Request) (*entities.Request, error)
	Update(ctx context.Context, id string, patch entities.RequestPatch) (*entities.Request, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RequestRepository struct {
	storage Querier
}

func NewRequestRepository(storage Querier) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

func scanRequest(row pgx.Row) (*entities.Request, error) {
	var r entities.Request
	var tags map[string]string

	err := row.Scan(
		&r.ID, &r.Title, &r.Description, &r.ClientID, &r.EquipmentCategory, &r.RequiredSpecifications,
		&r.Quantity, &r.Priority, &r.Status, &r.BudgetMin, &r.BudgetMax, &r.Currency,
		&r.DesiredDeliveryDate, &r.Notes, &tags, &r.CreatedAt, &r.UpdatedAt, &r.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	r.Tags = entities.TagsToList(tags)
	return &r, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*entities.Request, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	query, args, err := psql.Select(requestSelectColumns...).From("requests r").Where(sq.Eq{"r.id": key}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanRequest(r.storage.QueryRow(ctx, query, args...))
}

func (r *RequestRepository) List(ctx context.Context, filter bd.ListFilter) ([]entities.Request, error) {
	builder, err := bd.Apply(psql.Select(requestSelectColumns...).From("requests r"), filter, requestColumns)
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

	requests := make([]entities.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) Create(ctx context.Context, request *entities.Request) (*entities.Request, error) {
	if err := entities.Validate(request); err != nil {
		return nil, err
	}

	request.RequiredSpecifications = jsonObject(request.RequiredSpecifications)
	query := `
		INSERT INTO requests (title, description, client_id, equipment_category, required_specifications, quantity,
		                      priority, status, budget_min, budget_max, currency, desired_delivery_date, notes, tags,
		                      is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		request.Title, request.Description, request.ClientID, request.EquipmentCategory,
		request.RequiredSpecifications, request.Quantity, request.Priority, request.Status,
		request.BudgetMin, request.BudgetMax, request.Currency, request.DesiredDeliveryDate,
		request.Notes, entities.TagsFromList(request.Tags), request.IsActive,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return nil, translateWriteError(err)
	}

	request.Tags = entities.TagsToList(entities.TagsFromList(request.Tags))
	return request, nil
}

func (r *RequestRepository) Update(ctx context.Context, id string, patch entities.RequestPatch) (*entities.Request, error) {
	request, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(request)
	if err := entities.Validate(request); err != nil {
		return nil, err
	}

	request.RequiredSpecifications = jsonObject(request.RequiredSpecifications)
	query := `
		UPDATE requests
		SET title = $1, description = $2, client_id = $3, equipment_category = $4, required_specifications = $5,
		    quantity = $6, priority = $7, status = $8, budget_min = $9, budget_max = $10, currency = $11,
		    desired_delivery_date = $12, notes = $13, tags = $14, is_active = $15, updated_at = NOW()
		WHERE id = $16
		RETURNING updated_at
	`
	err = r.storage.QueryRow(ctx, query,
		request.Title, request.Description, request.ClientID, request.EquipmentCategory,
		request.RequiredSpecifications, request.Quantity, request.Priority, request.Status,
		request.BudgetMin, request.BudgetMax, request.Currency, request.DesiredDeliveryDate,
		request.Notes, entities.TagsFromList(request.Tags), request.IsActive, request.ID,
	).Scan(&request.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateWriteError(err)
	}

	request.Tags = entities.TagsToList(entities.TagsFromList(request.Tags))
	return request, nil
}

func (r *RequestRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.storage, requestTable, id)
}
