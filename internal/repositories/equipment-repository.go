package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"procurement-api/internal/entities"
	"procurement-api/internal/infrastructure/bd"
	apperrors "procurement-api/pkg/errors"
)

const equipmentTable = "equipment"

var equipmentSelectColumns = []string{
	"e.id", "e.name", "e.model", "e.serial_number", "e.manufacturer", "e.category", "e.status",
	"e.purchase_date", "e.warranty_end_date", "e.location", "e.specifications", "e.tags",
	"e.created_at", "e.updated_at", "e.is_active",
}

var equipmentColumns = bd.Columns{
	IDColumn: "e.id",
	Fields: map[string]bd.Column{
		"id":                {Expr: "e.id", Kind: bd.KindInt},
		"name":              {Expr: "e.name", Kind: bd.KindText},
		"model":             {Expr: "e.model", Kind: bd.KindText},
		"serial_number":     {Expr: "e.serial_number", Kind: bd.KindText},
		"manufacturer":      {Expr: "e.manufacturer", Kind: bd.KindText},
		"category":          {Expr: "e.category", Kind: bd.KindText},
		"status":            {Expr: "e.status", Kind: bd.KindText},
		"purchase_date":     {Expr: "e.purchase_date", Kind: bd.KindTime},
		"warranty_end_date": {Expr: "e.warranty_end_date", Kind: bd.KindTime},
		"location":          {Expr: "e.location", Kind: bd.KindText},
		"created_at":        {Expr: "e.created_at", Kind: bd.KindTime},
		"updated_at":        {Expr: "e.updated_at", Kind: bd.KindTime},
		"is_active":         {Expr: "e.is_active", Kind: bd.KindBool},
	},
}

type EquipmentRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*entities.Equipment, error)
	List(ctx context.Context, filter bd.ListFilter) ([]entities.Equipment, error)
	Create(ctx context.Context, equipment *entities.Equipment) (*entities.Equipment, error)
	Update(ctx context.Context, id string, patch entities.EquipmentPatch) (*entities.Equipment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type EquipmentRepository struct {
	storage Querier
}

func NewEquipmentRepository(storage Querier) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var tags map[string]string

	err := row.Scan(
		&e.ID, &e.Name, &e.Model, &e.SerialNumber, &e.Manufacturer, &e.Category, &e.Status,
		&e.PurchaseDate, &e.WarrantyEndDate, &e.Location, &e.Specifications, &tags,
		&e.CreatedAt, &e.UpdatedAt, &e.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	e.Tags = entities.TagsToList(tags)
	return &e, nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*entities.Equipment, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	query, args, err := psql.Select(equipmentSelectColumns...).From("equipment e").Where(sq.Eq{"e.id": key}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) List(ctx context.Context, filter bd.ListFilter) ([]entities.Equipment, error) {
	builder, err := bd.Apply(psql.Select(equipmentSelectColumns...).From("equipment e"), filter, equipmentColumns)
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

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) Create(ctx context.Context, equipment *entities.Equipment) (*entities.Equipment, error) {
	if err := entities.Validate(equipment); err != nil {
		return nil, err
	}

	taken, err := exists(ctx, r.storage, equipmentTable, "serial_number", equipment.SerialNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: serial number %q", apperrors.ErrConflict, equipment.SerialNumber)
	}

	equipment.Specifications = jsonObject(equipment.Specifications)
	query := `
		INSERT INTO equipment (name, model, serial_number, manufacturer, category, status, purchase_date,
		                       warranty_end_date, location, specifications, tags, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err = r.storage.QueryRow(ctx, query,
		equipment.Name, equipment.Model, equipment.SerialNumber, equipment.Manufacturer,
		equipment.Category, equipment.Status, equipment.PurchaseDate, equipment.WarrantyEndDate,
		equipment.Location, equipment.Specifications, entities.TagsFromList(equipment.Tags), equipment.IsActive,
	).Scan(&equipment.ID, &equipment.CreatedAt, &equipment.UpdatedAt)
	if err != nil {
		return nil, translateWriteError(err)
	}

	equipment.Tags = entities.TagsToList(entities.TagsFromList(equipment.Tags))
	return equipment, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, id string, patch entities.EquipmentPatch) (*entities.Equipment, error) {
	equipment, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(equipment)
	if err := entities.Validate(equipment); err != nil {
		return nil, err
	}

	equipment.Specifications = jsonObject(equipment.Specifications)
	query := `
		UPDATE equipment
		SET name = $1, model = $2, serial_number = $3, manufacturer = $4, category = $5, status = $6,
		    purchase_date = $7, warranty_end_date = $8, location = $9, specifications = $10, tags = $11,
		    is_active = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at
	`
	err = r.storage.QueryRow(ctx, query,
		equipment.Name, equipment.Model, equipment.SerialNumber, equipment.Manufacturer,
		equipment.Category, equipment.Status, equipment.PurchaseDate, equipment.WarrantyEndDate,
		equipment.Location, equipment.Specifications, entities.TagsFromList(equipment.Tags),
		equipment.IsActive, equipment.ID,
	).Scan(&equipment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateWriteError(err)
	}

	equipment.Tags = entities.TagsToList(entities.TagsFromList(equipment.Tags))
	return equipment, nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.storage, equipmentTable, id)
}
