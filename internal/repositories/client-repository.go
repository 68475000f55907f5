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

const clientTable = "clients"

var clientSelectColumns = []string{
	"c.id", "c.name", "c.email", "c.phone_number", "c.address", "c.company_name",
	"c.contact_person", "c.notes", "c.tags", "c.created_at", "c.updated_at", "c.is_active",
}

var clientColumns = bd.Columns{
	IDColumn: "c.id",
	Fields: map[string]bd.Column{
		"id":             {Expr: "c.id", Kind: bd.KindInt},
		"name":           {Expr: "c.name", Kind: bd.KindText},
		"email":          {Expr: "c.email", Kind: bd.KindText},
		"phone_number":   {Expr: "c.phone_number", Kind: bd.KindText},
		"address":        {Expr: "c.address", Kind: bd.KindText},
		"company_name":   {Expr: "c.company_name", Kind: bd.KindText},
		"contact_person": {Expr: "c.contact_person", Kind: bd.KindText},
		"notes":          {Expr: "c.notes", Kind: bd.KindText},
		"created_at":     {Expr: "c.created_at", Kind: bd.KindTime},
		"updated_at":     {Expr: "c.updated_at", Kind: bd.KindTime},
		"is_active":      {Expr: "c.is_active", Kind: bd.KindBool},
	},
}

type ClientRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*entities.Client, error)
	List(ctx context.Context, filter bd.ListFilter) ([]entities.Client, error)
	Create(ctx context.Context, client *entities.Client) (*entities.Client, error)
	Update(ctx context.Context, id string, patch entities.ClientPatch) (*entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ClientRepository struct {
	storage Querier
}

func NewClientRepository(storage Querier) ClientRepositoryInterface {
	return &ClientRepository{storage: storage}
}

func scanClient(row pgx.Row) (*entities.Client, error) {
	var c entities.Client
	var tags map[string]string

	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.Address, &c.CompanyName,
		&c.ContactPerson, &c.Notes, &tags, &c.CreatedAt, &c.UpdatedAt, &c.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	c.Tags = entities.TagsToList(tags)
	c.PhoneNumber = normalizePhone(c.PhoneNumber)
	return &c, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*entities.Client, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	query, args, err := psql.Select(clientSelectColumns...).From("clients c").Where(sq.Eq{"c.id": key}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanClient(r.storage.QueryRow(ctx, query, args...))
}

func (r *ClientRepository) List(ctx context.Context, filter bd.ListFilter) ([]entities.Client, error) {
	builder, err := bd.Apply(psql.Select(clientSelectColumns...).From("clients c"), filter, clientColumns)
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

	clients := make([]entities.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Create(ctx context.Context, client *entities.Client) (*entities.Client, error) {
	client.PhoneNumber = normalizePhone(client.PhoneNumber)
	if err := entities.Validate(client); err != nil {
		return nil, err
	}

	taken, err := exists(ctx, r.storage, clientTable, "email", client.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: client email %q", apperrors.ErrConflict, client.Email)
	}

	query := `
		INSERT INTO clients (name, email, phone_number, address, company_name, contact_person, notes, tags, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err = r.storage.QueryRow(ctx, query,
		client.Name, client.Email, client.PhoneNumber, client.Address, client.CompanyName,
		client.ContactPerson, client.Notes, entities.TagsFromList(client.Tags), client.IsActive,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		return nil, translateWriteError(err)
	}

	client.Tags = entities.TagsToList(entities.TagsFromList(client.Tags))
	return client, nil
}

func (r *ClientRepository) Update(ctx context.Context, id string, patch entities.ClientPatch) (*entities.Client, error) {
	client, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(client)
	client.PhoneNumber = normalizePhone(client.PhoneNumber)
	if err := entities.Validate(client); err != nil {
		return nil, err
	}

	query := `
		UPDATE clients
		SET name = $1, email = $2, phone_number = $3, address = $4, company_name = $5,
		    contact_person = $6, notes = $7, tags = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`
	err = r.storage.QueryRow(ctx, query,
		client.Name, client.Email, client.PhoneNumber, client.Address, client.CompanyName,
		client.ContactPerson, client.Notes, entities.TagsFromList(client.Tags), client.IsActive, client.ID,
	).Scan(&client.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateWriteError(err)
	}

	client.Tags = entities.TagsToList(entities.TagsFromList(client.Tags))
	return client, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.storage, clientTable, id)
}
