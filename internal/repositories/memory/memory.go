// Package memory holds map-backed repositories that satisfy repositories.Registry.
// Services and seeders use them in tests to run without PostgreSQL.
package memory

import (
	"context"
	"sort"
	"strconv"

	"procurement-api/internal/entities"
	"procurement-api/internal/infrastructure/bd"
	"procurement-api/internal/repositories"
	apperrors "procurement-api/pkg/errors"
	"procurement-api/pkg/types"
)

// Repo stores one entity type keyed by its decimal id. Filters are recorded, not evaluated.
type Repo[E any, P interface{ Apply(*E) }] struct {
	Items      map[string]*E
	LastFilter bd.ListFilter
	CreateErr  error

	nextID uint64
	base   func(*E) *types.BaseEntity
}

func NewRepo[E any, P interface{ Apply(*E) }](base func(*E) *types.BaseEntity) *Repo[E, P] {
	return &Repo[E, P]{Items: map[string]*E{}, base: base}
}

// Put stores e under its current id, for seeding state directly.
func (m *Repo[E, P]) Put(e *E) {
	id := m.base(e).ID
	if id > m.nextID {
		m.nextID = id
	}
	cp := *e
	m.Items[strconv.FormatUint(id, 10)] = &cp
}

func (m *Repo[E, P]) GetByID(_ context.Context, id string) (*E, error) {
	item, ok := m.Items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (m *Repo[E, P]) List(_ context.Context, f bd.ListFilter) ([]E, error) {
	m.LastFilter = f
	out := make([]E, 0, len(m.Items))
	for _, item := range m.Items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return m.base(&out[i]).ID < m.base(&out[j]).ID })
	return out, nil
}

func (m *Repo[E, P]) Create(_ context.Context, e *E) (*E, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.nextID++
	m.base(e).ID = m.nextID
	cp := *e
	m.Items[strconv.FormatUint(m.nextID, 10)] = &cp
	return e, nil
}

func (m *Repo[E, P]) Update(_ context.Context, id string, patch P) (*E, error) {
	item, ok := m.Items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	patch.Apply(item)
	cp := *item
	return &cp, nil
}

func (m *Repo[E, P]) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.Items[id]; !ok {
		return false, nil
	}
	delete(m.Items, id)
	return true, nil
}

type UserRepo struct {
	*Repo[entities.User, entities.UserPatch]
}

func (m UserRepo) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range m.Items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type Registry struct {
	UserRepo      UserRepo
	ClientRepo    *Repo[entities.Client, entities.ClientPatch]
	EquipmentRepo *Repo[entities.Equipment, entities.EquipmentPatch]
	RequestRepo   *Repo[entities.Request, entities.RequestPatch]
	OfferRepo     *Repo[entities.Offer, entities.OfferPatch]
}

func NewRegistry() *Registry {
	return &Registry{
		UserRepo: UserRepo{NewRepo[entities.User, entities.UserPatch](
			func(e *entities.User) *types.BaseEntity { return &e.BaseEntity })},
		ClientRepo: NewRepo[entities.Client, entities.ClientPatch](
			func(e *entities.Client) *types.BaseEntity { return &e.BaseEntity }),
		EquipmentRepo: NewRepo[entities.Equipment, entities.EquipmentPatch](
			func(e *entities.Equipment) *types.BaseEntity { return &e.BaseEntity }),
		RequestRepo: NewRepo[entities.Request, entities.RequestPatch](
			func(e *entities.Request) *types.BaseEntity { return &e.BaseEntity }),
		OfferRepo: NewRepo[entities.Offer, entities.OfferPatch](
			func(e *entities.Offer) *types.BaseEntity { return &e.BaseEntity }),
	}
}

func (r *Registry) Users() repositories.UserRepositoryInterface          { return r.UserRepo }
func (r *Registry) Clients() repositories.ClientRepositoryInterface      { return r.ClientRepo }
func (r *Registry) Equipment() repositories.EquipmentRepositoryInterface { return r.EquipmentRepo }
func (r *Registry) Requests() repositories.RequestRepositoryInterface    { return r.RequestRepo }
func (r *Registry) Offers() repositories.OfferRepositoryInterface        { return r.OfferRepo }

// UnitOfWork runs every fn against the same Registry and counts the calls.
// There is no rollback: state written before an error stays.
type UnitOfWork struct {
	Repos *Registry
	Calls int
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{Repos: NewRegistry()}
}

func (u *UnitOfWork) Do(_ context.Context, fn func(repositories.Registry) error) error {
	u.Calls++
	return fn(u.Repos)
}
