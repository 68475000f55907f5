package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procurement-api/internal/entities"
	"procurement-api/internal/infrastructure/bd"
	apperrors "procurement-api/pkg/errors"
	"procurement-api/pkg/types"
)

var testPool *pgxpool.Pool

// TestMain connects to TEST_DATABASE_URL and applies the schema. Without it the
// integration tests are skipped and only the unit tests run.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		var err error
		testPool, err = pgxpool.New(context.Background(), dsn)
		if err != nil {
			log.Fatalf("connect to test database: %v", err)
		}
		applySchema(testPool)
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	os.Exit(code)
}

func applySchema(pool *pgxpool.Pool) {
	path, _ := filepath.Abs("../../testdata/schema.sql")
	schema, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read schema.sql: %v", err)
	}
	if _, err = pool.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("apply schema: %v", err)
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL is not set")
	}
}

func cleanupTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE offers, requests, equipment, clients, users RESTART IDENTITY CASCADE;`)
	require.NoError(t, err)
}

func idOf(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func newClient(email string) *entities.Client {
	return &entities.Client{
		BaseEntity:  types.NewBaseEntity(),
		Name:        "Acme",
		Email:       email,
		PhoneNumber: null.StringFrom("0123456789"),
		CompanyName: null.StringFrom("Acme Ltd"),
		Tags:        []string{"industry: tech", "tier: gold"},
	}
}

func newEquipment(serial string) *entities.Equipment {
	return &entities.Equipment{
		BaseEntity:     types.NewBaseEntity(),
		Name:           "Edge server",
		Model:          "R650",
		SerialNumber:   serial,
		Manufacturer:   "Dell",
		Category:       "server",
		Status:         "available",
		Specifications: map[string]interface{}{"cpu": "2x Xeon", "ram_gb": float64(256)},
		Tags:           []string{"rack: A1"},
	}
}

func newRequest(clientID uint64) *entities.Request {
	return &entities.Request{
		BaseEntity:        types.NewBaseEntity(),
		Title:             "Rack refresh",
		Description:       "Replace two racks",
		ClientID:          clientID,
		EquipmentCategory: "server",
		Quantity:          2,
		Priority:          "high",
		Status:            "pending",
		BudgetMin:         null.Float64From(1000),
		BudgetMax:         null.Float64From(5000),
		Currency:          "EUR",
	}
}

func newOffer(requestID, equipmentID uint64, status string, price float64) *entities.Offer {
	return &entities.Offer{
		BaseEntity:           types.NewBaseEntity(),
		RequestID:            requestID,
		EquipmentID:          equipmentID,
		Price:                price,
		Currency:             "EUR",
		Quantity:             1,
		WarrantyPeriodMonths: 12,
		Status:               status,
		AdditionalServices:   []string{"training", "installation"},
		PaymentTerms:         "30_days",
	}
}

func TestClientRepository_Integration_CreateAndGet(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)

	created, err := repo.Create(context.Background(), newClient("ops@acme.io"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "+123456789", created.PhoneNumber.String)

	got, err := repo.GetByID(context.Background(), idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestClientRepository_Integration_GetByID_NotFound(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)

	for _, id := range []string{"abc", "0", "-1", "99999"} {
		got, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrNotFound, id)
		assert.Nil(t, got)
	}
}

func TestClientRepository_Integration_DuplicateEmail(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)

	_, err := repo.Create(context.Background(), newClient("dup@acme.io"))
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), newClient("dup@acme.io"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	clients, err := repo.List(context.Background(), bd.NewListFilter(types.Page{}, bd.Equals("email", "dup@acme.io")))
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestClientRepository_Integration_PartialUpdate(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)

	created, err := repo.Create(context.Background(), newClient("patch@acme.io"))
	require.NoError(t, err)

	address := "123 Main St"
	updated, err := repo.Update(context.Background(), idOf(created.ID), entities.ClientPatch{Address: &address})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "patch@acme.io", got.Email)
	assert.Equal(t, created.Tags, got.Tags)
	assert.Equal(t, "123 Main St", got.Address.String)
	assert.Equal(t, updated.UpdatedAt, got.UpdatedAt)
	assert.False(t, got.UpdatedAt.Before(created.UpdatedAt))

	_, err = repo.Update(context.Background(), "99999", entities.ClientPatch{Address: &address})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClientRepository_Integration_Delete(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)

	ok, err := repo.Delete(context.Background(), "99999")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(context.Background(), "not-a-number")
	require.NoError(t, err)
	assert.False(t, ok)

	created, err := repo.Create(context.Background(), newClient("gone@acme.io"))
	require.NoError(t, err)

	ok, err = repo.Delete(context.Background(), idOf(created.ID))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(context.Background(), idOf(created.ID))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClientRepository_Integration_Pagination(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)

	for i := 0; i < 25; i++ {
		_, err := repo.Create(context.Background(), newClient(fmt.Sprintf("c%02d@acme.io", i)))
		require.NoError(t, err)
	}

	list := func(skip, limit uint64) []entities.Client {
		items, err := repo.List(context.Background(), bd.NewListFilter(types.Page{Skip: skip, Limit: limit}))
		require.NoError(t, err)
		return items
	}

	assert.Len(t, list(10, 5), 5)
	assert.Equal(t, list(0, 20), append(list(0, 10), list(10, 10)...))
	assert.Len(t, list(20, 10), 5)
}

func TestClientRepository_Integration_TagRoundTrip(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)

	c := newClient("tags@acme.io")
	c.Tags = entities.TagsToList(map[string]string{"industry": "tech"})
	created, err := repo.Create(context.Background(), c)
	require.NoError(t, err)

	var stored map[string]string
	err = testPool.QueryRow(context.Background(), "SELECT tags FROM clients WHERE id = $1", created.ID).Scan(&stored)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"industry": "tech"}, stored)

	got, err := repo.GetByID(context.Background(), idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, []string{"industry: tech"}, got.Tags)

	_, err = repo.Update(context.Background(), idOf(created.ID), entities.ClientPatch{Tags: &got.Tags})
	require.NoError(t, err)
	err = testPool.QueryRow(context.Background(), "SELECT tags FROM clients WHERE id = $1", created.ID).Scan(&stored)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"industry": "tech"}, stored)
}

// Keys containing the separator do not survive a read-back.
func TestClientRepository_Integration_TagKeyWithSeparatorIsLossy(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)

	created, err := repo.Create(context.Background(), newClient("lossy@acme.io"))
	require.NoError(t, err)
	_, err = testPool.Exec(context.Background(), `UPDATE clients SET tags = '{"region: eu": "west"}' WHERE id = $1`, created.ID)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, []string{"region: eu: west"}, got.Tags)
	assert.Equal(t, map[string]string{"region": "eu: west"}, entities.TagsFromList(got.Tags))
}

func TestEquipmentRepository_Integration_SerialNumberIsUnique(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewEquipmentRepository(testPool)

	created, err := repo.Create(context.Background(), newEquipment("SN-1"))
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.Create(context.Background(), newEquipment("SN-1"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	other, err := repo.Create(context.Background(), newEquipment("SN-2"))
	require.NoError(t, err)
	serial := "SN-1"
	_, err = repo.Update(context.Background(), idOf(other.ID), entities.EquipmentPatch{SerialNumber: &serial})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestEquipmentRepository_Integration_PartialUpdate(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewEquipmentRepository(testPool)

	created, err := repo.Create(ctx, newEquipment("SN-PATCH"))
	require.NoError(t, err)

	location := "DC-2, row 4"
	status := "maintenance"
	_, err = repo.Update(ctx, idOf(created.ID), entities.EquipmentPatch{Location: &location, Status: &status})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "DC-2, row 4", got.Location.String)
	assert.Equal(t, "maintenance", got.Status)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Model, got.Model)
	assert.Equal(t, created.SerialNumber, got.SerialNumber)
	assert.Equal(t, created.Manufacturer, got.Manufacturer)
	assert.Equal(t, created.Category, got.Category)
	assert.Equal(t, created.Specifications, got.Specifications)
	assert.Equal(t, created.Tags, got.Tags)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)

	_, err = repo.Update(ctx, "99999", entities.EquipmentPatch{Location: &location})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_Integration_GetByUsername(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	repo := NewUserRepository(testPool)

	user := &entities.User{
		BaseEntity:     types.NewBaseEntity(),
		Username:       "jdoe",
		Email:          "jdoe@acme.io",
		FullName:       "John Doe",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Role:           "manager",
	}
	created, err := repo.Create(context.Background(), user)
	require.NoError(t, err)

	got, err := repo.GetByUsername(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	dup := *user
	dup.Email = "other@acme.io"
	_, err = repo.Create(context.Background(), &dup)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func newUser(username string) *entities.User {
	return &entities.User{
		BaseEntity:     types.NewBaseEntity(),
		Username:       username,
		Email:          username + "@acme.io",
		FullName:       "John Doe",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Role:           "user",
		PhoneNumber:    null.StringFrom("+44 20 7946 0018"),
	}
}

func TestUserRepository_Integration_CreateGetUpdate(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewUserRepository(testPool)

	created, err := repo.Create(ctx, newUser("alice"))
	require.NoError(t, err)
	assert.Equal(t, "+442079460018", created.PhoneNumber.String)

	got, err := repo.GetByID(ctx, idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created, got)

	role := "manager"
	_, err = repo.Update(ctx, idOf(created.ID), entities.UserPatch{Role: &role})
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "manager", got.Role)
	assert.Equal(t, created.Username, got.Username)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, created.FullName, got.FullName)
	assert.Equal(t, created.HashedPassword, got.HashedPassword)
	assert.Equal(t, created.PhoneNumber, got.PhoneNumber)

	empty := ""
	cleared, err := repo.Update(ctx, idOf(created.ID), entities.UserPatch{PhoneNumber: &empty})
	require.NoError(t, err)
	assert.False(t, cleared.PhoneNumber.Valid)

	var stored *string
	err = testPool.QueryRow(ctx, "SELECT phone_number FROM users WHERE id = $1", created.ID).Scan(&stored)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestUserRepository_Integration_UpdateToTakenEmail(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewUserRepository(testPool)

	_, err := repo.Create(ctx, newUser("alice"))
	require.NoError(t, err)
	bob, err := repo.Create(ctx, newUser("bob"))
	require.NoError(t, err)

	email := "alice@acme.io"
	_, err = repo.Update(ctx, idOf(bob.ID), entities.UserPatch{Email: &email})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	got, err := repo.GetByID(ctx, idOf(bob.ID))
	require.NoError(t, err)
	assert.Equal(t, "bob@acme.io", got.Email)
}

func TestRequestRepository_Integration_CreateGetUpdate(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()

	client, err := NewClientRepository(testPool).Create(ctx, newClient("requests@acme.io"))
	require.NoError(t, err)
	repo := NewRequestRepository(testPool)

	r := newRequest(client.ID)
	r.RequiredSpecifications = map[string]interface{}{"cpu": "16 cores"}
	r.Tags = []string{"project: atlas"}
	created, err := repo.Create(ctx, r)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created, got)

	priority := "low"
	quantity := 5
	_, err = repo.Update(ctx, idOf(created.ID), entities.RequestPatch{Priority: &priority, Quantity: &quantity})
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "low", got.Priority)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.ClientID, got.ClientID)
	assert.Equal(t, created.BudgetMin, got.BudgetMin)
	assert.Equal(t, created.BudgetMax, got.BudgetMax)
	assert.Equal(t, created.RequiredSpecifications, got.RequiredSpecifications)
	assert.Equal(t, created.Tags, got.Tags)

	missing := uint64(99999)
	_, err = repo.Update(ctx, idOf(created.ID), entities.RequestPatch{ClientID: &missing})
	assert.ErrorIs(t, err, apperrors.ErrRelationNotFound)

	got, err = repo.GetByID(ctx, idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ClientID)
}

func TestOfferRepository_Integration_CreateGetUpdate(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()

	client, err := NewClientRepository(testPool).Create(ctx, newClient("offer-crud@acme.io"))
	require.NoError(t, err)
	request, err := NewRequestRepository(testPool).Create(ctx, newRequest(client.ID))
	require.NoError(t, err)
	equipment, err := NewEquipmentRepository(testPool).Create(ctx, newEquipment("SN-OFFER-CRUD"))
	require.NoError(t, err)
	repo := NewOfferRepository(testPool)

	o := newOffer(request.ID, equipment.ID, "pending", 1999.99)
	o.DiscountPercentage = null.Float64From(7.5)
	created, err := repo.Create(ctx, o)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created, got)

	status := "accepted"
	_, err = repo.Update(ctx, idOf(created.ID), entities.OfferPatch{Status: &status})
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, idOf(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "accepted", got.Status)
	assert.Equal(t, created.Price, got.Price)
	assert.Equal(t, created.RequestID, got.RequestID)
	assert.Equal(t, created.EquipmentID, got.EquipmentID)
	assert.Equal(t, created.DiscountPercentage, got.DiscountPercentage)
	assert.Equal(t, created.AdditionalServices, got.AdditionalServices)
	assert.Equal(t, created.PaymentTerms, got.PaymentTerms)

	missing := uint64(99999)
	_, err = repo.Update(ctx, idOf(created.ID), entities.OfferPatch{EquipmentID: &missing})
	assert.ErrorIs(t, err, apperrors.ErrRelationNotFound)
}

func TestOfferRepository_Integration_Filters(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()

	client, err := NewClientRepository(testPool).Create(ctx, newClient("offers@acme.io"))
	require.NoError(t, err)
	request, err := NewRequestRepository(testPool).Create(ctx, newRequest(client.ID))
	require.NoError(t, err)
	equipment, err := NewEquipmentRepository(testPool).Create(ctx, newEquipment("SN-OFFER"))
	require.NoError(t, err)

	repo := NewOfferRepository(testPool)
	for _, o := range []struct {
		status string
		price  float64
	}{
		{"pending", 50}, {"pending", 150}, {"accepted", 180}, {"draft", 250},
	} {
		_, err := repo.Create(ctx, newOffer(request.ID, equipment.ID, o.status, o.price))
		require.NoError(t, err)
	}

	pending, err := repo.List(ctx, bd.NewListFilter(types.Page{}, bd.Equals("status", "pending")))
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, o := range pending {
		assert.Equal(t, "pending", o.Status)
	}

	inRange, err := repo.List(ctx, bd.NewListFilter(types.Page{},
		bd.GreaterOrEqual("price", 100),
		bd.LessOrEqual("price", 200),
	))
	require.NoError(t, err)
	require.Len(t, inRange, 2)
	for _, o := range inRange {
		assert.GreaterOrEqual(t, o.Price, 100.0)
		assert.LessOrEqual(t, o.Price, 200.0)
		assert.Equal(t, []string{"installation", "training"}, o.AdditionalServices)
	}

	_, err = repo.List(ctx, bd.NewListFilter(types.Page{}, bd.Equals("colour", "red")))
	assert.ErrorIs(t, err, apperrors.ErrUnknownFilterField)
}

func TestRepositories_Integration_ForeignKeys(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()

	_, err := NewRequestRepository(testPool).Create(ctx, newRequest(99999))
	assert.ErrorIs(t, err, apperrors.ErrRelationNotFound)

	clients := NewClientRepository(testPool)
	client, err := clients.Create(ctx, newClient("fk@acme.io"))
	require.NoError(t, err)
	_, err = NewRequestRepository(testPool).Create(ctx, newRequest(client.ID))
	require.NoError(t, err)

	ok, err := clients.Delete(ctx, idOf(client.ID))
	assert.ErrorIs(t, err, apperrors.ErrInUse)
	assert.False(t, ok)
}

func TestTxManager_Integration_RollbackOnError(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := NewTxManager(testPool).Do(ctx, func(repos Registry) error {
		if _, err := repos.Clients().Create(ctx, newClient("tx@acme.io")); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	clients, err := NewClientRepository(testPool).List(ctx, bd.NewListFilter(types.Page{}))
	require.NoError(t, err)
	assert.Empty(t, clients)
}
