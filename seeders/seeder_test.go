package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"procurement-api/internal/entities"
	"procurement-api/internal/repositories/memory"
	"procurement-api/pkg/types"
)

func TestGeneratedRecordsAreValid(t *testing.T) {
	s := NewSeeder(nil, 42, zap.NewNop())

	for i := 0; i < 20; i++ {
		u, err := s.newUser()
		require.NoError(t, err)
		assert.NoError(t, entities.Validate(u), "user %d", i)
		assert.NoError(t, entities.Validate(s.newClient()), "client %d", i)
		assert.NoError(t, entities.Validate(s.newEquipment()), "equipment %d", i)
		assert.NoError(t, entities.Validate(s.newRequest(1)), "request %d", i)
		assert.NoError(t, entities.Validate(s.newOffer(1, 1)), "offer %d", i)
	}
}

func TestRun_All(t *testing.T) {
	uow := memory.NewUnitOfWork()
	s := NewSeeder(uow, 7, zap.NewNop())

	err := s.Run(context.Background(), Options{Users: true, Clients: true, Equipment: true, Requests: true, Offers: true, Count: 3})
	require.NoError(t, err)

	assert.Equal(t, 1, uow.Calls)
	r := uow.Repos
	assert.Len(t, r.UserRepo.Items, 3)
	assert.Len(t, r.ClientRepo.Items, 3)
	assert.Len(t, r.EquipmentRepo.Items, 3)
	assert.Len(t, r.RequestRepo.Items, 3)
	assert.Len(t, r.OfferRepo.Items, 3)

	for _, req := range r.RequestRepo.Items {
		assert.True(t, req.ClientID >= 1 && req.ClientID <= 3)
	}
	for _, o := range r.OfferRepo.Items {
		assert.True(t, o.RequestID >= 1 && o.RequestID <= 3)
		assert.True(t, o.EquipmentID >= 1 && o.EquipmentID <= 3)
	}
}

func TestRun_RequestsReuseExistingClients(t *testing.T) {
	uow := memory.NewUnitOfWork()
	uow.Repos.ClientRepo.Put(&entities.Client{BaseEntity: types.BaseEntity{ID: 99}, Name: "Existing"})

	err := NewSeeder(uow, 1, zap.NewNop()).Run(context.Background(), Options{Requests: true, Count: 2})
	require.NoError(t, err)

	require.Len(t, uow.Repos.RequestRepo.Items, 2)
	for _, req := range uow.Repos.RequestRepo.Items {
		assert.Equal(t, uint64(99), req.ClientID)
	}
}

func TestRun_RequestsWithoutClientsFails(t *testing.T) {
	uow := memory.NewUnitOfWork()

	err := NewSeeder(uow, 1, zap.NewNop()).Run(context.Background(), Options{Requests: true, Count: 2})
	assert.ErrorContains(t, err, "no clients")
	assert.Empty(t, uow.Repos.RequestRepo.Items)
}

func TestRun_RejectsNonPositiveCount(t *testing.T) {
	uow := memory.NewUnitOfWork()

	err := NewSeeder(uow, 1, zap.NewNop()).Run(context.Background(), Options{Users: true})
	assert.Error(t, err)
	assert.Zero(t, uow.Calls)
}
