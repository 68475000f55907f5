package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"procurement-api/internal/dto"
	"procurement-api/internal/entities"
	"procurement-api/internal/repositories"
	"procurement-api/pkg/types"
)

type ClientServiceInterface interface {
	ListClients(ctx context.Context, q ListClientsQuery) ([]entities.Client, error)
	GetClient(ctx context.Context, id string) (*entities.Client, error)
	CreateClient(ctx context.Context, d dto.CreateClientDTO) (*entities.Client, error)
	UpdateClient(ctx context.Context, id string, d dto.UpdateClientDTO) (*entities.Client, error)
	DeleteClient(ctx context.Context, id string) (bool, error)
}

type ClientService struct {
	uow    repositories.UnitOfWork
	logger *zap.Logger
}

func NewClientService(uow repositories.UnitOfWork, logger *zap.Logger) *ClientService {
	return &ClientService{uow: uow, logger: logger}
}

func (s *ClientService) ListClients(ctx context.Context, q ListClientsQuery) ([]entities.Client, error) {
	var clients []entities.Client
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		clients, err = repos.Clients().List(ctx, q.Filter())
		return err
	})
	return clients, err
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*entities.Client, error) {
	var client *entities.Client
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		client, err = repos.Clients().GetByID(ctx, id)
		return err
	})
	return client, err
}

func (s *ClientService) CreateClient(ctx context.Context, d dto.CreateClientDTO) (*entities.Client, error) {
	client := &entities.Client{
		BaseEntity:    types.NewBaseEntity(),
		Name:          d.Name,
		Email:         d.Email,
		PhoneNumber:   null.StringFromPtr(d.PhoneNumber),
		Address:       null.StringFromPtr(d.Address),
		CompanyName:   null.StringFromPtr(d.CompanyName),
		ContactPerson: null.StringFromPtr(d.ContactPerson),
		Notes:         null.StringFromPtr(d.Notes),
		Tags:          d.Tags,
	}

	var created *entities.Client
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		created, err = repos.Clients().Create(ctx, client)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to create client", zap.String("email", d.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("client created", zap.Uint64("id", created.ID))
	return created, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, d dto.UpdateClientDTO) (*entities.Client, error) {
	patch := entities.ClientPatch{
		Name:          d.Name,
		Email:         d.Email,
		PhoneNumber:   d.PhoneNumber,
		Address:       d.Address,
		CompanyName:   d.CompanyName,
		ContactPerson: d.ContactPerson,
		Notes:         d.Notes,
		Tags:          d.Tags,
		IsActive:      d.IsActive,
	}

	var updated *entities.Client
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		updated, err = repos.Clients().Update(ctx, id, patch)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to update client", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("client updated", zap.Uint64("id", updated.ID))
	return updated, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		deleted, err = repos.Clients().Delete(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to delete client", zap.String("id", id), zap.Error(err))
		return false, err
	}
	if deleted {
		s.logger.Info("client deleted", zap.String("id", id))
	}
	return deleted, nil
}
