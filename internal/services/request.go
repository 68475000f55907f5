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

const defaultRequestStatus = "draft"

type RequestServiceInterface interface {
	ListRequests(ctx context.Context, q ListRequestsQuery) ([]entities.Request, error)
	GetRequest(ctx context.Context, id string) (*entities.Request, error)
	CreateRequest(ctx context.Context, d dto.CreateRequestDTO) (*entities.Request, error)
	UpdateRequest(ctx context.Context, id string, d dto.UpdateRequestDTO) (*entities.Request, error)
	DeleteRequest(ctx context.Context, id string) (bool, error)
}

type RequestService struct {
	uow    repositories.UnitOfWork
	logger *zap.Logger
}

func NewRequestService(uow repositories.UnitOfWork, logger *zap.Logger) *RequestService {
	return &RequestService{uow: uow, logger: logger}
}

func (s *RequestService) ListRequests(ctx context.Context, q ListRequestsQuery) ([]entities.Request, error) {
	var requests []entities.Request
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		requests, err = repos.Requests().List(ctx, q.Filter())
		return err
	})
	return requests, err
}

func (s *RequestService) GetRequest(ctx context.Context, id string) (*entities.Request, error) {
	var request *entities.Request
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		request, err = repos.Requests().GetByID(ctx, id)
		return err
	})
	return request, err
}

func (s *RequestService) CreateRequest(ctx context.Context, d dto.CreateRequestDTO) (*entities.Request, error) {
	status := d.Status
	if status == "" {
		status = defaultRequestStatus
	}
	request := &entities.Request{
		BaseEntity:             types.NewBaseEntity(),
		Title:                  d.Title,
		Description:            d.Description,
		ClientID:               d.ClientID,
		EquipmentCategory:      d.EquipmentCategory,
		RequiredSpecifications: d.RequiredSpecifications,
		Quantity:               d.Quantity,
		Priority:               d.Priority,
		Status:                 status,
		BudgetMin:              null.Float64FromPtr(d.BudgetMin),
		BudgetMax:              null.Float64FromPtr(d.BudgetMax),
		Currency:               d.Currency,
		DesiredDeliveryDate:    null.TimeFromPtr(d.DesiredDeliveryDate),
		Notes:                  null.StringFromPtr(d.Notes),
		Tags:                   d.Tags,
	}

	var created *entities.Request
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		if err := mustReference(ctx, repos.Clients().GetByID, "client", request.ClientID); err != nil {
			return err
		}
		created, err = repos.Requests().Create(ctx, request)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to create request", zap.Uint64("client_id", d.ClientID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("request created", zap.Uint64("id", created.ID), zap.Uint64("client_id", created.ClientID))
	return created, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, id string, d dto.UpdateRequestDTO) (*entities.Request, error) {
	patch := entities.RequestPatch{
		Title:                  d.Title,
		Description:            d.Description,
		ClientID:               d.ClientID,
		EquipmentCategory:      d.EquipmentCategory,
		RequiredSpecifications: d.RequiredSpecifications,
		Quantity:               d.Quantity,
		Priority:               d.Priority,
		Status:                 d.Status,
		BudgetMin:              d.BudgetMin,
		BudgetMax:              d.BudgetMax,
		Currency:               d.Currency,
		DesiredDeliveryDate:    d.DesiredDeliveryDate,
		Notes:                  d.Notes,
		Tags:                   d.Tags,
		IsActive:               d.IsActive,
	}

	var updated *entities.Request
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		if patch.ClientID != nil {
			if err := mustReference(ctx, repos.Clients().GetByID, "client", *patch.ClientID); err != nil {
				return err
			}
		}
		updated, err = repos.Requests().Update(ctx, id, patch)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to update request", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("request updated", zap.Uint64("id", updated.ID))
	return updated, nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		deleted, err = repos.Requests().Delete(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to delete request", zap.String("id", id), zap.Error(err))
		return false, err
	}
	if deleted {
		s.logger.Info("request deleted", zap.String("id", id))
	}
	return deleted, nil
}
