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

type EquipmentServiceInterface interface {
	ListEquipment(ctx context.Context, q ListEquipmentQuery) ([]entities.Equipment, error)
	GetEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, d dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) (bool, error)
}

type EquipmentService struct {
	uow    repositories.UnitOfWork
	logger *zap.Logger
}

func NewEquipmentService(uow repositories.UnitOfWork, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{uow: uow, logger: logger}
}

func (s *EquipmentService) ListEquipment(ctx context.Context, q ListEquipmentQuery) ([]entities.Equipment, error) {
	var items []entities.Equipment
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		items, err = repos.Equipment().List(ctx, q.Filter())
		return err
	})
	return items, err
}

func (s *EquipmentService) GetEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	var item *entities.Equipment
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		item, err = repos.Equipment().GetByID(ctx, id)
		return err
	})
	return item, err
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	equipment := &entities.Equipment{
		BaseEntity:      types.NewBaseEntity(),
		Name:            d.Name,
		Model:           d.Model,
		SerialNumber:    d.SerialNumber,
		Manufacturer:    d.Manufacturer,
		Category:        d.Category,
		Status:          d.Status,
		PurchaseDate:    null.TimeFromPtr(d.PurchaseDate),
		WarrantyEndDate: null.TimeFromPtr(d.WarrantyEndDate),
		Location:        null.StringFromPtr(d.Location),
		Specifications:  d.Specifications,
		Tags:            d.Tags,
	}

	var created *entities.Equipment
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		created, err = repos.Equipment().Create(ctx, equipment)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to create equipment", zap.String("serial_number", d.SerialNumber), zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment created", zap.Uint64("id", created.ID))
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	patch := entities.EquipmentPatch{
		Name:            d.Name,
		Model:           d.Model,
		SerialNumber:    d.SerialNumber,
		Manufacturer:    d.Manufacturer,
		Category:        d.Category,
		Status:          d.Status,
		PurchaseDate:    d.PurchaseDate,
		WarrantyEndDate: d.WarrantyEndDate,
		Location:        d.Location,
		Specifications:  d.Specifications,
		Tags:            d.Tags,
		IsActive:        d.IsActive,
	}

	var updated *entities.Equipment
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		updated, err = repos.Equipment().Update(ctx, id, patch)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to update equipment", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment updated", zap.Uint64("id", updated.ID))
	return updated, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		deleted, err = repos.Equipment().Delete(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to delete equipment", zap.String("id", id), zap.Error(err))
		return false, err
	}
	if deleted {
		s.logger.Info("equipment deleted", zap.String("id", id))
	}
	return deleted, nil
}
