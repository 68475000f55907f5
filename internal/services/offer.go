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

const defaultOfferStatus = "draft"

type OfferServiceInterface interface {
	ListOffers(ctx context.Context, q ListOffersQuery) ([]entities.Offer, error)
	GetOffer(ctx context.Context, id string) (*entities.Offer, error)
	CreateOffer(ctx context.Context, d dto.CreateOfferDTO) (*entities.Offer, error)
	UpdateOffer(ctx context.Context, id string, d dto.UpdateOfferDTO) (*entities.Offer, error)
	DeleteOffer(ctx context.Context, id string) (bool, error)
}

type OfferService struct {
	uow    repositories.UnitOfWork
	logger *zap.Logger
}

func NewOfferService(uow repositories.UnitOfWork, logger *zap.Logger) *OfferService {
	return &OfferService{uow: uow, logger: logger}
}

func (s *OfferService) ListOffers(ctx context.Context, q ListOffersQuery) ([]entities.Offer, error) {
	var offers []entities.Offer
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		offers, err = repos.Offers().List(ctx, q.Filter())
		return err
	})
	return offers, err
}

func (s *OfferService) GetOffer(ctx context.Context, id string) (*entities.Offer, error) {
	var offer *entities.Offer
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		offer, err = repos.Offers().GetByID(ctx, id)
		return err
	})
	return offer, err
}

// checkOfferReferences verifies that the referenced request and equipment exist.
func checkOfferReferences(ctx context.Context, repos repositories.Registry, requestID, equipmentID *uint64) error {
	if requestID != nil {
		if err := mustReference(ctx, repos.Requests().GetByID, "request", *requestID); err != nil {
			return err
		}
	}
	if equipmentID != nil {
		if err := mustReference(ctx, repos.Equipment().GetByID, "equipment", *equipmentID); err != nil {
			return err
		}
	}
	return nil
}

func (s *OfferService) CreateOffer(ctx context.Context, d dto.CreateOfferDTO) (*entities.Offer, error) {
	status := d.Status
	if status == "" {
		status = defaultOfferStatus
	}
	offer := &entities.Offer{
		BaseEntity:           types.NewBaseEntity(),
		RequestID:            d.RequestID,
		EquipmentID:          d.EquipmentID,
		Price:                d.Price,
		Currency:             d.Currency,
		Quantity:             d.Quantity,
		DeliveryDate:         null.TimeFromPtr(d.DeliveryDate),
		WarrantyPeriodMonths: d.WarrantyPeriodMonths,
		Status:               status,
		TermsAndConditions:   null.StringFromPtr(d.TermsAndConditions),
		Notes:                null.StringFromPtr(d.Notes),
		AdditionalServices:   d.AdditionalServices,
		DiscountPercentage:   null.Float64FromPtr(d.DiscountPercentage),
		PaymentTerms:         d.PaymentTerms,
		CustomPaymentTerms:   null.StringFromPtr(d.CustomPaymentTerms),
	}

	var created *entities.Offer
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		if err := checkOfferReferences(ctx, repos, &offer.RequestID, &offer.EquipmentID); err != nil {
			return err
		}
		created, err = repos.Offers().Create(ctx, offer)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to create offer",
			zap.Uint64("request_id", d.RequestID),
			zap.Uint64("equipment_id", d.EquipmentID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("offer created", zap.Uint64("id", created.ID), zap.Uint64("request_id", created.RequestID))
	return created, nil
}

func (s *OfferService) UpdateOffer(ctx context.Context, id string, d dto.UpdateOfferDTO) (*entities.Offer, error) {
	patch := entities.OfferPatch{
		RequestID:            d.RequestID,
		EquipmentID:          d.EquipmentID,
		Price:                d.Price,
		Currency:             d.Currency,
		Quantity:             d.Quantity,
		DeliveryDate:         d.DeliveryDate,
		WarrantyPeriodMonths: d.WarrantyPeriodMonths,
		Status:               d.Status,
		TermsAndConditions:   d.TermsAndConditions,
		Notes:                d.Notes,
		AdditionalServices:   d.AdditionalServices,
		DiscountPercentage:   d.DiscountPercentage,
		PaymentTerms:         d.PaymentTerms,
		CustomPaymentTerms:   d.CustomPaymentTerms,
		IsActive:             d.IsActive,
	}

	var updated *entities.Offer
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		if err := checkOfferReferences(ctx, repos, patch.RequestID, patch.EquipmentID); err != nil {
			return err
		}
		updated, err = repos.Offers().Update(ctx, id, patch)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to update offer", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("offer updated", zap.Uint64("id", updated.ID))
	return updated, nil
}

func (s *OfferService) DeleteOffer(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		deleted, err = repos.Offers().Delete(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to delete offer", zap.String("id", id), zap.Error(err))
		return false, err
	}
	if deleted {
		s.logger.Info("offer deleted", zap.String("id", id))
	}
	return deleted, nil
}
