package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/contact-api/internal/dto"
	"github.com/noah-isme/contact-api/internal/models"
	"github.com/noah-isme/contact-api/internal/repository"
)

// ErrContactNotFound indicates the submission is missing.
var ErrContactNotFound = errors.New("contact submission not found")

// AdminContactService exposes admin contact management operations.
type AdminContactService interface {
	List(ctx context.Context, req dto.ContactListRequest) (dto.ContactListResponse, error)
	Get(ctx context.Context, id uint) (dto.ContactResponse, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dto.ContactResponse, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (dto.ContactStatsResponse, error)
}

type adminContactService struct {
	repo   repository.ContactRepository
	logger zerolog.Logger
}

// NewAdminContactService constructs the contact admin service.
func NewAdminContactService(repo repository.ContactRepository, logger zerolog.Logger) AdminContactService {
	return &adminContactService{
		repo:   repo,
		logger: logger.With().Str("component", "admin_contact_service").Logger(),
	}
}

func (s *adminContactService) List(ctx context.Context, req dto.ContactListRequest) (dto.ContactListResponse, error) {
	filter := repository.ContactFilter{
		Status:   req.Status,
		Priority: req.Priority,
		IsSpam:   req.IsSpam,
		Page:     normalizePage(req.Page),
		Limit:    clampLimit(req.Limit),
	}

	contacts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.ContactListResponse{}, err
	}

	pages := totalPages(total, filter.Limit)

	return dto.ContactListResponse{
		Items: dto.NewContactResponseSlice(contacts),
		Pagination: dto.PaginationMeta{
			Current: filter.Page,
			Pages:   pages,
			Total:   total,
			HasNext: filter.Page < pages,
			HasPrev: filter.Page > 1,
		},
	}, nil
}

// Get fetches one submission and transitions a fresh one from new to read,
// so opening a contact in the admin view marks it handled.
func (s *adminContactService) Get(ctx context.Context, id uint) (dto.ContactResponse, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContactResponse{}, ErrContactNotFound
		}
		return dto.ContactResponse{}, err
	}

	if contact.Status == models.ContactStatusNew {
		contact, err = s.repo.UpdateStatus(ctx, id, models.ContactStatusRead)
		if err != nil {
			return dto.ContactResponse{}, err
		}
	}

	return dto.NewContactResponse(contact), nil
}

func (s *adminContactService) UpdateStatus(ctx context.Context, id uint, status string) (dto.ContactResponse, error) {
	contact, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContactResponse{}, ErrContactNotFound
		}
		return dto.ContactResponse{}, err
	}

	s.logger.Info().Uint("contact_id", id).Str("status", status).Msg("contact status updated")

	return dto.NewContactResponse(contact), nil
}

func (s *adminContactService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return err
	}

	s.logger.Info().Uint("contact_id", id).Msg("contact deleted")

	return nil
}

func (s *adminContactService) Stats(ctx context.Context) (dto.ContactStatsResponse, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return dto.ContactStatsResponse{}, err
	}

	return dto.ContactStatsResponse{
		Total:    stats.Total,
		New:      stats.New,
		Read:     stats.Read,
		Replied:  stats.Replied,
		Archived: stats.Archived,
		Spam:     stats.Spam,
	}, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampLimit(limit int) int {
	switch {
	case limit < 1:
		return 10
	case limit > 100:
		return 100
	default:
		return limit
	}
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return pages
}
