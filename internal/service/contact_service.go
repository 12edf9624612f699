package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/contact-api/internal/dto"
	"github.com/noah-isme/contact-api/internal/models"
	"github.com/noah-isme/contact-api/internal/observability"
	"github.com/noah-isme/contact-api/internal/repository"
	"github.com/noah-isme/contact-api/internal/sanitize"
	"github.com/noah-isme/contact-api/internal/validate"
)

// ErrContactDuplicate indicates a submission with the same checksum was seen
// within the dedupe window.
var ErrContactDuplicate = errors.New("duplicate contact submission")

// ValidationError carries the full aggregated validation result so the
// handler can return every failure in one response.
type ValidationError struct {
	Result validate.FormResult
}

func (e *ValidationError) Error() string {
	return "contact submission failed validation"
}

// ContactService exposes the public contact submission workflow.
type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest, ipAddress, userAgent string) (dto.ContactResponse, error)
}

type contactService struct {
	repo      repository.ContactRepository
	cache     *redis.Client
	logger    zerolog.Logger
	dedupeTTL time.Duration
}

// NewContactService constructs the contact submission service. cache may be
// nil, which disables deduplication.
func NewContactService(repo repository.ContactRepository, cache *redis.Client, logger zerolog.Logger) ContactService {
	return &contactService{
		repo:      repo,
		cache:     cache,
		logger:    logger.With().Str("component", "contact_service").Logger(),
		dedupeTTL: 5 * time.Minute,
	}
}

// Submit runs the intake pipeline in its fixed order: sanitize, validate,
// dedupe, persist. The spam result never rejects on its own; it is logged
// and counted so admins can review flagged submissions.
func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest, ipAddress, userAgent string) (dto.ContactResponse, error) {
	form := sanitize.ContactForm(sanitize.Form{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Priority:  req.Priority,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	})

	result := validate.ContactForm(form)

	masked := sanitize.ForLogging(form)
	submissionLogger := s.logger.With().
		Str("email", masked.Email).
		Str("ip_address", masked.IPAddress).
		Int("spam_score", result.Spam.Score).
		Bool("spam_flagged", result.Spam.IsSpam).
		Logger()

	observability.SpamScores().Observe(float64(result.Spam.Score))

	if !result.Valid {
		observability.ContactSubmissions().WithLabelValues("rejected").Inc()
		submissionLogger.Info().Strs("validation_errors", result.Errors).Msg("contact submission rejected")
		return dto.ContactResponse{}, &ValidationError{Result: result}
	}

	if s.cache != nil {
		key := fmt.Sprintf("contact:dedupe:%s", checksum(form.FirstName, form.LastName, form.Email, form.Message))
		ok, err := s.cache.SetNX(ctx, key, 1, s.dedupeTTL).Result()
		if err != nil {
			observability.ContactSubmissions().WithLabelValues("error").Inc()
			return dto.ContactResponse{}, err
		}
		if !ok {
			observability.ContactSubmissions().WithLabelValues("duplicate").Inc()
			submissionLogger.Info().Msg("duplicate contact submission dropped")
			return dto.ContactResponse{}, ErrContactDuplicate
		}
	}

	priority := form.Priority
	if priority == "" {
		priority = models.ContactPriorityMedium
	}

	contact := models.Contact{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Subject:   form.Subject,
		Message:   form.Message,
		Status:    models.ContactStatusNew,
		Priority:  priority,
		IPAddress: form.IPAddress,
		UserAgent: form.UserAgent,
	}

	if err := s.repo.Create(ctx, &contact); err != nil {
		observability.ContactSubmissions().WithLabelValues("error").Inc()
		return dto.ContactResponse{}, err
	}

	if result.Spam.IsSpam {
		observability.ContactSubmissions().WithLabelValues("spam").Inc()
	} else {
		observability.ContactSubmissions().WithLabelValues("accepted").Inc()
	}

	submissionLogger.Info().Uint("contact_id", contact.ID).Msg("contact submission stored")

	return dto.NewContactResponse(contact), nil
}

func checksum(parts ...string) string {
	hasher := sha256.New()
	for _, part := range parts {
		hasher.Write([]byte(strings.TrimSpace(strings.ToLower(part))))
		hasher.Write([]byte("|"))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
