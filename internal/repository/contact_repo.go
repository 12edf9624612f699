package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/contact-api/internal/models"
)

// ContactFilter narrows admin listings. Zero values mean no filter; IsSpam
// is tri-state via pointer.
type ContactFilter struct {
	Status   string
	Priority string
	IsSpam   *bool
	Page     int
	Limit    int
}

// ContactStats aggregates submission counts.
type ContactStats struct {
	Total    int64
	New      int64
	Read     int64
	Replied  int64
	Archived int64
	Spam     int64
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id uint) (models.Contact, error)
	List(ctx context.Context, filter ContactFilter) ([]models.Contact, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) (models.Contact, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (ContactStats, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository constructs a repository backed by GORM.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).First(&contact, id).Error
	return contact, err
}

func (r *contactRepository) List(ctx context.Context, filter ContactFilter) ([]models.Contact, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Contact{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.IsSpam != nil {
		query = query.Where("is_spam = ?", *filter.IsSpam)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var contacts []models.Contact
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id uint, status string) (models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return models.Contact{}, err
	}

	if err := r.db.WithContext(ctx).
		Model(&contact).
		Update("status", status).Error; err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}

func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *contactRepository) Stats(ctx context.Context) (ContactStats, error) {
	stats := ContactStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Count(&stats.Total).Error; err != nil {
		return ContactStats{}, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return ContactStats{}, err
	}

	for _, c := range counts {
		switch c.Status {
		case models.ContactStatusNew:
			stats.New = c.Count
		case models.ContactStatusRead:
			stats.Read = c.Count
		case models.ContactStatusReplied:
			stats.Replied = c.Count
		case models.ContactStatusArchived:
			stats.Archived = c.Count
		}
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("is_spam = ?", true).
		Count(&stats.Spam).Error; err != nil {
		return ContactStats{}, err
	}

	return stats, nil
}
