package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/contact-api/internal/models"
)

func setupContactTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Contact{}))
	return db
}

func seedContact(t *testing.T, db *gorm.DB, contact models.Contact) models.Contact {
	t.Helper()
	require.NoError(t, db.Create(&contact).Error)
	return contact
}

func testContact(overrides func(*models.Contact)) models.Contact {
	contact := models.Contact{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Subject:   "Hello there",
		Message:   "This is a test message.",
		Status:    models.ContactStatusNew,
		Priority:  models.ContactPriorityMedium,
		IPAddress: "203.0.113.9",
	}
	if overrides != nil {
		overrides(&contact)
	}
	return contact
}

func TestContactRepositoryCreateAndGet(t *testing.T) {
	db := setupContactTestDB(t)
	repo := NewContactRepository(db)

	contact := testContact(nil)
	require.NoError(t, repo.Create(context.Background(), &contact))
	require.NotZero(t, contact.ID)

	stored, err := repo.GetByID(context.Background(), contact.ID)
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", stored.Email)
	require.Equal(t, models.ContactStatusNew, stored.Status)
	require.False(t, stored.IsSpam)
}

func TestContactRepositoryGetMissing(t *testing.T) {
	db := setupContactTestDB(t)
	repo := NewContactRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContactRepositoryListFiltersAndPaginates(t *testing.T) {
	db := setupContactTestDB(t)
	repo := NewContactRepository(db)

	now := time.Now()
	seedContact(t, db, testContact(func(c *models.Contact) {
		c.Email = "old@example.com"
		c.Status = models.ContactStatusArchived
		c.CreatedAt = now.Add(-2 * time.Hour)
	}))
	seedContact(t, db, testContact(func(c *models.Contact) {
		c.Email = "mid@example.com"
		c.Priority = models.ContactPriorityHigh
		c.CreatedAt = now.Add(-time.Hour)
	}))
	seedContact(t, db, testContact(func(c *models.Contact) {
		c.Email = "new@example.com"
		c.IsSpam = true
		c.CreatedAt = now
	}))

	items, total, err := repo.List(context.Background(), ContactFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, items, 3)
	require.Equal(t, "new@example.com", items[0].Email, "newest first")

	items, total, err = repo.List(context.Background(), ContactFilter{Status: models.ContactStatusArchived})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "old@example.com", items[0].Email)

	items, total, err = repo.List(context.Background(), ContactFilter{Priority: models.ContactPriorityHigh})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "mid@example.com", items[0].Email)

	spam := true
	items, total, err = repo.List(context.Background(), ContactFilter{IsSpam: &spam})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "new@example.com", items[0].Email)

	items, total, err = repo.List(context.Background(), ContactFilter{Page: 2, Limit: 1})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, items, 1)
	require.Equal(t, "mid@example.com", items[0].Email)
}

func TestContactRepositoryUpdateStatus(t *testing.T) {
	db := setupContactTestDB(t)
	repo := NewContactRepository(db)

	contact := seedContact(t, db, testContact(nil))

	updated, err := repo.UpdateStatus(context.Background(), contact.ID, models.ContactStatusReplied)
	require.NoError(t, err)
	require.Equal(t, models.ContactStatusReplied, updated.Status)

	_, err = repo.UpdateStatus(context.Background(), 999, models.ContactStatusRead)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContactRepositoryDelete(t *testing.T) {
	db := setupContactTestDB(t)
	repo := NewContactRepository(db)

	contact := seedContact(t, db, testContact(nil))

	require.NoError(t, repo.Delete(context.Background(), contact.ID))
	_, err := repo.GetByID(context.Background(), contact.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.ErrorIs(t, repo.Delete(context.Background(), contact.ID), gorm.ErrRecordNotFound)
}

func TestContactRepositoryStats(t *testing.T) {
	db := setupContactTestDB(t)
	repo := NewContactRepository(db)

	seedContact(t, db, testContact(nil))
	seedContact(t, db, testContact(func(c *models.Contact) { c.Status = models.ContactStatusRead }))
	seedContact(t, db, testContact(func(c *models.Contact) { c.Status = models.ContactStatusReplied }))
	seedContact(t, db, testContact(func(c *models.Contact) {
		c.Status = models.ContactStatusArchived
		c.IsSpam = true
	}))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), stats.Total)
	require.Equal(t, int64(1), stats.New)
	require.Equal(t, int64(1), stats.Read)
	require.Equal(t, int64(1), stats.Replied)
	require.Equal(t, int64(1), stats.Archived)
	require.Equal(t, int64(1), stats.Spam)
}

func TestContactRepositoryStatsEmpty(t *testing.T) {
	db := setupContactTestDB(t)
	repo := NewContactRepository(db)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, ContactStats{}, stats)
}
