package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db, nil)

	id, err := repo.Create(ctx, models.Project{
		Title: "Flour shipment", Location: "Tripoli", Date: "January 2024", Weight: "250K Ton", OrderNum: 1, IsActive: true,
	})
	require.NoError(t, err)

	item, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "250K Ton", item.Weight)
	assert.Equal(t, "January 2024", item.Date)

	require.NoError(t, repo.Update(ctx, id, models.Project{Title: "Flour shipment", Weight: "300K Ton", IsActive: true}))
	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "300K Ton", items[0].Weight)
	assert.Empty(t, items[0].Location)

	require.NoError(t, repo.Delete(ctx, id))
	items, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTestimonialRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewTestimonialRepository(db, nil)

	id, err := repo.Create(ctx, models.Testimonial{Name: "Sara", Rating: 4, OrderNum: 2, IsActive: true})
	require.NoError(t, err)
	other, err := repo.Create(ctx, models.Testimonial{Name: "Omar", Rating: 5, OrderNum: 1, IsActive: true})
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, other, items[0].ID)
	assert.Equal(t, 4, items[1].Rating)

	require.NoError(t, repo.Update(ctx, id, models.Testimonial{Name: "Sara M.", Rating: 5, IsActive: false}))
	items, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound)
}

func TestNewsRepository_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNewsRepository(db, nil)

	older, err := repo.Create(ctx, models.News{Title: "Older", IsActive: true})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	newer, err := repo.Create(ctx, models.News{Title: "Newer", IsFeatured: true, IsActive: true})
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer, items[0].ID)
	assert.True(t, items[0].IsFeatured)
	assert.Equal(t, older, items[1].ID)

	require.NoError(t, repo.Update(ctx, newer, models.News{Title: "Newer", IsActive: false}))
	items, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, older, items[0].ID)

	item, err := repo.Get(ctx, older)
	require.NoError(t, err)
	assert.Equal(t, "Older", item.Title)
}

func TestContactRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewContactRepository(db, nil)

	first, err := repo.Create(ctx, models.ContactMessage{Name: "Ali", Email: "ali@example.com", Message: "Hello"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, first.IsRead)

	time.Sleep(5 * time.Millisecond)
	second, err := repo.Create(ctx, models.ContactMessage{Name: "Mona", Email: "mona@example.com", Phone: "+218", Message: "Price list?"})
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, "+218", items[0].Phone)

	t.Run("MarkReadIdempotent", func(t *testing.T) {
		require.NoError(t, repo.MarkRead(ctx, first.ID))
		require.NoError(t, repo.MarkRead(ctx, first.ID))

		var isRead bool
		require.NoError(t, db.Get(&isRead, db.Rebind("SELECT is_read FROM contact_messages WHERE id = ?"), first.ID))
		assert.True(t, isRead)
	})

	t.Run("MarkReadMissing", func(t *testing.T) {
		assert.ErrorIs(t, repo.MarkRead(ctx, 9999), ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, second.ID))
		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.ErrorIs(t, repo.Delete(ctx, second.ID), ErrNotFound)
	})
}

func TestStatsRepository_Get(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	services := NewServiceRepository(db, nil)
	news := NewNewsRepository(db, nil)
	contact := NewContactRepository(db, nil)

	_, err := services.Create(ctx, models.Service{Title: "a", IsActive: true})
	require.NoError(t, err)
	_, err = services.Create(ctx, models.Service{Title: "b", IsActive: false})
	require.NoError(t, err)
	_, err = news.Create(ctx, models.News{Title: "n", IsActive: true})
	require.NoError(t, err)
	m, err := contact.Create(ctx, models.ContactMessage{Name: "x", Email: "x@y.z", Message: "m"})
	require.NoError(t, err)
	_, err = contact.Create(ctx, models.ContactMessage{Name: "x", Email: "x@y.z", Message: "m2"})
	require.NoError(t, err)
	require.NoError(t, contact.MarkRead(ctx, m.ID))

	stats, err := NewStatsRepository(db, nil).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Stats{
		Services:       1,
		Projects:       0,
		Testimonials:   0,
		News:           1,
		UnreadMessages: 1,
		TotalMessages:  2,
	}, *stats)
}
