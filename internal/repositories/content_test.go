package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewContentRepository(db, nil)

	require.NoError(t, repo.Upsert(ctx, "hero", "title", "first"))

	entries, err := repo.GetSection(ctx, "hero")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "first", entries[0].Value)
	assert.Equal(t, "text", entries[0].Type)
	firstUpdate := entries[0].UpdatedAt

	require.NoError(t, repo.Upsert(ctx, "hero", "title", "second"))
	// replaying the same value leaves the same state
	require.NoError(t, repo.Upsert(ctx, "hero", "title", "second"))

	entries, err = repo.GetSection(ctx, "hero")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].Value)
	assert.False(t, entries[0].UpdatedAt.Before(firstUpdate))

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM site_content WHERE section = 'hero' AND key = 'title'"))
	assert.Equal(t, 1, n)
}

func TestContentRepository_KeepsExistingType(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewContentRepository(db, nil)

	_, err := db.Exec("INSERT INTO site_content (section, key, value, type) VALUES ('hero', 'image', '/a.jpg', 'image')")
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(ctx, "hero", "image", "/b.jpg"))

	entries, err := repo.GetSection(ctx, "hero")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/b.jpg", entries[0].Value)
	assert.Equal(t, "image", entries[0].Type)
}

func TestContentRepository_GetAllAndEmptySection(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewContentRepository(db, nil)

	require.NoError(t, repo.Upsert(ctx, "hero", "title", "Hello"))
	require.NoError(t, repo.Upsert(ctx, "contact", "phone", "+218"))
	require.NoError(t, repo.Upsert(ctx, "contact", "email", "info@example.com"))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	contact, err := repo.GetSection(ctx, "contact")
	require.NoError(t, err)
	assert.Len(t, contact, 2)

	missing, err := repo.GetSection(ctx, "footer")
	require.NoError(t, err)
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}
