package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ParthibanSekar/snaptravels/models"
)

func seedArticle(t *testing.T, db *gorm.DB, authorID, title, slug string, published bool, publishedAt time.Time) models.TravelGuideArticle {
	t.Helper()
	a := models.TravelGuideArticle{
		Title:     title,
		Content:   "Lorem ipsum travel content.",
		Slug:      slug,
		AuthorID:  authorID,
		Published: published,
	}
	if published {
		a.PublishedAt = &publishedAt
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func TestListArticles(t *testing.T) {
	db, r := setupEnv(t)
	author, _ := registerUser(t, db, "editor@example.com", "admin")

	now := time.Now().UTC()
	seedArticle(t, db, author.ID, "Old Guide", "old-guide", true, now.Add(-48*time.Hour))
	seedArticle(t, db, author.ID, "Fresh Guide", "fresh-guide", true, now)
	seedArticle(t, db, author.ID, "Unpublished Draft", "draft-guide", false, now)

	w := doRequest(t, r, http.MethodGet, "/api/travel-guide", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	articles := decodeJSON[[]models.TravelGuideArticle](t, w)
	require.Len(t, articles, 2, "drafts stay hidden")
	assert.Equal(t, "Fresh Guide", articles[0].Title)
	assert.Equal(t, "Old Guide", articles[1].Title)
}

func TestGetArticleBySlug(t *testing.T) {
	db, r := setupEnv(t)
	author, _ := registerUser(t, db, "editor@example.com", "admin")
	seedArticle(t, db, author.ID, "Jaipur in Two Days", "jaipur-in-two-days", true, time.Now().UTC())

	w := doRequest(t, r, http.MethodGet, "/api/travel-guide/jaipur-in-two-days", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	article := decodeJSON[models.TravelGuideArticle](t, w)
	assert.Equal(t, "Jaipur in Two Days", article.Title)

	w = doRequest(t, r, http.MethodGet, "/api/travel-guide/no-such-slug", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
