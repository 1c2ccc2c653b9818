package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	mockRepo "menfes/internal/mocks/repository"
	"menfes/internal/usecase"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEnrichService(t *testing.T) (usecase.EnrichUsecase, *mockRepo.MockRoleRepository) {
	roles := mockRepo.NewMockRoleRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewEnrichService(roles, logger), roles
}

func parseFragment(t *testing.T, html, selector string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	return doc.Find(selector).First()
}

func TestEnrichService_HighlightsMentions(t *testing.T) {
	service, _ := createTestEnrichService(t)

	item := parseFragment(t,
		`<li class="comment-item" data-id="c1"><div class="comment-text">halo @Budi dan @kelas_2B</div><div class="comment-meta"></div></li>`,
		"li.comment-item")

	service.DecorateComment(item)

	assert.Equal(t, 2, item.Find(".mention").Length())
	assert.Equal(t, "@Budi", item.Find(".mention").First().Text())
}

func TestEnrichService_MentionHighlightEscapesMarkup(t *testing.T) {
	service, _ := createTestEnrichService(t)

	item := parseFragment(t,
		`<li class="comment-item" data-id="c1"><div class="comment-text"></div><div class="comment-meta"></div></li>`,
		"li.comment-item")
	item.Find(".comment-text").SetText(`<b>tebal</b> @Budi`)

	service.DecorateComment(item)

	assert.Equal(t, 0, item.Find(".comment-text b").Length())
	assert.Contains(t, item.Find(".comment-text").Text(), "<b>tebal</b>")
	assert.Equal(t, 1, item.Find(".mention").Length())
}

func TestEnrichService_AddsBadgeForAdminAuthors(t *testing.T) {
	service, roles := createTestEnrichService(t)

	roles.EXPECT().AdminUIDs(mock.Anything).Return([]string{"u_admin"}, nil).Once()
	require.NoError(t, service.Refresh(context.Background()))

	item := parseFragment(t,
		`<li class="comment-item" data-id="c1" data-author-uid="u_admin"><div class="comment-text">info</div><div class="comment-meta"><span class="comment-time">kemarin</span></div></li>`,
		"li.comment-item")

	service.DecorateComment(item)
	assert.Equal(t, 1, item.Find(".comment-meta .badge").Length())
	assert.Equal(t, "BEM UNBIN", item.Find(".badge").Text())

	// Decorating again must not stack badges.
	service.DecorateComment(item)
	assert.Equal(t, 1, item.Find(".comment-meta .badge").Length())
}

func TestEnrichService_NoBadgeForUnknownAuthors(t *testing.T) {
	service, roles := createTestEnrichService(t)

	roles.EXPECT().AdminUIDs(mock.Anything).Return([]string{"u_admin"}, nil).Once()
	require.NoError(t, service.Refresh(context.Background()))

	item := parseFragment(t,
		`<li class="comment-item" data-id="c1" data-author-uid="u_biasa"><div class="comment-text">halo</div><div class="comment-meta"></div></li>`,
		"li.comment-item")

	service.DecorateComment(item)
	assert.Equal(t, 0, item.Find(".badge").Length())
}

func TestEnrichService_DecoratePost(t *testing.T) {
	service, roles := createTestEnrichService(t)

	roles.EXPECT().AdminUIDs(mock.Anything).Return([]string{"u_admin"}, nil).Once()
	require.NoError(t, service.Refresh(context.Background()))

	card := parseFragment(t,
		`<article class="post-card" id="post-a1" data-author-uid="u_admin"><header><span class="post-author">BEM</span></header><div class="post-content">untuk @semua</div></article>`,
		"article.post-card")

	service.DecoratePost(card)
	assert.Equal(t, 1, card.Find("header .post-author .badge").Length())
	assert.Equal(t, 1, card.Find(".post-content .mention").Length())

	service.DecoratePost(card)
	assert.Equal(t, 1, card.Find("header .post-author .badge").Length())
}

func TestEnrichService_RefreshFailure(t *testing.T) {
	service, roles := createTestEnrichService(t)

	roles.EXPECT().AdminUIDs(mock.Anything).Return(nil, errors.New("feed offline")).Once()
	require.Error(t, service.Refresh(context.Background()))
}

func TestEnrichService_NilRoleRepository(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	service := NewEnrichService(nil, logger)

	require.NoError(t, service.Refresh(context.Background()))

	item := parseFragment(t,
		`<li class="comment-item" data-id="c1" data-author-uid="u_admin"><div class="comment-text">halo @Budi</div><div class="comment-meta"></div></li>`,
		"li.comment-item")
	service.DecorateComment(item)

	assert.Equal(t, 0, item.Find(".badge").Length())
	assert.Equal(t, 1, item.Find(".mention").Length())
}
