package usecase

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// EnrichUsecase decorates post and comment nodes: mention highlighting and
// the admin role badge. The component that creates a node invokes these
// directly; nothing watches the tree for changes after the fact.
type EnrichUsecase interface {
	// Refresh loads the admin identity set used for role badges.
	Refresh(ctx context.Context) error

	// DecorateComment highlights mentions in the comment's text and adds
	// the role badge when its author is an admin. Idempotent per node.
	DecorateComment(item *goquery.Selection)

	// DecoratePost does the same for a post card.
	DecoratePost(card *goquery.Selection)
}
