package view

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><body>
<article class="post-card" id="post-a1"><span class="like-count">3</span></article>
<ul class="comment-list"><li class="comment-item" data-id="c1"></li></ul>
</body></html>`

func TestDocument_SelectorsAndUpdate(t *testing.T) {
	doc, err := ParseString(samplePage)
	require.NoError(t, err)

	assert.Equal(t, "3", doc.Text("#post-a1 .like-count"))
	assert.Equal(t, 1, doc.Count("li.comment-item"))

	doc.Update(func(d *goquery.Document) {
		d.Find(".comment-list").AppendHtml(`<li class="comment-item" data-id="c2"></li>`)
		d.Find("#post-a1 .like-count").SetHtml("4")
	})

	assert.Equal(t, 2, doc.Count("li.comment-item"))
	assert.Equal(t, "4", doc.Text("#post-a1 .like-count"))

	id, ok := doc.Attr(`li.comment-item[data-id="c2"]`, "data-id")
	require.True(t, ok)
	assert.Equal(t, "c2", id)
}
