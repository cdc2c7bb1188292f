package remote

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/feedmirror/pkg/domain"
)

// parseRSS decodes an RSS/Atom payload into the same collection shape
// the JSON source produces. IDs are left unset, the store assigns them.
func (c *Client) parseRSS(r io.Reader) (*domain.Collection, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	res := &domain.Collection{
		Title: feed.Title,
		Items: make([]domain.Item, 0, len(feed.Items)),
	}
	for _, entry := range feed.Items {
		item := domain.Item{
			Title:       entry.Title,
			Description: entry.Description,
			ImageURL:    entryImage(entry),
		}
		if item.Empty() {
			continue
		}
		res.Items = append(res.Items, item)
	}
	return res, nil
}

// entryImage picks an image URL for the entry, preferring the item image
// over image enclosures
func entryImage(entry *gofeed.Item) string {
	if entry.Image != nil && entry.Image.URL != "" {
		return entry.Image.URL
	}
	for _, enc := range entry.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}
