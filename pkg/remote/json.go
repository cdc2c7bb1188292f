package remote

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/umputun/feedmirror/pkg/domain"
)

// collectionJSON mirrors the source payload, a title with a list of rows
type collectionJSON struct {
	Title string     `json:"title"`
	Rows  []itemJSON `json:"rows"`
}

// itemJSON is a single row of the source payload, any field may be null or absent
type itemJSON struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageHref   string `json:"imageHref"`
}

// parseJSON decodes the source JSON payload. Rows carrying no data at all are
// dropped, the source is known to pad the rows array with blank entries.
func (c *Client) parseJSON(r io.Reader) (*domain.Collection, error) {
	var payload collectionJSON
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	res := &domain.Collection{
		Title: payload.Title,
		Items: make([]domain.Item, 0, len(payload.Rows)),
	}
	for _, row := range payload.Rows {
		item := domain.Item{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			ImageURL:    row.ImageHref,
		}
		if item.Empty() {
			continue
		}
		res.Items = append(res.Items, item)
	}
	return res, nil
}
