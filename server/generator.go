package server

import (
	"encoding/xml"
	"fmt"
	"mime"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/feedmirror/pkg/domain"
)

// RSS represents the root RSS 2.0 element
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel represents an RSS channel
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *AtomLink  `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink represents an Atom link element within RSS
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSItem represents an item in an RSS feed
type RSSItem struct {
	Title       string        `xml:"title"`
	GUID        *RSSGUID      `xml:"guid"`
	Description string        `xml:"description"`
	Enclosure   *RSSEnclosure `xml:"enclosure,omitempty"`
}

// RSSGUID is an item identifier, not a resolvable link for mirrored items
type RSSGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// RSSEnclosure references the item image
type RSSEnclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length int64  `xml:"length,attr"`
}

// Generator creates RSS feeds from cached items
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed from the mirrored collection
func (g *Generator) GenerateRSS(title string, items []domain.Item) (string, error) {
	if title == "" {
		title = "feedmirror"
	}

	rssItems := make([]*RSSItem, 0, len(items))
	for _, item := range items {
		rssItems = append(rssItems, g.convertToRSSItem(item))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Mirror of %s", title),
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a cached item to an RSS item
func (g *Generator) convertToRSSItem(item domain.Item) *RSSItem {
	rssItem := &RSSItem{
		Title:       item.Title,
		GUID:        &RSSGUID{IsPermaLink: "false", Value: strconv.FormatInt(item.ID, 10)},
		Description: item.Description,
	}

	if item.ImageURL != "" {
		rssItem.Enclosure = &RSSEnclosure{
			URL:  item.ImageURL,
			Type: imageType(item.ImageURL),
		}
	}

	return rssItem
}

// imageType guesses the enclosure MIME type from the URL extension
func imageType(url string) string {
	if t := mime.TypeByExtension(path.Ext(url)); strings.HasPrefix(t, "image/") {
		return t
	}
	return "image/jpeg"
}
