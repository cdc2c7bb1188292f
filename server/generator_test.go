package server

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmirror/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	gen := NewGenerator("http://localhost:8080/")

	items := []domain.Item{
		{ID: 1, Title: "Beavers", Description: "Second largest rodent"},
		{ID: 2, Title: "Flag", Description: "Maple leaf", ImageURL: "http://images.example.com/flag.png"},
	}

	rss, err := gen.GenerateRSS("About Canada", items)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rss, xml.Header), "feed should start with the XML header")
	assert.Contains(t, rss, `<rss version="2.0"`)
	assert.Contains(t, rss, "<title>About Canada</title>")
	assert.Contains(t, rss, "<description>Mirror of About Canada</description>")
	assert.Contains(t, rss, "<link>http://localhost:8080/</link>")
	assert.Contains(t, rss, `href="http://localhost:8080/rss"`)
	assert.Contains(t, rss, `rel="self"`)
	assert.Contains(t, rss, "<lastBuildDate>")

	assert.Contains(t, rss, "<title>Beavers</title>")
	assert.Contains(t, rss, "<description>Second largest rodent</description>")
	assert.Contains(t, rss, `<guid isPermaLink="false">1</guid>`)
	assert.Contains(t, rss, `<guid isPermaLink="false">2</guid>`)

	// only the item with an image carries an enclosure
	assert.Equal(t, 1, strings.Count(rss, "<enclosure"))
	assert.Contains(t, rss, `url="http://images.example.com/flag.png"`)
	assert.Contains(t, rss, `type="image/png"`)
}

func TestGenerator_GenerateRSS_TitleFallback(t *testing.T) {
	gen := NewGenerator("http://localhost:8080")

	rss, err := gen.GenerateRSS("", nil)
	require.NoError(t, err)

	assert.Contains(t, rss, "<title>feedmirror</title>")
	assert.NotContains(t, rss, "<item>")
}

func TestGenerator_GenerateRSS_ParsesBack(t *testing.T) {
	gen := NewGenerator("http://localhost:8080")

	rss, err := gen.GenerateRSS("T", []domain.Item{{ID: 42, Title: "A"}})
	require.NoError(t, err)

	var parsed RSS
	require.NoError(t, xml.Unmarshal([]byte(rss), &parsed))
	require.NotNil(t, parsed.Channel)
	assert.Equal(t, "T", parsed.Channel.Title)
	require.Len(t, parsed.Channel.Items, 1)
	assert.Equal(t, "A", parsed.Channel.Items[0].Title)
	require.NotNil(t, parsed.Channel.Items[0].GUID)
	assert.Equal(t, "42", parsed.Channel.Items[0].GUID.Value)
	assert.Equal(t, "false", parsed.Channel.Items[0].GUID.IsPermaLink)
	assert.Nil(t, parsed.Channel.Items[0].Enclosure)
}

func TestImageType(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "png", url: "http://example.com/pic.png", want: "image/png"},
		{name: "jpeg", url: "http://example.com/pic.jpg", want: "image/jpeg"},
		{name: "gif", url: "http://example.com/pic.gif", want: "image/gif"},
		{name: "no extension", url: "http://example.com/pic", want: "image/jpeg"},
		{name: "query string masks extension", url: "http://example.com/pic.png?size=large", want: "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, imageType(tt.url))
		})
	}
}
