package domain

// Collection is an ordered set of feed items with the feed-level title.
// It is transient - rebuilt on every successful remote fetch, never stored
// as a whole. Its items and title are persisted separately.
type Collection struct {
	Title string
	Items []Item
}
