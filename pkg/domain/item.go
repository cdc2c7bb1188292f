package domain

// Item represents a single feed entry
type Item struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
}

// Empty reports whether the item carries no data at all. Upstream
// payloads are known to pad the rows array with blank entries.
func (i Item) Empty() bool {
	return i.ID == 0 && i.Title == "" && i.Description == "" && i.ImageURL == ""
}
