package syncer

import "github.com/umputun/feedmirror/pkg/domain"

// Status tags the outcome of a fetch or refresh
type Status string

// fetch outcomes
const (
	StatusSuccess      Status = "success"
	StatusError        Status = "error"
	StatusErrorMessage Status = "error-message"
	StatusNoConnection Status = "no-connection"
)

// Result is the tagged outcome of a single fetch or refresh. Title and Items
// are set on success, Message carries the server-supplied error body for
// StatusErrorMessage, Err holds the underlying error for failed statuses.
type Result struct {
	Status  Status
	Title   string
	Items   []domain.Item
	Message string
	Err     error
}
