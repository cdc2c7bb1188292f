package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedmirror/pkg/domain"
	"github.com/umputun/feedmirror/pkg/remote"
)

//go:generate moq -out mocks/remote.go -pkg mocks -skip-ensure -fmt goimports . Remote
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Remote fetches the feed from the source
type Remote interface {
	Fetch(ctx context.Context) (*domain.Collection, error)
}

// Store provides the local feed cache
type Store interface {
	ReplaceItems(ctx context.Context, items []domain.Item) ([]domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	CountItems(ctx context.Context) (int, error)
	DeleteItems(ctx context.Context) error
	Title(ctx context.Context) (string, error)
	SetTitle(ctx context.Context, title string) error
}

// Service coordinates the remote source and the local cache. Reads are served
// from the cache when it holds rows, the source is hit only when the cache is
// empty or on an explicit refresh. Failures are tagged, never retried.
type Service struct {
	remote Remote
	store  Store

	mu          sync.RWMutex
	subscribers map[string]chan Result
}

// New creates a sync service
func New(remote Remote, store Store) *Service {
	return &Service{
		remote:      remote,
		store:       store,
		subscribers: make(map[string]chan Result),
	}
}

// Fetch serves the feed, from the cache when it holds rows and from the
// source otherwise. Exactly one Result arrives on the returned channel.
func (s *Service) Fetch(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		s.deliver(out, s.fetch(ctx))
	}()
	return out
}

// Refresh drops the whole cache and fetches from the source regardless of
// what was cached. Exactly one Result arrives on the returned channel.
func (s *Service) Refresh(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		s.deliver(out, s.refresh(ctx))
	}()
	return out
}

// deliver bumps metrics, broadcasts to subscribers and hands the result to
// the caller channel. The caller channel is buffered, send never blocks.
func (s *Service) deliver(out chan Result, res Result) {
	fetchesTotal.WithLabelValues(string(res.Status)).Inc()
	s.broadcast(res)
	out <- res
}

// fetch runs the cache-aside read, cached rows win over the network
func (s *Service) fetch(ctx context.Context) Result {
	count, err := s.store.CountItems(ctx)
	if err != nil {
		return Result{Status: StatusError, Err: fmt.Errorf("count items: %w", err)}
	}

	if count > 0 {
		cacheHits.Inc()
		return s.fromCache(ctx)
	}

	cacheMisses.Inc()
	return s.fromRemote(ctx)
}

// refresh clears the cached rows and always goes to the source
func (s *Service) refresh(ctx context.Context) Result {
	refreshesTotal.Inc()

	if err := s.store.DeleteItems(ctx); err != nil {
		return Result{Status: StatusError, Err: fmt.Errorf("delete items: %w", err)}
	}
	return s.fromRemote(ctx)
}

// fromCache serves cached rows and title without touching the network
func (s *Service) fromCache(ctx context.Context) Result {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return Result{Status: StatusError, Err: fmt.Errorf("list items: %w", err)}
	}

	title, err := s.store.Title(ctx)
	if err != nil {
		return Result{Status: StatusError, Err: fmt.Errorf("get title: %w", err)}
	}

	lgr.Printf("[DEBUG] served %d items from cache", len(items))
	return Result{Status: StatusSuccess, Title: title, Items: items}
}

// fromRemote fetches from the source and replaces the cache wholesale
func (s *Service) fromRemote(ctx context.Context) Result {
	remoteCalls.Inc()

	collection, err := s.remote.Fetch(ctx)
	if err != nil {
		var statusErr *remote.StatusError
		switch {
		case errors.Is(err, remote.ErrNoConnection):
			lgr.Printf("[WARN] source unreachable, connectivity probe failed")
			return Result{Status: StatusNoConnection, Err: err}
		case errors.As(err, &statusErr):
			lgr.Printf("[WARN] source replied with status %d", statusErr.Code)
			return Result{Status: StatusErrorMessage, Message: statusErr.Body, Err: err}
		default:
			lgr.Printf("[WARN] source fetch failed: %v", err)
			return Result{Status: StatusError, Err: err}
		}
	}

	stored, err := s.store.ReplaceItems(ctx, collection.Items)
	if err != nil {
		return Result{Status: StatusError, Err: fmt.Errorf("replace items: %w", err)}
	}

	if err := s.store.SetTitle(ctx, collection.Title); err != nil {
		return Result{Status: StatusError, Err: fmt.Errorf("set title: %w", err)}
	}

	lgr.Printf("[INFO] cached %d items from source, title %q", len(stored), collection.Title)
	return Result{Status: StatusSuccess, Title: collection.Title, Items: stored}
}
