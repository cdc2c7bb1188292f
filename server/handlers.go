package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/feedmirror/pkg/syncer"
)

// pingInterval is how often the updates stream sends keep-alive events
const pingInterval = 5 * time.Second

// collectionJSON mirrors the source payload shape, a title with a list of rows
type collectionJSON struct {
	Title string     `json:"title"`
	Rows  []itemJSON `json:"rows"`
}

// itemJSON is a single feed row as served to clients
type itemJSON struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageHref   string `json:"imageHref,omitempty"`
}

// eventJSON is the payload of a single updates stream event
type eventJSON struct {
	Status string     `json:"status"`
	Title  string     `json:"title,omitempty"`
	Rows   []itemJSON `json:"rows,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// feedHandler serves the mirrored feed, from the cache when it holds rows
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	res := <-s.feeds.Fetch(r.Context())
	s.renderResult(w, r, res)
}

// refreshHandler drops the cache and re-fetches from the source
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	res := <-s.feeds.Refresh(r.Context())
	s.renderResult(w, r, res)
}

// updatesHandler streams published results to the client as server-sent events
func (s *Server) updatesHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		renderError(w, r, errors.New("streaming unsupported"), http.StatusInternalServerError)
		return
	}

	// the stream outlives the server write timeout
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		log.Printf("[WARN] can't clear write deadline for updates stream: %v", err)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	key := uuid.New().String()
	updates := s.feeds.Subscribe(key)
	defer s.feeds.Unsubscribe(key)

	log.Printf("[INFO] updates stream started for %s", key)

	// initial event tells the client its key
	fmt.Fprintf(w, "event: init\ndata: %s\n\n", key)
	flusher.Flush()

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Printf("[INFO] updates stream closed for %s", key)
			return
		case <-ping.C:
			fmt.Fprintf(w, "event: ping\ndata:\n\n")
			flusher.Flush()
		case res, ok := <-updates:
			if !ok {
				return
			}
			data, err := json.Marshal(toEventJSON(res))
			if err != nil {
				log.Printf("[ERROR] can't encode update event: %v", err)
				continue
			}
			fmt.Fprintf(w, "event: result\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}

// rssHandler serves the mirrored feed as RSS 2.0
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	res := <-s.feeds.Fetch(r.Context())
	if res.Status != syncer.StatusSuccess {
		code, msg := failureStatus(res)
		http.Error(w, msg, code)
		return
	}

	generator := NewGenerator(s.config.GetBaseURL())
	rss, err := generator.GenerateRSS(res.Title, res.Items)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// renderResult maps a sync result to an HTTP response, a success body mirrors
// the source payload shape
func (s *Server) renderResult(w http.ResponseWriter, r *http.Request, res syncer.Result) {
	if res.Status != syncer.StatusSuccess {
		code, msg := failureStatus(res)
		renderJSON(w, r, code, map[string]string{"error": msg, "status": string(res.Status)})
		return
	}
	renderJSON(w, r, http.StatusOK, toCollectionJSON(res))
}

// failureStatus maps a failed result to an HTTP status code and message
func failureStatus(res syncer.Result) (code int, msg string) {
	switch res.Status {
	case syncer.StatusNoConnection:
		return http.StatusServiceUnavailable, "no connection to the source"
	case syncer.StatusErrorMessage:
		msg = res.Message
		if msg == "" && res.Err != nil {
			msg = res.Err.Error()
		}
		return http.StatusBadGateway, msg
	default:
		msg = "fetch failed"
		if res.Err != nil {
			msg = res.Err.Error()
		}
		return http.StatusInternalServerError, msg
	}
}

// toCollectionJSON converts a successful result to the response DTO
func toCollectionJSON(res syncer.Result) collectionJSON {
	rows := make([]itemJSON, 0, len(res.Items))
	for _, item := range res.Items {
		rows = append(rows, itemJSON{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			ImageHref:   item.ImageURL,
		})
	}
	return collectionJSON{Title: res.Title, Rows: rows}
}

// toEventJSON converts a published result to the stream event DTO
func toEventJSON(res syncer.Result) eventJSON {
	event := eventJSON{Status: string(res.Status)}

	if res.Status == syncer.StatusSuccess {
		collection := toCollectionJSON(res)
		event.Title = collection.Title
		event.Rows = collection.Rows
		return event
	}

	_, event.Error = failureStatus(res)
	return event
}
