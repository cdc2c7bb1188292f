package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmirror/pkg/domain"
	"github.com/umputun/feedmirror/pkg/syncer"
	"github.com/umputun/feedmirror/server/mocks"
)

func TestServer_FeedHandler(t *testing.T) {
	feeds := &mocks.FeedsMock{
		FetchFunc: func(ctx context.Context) <-chan syncer.Result {
			return resultChan(syncer.Result{
				Status: syncer.StatusSuccess,
				Title:  "T",
				Items:  []domain.Item{{ID: 1, Title: "A"}},
			})
		},
	}

	srv := New(testConfig(), feeds, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/feed")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"T","rows":[{"id":1,"title":"A"}]}`, string(body))
	assert.Len(t, feeds.FetchCalls(), 1)
}

func TestServer_FeedHandler_FullRow(t *testing.T) {
	feeds := &mocks.FeedsMock{
		FetchFunc: func(ctx context.Context) <-chan syncer.Result {
			return resultChan(syncer.Result{
				Status: syncer.StatusSuccess,
				Title:  "About Canada",
				Items: []domain.Item{
					{ID: 7, Title: "Beavers", Description: "Second largest rodent", ImageURL: "http://images.example.com/beaver.jpg"},
				},
			})
		},
	}

	srv := New(testConfig(), feeds, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/feed")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"About Canada","rows":[{"id":7,"title":"Beavers",`+
		`"description":"Second largest rodent","imageHref":"http://images.example.com/beaver.jpg"}]}`, string(body))
}

func TestServer_FeedHandler_EmptyFeed(t *testing.T) {
	feeds := &mocks.FeedsMock{
		FetchFunc: func(ctx context.Context) <-chan syncer.Result {
			return resultChan(syncer.Result{Status: syncer.StatusSuccess, Title: "Empty", Items: nil})
		},
	}

	srv := New(testConfig(), feeds, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/feed")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Empty","rows":[]}`, string(body))
}

func TestServer_FeedHandler_Failures(t *testing.T) {
	tests := []struct {
		name       string
		result     syncer.Result
		wantCode   int
		wantError  string
		wantStatus string
	}{
		{
			name:       "no connection",
			result:     syncer.Result{Status: syncer.StatusNoConnection, Err: errors.New("no connection")},
			wantCode:   http.StatusServiceUnavailable,
			wantError:  "no connection to the source",
			wantStatus: "no-connection",
		},
		{
			name:       "error message from source",
			result:     syncer.Result{Status: syncer.StatusErrorMessage, Message: "database is down", Err: errors.New("unexpected status code: 500")},
			wantCode:   http.StatusBadGateway,
			wantError:  "database is down",
			wantStatus: "error-message",
		},
		{
			name:       "error message without body",
			result:     syncer.Result{Status: syncer.StatusErrorMessage, Err: errors.New("unexpected status code: 502")},
			wantCode:   http.StatusBadGateway,
			wantError:  "unexpected status code: 502",
			wantStatus: "error-message",
		},
		{
			name:       "generic error",
			result:     syncer.Result{Status: syncer.StatusError, Err: errors.New("connection reset")},
			wantCode:   http.StatusInternalServerError,
			wantError:  "connection reset",
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feeds := &mocks.FeedsMock{
				FetchFunc: func(ctx context.Context) <-chan syncer.Result {
					return resultChan(tt.result)
				},
			}

			srv := New(testConfig(), feeds, "test", false)
			ts := httptest.NewServer(srv.router)
			defer ts.Close()

			resp, err := http.Get(ts.URL + "/api/v1/feed")
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)

			var errResp map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.Equal(t, tt.wantError, errResp["error"])
			assert.Equal(t, tt.wantStatus, errResp["status"])
		})
	}
}

func TestServer_RefreshHandler(t *testing.T) {
	feeds := &mocks.FeedsMock{
		RefreshFunc: func(ctx context.Context) <-chan syncer.Result {
			return resultChan(syncer.Result{
				Status: syncer.StatusSuccess,
				Title:  "T",
				Items:  []domain.Item{{ID: 1, Title: "A"}},
			})
		},
	}

	srv := New(testConfig(), feeds, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/feed/refresh", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"T","rows":[{"id":1,"title":"A"}]}`, string(body))

	assert.Len(t, feeds.RefreshCalls(), 1)
	assert.Empty(t, feeds.FetchCalls())
}

func TestServer_RefreshHandler_MethodNotAllowed(t *testing.T) {
	srv := New(testConfig(), &mocks.FeedsMock{}, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/feed/refresh")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_RefreshHandler_NoConnection(t *testing.T) {
	feeds := &mocks.FeedsMock{
		RefreshFunc: func(ctx context.Context) <-chan syncer.Result {
			return resultChan(syncer.Result{Status: syncer.StatusNoConnection})
		},
	}

	srv := New(testConfig(), feeds, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/feed/refresh", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestServer_UpdatesHandler(t *testing.T) {
	updates := make(chan syncer.Result, 1)
	updates <- syncer.Result{
		Status: syncer.StatusSuccess,
		Title:  "T",
		Items:  []domain.Item{{ID: 1, Title: "A"}},
	}

	feeds := &mocks.FeedsMock{
		SubscribeFunc:   func(id string) <-chan syncer.Result { return updates },
		UnsubscribeFunc: func(id string) {},
	}

	srv := New(testConfig(), feeds, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/feed/updates", http.NoBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))

	// read until the first result event payload arrives
	var lines []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		lines = append(lines, line)
		if strings.HasPrefix(line, "data: {") {
			break
		}
	}

	stream := strings.Join(lines, "\n")
	assert.Contains(t, stream, "event: init")
	assert.Contains(t, stream, "event: result")
	assert.Contains(t, stream, `"status":"success"`)
	assert.Contains(t, stream, `"title":"T"`)
	assert.Contains(t, stream, `"rows":[{"id":1,"title":"A"}]`)

	cancel() // drop the client, the handler should unsubscribe

	require.Eventually(t, func() bool { return len(feeds.UnsubscribeCalls()) == 1 },
		time.Second, 10*time.Millisecond)
	require.Len(t, feeds.SubscribeCalls(), 1)
	assert.Equal(t, feeds.SubscribeCalls()[0].ID, feeds.UnsubscribeCalls()[0].ID)
}

func TestServer_UpdatesHandler_FailureEvent(t *testing.T) {
	updates := make(chan syncer.Result, 1)
	updates <- syncer.Result{Status: syncer.StatusNoConnection, Err: errors.New("no connection")}

	feeds := &mocks.FeedsMock{
		SubscribeFunc:   func(id string) <-chan syncer.Result { return updates },
		UnsubscribeFunc: func(id string) {},
	}

	srv := New(testConfig(), feeds, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/feed/updates", http.NoBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var lines []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		lines = append(lines, line)
		if strings.HasPrefix(line, "data: {") {
			break
		}
	}

	stream := strings.Join(lines, "\n")
	assert.Contains(t, stream, `"status":"no-connection"`)
	assert.Contains(t, stream, `"error":"no connection to the source"`)
}

func TestServer_UpdatesHandler_ClosedChannel(t *testing.T) {
	updates := make(chan syncer.Result)
	close(updates)

	feeds := &mocks.FeedsMock{
		SubscribeFunc:   func(id string) <-chan syncer.Result { return updates },
		UnsubscribeFunc: func(id string) {},
	}

	srv := New(testConfig(), feeds, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/feed/updates")
	require.NoError(t, err)
	defer resp.Body.Close()

	// handler exits on a closed updates channel, the stream ends after init
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "event: init")
	assert.NotContains(t, string(body), "event: result")

	require.Eventually(t, func() bool { return len(feeds.UnsubscribeCalls()) == 1 },
		time.Second, 10*time.Millisecond)
}

func TestServer_RSSHandler(t *testing.T) {
	feeds := &mocks.FeedsMock{
		FetchFunc: func(ctx context.Context) <-chan syncer.Result {
			return resultChan(syncer.Result{
				Status: syncer.StatusSuccess,
				Title:  "About Canada",
				Items: []domain.Item{
					{ID: 1, Title: "Beavers", Description: "Second largest rodent"},
					{ID: 2, Title: "Flag", ImageURL: "http://images.example.com/flag.png"},
				},
			})
		},
	}

	srv := New(testConfig(), feeds, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/rss")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/rss+xml; charset=utf-8", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	rss := string(body)
	assert.Contains(t, rss, `<rss version="2.0"`)
	assert.Contains(t, rss, "<title>About Canada</title>")
	assert.Contains(t, rss, "<title>Beavers</title>")
	assert.Contains(t, rss, "<description>Second largest rodent</description>")
	assert.Contains(t, rss, `<guid isPermaLink="false">2</guid>`)
	assert.Contains(t, rss, `url="http://images.example.com/flag.png"`)
	assert.Contains(t, rss, `type="image/png"`)
}

func TestServer_RSSHandler_Failure(t *testing.T) {
	feeds := &mocks.FeedsMock{
		FetchFunc: func(ctx context.Context) <-chan syncer.Result {
			return resultChan(syncer.Result{Status: syncer.StatusNoConnection})
		},
	}

	srv := New(testConfig(), feeds, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/rss")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "no connection to the source")
}
