package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
	"github.com/SergeyBogomolovv/order-notifier/internal/store"
	"github.com/SergeyBogomolovv/order-notifier/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDatabase минимальная Realtime Database: PUT заменяет документ, GET отдает его или null
type fakeDatabase struct {
	mu   sync.Mutex
	docs map[string][]byte
	puts int
}

func (db *fakeDatabase) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	db.mu.Lock()
	defer db.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		db.docs[r.URL.Path] = body
		db.puts++
		w.Write(body)
	case http.MethodGet:
		doc, ok := db.docs[r.URL.Path]
		if !ok {
			w.Write([]byte("null"))
			return
		}
		w.Write(doc)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newFirebaseStore(baseURL, token string) *store.FirebaseStore {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store.NewFirebaseStore(logger, upstream.New("firebase", time.Second), store.FirebaseConfig{
		BaseURL:   baseURL,
		AuthToken: token,
	})
}

func TestFirebaseStore_PutAndGet(t *testing.T) {
	db := &fakeDatabase{docs: make(map[string][]byte)}
	srv := httptest.NewServer(db)
	defer srv.Close()

	s := newFirebaseStore(srv.URL, "")
	ctx := context.Background()

	order := entities.OrderRecord{
		OrderNumber:   "1001",
		TrackingToken: "token",
		CustomerName:  "Guest",
		Email:         "a@b.com",
		OrderDate:     "2024-01-05",
		Stage:         entities.StageConfirmed,
	}
	require.NoError(t, s.PutOrder(ctx, order))

	var stored map[string]any
	require.NoError(t, json.Unmarshal(db.docs["/orders/1001.json"], &stored))
	assert.Equal(t, []any{}, stored["messages"])
	assert.Equal(t, "", stored["deliveryDate"])
	assert.Equal(t, "", stored["eta"])

	got, err := s.GetOrder(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "token", got.TrackingToken)
	assert.Equal(t, entities.StageConfirmed, got.Stage)
}

func TestFirebaseStore_PutOverwrites(t *testing.T) {
	db := &fakeDatabase{docs: make(map[string][]byte)}
	srv := httptest.NewServer(db)
	defer srv.Close()

	s := newFirebaseStore(srv.URL, "")
	ctx := context.Background()

	require.NoError(t, s.PutOrder(ctx, entities.OrderRecord{
		OrderNumber:      "1001",
		CustomerName:     "First",
		DeliveryPostcode: "AB1 2CD",
	}))
	require.NoError(t, s.PutOrder(ctx, entities.OrderRecord{
		OrderNumber:  "1001",
		CustomerName: "Second",
	}))

	got, err := s.GetOrder(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.CustomerName)
	assert.Empty(t, got.DeliveryPostcode)
	assert.Equal(t, 2, db.puts)
}

func TestFirebaseStore_GetNotFound(t *testing.T) {
	db := &fakeDatabase{docs: make(map[string][]byte)}
	srv := httptest.NewServer(db)
	defer srv.Close()

	_, err := newFirebaseStore(srv.URL, "").GetOrder(context.Background(), "404")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestFirebaseStore_PutFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Permission denied"}`))
	}))
	defer srv.Close()

	err := newFirebaseStore(srv.URL, "").PutOrder(context.Background(), entities.OrderRecord{OrderNumber: "1001"})
	require.Error(t, err)

	var statusErr *upstream.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "Permission denied")
}

func TestFirebaseStore_AuthToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("auth"))
		assert.Equal(t, "/orders/1001.json", r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	require.NoError(t, newFirebaseStore(srv.URL, "secret").PutOrder(context.Background(), entities.OrderRecord{OrderNumber: "1001"}))
}

func TestFirebaseStore_ErrorsDoNotExposeAuthToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := newFirebaseStore(srv.URL, "SUPERSECRET")

	err := s.PutOrder(context.Background(), entities.OrderRecord{OrderNumber: "1001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firebase request failed")
	assert.NotContains(t, err.Error(), "SUPERSECRET")

	_, err = s.GetOrder(context.Background(), "1001")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SUPERSECRET")
}
