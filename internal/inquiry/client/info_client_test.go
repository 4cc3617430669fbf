package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRelaysBodyVerbatim(t *testing.T) {
	payload := `{"id":42,"name":"ACME Corp","rating":"A+"}`
	var requests int32
	var gotPath string

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		gotPath = r.URL.Path
		w.Write([]byte(payload))
	}))
	defer origin.Close()

	c := NewInfoClient(origin.URL + "/api/v1/customers/id/")

	body, err := c.Fetch(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, payload, body)
	assert.Equal(t, "/api/v1/customers/id/42", gotPath)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}

func TestFetchNonSuccessStatus(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such customer", http.StatusNotFound)
	}))
	defer origin.Close()

	c := NewInfoClient(origin.URL + "/api/v1/customers/id/")

	_, err := c.Fetch(context.Background(), 42)

	assert.ErrorContains(t, err, "404")
}

func TestFetchUnreachableOrigin(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	origin.Close()

	c := NewInfoClient(origin.URL + "/api/v1/customers/id/")

	_, err := c.Fetch(context.Background(), 42)

	assert.Error(t, err)
}
