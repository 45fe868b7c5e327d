package mirror

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_RoundRobin(t *testing.T) {
	s := Static("https://a.example.com/", " ", "https://b.example.com")
	require.Equal(t, 2, s.Len())

	assert.Equal(t, "https://a.example.com", s.Get())
	assert.Equal(t, "https://b.example.com", s.Get())
	assert.Equal(t, "https://a.example.com", s.Get())
}

func TestStatic_Empty(t *testing.T) {
	assert.Equal(t, "", Static().Get())
}

func TestNewSupplier_SkipsUnhealthy(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games.json", r.URL.Path)
	}))
	defer ok.Close()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer broken.Close()

	s, err := NewSupplier(context.Background(), []string{broken.URL, ok.URL}, "/games.json", time.Second)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, ok.URL, s.Get())
	assert.Equal(t, ok.URL, s.Get())
}

func TestNewSupplier_NoneReachable(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	_, err := NewSupplier(context.Background(), []string{broken.URL, broken.URL + "/"}, "/games.json", time.Second)
	require.Error(t, err)
}

func TestNewSupplier_SingleURLTrusted(t *testing.T) {
	s, err := NewSupplier(context.Background(), []string{"http://127.0.0.1:1"}, "/games.json", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:1", s.Get())
}

func TestNewSupplier_NoURLs(t *testing.T) {
	_, err := NewSupplier(context.Background(), nil, "/games.json", time.Second)
	require.Error(t, err)
}

func TestSupplier_Rotation(t *testing.T) {
	s := Static("https://a.example.com", "https://b.example.com", "https://c.example.com")

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com", "https://c.example.com"}, s.Rotation())
	assert.Equal(t, []string{"https://b.example.com", "https://c.example.com", "https://a.example.com"}, s.Rotation())
	assert.Equal(t, "https://c.example.com", s.Get())

	assert.Empty(t, Static().Rotation())
}

func TestSupplier_RotationConcurrent(t *testing.T) {
	s := Static("https://a.example.com", "https://b.example.com")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.ElementsMatch(t, []string{"https://a.example.com", "https://b.example.com"}, s.Rotation())
		}()
	}
	wg.Wait()
}
