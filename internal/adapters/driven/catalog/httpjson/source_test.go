package httpjson

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
)

const wrappedDocument = `{"services":[
	{"id":"cedula","title":"Community Tax Certificate","category":"Certificates","url":"cedula.html"}
]}`

func TestFetchWrappedDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(wrappedDocument))
	}))
	defer server.Close()

	source := NewSource(server.URL, time.Second)
	doc, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Services, 1)
	assert.Equal(t, "cedula", doc.Services[0].ID)
	assert.Equal(t, server.URL, source.Describe())
}

func TestFetchBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"id":"cedula","title":"Cedula","category":"Certificates","url":"cedula.html"}]`))
	}))
	defer server.Close()

	source := NewSource(server.URL, time.Second)
	doc, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Services, 1)
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := NewSource(server.URL, time.Second)
	_, err := source.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	source := NewSource(server.URL, time.Second)
	_, err := source.Fetch(context.Background())
	require.Error(t, err)
}

func TestFetchUnreachableHost(t *testing.T) {
	source := NewSource("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := source.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}
