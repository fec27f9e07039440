package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/passeio/internal/pkg/circuitbreaker"
	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walker struct {
	ID   int    `json:"passeadorId"`
	Name string `json:"nome"`
}

func newTestClient(url string, maxRetries int) *Client {
	return NewClient(Config{BaseURL: url, Timeout: 2 * time.Second, MaxRetries: maxRetries}, nil)
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/passeador/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"passeadorId": 7, "nome": "Bruno"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL+"/", 0)
	ctx := requestcontext.WithRequestContext(context.Background(), &requestcontext.RequestContext{RequestID: "req-1"})

	var got walker
	err := client.GetJSON(ctx, "/passeador/7", "tok", &got)

	require.NoError(t, err)
	assert.Equal(t, walker{ID: 7, Name: "Bruno"}, got)
}

func TestClient_GetJSON_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)

	var got []walker
	err := client.GetJSON(context.Background(), "/passeador", "", &got)

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_GetJSON_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"passeador não encontrado"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)

	err := client.GetJSON(context.Background(), "/passeador/99", "", &walker{})

	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "não encontrado")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_GetJSONOnce_IsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)

	var got []walker
	err := client.GetJSONOnce(context.Background(), "/passeador", "", &got)

	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, uint32(1), client.Breakers().GetStats()["marketplace.passeador"].TotalFailures)
}

func TestClient_GetJSONUnguarded_LeavesBreakerClosed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/passeador" {
			w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	for i := 0; i < 10; i++ {
		err := client.GetJSONUnguarded(context.Background(), "/passeador/1", "", &walker{})
		require.Error(t, err)
	}
	_, tracked := client.Breakers().GetStats()["marketplace.passeador"]
	assert.False(t, tracked)

	var got []walker
	require.NoError(t, client.GetJSONOnce(context.Background(), "/passeador", "", &got))
}

func TestClient_GetJSON_OpenCircuitFailsFast(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	for i := 0; i < 5; i++ {
		require.Error(t, client.GetJSONOnce(context.Background(), "/passeador", "", nil))
	}
	err := client.GetJSONOnce(context.Background(), "/passeador", "", nil)

	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

func TestClient_PostJSON_IsNeverRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)

	err := client.PostJSON(context.Background(), "/servico", "tok", map[string]string{"tipoServico": "passeio"}, nil)

	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_PostJSON_SendsBodyAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "passeio", payload["tipoServico"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"passeadorId": 1, "nome": "Ana"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	var got walker
	err := client.PostJSON(context.Background(), "/servico", "", map[string]string{"tipoServico": "passeio"}, &got)

	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
}

func TestClient_EmptySuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	var got walker
	assert.NoError(t, client.PostJSON(context.Background(), "/servico", "", struct{}{}, &got))
}

func TestClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/pet/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	assert.NoError(t, client.Delete(context.Background(), "/pet/3", "tok"))
}

func TestClient_PostMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Rex", r.FormValue("nome"))
		assert.Equal(t, "12", r.FormValue("tutorId"))

		file, header, err := r.FormFile("foto")
		assert.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "rex.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		assert.Equal(t, []byte("jpeg-bytes"), content)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"passeadorId": 0, "nome": "Rex"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	form := MultipartForm{
		Fields: map[string]string{"nome": "Rex", "tutorId": "12"},
		Files:  []FilePart{{Field: "foto", Filename: "rex.jpg", ContentType: "image/jpeg", Content: []byte("jpeg-bytes")}},
	}

	var got walker
	err := client.PostMultipart(context.Background(), "/pet", "tok", form, &got)

	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Name)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(url, 0)
	var observed []int
	client.SetObserver(func(method, endpoint string, status int, d time.Duration) {
		assert.Equal(t, "passeador", endpoint)
		observed = append(observed, status)
	})

	err := client.GetJSON(context.Background(), "/passeador", "", &[]walker{})

	assert.True(t, errors.Is(err, errs.ErrTransport))
	assert.Equal(t, []int{0}, observed)
}

func TestClient_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := client.GetJSON(ctx, "/passeador/1", "", &walker{})

	assert.True(t, errors.Is(err, errs.ErrCanceled))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEndpointName(t *testing.T) {
	assert.Equal(t, "passeador", EndpointName("/passeador"))
	assert.Equal(t, "passeador", EndpointName("/passeador/12"))
	assert.Equal(t, "servico", EndpointName("/servico/tutor/3"))
	assert.Equal(t, "pet", EndpointName("/pet?x=1"))
	assert.Equal(t, "root", EndpointName("/"))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errs.ErrTransport))
	assert.True(t, IsRetryable(&errs.APIError{StatusCode: http.StatusBadGateway}))
	assert.False(t, IsRetryable(&errs.APIError{StatusCode: http.StatusBadRequest}))
	assert.False(t, IsRetryable(errs.ErrCanceled))
	assert.False(t, IsRetryable(errors.New("something else")))
}
