package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/uniformworks/portal-backend/pkg/config"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
)

func TestDoDecodesSuccessResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected json content type, got %q", got)
		}
		w.Write([]byte(`{"name":"Polo Shirt - Navy"}`))
	}))
	defer srv.Close()

	client := New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: time.Second})

	var out struct {
		Name string `json:"name"`
	}
	if err := client.Do(context.Background(), http.MethodGet, "/products/1", nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "Polo Shirt - Navy" {
		t.Fatalf("unexpected payload %+v", out)
	}
}

func TestDoTranslatesTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	err := client.Do(context.Background(), http.MethodGet, "/orders", nil, nil)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeTimeout {
		t.Fatalf("expected REQUEST_TIMEOUT, got %v", err)
	}
}

func TestDoTranslatesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: time.Second})

	err := client.Do(context.Background(), http.MethodGet, "/bundles", nil, nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeHTTP {
		t.Fatalf("expected HTTP_ERROR, got %v", err)
	}
}

func TestDoWrapsOtherFailuresGenerically(t *testing.T) {
	client := New(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	err := client.Do(context.Background(), http.MethodGet, "/users", nil, nil)
	if err == nil {
		t.Fatal("expected connection error")
	}
	if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeTimeout {
		t.Fatalf("connection refusal must not be reported as timeout: %v", err)
	}
}
