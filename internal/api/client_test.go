package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"takatrack-client/internal/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"type":"general","status":"full","latitude":-1.29,"longitude":36.82}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0).WithTokens(staticToken("tok-123"))
	bins, err := client.Bins(context.Background())
	if err != nil {
		t.Fatalf("bins: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatalf("expected X-Request-ID header")
	}
	if len(bins) != 1 || bins[0].ID != "1" || bins[0].Status != models.BinStatusFull {
		t.Fatalf("unexpected bins: %+v", bins)
	}
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, 0).WithTokens(staticToken("")).Drivers(context.Background()); err != nil {
		t.Fatalf("drivers: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no authorization header, got %q", gotAuth)
	}
}

func TestClientStatusErrorCarriesUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Location is required"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, 0).CreateCollection(context.Background(), models.CollectionRequest{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if StatusCode(err) != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", StatusCode(err))
	}
	if got := MessageOr(err, "fallback"); got != "Location is required" {
		t.Fatalf("expected upstream message, got %q", got)
	}
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 0).Notifications(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
	if got := MessageOr(err, "Login failed"); got != "Login failed" {
		t.Fatalf("expected fallback message, got %q", got)
	}
}

func TestClientDecodeErrorIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).Collections(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindTransport {
		t.Fatalf("expected transport error for bad payload, got %v", err)
	}
}

func TestUpdateCollectionStatusSendsBody(t *testing.T) {
	var gotPath string
	var gotBody models.StatusUpdateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"message":"Collection updated successfully"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, 0).UpdateCollectionStatus(context.Background(), "42", models.CollectionStatusCompleted)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotPath != "PUT /api/waste/collections/42" {
		t.Fatalf("unexpected request %s", gotPath)
	}
	if gotBody.Status != models.CollectionStatusCompleted {
		t.Fatalf("unexpected body %+v", gotBody)
	}
}

func TestNullCollectionsBecomeEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	collections, err := NewClient(srv.URL, 0).Collections(context.Background())
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if collections == nil || len(collections) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", collections)
	}
}
