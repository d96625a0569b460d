package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRelayClientSend(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewRelayClient(srv.URL)
	cfg := RelayConfigured{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pub"}
	msg := Message{Name: "Ann", Email: "ann@example.com", Message: "hello"}
	if err := c.Send(context.Background(), cfg, msg); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if got["service_id"] != "svc" || got["template_id"] != "tpl" || got["user_id"] != "pub" {
		t.Fatalf("credentials = %v", got)
	}
	params, ok := got["template_params"].(map[string]any)
	if !ok {
		t.Fatalf("template_params missing: %v", got)
	}
	if params["name"] != "Ann" || params["email"] != "ann@example.com" || params["message"] != "hello" {
		t.Fatalf("template_params = %v", params)
	}
}

func TestRelayClientSendRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewRelayClient(srv.URL).Send(context.Background(), RelayConfigured{"s", "t", "k"}, Message{})
	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("Send() error = %v, want *RejectedError", err)
	}
	if rejected.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status code = %d, want %d", rejected.StatusCode, http.StatusInternalServerError)
	}
}

func TestRelayClientSendTransportFault(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewRelayClient(url).Send(context.Background(), RelayConfigured{"s", "t", "k"}, Message{})
	if err == nil {
		t.Fatalf("Send() error = nil, want transport error")
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		t.Fatalf("Send() error = %v, want non-rejection error", err)
	}
}

func TestNewRelayClientDefaultsEndpoint(t *testing.T) {
	t.Parallel()

	if got := NewRelayClient("").Endpoint; got != DefaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", got, DefaultEndpoint)
	}
}
