package probe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MJDEV50/fetch-coding-challenge/internal/config"
)

func TestHTTPChecker_FastOKIsUp(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	chk := NewHTTPChecker()
	out := chk.Check(context.Background(), config.Endpoint{Name: "a", URL: s.URL})

	if !out.Up() {
		t.Fatalf("want UP, got %+v", out)
	}
	if out.StatusCode == nil || *out.StatusCode != 200 {
		t.Fatalf("want status 200, got %v", out.StatusCode)
	}
	if out.LatencyMS == nil || *out.LatencyMS < 0 {
		t.Fatalf("want latency >= 0, got %v", out.LatencyMS)
	}
	if out.Endpoint != "a" {
		t.Fatalf("want endpoint name carried, got %q", out.Endpoint)
	}
}

func TestHTTPChecker_Non2xxIsDown(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 503)
	}))
	defer s.Close()

	chk := NewHTTPChecker()
	out := chk.Check(context.Background(), config.Endpoint{Name: "b", URL: s.URL})

	if out.Up() {
		t.Fatalf("want DOWN, got %+v", out)
	}
	if out.StatusCode == nil || *out.StatusCode != 503 {
		t.Fatalf("want status 503, got %v", out.StatusCode)
	}
	if out.Reason == "" {
		t.Fatal("want non-empty reason for DOWN")
	}
}

func TestHTTPChecker_ConnectionFailure(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	s.Close() // nothing listens here anymore

	chk := NewHTTPChecker()
	out := chk.Check(context.Background(), config.Endpoint{Name: "c", URL: s.URL})

	if out.Up() {
		t.Fatalf("want DOWN on connection failure, got %+v", out)
	}
	if out.StatusCode != nil {
		t.Fatalf("want absent status on transport error, got %v", *out.StatusCode)
	}
	if out.LatencyMS != nil {
		t.Fatalf("want absent latency on transport error, got %v", *out.LatencyMS)
	}
	if out.Reason == "" {
		t.Fatal("want non-empty reason")
	}
}

func TestHTTPChecker_TimeoutIsDown(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	chk := NewHTTPChecker()
	chk.Client.Timeout = 50 * time.Millisecond
	out := chk.Check(context.Background(), config.Endpoint{Name: "d", URL: s.URL})

	if out.Up() {
		t.Fatalf("want DOWN on timeout, got %+v", out)
	}
	if out.StatusCode != nil {
		t.Fatalf("want absent status on timeout, got %v", *out.StatusCode)
	}
}

func TestHTTPChecker_SendsMethodHeadersAndBody(t *testing.T) {
	var gotMethod, gotHeader, gotCT, gotBody string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Probe")
		gotCT = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(201)
	}))
	defer s.Close()

	ep := config.Endpoint{
		Name:    "e",
		URL:     s.URL,
		Method:  "POST",
		Headers: map[string]string{"X-Probe": "yes"},
		Body:    `{"foo": "bar"}`,
	}
	out := NewHTTPChecker().Check(context.Background(), ep)

	if !out.Up() {
		t.Fatalf("want UP for fast 201, got %+v", out)
	}
	if gotMethod != "POST" {
		t.Fatalf("want POST, got %s", gotMethod)
	}
	if gotHeader != "yes" {
		t.Fatalf("want custom header forwarded, got %q", gotHeader)
	}
	if gotCT != "application/json" {
		t.Fatalf("want JSON content type for body, got %q", gotCT)
	}
	if gotBody != `{"foo": "bar"}` {
		t.Fatalf("want body passed through raw, got %q", gotBody)
	}
}

func TestHTTPChecker_SlowResponseIsDown(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(600 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	out := NewHTTPChecker().Check(context.Background(), config.Endpoint{Name: "f", URL: s.URL})

	if out.Up() {
		t.Fatalf("want DOWN for slow 200, got %+v", out)
	}
	if out.StatusCode == nil || *out.StatusCode != 200 {
		t.Fatalf("want status 200 recorded despite DOWN, got %v", out.StatusCode)
	}
	if out.LatencyMS == nil || *out.LatencyMS < MaxLatencyMS {
		t.Fatalf("want latency >= %v, got %v", MaxLatencyMS, out.LatencyMS)
	}
	if out.Reason != "slow_response" {
		t.Fatalf("want slow_response reason, got %q", out.Reason)
	}
}
