package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hamed0406/sharewatch/internal/domain"
)

func TestWebsiteChecker_StatusOK(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "sharewatch-monitor/") {
			t.Errorf("unexpected user agent %q", ua)
		}
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	chk := NewWebsiteChecker(2 * time.Second)
	out := chk.Check(context.Background(), domain.WebsiteTarget{URL: s.URL})
	if out.Status != domain.StatusUp {
		t.Fatalf("want up, got %+v", out)
	}
	if out.StatusCode != 200 {
		t.Fatalf("want status 200, got %d", out.StatusCode)
	}
	if out.Message != "OK - 200" {
		t.Fatalf("want message %q, got %q", "OK - 200", out.Message)
	}
	if out.ResponseTimeMillis < 0 {
		t.Fatalf("response time should be >= 0, got %d", out.ResponseTimeMillis)
	}
	if out.Name != s.URL {
		t.Fatalf("name should default to url, got %q", out.Name)
	}
}

func TestWebsiteChecker_4xxIsStillUp(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", 404)
	}))
	defer s.Close()

	chk := NewWebsiteChecker(2 * time.Second)
	out := chk.Check(context.Background(), domain.WebsiteTarget{URL: s.URL})
	if out.Status != domain.StatusUp {
		t.Fatalf("404 should count as reachable, got %+v", out)
	}
	if out.StatusCode != 404 || out.Message != "OK - 404" {
		t.Fatalf("want 404 / OK - 404, got %d / %q", out.StatusCode, out.Message)
	}
}

func TestWebsiteChecker_Status500(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 503)
	}))
	defer s.Close()

	chk := NewWebsiteChecker(2 * time.Second)
	out := chk.Check(context.Background(), domain.WebsiteTarget{URL: s.URL})
	if out.Status != domain.StatusDown {
		t.Fatalf("want down, got %+v", out)
	}
	if out.StatusCode != 503 {
		t.Fatalf("want status 503, got %d", out.StatusCode)
	}
	if !strings.Contains(out.Message, "503") {
		t.Fatalf("want code in message, got %q", out.Message)
	}
}

func TestWebsiteChecker_TimeoutSetsStatusZero(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	chk := NewWebsiteChecker(50 * time.Millisecond)
	out := chk.Check(context.Background(), domain.WebsiteTarget{URL: s.URL})
	if out.Status != domain.StatusDown {
		t.Fatalf("want down on timeout, got %+v", out)
	}
	if out.StatusCode != 0 {
		t.Fatalf("want status 0 on transport error, got %d", out.StatusCode)
	}
	if !strings.Contains(out.Message, "timeout") {
		t.Fatalf("want timeout message, got %q", out.Message)
	}
}

func TestWebsiteChecker_ConnectionRefused(t *testing.T) {
	// grab a port nothing listens on
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := s.URL
	s.Close()

	chk := NewWebsiteChecker(time.Second)
	out := chk.Check(context.Background(), domain.WebsiteTarget{URL: url})
	if out.Status != domain.StatusDown {
		t.Fatalf("want down, got %+v", out)
	}
	if out.Message != "connection refused" {
		t.Fatalf("want connection refused, got %q", out.Message)
	}
}

func TestWebsiteChecker_DNSFailure(t *testing.T) {
	chk := NewWebsiteChecker(2 * time.Second)
	out := chk.Check(context.Background(), domain.WebsiteTarget{URL: "http://does-not-exist.invalid/"})
	if out.Status != domain.StatusDown {
		t.Fatalf("want down, got %+v", out)
	}
	if !strings.Contains(out.Message, "DNS lookup failed") {
		t.Fatalf("want DNS classification, got %q", out.Message)
	}
	if out.StatusCode != 0 {
		t.Fatalf("want status 0, got %d", out.StatusCode)
	}
}
