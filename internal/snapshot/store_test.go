package snapshot

import (
	"sync"
	"testing"
	"time"

	"github.com/hamed0406/sharewatch/internal/domain"
)

func TestStore_EmptyUntilPublished(t *testing.T) {
	s := NewStore()
	if _, ok := s.Current(); ok {
		t.Fatal("want no snapshot before first publish")
	}
}

func TestStore_PublishReplacesWholesale(t *testing.T) {
	s := NewStore()

	first := domain.Snapshot{
		WebsiteResults: map[string]domain.WebsiteResult{"a": {Name: "a"}},
		StoreResults:   map[string]domain.ShareResult{},
		LastUpdate:     time.Date(2025, 8, 18, 1, 0, 0, 0, time.UTC),
	}
	s.Publish(first)

	got, ok := s.Current()
	if !ok || len(got.WebsiteResults) != 1 {
		t.Fatalf("want first snapshot, got %+v ok=%v", got, ok)
	}

	second := domain.Snapshot{
		WebsiteResults: map[string]domain.WebsiteResult{"b": {Name: "b"}, "c": {Name: "c"}},
		StoreResults:   map[string]domain.ShareResult{},
		LastUpdate:     time.Date(2025, 8, 18, 2, 0, 0, 0, time.UTC),
	}
	s.Publish(second)

	got, _ = s.Current()
	if _, stale := got.WebsiteResults["a"]; stale {
		t.Fatalf("old entries must not survive a publish: %+v", got)
	}
	if len(got.WebsiteResults) != 2 || !got.LastUpdate.Equal(second.LastUpdate) {
		t.Fatalf("want second snapshot, got %+v", got)
	}
}

func TestStore_ConcurrentReadersNeverSeeMix(t *testing.T) {
	s := NewStore()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			s.Publish(domain.Snapshot{
				WebsiteResults: map[string]domain.WebsiteResult{
					"x": {StatusCode: i},
					"y": {StatusCode: i},
				},
			})
		}
	}()

	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				snap, ok := s.Current()
				if !ok {
					continue
				}
				// both entries always come from the same publish
				if snap.WebsiteResults["x"].StatusCode != snap.WebsiteResults["y"].StatusCode {
					t.Error("observed a torn snapshot")
					return
				}
			}
		}()
	}

	<-done
	wg.Wait()
}
