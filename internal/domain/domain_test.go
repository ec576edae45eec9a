package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func ts(h int) *time.Time {
	t := time.Date(2025, 8, 18, h, 0, 0, 0, time.UTC)
	return &t
}

func TestAggregate_MergeIdentity(t *testing.T) {
	a := DirectoryAggregate{Count: 3, OldestFile: ts(1), NewestFile: ts(9)}
	var zero DirectoryAggregate

	got := a.Merge(zero)
	if got.Count != 3 || !got.OldestFile.Equal(*ts(1)) || !got.NewestFile.Equal(*ts(9)) {
		t.Fatalf("merge with zero changed value: %+v", got)
	}
	got = zero.Merge(a)
	if got.Count != 3 || !got.OldestFile.Equal(*ts(1)) || !got.NewestFile.Equal(*ts(9)) {
		t.Fatalf("zero.Merge(a) changed value: %+v", got)
	}
	if z := zero.Merge(zero); z.Count != 0 || z.OldestFile != nil || z.NewestFile != nil {
		t.Fatalf("zero merge zero not zero: %+v", z)
	}
}

func TestAggregate_MergeCommutativeAssociative(t *testing.T) {
	a := DirectoryAggregate{Count: 1, OldestFile: ts(3), NewestFile: ts(3)}
	b := DirectoryAggregate{Count: 2, OldestFile: ts(1), NewestFile: ts(5)}
	c := DirectoryAggregate{Count: 4, OldestFile: ts(2), NewestFile: ts(8)}

	ab := a.Merge(b)
	ba := b.Merge(a)
	if ab.Count != ba.Count || !ab.OldestFile.Equal(*ba.OldestFile) || !ab.NewestFile.Equal(*ba.NewestFile) {
		t.Fatalf("not commutative: %+v vs %+v", ab, ba)
	}

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))
	if left.Count != 7 || right.Count != 7 {
		t.Fatalf("counts wrong: %d %d", left.Count, right.Count)
	}
	if !left.OldestFile.Equal(*ts(1)) || !left.NewestFile.Equal(*ts(8)) {
		t.Fatalf("bounds wrong: %+v", left)
	}
	if !left.OldestFile.Equal(*right.OldestFile) || !left.NewestFile.Equal(*right.NewestFile) {
		t.Fatalf("not associative: %+v vs %+v", left, right)
	}
}

func TestAggregate_ObserveFileNilTimestamp(t *testing.T) {
	a := DirectoryAggregate{Count: 2, OldestFile: ts(2), NewestFile: ts(4)}
	got := a.ObserveFile(nil)
	if got.Count != 3 {
		t.Fatalf("want count 3, got %d", got.Count)
	}
	if !got.OldestFile.Equal(*ts(2)) || !got.NewestFile.Equal(*ts(4)) {
		t.Fatalf("nil timestamp moved bounds: %+v", got)
	}
}

func TestTargetKeys(t *testing.T) {
	w := WebsiteTarget{URL: "https://example.com"}
	if w.Key() != "https://example.com" {
		t.Fatalf("website key: %q", w.Key())
	}
	if w.DisplayName() != "https://example.com" {
		t.Fatalf("display name should default to url: %q", w.DisplayName())
	}

	cases := []struct {
		name string
		tgt  FileStoreTarget
		want string
	}{
		{"account and share", FileStoreTarget{AccountName: "acme", ShareName: "backups"}, "acme/backups"},
		{"no account, named", FileStoreTarget{ShareName: "backups", Name: "prod-backups"}, "prod-backups"},
		{"no account, unnamed", FileStoreTarget{ShareName: "backups", SASURL: "https://store.example/backups?sig=x"}, "https://store.example/backups?sig=x"},
	}
	for _, tc := range cases {
		if got := tc.tgt.Key(); got != tc.want {
			t.Errorf("%s: want %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestBreakdownEntry_MarshalShapes(t *testing.T) {
	ok, err := json.Marshal(AggregateEntry(DirectoryAggregate{Count: 2, OldestFile: ts(1), NewestFile: ts(2)}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(ok), "error") {
		t.Fatalf("success entry should not carry error: %s", ok)
	}
	if !strings.Contains(string(ok), `"count":2`) {
		t.Fatalf("missing count: %s", ok)
	}

	bad, err := json.Marshal(ErrorEntry("listing failed"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(bad) != `{"error":"listing failed"}` {
		t.Fatalf("error entry shape: %s", bad)
	}

	// empty directory keeps explicit nulls so consumers can tell
	// "no files" from "not traversed"
	empty, _ := json.Marshal(AggregateEntry(DirectoryAggregate{}))
	if !strings.Contains(string(empty), `"oldestFileTimestamp":null`) {
		t.Fatalf("want null timestamps: %s", empty)
	}
}

func TestSnapshot_JSONFieldNames(t *testing.T) {
	s := Snapshot{
		WebsiteResults: map[string]WebsiteResult{
			"https://example.com": {Name: "example", Status: StatusUp, StatusCode: 200, ResponseTimeMillis: 120, Message: "OK - 200"},
		},
		StoreResults: map[string]ShareResult{
			"acme/backups": {Name: "backups", Status: StatusOK, FileCount: 3, Message: "3 files found"},
		},
		LastUpdate: time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC),
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"websiteResults"`, `"storeResults"`, `"lastUpdate"`, `"statusCode"`, `"responseTimeMillis"`, `"fileCount"`} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("missing %s in %s", want, b)
		}
	}
}
