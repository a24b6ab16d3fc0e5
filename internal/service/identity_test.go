package service

import (
	"context"
	"errors"
	"testing"

	"pubrank-go/internal/fetcher"
)

// fakeBibClient 测试用文献库客户端
type fakeBibClient struct {
	hits    []fetcher.AuthorHit
	persons map[string][]fetcher.BibRecord
	err     error

	searchCalls int
	fetchCalls  []string
}

func (f *fakeBibClient) SearchAuthors(_ context.Context, _ string) ([]fetcher.AuthorHit, error) {
	f.searchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

func (f *fakeBibClient) FetchPersonRecords(_ context.Context, pid string) ([]fetcher.BibRecord, error) {
	f.fetchCalls = append(f.fetchCalls, pid)
	return f.persons[pid], nil
}

func (f *fakeBibClient) FetchBibliography(ctx context.Context, pid string) ([]fetcher.BibRecord, error) {
	return f.FetchPersonRecords(ctx, pid)
}

func recordsWithTitles(titles ...string) []fetcher.BibRecord {
	records := make([]fetcher.BibRecord, 0, len(titles))
	for _, t := range titles {
		records = append(records, fetcher.BibRecord{Title: t})
	}
	return records
}

func TestIdentityResolveDirectHit(t *testing.T) {
	client := &fakeBibClient{
		hits: []fetcher.AuthorHit{
			{PID: "181/2689", Name: "Jane Smith"},
			{PID: "99/1234", Name: "Janet Smithson"},
		},
		persons: map[string][]fetcher.BibRecord{
			"181/2689": recordsWithTitles(
				"Learning to Rank Venues",
				"Typed Streams for Fun and Profit",
				"A Third Paper Entirely",
			),
			"99/1234": recordsWithTitles("Unrelated Work on Widgets"),
		},
	}
	r := NewIdentityResolver(client)

	samples := []string{"Learning to Rank Venues", "Typed Streams for Fun and Profit"}
	identity, err := r.Resolve(context.Background(), "Jane Smith", samples)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if identity == nil {
		t.Fatal("expected an identity, got nil")
	}
	if identity.PID != "181/2689" {
		t.Errorf("pid = %s, want 181/2689", identity.PID)
	}
	if identity.Overlap != 2 {
		t.Errorf("overlap = %d, want 2", identity.Overlap)
	}
}

func TestIdentityResolveNoMatch(t *testing.T) {
	client := &fakeBibClient{
		hits: []fetcher.AuthorHit{{PID: "1/1", Name: "Jane Smith"}},
		persons: map[string][]fetcher.BibRecord{
			"1/1": recordsWithTitles("Completely Different Topic"),
		},
	}
	r := NewIdentityResolver(client)

	identity, err := r.Resolve(context.Background(), "Jane Smith", []string{"Learning to Rank Venues", "Typed Streams"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if identity != nil {
		t.Errorf("expected no match, got %+v", identity)
	}
}

func TestIdentityResolveNameGate(t *testing.T) {
	client := &fakeBibClient{
		hits: []fetcher.AuthorHit{{PID: "1/1", Name: "Boris Kowalczyk"}},
	}
	r := NewIdentityResolver(client)

	identity, err := r.Resolve(context.Background(), "Jane Smith", []string{"Some Paper"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if identity != nil {
		t.Error("dissimilar name should be gated out")
	}
	if len(client.fetchCalls) != 0 {
		t.Errorf("gated candidate should not be fetched, got %v", client.fetchCalls)
	}
}

func TestIdentityResolveHub(t *testing.T) {
	// 6个命中落在同一个基础PID上，触发枢纽试探
	hits := []fetcher.AuthorHit{
		{PID: "w/WeiWang", Name: "Wei Wang"},
		{PID: "w/WeiWang-1", Name: "Wei Wang 0001"},
		{PID: "w/WeiWang-2", Name: "Wei Wang 0002"},
		{PID: "w/WeiWang-3", Name: "Wei Wang 0003"},
		{PID: "w/WeiWang-4", Name: "Wei Wang 0004"},
		{PID: "w/WeiWang-5", Name: "Wei Wang 0005"},
	}
	client := &fakeBibClient{
		hits: hits,
		persons: map[string][]fetcher.BibRecord{
			// -1 不存在：编号有缺口，真实作者在缺口之后
			"w/WeiWang-2": recordsWithTitles(
				"Learning to Rank Venues",
				"Typed Streams for Fun and Profit",
				"More of the Same",
			),
			"w/WeiWang-4": recordsWithTitles("Graph Algorithms at Scale"),
		},
	}
	r := NewIdentityResolver(client)

	samples := []string{"Learning to Rank Venues", "Typed Streams for Fun and Profit"}
	identity, err := r.Resolve(context.Background(), "Wei Wang", samples)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if identity == nil {
		t.Fatal("expected an identity, got nil")
	}
	if identity.PID != "w/WeiWang-2" {
		t.Errorf("pid = %s, want w/WeiWang-2", identity.PID)
	}

	// 缺口不终止试探，上限以内的编号都要看过
	probed := make(map[string]bool, len(client.fetchCalls))
	for _, pid := range client.fetchCalls {
		probed[pid] = true
	}
	for _, pid := range []string{"w/WeiWang-2", "w/WeiWang-4", "w/WeiWang-150"} {
		if !probed[pid] {
			t.Errorf("suffix %s was never probed", pid)
		}
	}
}

func TestIdentityResolveRateLimited(t *testing.T) {
	client := &fakeBibClient{err: fetcher.ErrRateLimited}
	r := NewIdentityResolver(client)

	_, err := r.Resolve(context.Background(), "Jane Smith", nil)
	if !errors.Is(err, fetcher.ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}
}

func TestIdentityResolveEmptySearch(t *testing.T) {
	r := NewIdentityResolver(&fakeBibClient{})
	identity, err := r.Resolve(context.Background(), "Nobody Atall", nil)
	if err != nil || identity != nil {
		t.Errorf("got (%+v, %v), want (nil, nil)", identity, err)
	}
}

func TestBasePID(t *testing.T) {
	cases := []struct{ in, want string }{
		{"181/2689-3", "181/2689"},
		{"181/2689", "181/2689"},
		{"w/WeiWang-12", "w/WeiWang"},
	}
	for _, c := range cases {
		if got := basePID(c.in); got != c.want {
			t.Errorf("basePID(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
