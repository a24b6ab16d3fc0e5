package service

import (
	"context"
	"errors"
	"testing"

	"pubrank-go/internal/fetcher"
	"pubrank-go/internal/model"
)

// fakeJournalClient 测试用期刊客户端
type fakeJournalClient struct {
	ids      map[string][]string
	details  map[string]*fetcher.JournalDetail
	searches int
	fetches  int
	err      error
}

func (f *fakeJournalClient) SearchJournalIDs(_ context.Context, query string) ([]string, error) {
	f.searches++
	if f.err != nil {
		return nil, f.err
	}
	return f.ids[query], nil
}

func (f *fakeJournalClient) FetchJournalDetail(_ context.Context, id string) (*fetcher.JournalDetail, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.details[id], nil
}

func TestSelectQuartileForYear(t *testing.T) {
	quartiles := map[int]string{2019: "Q2", 2021: "Q1"}

	cases := []struct {
		year     int
		want     string
		wantYear int
	}{
		{2021, "Q1", 2021}, // 精确命中
		{2020, "Q2", 2019}, // 回退到更早的最近一年
		{0, "Q1", 2021},    // 年份未知用最近的
		{2018, "Q1", 2021}, // 没有更早的，用最近的
	}
	for _, c := range cases {
		got, gotYear := selectQuartileForYear(quartiles, c.year)
		if got != c.want || gotYear != c.wantYear {
			t.Errorf("selectQuartileForYear(%d) = (%s, %d), want (%s, %d)",
				c.year, got, gotYear, c.want, c.wantYear)
		}
	}

	if got, _ := selectQuartileForYear(nil, 2021); got != model.RankNA {
		t.Errorf("empty quartile table = %s, want N/A", got)
	}
}

func TestQuartileResolve(t *testing.T) {
	client := &fakeJournalClient{
		ids: map[string][]string{
			"ieee transactions pattern analysis and machine intelligence": {"1", "2"},
		},
		details: map[string]*fetcher.JournalDetail{
			"1": {
				Title:     "IEEE Transactions on Pattern Analysis and Machine Intelligence",
				Quartiles: map[int]string{2020: "Q1", 2018: "Q1"},
			},
			"2": {
				Title:     "Pattern Recognition Letters",
				Quartiles: map[int]string{2020: "Q2"},
			},
		},
	}
	r := NewQuartileResolver(client)

	quartile, year, err := r.Resolve(context.Background(), "IEEE Trans. Pattern Analysis & Machine Intelligence", 2020)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if quartile != "Q1" || year != 2020 {
		t.Errorf("got (%s, %d), want (Q1, 2020)", quartile, year)
	}

	// 正缓存命中，不再发搜索
	before := client.searches
	quartile, year, err = r.Resolve(context.Background(), "IEEE Trans. Pattern Analysis & Machine Intelligence", 2019)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if quartile != "Q1" || year != 2018 {
		t.Errorf("got (%s, %d), want (Q1, 2018)", quartile, year)
	}
	if client.searches != before {
		t.Error("positive cache miss: search was repeated")
	}
}

func TestQuartileResolveNegativeCache(t *testing.T) {
	client := &fakeJournalClient{ids: map[string][]string{}}
	r := NewQuartileResolver(client)

	quartile, _, err := r.Resolve(context.Background(), "Journal of Nonexistent Studies", 2020)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if quartile != model.RankNA {
		t.Errorf("got %s, want N/A", quartile)
	}

	before := client.searches
	_, _, _ = r.Resolve(context.Background(), "Journal of Nonexistent Studies", 2020)
	if client.searches != before {
		t.Error("negative cache miss: search was repeated")
	}
}

func TestQuartileResolveNegativeCacheNoQualifier(t *testing.T) {
	// 搜得到候选但详情页全都不合格，第二次查询不应再发请求
	client := &fakeJournalClient{
		ids: map[string][]string{
			"journal of unindexed results": {"1", "2"},
		},
		details: map[string]*fetcher.JournalDetail{
			"1": {},
			"2": {Title: "Journal of Unindexed Results"},
		},
	}
	r := NewQuartileResolver(client)

	quartile, _, err := r.Resolve(context.Background(), "Journal of Unindexed Results", 2020)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if quartile != model.RankNA {
		t.Errorf("got %s, want N/A", quartile)
	}

	searches, fetches := client.searches, client.fetches
	_, _, _ = r.Resolve(context.Background(), "Journal of Unindexed Results", 2020)
	if client.searches != searches {
		t.Error("negative cache miss: search was repeated")
	}
	if client.fetches != fetches {
		t.Error("negative cache miss: detail fetches were repeated")
	}
}

func TestQuartileResolveRateLimited(t *testing.T) {
	client := &fakeJournalClient{err: fetcher.ErrRateLimited}
	r := NewQuartileResolver(client)

	_, _, err := r.Resolve(context.Background(), "Some Journal", 2020)
	if !errors.Is(err, fetcher.ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}
}

func TestQuartileResolveEmptyVenue(t *testing.T) {
	r := NewQuartileResolver(&fakeJournalClient{})
	quartile, _, err := r.Resolve(context.Background(), "", 2020)
	if err != nil || quartile != model.RankNA {
		t.Errorf("got (%s, %v), want (N/A, nil)", quartile, err)
	}
}
