package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"pubrank-go/internal/fetcher"
	"pubrank-go/internal/model"
	"pubrank-go/internal/utils"
)

const (
	// 每批并发抓取的详情页数
	detailBatchSize = 4
	// 标题几乎完全一致时提前收工，不再看后续候选
	exactTitleThreshold = 0.98
)

// QuartileResolver 解析期刊的SJR分位
// 查询结果按归一化后的场所名做进程内正负缓存
type QuartileResolver struct {
	journals fetcher.JournalClient

	mu       sync.Mutex
	positive map[string]*fetcher.JournalDetail
	negative map[string]bool
}

// NewQuartileResolver 创建期刊分位解析器
func NewQuartileResolver(journals fetcher.JournalClient) *QuartileResolver {
	return &QuartileResolver{
		journals: journals,
		positive: make(map[string]*fetcher.JournalDetail),
		negative: make(map[string]bool),
	}
}

// Resolve 解析期刊在指定年份的分位
// 返回分位和实际采用的年份；查无此刊返回N/A。限流错误向上传递
func (q *QuartileResolver) Resolve(ctx context.Context, venue string, year int) (string, int, error) {
	norm := utils.NormalizeVenue(venue)
	if norm == "" {
		return model.RankNA, 0, nil
	}

	q.mu.Lock()
	if detail, ok := q.positive[norm]; ok {
		q.mu.Unlock()
		quartile, usedYear := selectQuartileForYear(detail.Quartiles, year)
		return quartile, usedYear, nil
	}
	if q.negative[norm] {
		q.mu.Unlock()
		return model.RankNA, 0, nil
	}
	q.mu.Unlock()

	ids, err := q.journals.SearchJournalIDs(ctx, norm)
	if err != nil {
		return "", 0, err
	}
	if len(ids) == 0 {
		// 确认搜不到才记负缓存，抓取失败不算
		q.mu.Lock()
		q.negative[norm] = true
		q.mu.Unlock()
		return model.RankNA, 0, nil
	}

	best, err := q.bestCandidate(ctx, norm, ids)
	if err != nil {
		return "", 0, err
	}
	if best == nil {
		// 搜得到候选但没有一个合格，同样算确认查无
		q.mu.Lock()
		q.negative[norm] = true
		q.mu.Unlock()
		return model.RankNA, 0, nil
	}

	q.mu.Lock()
	q.positive[norm] = best
	q.mu.Unlock()

	quartile, usedYear := selectQuartileForYear(best.Quartiles, year)
	return quartile, usedYear, nil
}

// bestCandidate 分批并发抓详情页，按标题相似度挑最像的那一个
func (q *QuartileResolver) bestCandidate(ctx context.Context, norm string, ids []string) (*fetcher.JournalDetail, error) {
	var (
		mu      sync.Mutex
		best    *fetcher.JournalDetail
		bestSim float64
	)

	for start := 0; start < len(ids); start += detailBatchSize {
		end := start + detailBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, id := range ids[start:end] {
			id := id
			g.Go(func() error {
				detail, err := q.journals.FetchJournalDetail(gctx, id)
				if err != nil {
					if errors.Is(err, fetcher.ErrRateLimited) {
						return err
					}
					// 单个候选抓失败不拖累其余
					log.Printf("[Quartile] failed to fetch journal %s: %v", id, err)
					return nil
				}
				// 标题或分位表缺一个都不算有效候选
				if detail == nil || detail.Title == "" || len(detail.Quartiles) == 0 {
					return nil
				}
				sim := utils.Similarity(norm, utils.NormalizeTitle(detail.Title))
				mu.Lock()
				if sim > bestSim {
					bestSim = sim
					best = detail
				}
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if bestSim >= exactTitleThreshold {
			break
		}
	}

	return best, nil
}

// selectQuartileForYear 在年份表里挑分位
// 有当年用当年，否则用早于查询年份的最近一年，再不行用最近的一年
func selectQuartileForYear(quartiles map[int]string, year int) (string, int) {
	if len(quartiles) == 0 {
		return model.RankNA, 0
	}

	if year > 0 {
		if quartile, ok := quartiles[year]; ok {
			return quartile, year
		}
	}

	bestBefore, bestAny := 0, 0
	for y := range quartiles {
		if year > 0 && y < year && y > bestBefore {
			bestBefore = y
		}
		if y > bestAny {
			bestAny = y
		}
	}
	if bestBefore > 0 {
		return quartiles[bestBefore], bestBefore
	}
	return quartiles[bestAny], bestAny
}
