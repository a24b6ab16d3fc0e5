package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"pubrank-go/internal/cache"
	"pubrank-go/internal/fetcher"
	"pubrank-go/internal/model"
	"pubrank-go/internal/utils"
)

// 标题或场所里出现这些词的出版物不参与分级
var ignoreKeywords = []string{
	"workshop",
	"poster",
	"demo",
	"abstract",
	"tutorial",
	"technical report",
	"tech report",
	"doctoral",
	"companion",
	"short paper",
}

// 正式论文的最少页数，短文不计
const minPageCount = 6

// Progress 解析过程的进度回报
type Progress interface {
	SetPID(pid string)
	SetAction(progress int, phase, action string) error
	AddAssignment(a model.RankAssignment) error
	SendResult(result *model.RankResult) error
	SendNoMatch() error
	SendRateLimited() error
	SendGlobalError(errMsg string) error
}

// RankService 出版物分级解析的编排层
type RankService struct {
	bib         fetcher.BibClient
	conferences *ConferenceResolver
	quartiles   *QuartileResolver
	identities  *IdentityResolver
	store       cache.Cache
	cacheTTL    time.Duration

	mu      sync.Mutex
	running bool
}

// NewRankService 创建解析服务
func NewRankService(bib fetcher.BibClient, journals fetcher.JournalClient, store cache.Cache, cacheTTL time.Duration) *RankService {
	return &RankService{
		bib:         bib,
		conferences: NewConferenceResolver(),
		quartiles:   NewQuartileResolver(journals),
		identities:  NewIdentityResolver(bib),
		store:       store,
		cacheTTL:    cacheTTL,
	}
}

// TryAcquire 占用解析槽，同一时刻只允许一次解析
func (s *RankService) TryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	return true
}

// Release 释放解析槽
func (s *RankService) Release() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Run 执行一次完整解析，结果和终态全部通过progress回报
// 调用方必须先TryAcquire成功
func (s *RankService) Run(ctx context.Context, name, pid string, pubs []model.LocalPublication, progress Progress) {
	cacheKey := cache.NormalizeKey(name, pid)

	// 缓存命中直接回放
	if s.store != nil {
		if cached, err := s.store.Get(ctx, cacheKey); err == nil && cached != nil {
			log.Printf("[Rank] cache hit for %s", cacheKey)
			progress.SetPID(cached.Result.PID)
			progress.SendResult(cached.Result)
			return
		}
	}

	authorName := name

	// 身份消歧
	if pid == "" {
		progress.SetAction(10, "identity", "Searching for author identity")
		samples := make([]string, 0, len(pubs))
		for _, p := range pubs {
			samples = append(samples, p.Title)
		}

		identity, err := s.identities.Resolve(ctx, name, samples)
		if err != nil {
			s.reportError(progress, err)
			return
		}
		if identity == nil {
			log.Printf("[Rank] no credible identity for %q", name)
			progress.SendNoMatch()
			return
		}
		pid = identity.PID
		authorName = identity.Name
		log.Printf("[Rank] identity confirmed: %s (%s), score %.2f", identity.Name, identity.PID, identity.Score)
	}
	progress.SetPID(pid)

	// 拉取文献列表
	progress.SetAction(40, "bibliography", "Fetching bibliography")
	records, err := s.bib.FetchBibliography(ctx, pid)
	if err != nil {
		s.reportError(progress, err)
		return
	}
	if len(records) == 0 {
		progress.SendNoMatch()
		return
	}

	// 本地出版物与文献库记录配对
	progress.SetAction(60, "matching", "Matching publications")
	assigned := MatchPublications(pubs, records)

	// 逐条解析分级
	progress.SetAction(70, "ranking", "Resolving ranks")
	result, err := s.rankAll(ctx, pubs, records, assigned, progress)
	if err != nil {
		s.reportError(progress, err)
		return
	}
	result.Query = name
	result.PID = pid
	result.AuthorName = authorName

	if s.store != nil {
		if err := s.store.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
			log.Printf("[Rank] failed to cache result: %v", err)
		}
	}
	progress.SendResult(result)
}

// rankAll 对配对结果逐条套用过滤和分级策略
func (s *RankService) rankAll(ctx context.Context, pubs []model.LocalPublication, records []fetcher.BibRecord, assigned []int, progress Progress) (*model.RankResult, error) {
	result := &model.RankResult{Counts: model.NewRankCounts()}
	usedTitles := make(map[string]bool)
	usedKeys := make(map[string]bool)

	emit := func(a model.RankAssignment) {
		result.Assignments = append(result.Assignments, a)
		progress.AddAssignment(a)
	}

	for i, pub := range pubs {
		normTitle := utils.NormalizeTitle(pub.Title)

		// 同名标题只处理一次
		if normTitle == "" || usedTitles[normTitle] {
			continue
		}
		// 海报、讲习班之类不参与分级
		if containsIgnoreKeyword(normTitle) {
			continue
		}

		j := assigned[i]
		if j < 0 {
			// 文献库里找不到，按查无处理
			usedTitles[normTitle] = true
			result.Counts.Core[model.RankNA]++
			emit(model.RankAssignment{
				Identifier: pub.Identifier,
				Title:      pub.Title,
				Rank:       model.RankNA,
				System:     model.SystemUnknown,
				Year:       pub.Year,
			})
			continue
		}

		rec := records[j]
		if usedKeys[rec.Key] {
			continue
		}
		if rec.PageCount > 0 && rec.PageCount < minPageCount {
			continue
		}
		result.Matched++

		if strings.HasPrefix(rec.Key, "journals/") {
			quartile, usedYear, err := s.rankJournal(ctx, rec, pub.Year)
			if err != nil {
				return nil, err
			}
			usedTitles[normTitle] = true
			if quartile != model.RankNA {
				usedKeys[rec.Key] = true
			}
			result.Counts.SJR[model.SJRBucket(quartile)]++
			emit(model.RankAssignment{
				Identifier: pub.Identifier,
				Title:      pub.Title,
				Venue:      rec.Venue,
				Rank:       quartile,
				System:     model.SystemSJR,
				Year:       usedYear,
			})
			continue
		}

		// 会议场所本身是讲习班之类的，不进任何计数
		venueText := strings.ToLower(rec.VenueFull + " " + rec.Venue)
		if containsIgnoreKeyword(venueText) {
			usedTitles[normTitle] = true
			emit(model.RankAssignment{
				Identifier: pub.Identifier,
				Title:      pub.Title,
				Venue:      rec.Venue,
				Rank:       model.RankUnknown,
				System:     model.SystemUnknown,
				Year:       pub.Year,
			})
			continue
		}

		year := rec.Year
		if year <= 0 {
			year = pub.Year
		}
		rank := s.conferences.Resolve(rec.Venue, rec.VenueFull, rec.Acronym, year)
		usedTitles[normTitle] = true
		if rank != model.RankNA {
			usedKeys[rec.Key] = true
		}
		result.Counts.Core[model.CoreBucket(rank)]++
		emit(model.RankAssignment{
			Identifier: pub.Identifier,
			Title:      pub.Title,
			Venue:      rec.Venue,
			Rank:       rank,
			System:     model.SystemCORE,
			Year:       year,
		})
	}

	result.Submitted = len(result.Assignments)
	return result, nil
}

// rankJournal 依次用完整标题、场所字段、缩写去查分位，先查到先得
func (s *RankService) rankJournal(ctx context.Context, rec fetcher.BibRecord, localYear int) (string, int, error) {
	year := rec.Year
	if year <= 0 {
		year = localYear
	}

	for _, candidate := range []string{rec.VenueFull, rec.Venue, rec.Acronym} {
		if candidate == "" {
			continue
		}
		quartile, usedYear, err := s.quartiles.Resolve(ctx, candidate, year)
		if err != nil {
			return "", 0, err
		}
		if quartile != model.RankNA {
			return quartile, usedYear, nil
		}
	}
	return model.RankNA, year, nil
}

// reportError 按错误类型选择终态
func (s *RankService) reportError(progress Progress, err error) {
	if errors.Is(err, fetcher.ErrRateLimited) {
		log.Printf("[Rank] aborted: %v", err)
		progress.SendRateLimited()
		return
	}
	log.Printf("[Rank] failed: %v", err)
	progress.SendGlobalError(err.Error())
}

// containsIgnoreKeyword 小写文本里是否出现任一排除词
func containsIgnoreKeyword(text string) bool {
	for _, kw := range ignoreKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
