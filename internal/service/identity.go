package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"pubrank-go/internal/fetcher"
	"pubrank-go/internal/model"
	"pubrank-go/internal/utils"
)

const (
	// 同一基础PID的命中超过这个数就认定是同名枢纽
	hubFanout = 4
	// 枢纽下最多试探的编号
	hubProbeLimit = 150
	// 姓名相似度低于这个值的候选直接跳过，不发请求
	nameSimGate = 0.65
	// 本地标题与候选文献标题的重叠判定门槛
	titleOverlapThreshold = 0.85
	// 可信候选至少要有的标题重叠数
	minOverlap = 2
	// 最终接受的综合分数线
	acceptScore = 2.5
)

// IdentityResolver 作者身份消歧
// 对每个像样的候选实际拉取其文献列表，用本地出版物标题的重叠度验证
type IdentityResolver struct {
	bib fetcher.BibClient
}

// NewIdentityResolver 创建身份解析器
func NewIdentityResolver(bib fetcher.BibClient) *IdentityResolver {
	return &IdentityResolver{bib: bib}
}

// 带后缀的同名PID形式: 181/2689-3
var rePIDSuffix = regexp.MustCompile(`-\d+$`)

// 搜索结果里的同名编号，如 "Wei Wang 0001"
var reNameHomonym = regexp.MustCompile(`\s+\d{4}$`)

func basePID(pid string) string {
	return rePIDSuffix.ReplaceAllString(pid, "")
}

type pidGroup struct {
	base string
	name string
	hits []fetcher.AuthorHit
}

// groupByBase 按基础PID分组，保持命中顺序
func groupByBase(hits []fetcher.AuthorHit) []pidGroup {
	index := make(map[string]int)
	var groups []pidGroup
	for _, h := range hits {
		base := basePID(h.PID)
		if i, ok := index[base]; ok {
			groups[i].hits = append(groups[i].hits, h)
			continue
		}
		index[base] = len(groups)
		groups = append(groups, pidGroup{base: base, name: h.Name, hits: []fetcher.AuthorHit{h}})
	}
	return groups
}

// Resolve 在文献库里找到最可能对应查询姓名的作者身份
// 找不到可信身份返回(nil, nil)。限流错误向上传递，整次解析中止
func (r *IdentityResolver) Resolve(ctx context.Context, name string, sampleTitles []string) (*model.CandidateIdentity, error) {
	hits, err := r.bib.SearchAuthors(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	var best *model.CandidateIdentity
	consider := func(c *model.CandidateIdentity) {
		if c == nil || c.Overlap < minOverlap {
			return
		}
		if best == nil || c.Score > best.Score {
			best = c
		}
	}

	for _, g := range groupByBase(hits) {
		if len(g.hits) > hubFanout {
			// 枢纽本身不是可用身份，逐个试探带编号的真实作者页
			// 编号不保证连续，缺口不终止试探
			log.Printf("[Identity] hub detected at %s (%d hits), probing suffixes", g.base, len(g.hits))
			for i := 1; i <= hubProbeLimit; i++ {
				probe := fetcher.AuthorHit{
					PID:  fmt.Sprintf("%s-%d", g.base, i),
					Name: g.name,
				}
				cand, err := r.evaluate(ctx, name, probe, sampleTitles)
				if err != nil {
					return nil, err
				}
				consider(cand)
			}
			continue
		}

		for _, h := range g.hits {
			cand, err := r.evaluate(ctx, name, h, sampleTitles)
			if err != nil {
				return nil, err
			}
			consider(cand)
		}
	}

	if best != nil && best.Score >= acceptScore {
		return best, nil
	}
	return nil, nil
}

// evaluate 考察单个候选：姓名不够像直接出局，否则拉文献列表算标题重叠
// 拉取失败或作者页为空只淘汰这一个候选
func (r *IdentityResolver) evaluate(ctx context.Context, query string, hit fetcher.AuthorHit, samples []string) (*model.CandidateIdentity, error) {
	cleanName := reNameHomonym.ReplaceAllString(hit.Name, "")
	nameSim := utils.Similarity(strings.ToLower(query), strings.ToLower(cleanName))
	if nameSim < nameSimGate {
		return nil, nil
	}

	records, err := r.bib.FetchPersonRecords(ctx, hit.PID)
	if err != nil {
		if errors.Is(err, fetcher.ErrRateLimited) {
			return nil, err
		}
		// 单个候选拉不下来不算数，继续看别人
		log.Printf("[Identity] failed to fetch %s: %v", hit.PID, err)
		return nil, nil
	}
	if len(records) == 0 {
		return nil, nil
	}

	overlap := countTitleOverlap(samples, records)
	return &model.CandidateIdentity{
		PID:     hit.PID,
		Name:    hit.Name,
		NameSim: nameSim,
		Overlap: overlap,
		Score:   nameSim*2 + float64(overlap),
	}, nil
}

// countTitleOverlap 本地标题与候选文献标题的重叠数，每个本地标题至多计一次
func countTitleOverlap(samples []string, records []fetcher.BibRecord) int {
	normRecords := make([]string, 0, len(records))
	for _, rec := range records {
		normRecords = append(normRecords, utils.NormalizeTitle(rec.Title))
	}

	count := 0
	for _, sample := range samples {
		normSample := utils.NormalizeTitle(sample)
		for _, nr := range normRecords {
			if utils.Similarity(normSample, nr) > titleOverlapThreshold {
				count++
				break
			}
		}
	}
	return count
}
