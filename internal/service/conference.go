package service

import (
	"strings"
	"sync"

	"pubrank-go/internal/model"
	"pubrank-go/internal/registry"
	"pubrank-go/internal/utils"
)

const (
	// 缩写歧义时用标题相似度裁决的门槛
	ambiguousTitleThreshold = 0.85
	// 模糊标题匹配的门槛
	fuzzyTitleThreshold = 0.90
	// 太短的串不参与包含/模糊匹配，避免误伤
	minFuzzyLen = 6
)

// ConferenceResolver 按年份快照解析会议分级
type ConferenceResolver struct {
	mu       sync.Mutex
	prepared map[string][]preparedEntry
}

// preparedEntry 预先归一化好的注册表条目
type preparedEntry struct {
	entry     registry.Entry
	normTitle string // 归一化后的标题
	normNoOrg string // 再去掉组织前缀的形式
}

// NewConferenceResolver 创建会议分级解析器
func NewConferenceResolver() *ConferenceResolver {
	return &ConferenceResolver{
		prepared: make(map[string][]preparedEntry),
	}
}

// Resolve 解析会议分级
// 先按缩写精确匹配，歧义时用标题相似度裁决；没有缩写或缩写未命中时
// 依次用场所字段和完整标题做包含匹配和模糊匹配。查无此会议返回N/A
func (r *ConferenceResolver) Resolve(venueKey, venueFull, acronym string, year int) string {
	reg := registry.ForYear(year)

	if acronym != "" {
		hits := reg.ByAcronym(acronym)
		switch {
		case len(hits) == 1:
			return validRank(hits[0].Rank)
		case len(hits) > 1:
			// 同一缩写对应多个会议，只认完整标题，场所字段不参与裁决
			return r.disambiguate(hits, venueFull)
		}
	}

	entries := r.entriesFor(reg)
	for _, cand := range candidateStrings(venueKey, venueFull) {
		if rank, ok := matchByContainment(entries, cand); ok {
			return validRank(rank)
		}
		if rank, ok := matchByFuzzy(entries, cand); ok {
			return validRank(rank)
		}
	}

	return model.RankNA
}

// candidateStrings 场所字段优先于完整标题，归一化并去重
func candidateStrings(venueKey, venueFull string) []string {
	var out []string
	for _, raw := range []string{venueKey, venueFull} {
		norm := utils.NormalizeVenue(raw)
		if len(norm) < minFuzzyLen {
			continue
		}
		if len(out) > 0 && out[0] == norm {
			continue
		}
		out = append(out, norm)
	}
	return out
}

// validRank 枚举外的历史分级一律按查无处理
func validRank(rank string) string {
	switch rank {
	case "A*", "A", "B", "C":
		return rank
	}
	return model.RankNA
}

// disambiguate 缩写歧义时按标题相似度挑一个，不够像就放弃
func (r *ConferenceResolver) disambiguate(hits []registry.Entry, title string) string {
	normTitle := utils.NormalizeVenue(title)
	if normTitle == "" {
		return model.RankNA
	}

	best := -1.0
	bestRank := model.RankNA
	for _, h := range hits {
		sim := utils.Similarity(normTitle, utils.NormalizeTitle(h.Title))
		if sim > best {
			best = sim
			bestRank = h.Rank
		}
	}
	if best >= ambiguousTitleThreshold {
		return validRank(bestRank)
	}
	return model.RankNA
}

// entriesFor 准备（并缓存）一个快照的归一化条目
func (r *ConferenceResolver) entriesFor(reg *registry.Registry) []preparedEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entries, ok := r.prepared[reg.Name]; ok {
		return entries
	}

	entries := make([]preparedEntry, 0, len(reg.Entries))
	for _, e := range reg.Entries {
		norm := utils.NormalizeTitle(e.Title)
		entries = append(entries, preparedEntry{
			entry:     e,
			normTitle: norm,
			normNoOrg: utils.StripOrgPrefixes(norm),
		})
	}
	r.prepared[reg.Name] = entries
	return entries
}

// matchByContainment 去掉组织前缀的注册表标题作为子串出现在场所名里即视为命中
// 多个命中时取标题最长的，避免短标题抢走长标题的场子
func matchByContainment(entries []preparedEntry, cand string) (string, bool) {
	bestLen := 0
	var bestRank string
	for _, pe := range entries {
		if len(pe.normNoOrg) < minFuzzyLen {
			continue
		}
		if strings.Contains(cand, pe.normNoOrg) && len(pe.normNoOrg) > bestLen {
			bestLen = len(pe.normNoOrg)
			bestRank = pe.entry.Rank
		}
	}
	return bestRank, bestLen > 0
}

// matchByFuzzy 整串相似度匹配，取过线的最高分，完全一致直接收工
func matchByFuzzy(entries []preparedEntry, cand string) (string, bool) {
	best := 0.0
	var bestRank string
	for _, pe := range entries {
		if len(pe.normTitle) < minFuzzyLen {
			continue
		}
		sim := utils.Similarity(cand, pe.normTitle)
		if s := utils.Similarity(cand, pe.normNoOrg); s > sim {
			sim = s
		}
		if sim > best {
			best = sim
			bestRank = pe.entry.Rank
		}
		if sim == 1.0 {
			break
		}
	}
	if best >= fuzzyTitleThreshold {
		return bestRank, true
	}
	return "", false
}
