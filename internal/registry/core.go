// Package registry 提供按出版年份分桶的会议分级注册表
// 每个快照内嵌在二进制里，首次访问时构建并memoize，进程生命周期内不变
package registry

import (
	"strings"
	"sync"
)

// Entry 注册表中的一个会议条目
type Entry struct {
	Title   string // 完整会议标题
	Acronym string // 会议缩写
	Rank    string // 分级 (A*/A/B/C，历史快照里可能有其他值)
}

// Registry 一个年份快照的注册表
type Registry struct {
	Name    string
	Entries []Entry
}

var (
	loadMu sync.Mutex
	loaded = make(map[string]*Registry)
)

// load 从内嵌表构建快照，只构建一次
func load(name string, raw [][3]string) *Registry {
	loadMu.Lock()
	defer loadMu.Unlock()

	if reg, ok := loaded[name]; ok {
		return reg
	}

	entries := make([]Entry, 0, len(raw))
	for _, row := range raw {
		entries = append(entries, Entry{
			Title:   row[0],
			Acronym: row[1],
			Rank:    row[2],
		})
	}
	reg := &Registry{Name: name, Entries: entries}
	loaded[name] = reg
	return reg
}

// ForYear 按出版年份选择注册表快照
// 年份未知（<=0）时使用最新快照
func ForYear(year int) *Registry {
	switch {
	case year <= 0 || year >= 2023:
		return load("CORE2023", core2023)
	case year >= 2021:
		return load("CORE2021", core2021)
	case year >= 2020:
		return load("CORE2020", core2020)
	case year >= 2018:
		return load("CORE2018", core2018)
	case year >= 2017:
		return load("CORE2017", core2017)
	default:
		return load("ERA2010", era2010)
	}
}

// ByAcronym 返回所有缩写精确匹配的条目（大小写不敏感）
func (r *Registry) ByAcronym(acronym string) []Entry {
	if acronym == "" {
		return nil
	}
	var hits []Entry
	for _, e := range r.Entries {
		if strings.EqualFold(e.Acronym, acronym) {
			hits = append(hits, e)
		}
	}
	return hits
}
