package fetcher

import (
	"context"
	"errors"
)

// ErrRateLimited 上游返回429，整次解析应当中止而不是重试
var ErrRateLimited = errors.New("upstream rate limited")

// BibClient 文献库客户端 (DBLP)
type BibClient interface {
	SearchAuthors(ctx context.Context, name string) ([]AuthorHit, error)
	FetchPersonRecords(ctx context.Context, pid string) ([]BibRecord, error)
	FetchBibliography(ctx context.Context, pid string) ([]BibRecord, error)
}

// JournalClient 期刊分位客户端 (SJR)
type JournalClient interface {
	SearchJournalIDs(ctx context.Context, query string) ([]string, error)
	FetchJournalDetail(ctx context.Context, id string) (*JournalDetail, error)
}

// AuthorHit 作者搜索的一条命中
type AuthorHit struct {
	PID  string `json:"pid"`
	Name string `json:"name"`
}

// BibRecord 文献库中的一条出版物记录
type BibRecord struct {
	Key       string `json:"key"`                  // 如 conf/icml/Smith23 或 journals/pami/Smith23
	Title     string `json:"title"`                // 末尾句点已去除
	Venue     string `json:"venue"`                // 记录自带的场所字段
	VenueFull string `json:"venue_full,omitempty"` // 流元数据里的完整标题
	Acronym   string `json:"acronym,omitempty"`    // 流元数据里的缩写
	Year      int    `json:"year"`
	Pages     string `json:"pages,omitempty"`
	PageCount int    `json:"page_count,omitempty"` // 0 表示无法确定
}

// StreamID 从记录key推出所属流，如 conf/icml/Smith23 -> conf/icml
// 不足三段的key没有流
func (r BibRecord) StreamID() string {
	first := -1
	for i := 0; i < len(r.Key); i++ {
		if r.Key[i] == '/' {
			if first < 0 {
				first = i
				continue
			}
			return r.Key[:i]
		}
	}
	return ""
}

// StreamMeta 场所流的元数据
type StreamMeta struct {
	Acronym string `json:"acronym"`
	Title   string `json:"title"`
}

// JournalDetail 期刊详情页解析结果
type JournalDetail struct {
	Title     string         `json:"title"`
	Quartiles map[int]string `json:"quartiles"` // 年份 -> Q1..Q4
}
