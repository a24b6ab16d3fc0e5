package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	authorSearchLimit = 500 // 作者搜索最多取的命中数
	personRecordLimit = 200 // 单个作者页最多取的记录数
)

// DBLPFetcher DBLP API获取器
type DBLPFetcher struct {
	baseURL    string
	httpClient *http.Client

	// 流元数据按流ID memoize，singleflight合并并发的同流请求
	streamGroup singleflight.Group
	streamMu    sync.RWMutex
	streams     map[string]*StreamMeta
}

// NewDBLPFetcher 创建DBLP获取器
func NewDBLPFetcher(baseURL string) *DBLPFetcher {
	return &DBLPFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		streams: make(map[string]*StreamMeta),
	}
}

// get 发起GET请求并返回响应体
// 404视作无此资源返回(nil, nil)，429返回ErrRateLimited
func (f *DBLPFetcher) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PubRank/1.0 (mailto:support@pubrank.io)")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("dblp returned status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

type authorSearchResponse struct {
	Result struct {
		Hits struct {
			Hit []struct {
				Info struct {
					Author string `json:"author"`
					URL    string `json:"url"`
				} `json:"info"`
			} `json:"hit"`
		} `json:"hits"`
	} `json:"result"`
}

// SearchAuthors 按姓名搜索作者
func (f *DBLPFetcher) SearchAuthors(ctx context.Context, name string) ([]AuthorHit, error) {
	if name == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", name)
	params.Set("format", "json")
	params.Set("h", fmt.Sprintf("%d", authorSearchLimit))
	reqURL := fmt.Sprintf("%s/search/author/api?%s", f.baseURL, params.Encode())

	body, err := f.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var result authorSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode author search: %w", err)
	}

	hits := make([]AuthorHit, 0, len(result.Result.Hits.Hit))
	for _, h := range result.Result.Hits.Hit {
		pid := pidFromURL(h.Info.URL)
		if pid == "" || h.Info.Author == "" {
			continue
		}
		hits = append(hits, AuthorHit{PID: pid, Name: h.Info.Author})
	}
	return hits, nil
}

// pidFromURL 从作者主页URL提取PID，如 https://dblp.org/pid/181/2689 -> 181/2689
func pidFromURL(u string) string {
	idx := strings.Index(u, "/pid/")
	if idx < 0 {
		return ""
	}
	return strings.Trim(u[idx+len("/pid/"):], "/")
}

// FetchPersonRecords 获取作者页的原始记录，不补流元数据
// 身份试探阶段用，只需要标题
func (f *DBLPFetcher) FetchPersonRecords(ctx context.Context, pid string) ([]BibRecord, error) {
	body, err := f.get(ctx, fmt.Sprintf("%s/pid/%s.xml", f.baseURL, pid))
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	_, records, err := parsePersonXML(body, personRecordLimit)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FetchBibliography 获取作者的完整文献列表并补上场所流元数据
func (f *DBLPFetcher) FetchBibliography(ctx context.Context, pid string) ([]BibRecord, error) {
	records, err := f.FetchPersonRecords(ctx, pid)
	if err != nil {
		return nil, err
	}

	for i := range records {
		sid := records[i].StreamID()
		if sid == "" {
			continue
		}
		meta := f.streamMeta(ctx, sid)
		if meta == nil {
			continue
		}
		if records[i].Acronym == "" {
			records[i].Acronym = meta.Acronym
		}
		if records[i].VenueFull == "" {
			records[i].VenueFull = meta.Title
		}
	}
	return records, nil
}

// streamMeta 获取单个流的元数据，取不到返回nil
// 成功结果和确认不存在进程内缓存，抓取失败不缓存可重试
func (f *DBLPFetcher) streamMeta(ctx context.Context, streamID string) *StreamMeta {
	f.streamMu.RLock()
	meta, ok := f.streams[streamID]
	f.streamMu.RUnlock()
	if ok {
		return meta
	}

	v, err, _ := f.streamGroup.Do(streamID, func() (interface{}, error) {
		body, err := f.get(ctx, fmt.Sprintf("%s/streams/%s.xml", f.baseURL, streamID))
		if err != nil {
			// 瞬时失败不落缓存，下一条同流记录还有机会补上
			return nil, err
		}
		if body == nil {
			// 确认无此流，缓存空结果
			return (*StreamMeta)(nil), nil
		}
		parsed, err := parseStreamXML(body)
		if err != nil {
			return (*StreamMeta)(nil), nil
		}
		return parsed, nil
	})
	if err != nil {
		return nil
	}

	meta = v.(*StreamMeta)
	f.streamMu.Lock()
	f.streams[streamID] = meta
	f.streamMu.Unlock()
	return meta
}
