package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const journalIDLimit = 8 // 每次查询最多考察的候选期刊数

// SJRFetcher SCImago期刊排名获取器
type SJRFetcher struct {
	baseURL    string
	httpClient *http.Client
}

// NewSJRFetcher 创建SJR获取器
func NewSJRFetcher(baseURL string) *SJRFetcher {
	return &SJRFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (f *SJRFetcher) get(ctx context.Context, reqURL string) ([]byte, error) {
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
		return nil, fmt.Errorf("sjr returned status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// 搜索结果页里期刊详情链接的形式: journalsearch.php?q=<sid>&tip=sid
var reJournalID = regexp.MustCompile(`journalsearch\.php\?q=(\d+)&(?:amp;)?tip=sid`)

// SearchJournalIDs 搜索期刊，返回至多8个候选的SCImago ID（保持页面顺序，去重）
func (f *SJRFetcher) SearchJournalIDs(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("tip", "jou")
	body, err := f.get(ctx, fmt.Sprintf("%s/journalsearch.php?%s", f.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	return ExtractJournalIDs(string(body)), nil
}

// ExtractJournalIDs 从搜索结果HTML提取候选期刊ID
func ExtractJournalIDs(html string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, m := range reJournalID.FindAllStringSubmatch(html, -1) {
		id := m[1]
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
		if len(ids) >= journalIDLimit {
			break
		}
	}
	return ids
}

// FetchJournalDetail 获取并解析期刊详情页
func (f *SJRFetcher) FetchJournalDetail(ctx context.Context, id string) (*JournalDetail, error) {
	params := url.Values{}
	params.Set("q", id)
	params.Set("tip", "sid")
	body, err := f.get(ctx, fmt.Sprintf("%s/journalsearch.php?%s", f.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	return ParseJournalDetail(body)
}

// ParseJournalDetail 从详情页HTML提取期刊标题和各年份的分位
// 同一年份在多个类目下出现时保留数值最好的分位
func ParseJournalDetail(html []byte) (*JournalDetail, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse journal page: %w", err)
	}

	detail := &JournalDetail{
		Title:     strings.TrimSpace(doc.Find("h1").First().Text()),
		Quartiles: make(map[int]string),
	}

	// 分位表每行是 (类目, 年份, 分位)
	doc.Find("div.cellslide table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		year, err := strconv.Atoi(strings.TrimSpace(cells.Eq(1).Text()))
		if err != nil {
			return
		}
		quartile := strings.TrimSpace(cells.Eq(2).Text())
		if !isQuartile(quartile) {
			return
		}
		if prev, ok := detail.Quartiles[year]; !ok || quartile < prev {
			detail.Quartiles[year] = quartile
		}
	})

	if detail.Title == "" && len(detail.Quartiles) == 0 {
		return nil, nil
	}
	return detail, nil
}

func isQuartile(s string) bool {
	switch s {
	case "Q1", "Q2", "Q3", "Q4":
		return true
	}
	return false
}
