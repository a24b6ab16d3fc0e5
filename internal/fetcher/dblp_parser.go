package fetcher

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// dblpPerson 作者页XML的顶层结构
type dblpPerson struct {
	XMLName xml.Name       `xml:"dblpperson"`
	Name    string         `xml:"name,attr"`
	Records []personRecord `xml:"r"`
}

// personRecord <r>元素，出版物类型各占一个子元素
type personRecord struct {
	Article       *rawRecord `xml:"article"`
	Inproceedings *rawRecord `xml:"inproceedings"`
	Incollection  *rawRecord `xml:"incollection"`
	Proceedings   *rawRecord `xml:"proceedings"`
	Book          *rawRecord `xml:"book"`
	PhdThesis     *rawRecord `xml:"phdthesis"`
}

func (r personRecord) pick() *rawRecord {
	switch {
	case r.Article != nil:
		return r.Article
	case r.Inproceedings != nil:
		return r.Inproceedings
	case r.Incollection != nil:
		return r.Incollection
	case r.Proceedings != nil:
		return r.Proceedings
	case r.Book != nil:
		return r.Book
	case r.PhdThesis != nil:
		return r.PhdThesis
	}
	return nil
}

type rawRecord struct {
	Key       string `xml:"key,attr"`
	Title     string `xml:"title"`
	Journal   string `xml:"journal"`
	Booktitle string `xml:"booktitle"`
	Series    string `xml:"series"`
	Publisher string `xml:"publisher"`
	Year      string `xml:"year"`
	Pages     string `xml:"pages"`
	Number    string `xml:"number"`
}

// 场所字段的取值优先级: journal > booktitle > series > publisher
func (r *rawRecord) venue() string {
	for _, v := range []string{r.Journal, r.Booktitle, r.Series, r.Publisher} {
		if v != "" {
			return v
		}
	}
	return ""
}

var reAlphaCode = regexp.MustCompile(`^[A-Za-z]{2,10}$`)

// parsePersonXML 解析作者页XML，最多取limit条记录
// 返回作者显示名和记录列表
func parsePersonXML(data []byte, limit int) (string, []BibRecord, error) {
	var person dblpPerson
	if err := xml.Unmarshal(data, &person); err != nil {
		return "", nil, fmt.Errorf("failed to parse person xml: %w", err)
	}

	records := make([]BibRecord, 0, len(person.Records))
	for _, r := range person.Records {
		raw := r.pick()
		if raw == nil || raw.Title == "" {
			continue
		}

		rec := BibRecord{
			Key:   raw.Key,
			Title: strings.TrimSuffix(strings.TrimSpace(raw.Title), "."),
			Venue: raw.venue(),
			Pages: raw.Pages,
		}
		if y, err := strconv.Atoi(raw.Year); err == nil {
			rec.Year = y
		}
		rec.PageCount = DerivePageCount(raw.Pages)

		// PACMPL 这类期刊把真正的缩写放在number字段里
		if strings.HasPrefix(rec.Venue, "Proc. ACM") && reAlphaCode.MatchString(raw.Number) {
			rec.Acronym = raw.Number
		}

		records = append(records, rec)
		if limit > 0 && len(records) >= limit {
			break
		}
	}

	return person.Name, records, nil
}

// dblpStreams 流元数据XML的顶层结构，conf/journal/series各占一种
type dblpStreams struct {
	XMLName xml.Name    `xml:"dblpstreams"`
	Conf    *streamInfo `xml:"conf"`
	Journal *streamInfo `xml:"journal"`
	Series  *streamInfo `xml:"series"`
}

type streamInfo struct {
	Title   string `xml:"title"`
	Acronym string `xml:"acronym"`
}

// parseStreamXML 解析流元数据
func parseStreamXML(data []byte) (*StreamMeta, error) {
	var streams dblpStreams
	if err := xml.Unmarshal(data, &streams); err != nil {
		return nil, fmt.Errorf("failed to parse stream xml: %w", err)
	}

	for _, info := range []*streamInfo{streams.Conf, streams.Journal, streams.Series} {
		if info != nil {
			return &StreamMeta{
				Acronym: strings.TrimSpace(info.Acronym),
				Title:   strings.TrimSpace(info.Title),
			}, nil
		}
	}
	return nil, fmt.Errorf("stream xml has no recognized stream element")
}

var rePageSide = regexp.MustCompile(`(\d+)$`)

// DerivePageCount 从pages字段推算页数
// 形如 "100-105" 或 "12:3-12:9" 的区间可以推算（每侧允许带前缀），
// 单页号、文章号、罗马数字等返回0
func DerivePageCount(pages string) int {
	pages = strings.TrimSpace(pages)
	parts := strings.Split(pages, "-")
	if len(parts) != 2 {
		return 0
	}

	lo := rePageSide.FindStringSubmatch(strings.TrimSpace(parts[0]))
	hi := rePageSide.FindStringSubmatch(strings.TrimSpace(parts[1]))
	if lo == nil || hi == nil {
		return 0
	}

	n, err1 := strconv.Atoi(lo[1])
	m, err2 := strconv.Atoi(hi[1])
	if err1 != nil || err2 != nil || m < n {
		return 0
	}
	return m - n + 1
}
