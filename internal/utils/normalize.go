package utils

import (
	"regexp"
	"strings"
)

// abbrevExpansions 固定的缩写展开表（词边界匹配）
// 学术venue里常见的缩写形式，展开后再做比较
var abbrevExpansions = []struct {
	pattern *regexp.Regexp
	full    string
}{
	{regexp.MustCompile(`\bint'l\b`), "international"},
	{regexp.MustCompile(`\bintl\.`), "international"},
	{regexp.MustCompile(`\bconf\.`), "conference"},
	{regexp.MustCompile(`\btrans\.`), "transactions"},
	{regexp.MustCompile(`\bproc\.`), "proceedings"},
	{regexp.MustCompile(`\bsymp\.`), "symposium"},
	{regexp.MustCompile(`\bj\.`), "journal"},
}

// orgPrefixes 机构前缀列表，比较完整会议标题时从开头迭代剥离
// 只用于完整标题，不用于缩写
var orgPrefixes = []string{
	"ieee/acm",
	"acm/ieee",
	"ieee",
	"acm",
	"ifip",
	"usenix",
	"international",
	"annual",
	"the",
}

var (
	rePunct        = regexp.MustCompile(`[^a-z0-9\s]+`)
	reSpaces       = regexp.MustCompile(`\s+`)
	reLeadingYear  = regexp.MustCompile(`^(?:\d{4}|\d+(?:st|nd|rd|th))\s+`)
	reTrailingYear = regexp.MustCompile(`(?:\s*\(\d{4}\)|\s*,\s*\d{4})\s*$`)
)

// NormalizeTitle 标准化自由文本标题/venue名用于比较
// 小写 → 展开缩写 → &变and → 标点变空格 → 压缩空白
func NormalizeTitle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	for _, a := range abbrevExpansions {
		s = a.pattern.ReplaceAllString(s, a.full)
	}

	s = strings.ReplaceAll(s, "&", " and ")
	s = rePunct.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// NormalizeVenue 标准化本地观察到的venue字符串
// 在NormalizeTitle基础上，额外剥离开头的年份/序数词和结尾的括号/逗号年份
// 例如 "2023 IEEE Conference on X (2023)" → "ieee conference on x"
func NormalizeVenue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	s = reLeadingYear.ReplaceAllString(s, "")
	s = reTrailingYear.ReplaceAllString(s, "")

	return NormalizeTitle(s)
}

// StripOrgPrefixes 迭代剥离机构前缀（词边界对齐）
// 输入应当是已经NormalizeTitle过的字符串；重复剥离直到没有前缀匹配
func StripOrgPrefixes(s string) string {
	for {
		stripped := false
		for _, prefix := range orgPrefixes {
			if s == prefix {
				return ""
			}
			if strings.HasPrefix(s, prefix+" ") {
				s = strings.TrimSpace(s[len(prefix)+1:])
				stripped = true
				break
			}
		}
		if !stripped {
			return s
		}
	}
}
