// Package model 定义排名解析流程的共享数据结构
package model

// RankSystem 分级体系标识
type RankSystem string

const (
	SystemCORE    RankSystem = "CORE"
	SystemSJR     RankSystem = "SJR"
	SystemUnknown RankSystem = "UNKNOWN"
)

// RankNA 在对应分级体系里查无此场所
const RankNA = "N/A"

// RankUnknown 出版物被过滤或无法关联，未参与查表
const RankUnknown = "UNKNOWN"

// LocalPublication 用户提交的本地出版物条目
type LocalPublication struct {
	Title      string `json:"title"`
	Year       int    `json:"year"`       // 0 表示未知
	Identifier string `json:"identifier"` // 用户侧的稳定标识，原样带回
}

// RankAssignment 单篇出版物的解析结果
type RankAssignment struct {
	Identifier string     `json:"identifier"`
	Title      string     `json:"title"`
	Venue      string     `json:"venue,omitempty"`
	Rank       string     `json:"rank"` // A*/A/B/C、Q1-Q4、N/A 或 UNKNOWN
	System     RankSystem `json:"system"`
	Year       int        `json:"year,omitempty"` // 实际用于查表的年份
}

// RankCounts 两套体系各自的计数汇总，N/A 单独成桶
type RankCounts struct {
	Core map[string]int `json:"core"` // A* / A / B / C / N/A
	SJR  map[string]int `json:"sjr"`  // Q1 / Q2 / Q3 / Q4 / N/A
}

// NewRankCounts 初始化所有桶为0
func NewRankCounts() RankCounts {
	return RankCounts{
		Core: map[string]int{"A*": 0, "A": 0, "B": 0, "C": 0, "N/A": 0},
		SJR:  map[string]int{"Q1": 0, "Q2": 0, "Q3": 0, "Q4": 0, "N/A": 0},
	}
}

// CoreBucket 把任意注册表分级值归入计数桶
// 枚举外的历史分级（如 "National: USA"）计入 N/A
func CoreBucket(rank string) string {
	switch rank {
	case "A*", "A", "B", "C":
		return rank
	default:
		return "N/A"
	}
}

// SJRBucket 把分位值归入计数桶
func SJRBucket(quartile string) string {
	switch quartile {
	case "Q1", "Q2", "Q3", "Q4":
		return quartile
	default:
		return "N/A"
	}
}

// RankResult 一次完整解析的最终产物，可整体缓存
type RankResult struct {
	Query       string           `json:"query"` // 请求中的研究者姓名
	PID         string           `json:"pid"`   // 确认的作者标识
	AuthorName  string           `json:"author_name"`
	Assignments []RankAssignment `json:"assignments"`
	Counts      RankCounts       `json:"counts"`
	Matched     int              `json:"matched"`   // 成功关联到文献库记录的数量
	Submitted   int              `json:"submitted"` // 去重后实际参与解析的数量
}

// CandidateIdentity 作者消歧阶段的候选身份
type CandidateIdentity struct {
	PID     string  `json:"pid"`
	Name    string  `json:"name"`
	NameSim float64 `json:"name_sim"`
	Overlap int     `json:"overlap"` // 与本地出版物标题重叠的数量
	Score   float64 `json:"score"`
}
