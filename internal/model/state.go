package model

// 解析流程的状态值
const (
	StatusAnalyzing   = "analyzing"
	StatusCompleted   = "completed"
	StatusNoMatch     = "no_match"     // 作者消歧失败，未找到可信身份
	StatusRateLimited = "rate_limited" // 上游限流，本次解析中止
	StatusError       = "error"
)

// ResolveState SSE推送的全量状态快照
type ResolveState struct {
	Query         string           `json:"query"`
	PID           string           `json:"pid,omitempty"`
	Status        string           `json:"status"`
	Overall       int              `json:"overall"` // 0-100
	CurrentAction string           `json:"current_action"`
	Phase         string           `json:"phase,omitempty"` // identity / bibliography / matching / ranking
	Assignments   []RankAssignment `json:"assignments,omitempty"`
	Result        *RankResult      `json:"result,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// NewResolveState 初始状态
func NewResolveState() *ResolveState {
	return &ResolveState{
		Status:        StatusAnalyzing,
		CurrentAction: "Initializing...",
	}
}
