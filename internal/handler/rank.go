package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"pubrank-go/internal/model"
	"pubrank-go/internal/service"
	"pubrank-go/internal/sse"
)

// RankRequest 解析请求体
type RankRequest struct {
	Name         string                   `json:"name"`
	PID          string                   `json:"pid,omitempty"` // 已知身份时跳过消歧
	Publications []model.LocalPublication `json:"publications"`
}

// RankHandler 出版物分级HTTP处理器
type RankHandler struct {
	service *service.RankService
}

// NewRankHandler 创建处理器
func NewRankHandler(svc *service.RankService) *RankHandler {
	return &RankHandler{service: svc}
}

// ResolveSSE 处理SSE解析请求
// POST /api/rank/sse
// Body: {"name": "xxx", "pid": "", "publications": [{"title": "...", "year": 2023, "identifier": "p1"}]}
func (h *RankHandler) ResolveSSE(w http.ResponseWriter, r *http.Request) {
	var req RankRequest

	// 解析JSON请求体
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" && req.PID == "" {
		http.Error(w, "name or pid is required", http.StatusBadRequest)
		return
	}
	if len(req.Publications) == 0 {
		http.Error(w, "publications are required", http.StatusBadRequest)
		return
	}

	// 同一时刻只跑一次解析，占不到槽直接拒绝
	if !h.service.TryAcquire() {
		http.Error(w, "a resolution is already in progress", http.StatusConflict)
		return
	}
	defer h.service.Release()

	// 创建SSE writer
	writer, err := sse.NewWriter(w)
	if err != nil {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}
	defer writer.StopHeartbeat()

	writer.SetQuery(req.Name)

	log.Printf("Starting SSE resolution for: %s", req.Name)
	h.service.Run(r.Context(), req.Name, req.PID, req.Publications, writer)
	log.Printf("SSE resolution finished for: %s", req.Name)
}

// Health 健康检查
func (h *RankHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
