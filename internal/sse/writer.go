package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"pubrank-go/internal/model"
)

// Writer SSE写入器，每次推送完整的状态快照
type Writer struct {
	w         http.ResponseWriter
	flusher   http.Flusher
	mu        sync.Mutex
	state     *model.ResolveState
	stopHeart chan struct{}
}

func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	writer := &Writer{
		w:         w,
		flusher:   flusher,
		state:     model.NewResolveState(),
		stopHeart: make(chan struct{}),
	}

	// 启动心跳
	go writer.heartbeat()

	return writer, nil
}

// heartbeat 定期发送心跳保持连接
func (s *Writer) heartbeat() {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			heartbeat := map[string]interface{}{
				"status":         "heartbeat",
				"overall":        s.state.Overall,
				"current_action": s.state.CurrentAction,
			}
			data, _ := json.Marshal(heartbeat)
			fmt.Fprintf(s.w, "data: %s\n\n", data)
			s.flusher.Flush()
			s.mu.Unlock()
		case <-s.stopHeart:
			return
		}
	}
}

// StopHeartbeat 停止心跳
func (s *Writer) StopHeartbeat() {
	close(s.stopHeart)
}

func (s *Writer) send() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.w, "data: %s\n\n", data)
	if err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// SetQuery 设置查询并立即发送，让前端秒显示
func (s *Writer) SetQuery(query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Query = query
	return s.send()
}

// SetPID 记录确认的作者身份
func (s *Writer) SetPID(pid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PID = pid
}

// SetAction 更新当前动作和进度并发送
// 进度只增不减
func (s *Writer) SetAction(progress int, phase, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if progress > s.state.Overall {
		s.state.Overall = progress
	}
	s.state.Phase = phase
	s.state.CurrentAction = action
	return s.send()
}

// AddAssignment 追加一条解析结果并发送
func (s *Writer) AddAssignment(a model.RankAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Assignments = append(s.state.Assignments, a)
	return s.send()
}

// SendResult 发送最终结果并标记完成
func (s *Writer) SendResult(result *model.RankResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Status = model.StatusCompleted
	s.state.Overall = 100
	s.state.CurrentAction = "Resolution completed"
	s.state.Result = result
	return s.send()
}

// SendNoMatch 消歧失败，没找到可信的作者身份
func (s *Writer) SendNoMatch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Status = model.StatusNoMatch
	s.state.CurrentAction = "No credible author identity found"
	return s.send()
}

// SendRateLimited 上游限流，本次解析中止
func (s *Writer) SendRateLimited() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Status = model.StatusRateLimited
	s.state.CurrentAction = "Upstream rate limited, aborting"
	return s.send()
}

// SendGlobalError 发送全局错误
func (s *Writer) SendGlobalError(errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Status = model.StatusError
	s.state.CurrentAction = "Resolution failed"
	s.state.Error = errMsg
	return s.send()
}
