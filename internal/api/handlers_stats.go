package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleModelStats(w http.ResponseWriter, r *http.Request) {
	if s.modelStats == nil {
		jsonError(w, "model stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"endpoints":   s.modelStats.Snapshot(),
	})
}
