package models

// MatchResult - оценка совместимости исполнителя и задачи (0..100) с пояснениями
type MatchResult struct {
	WorkerID string   `json:"workerId"`
	TaskID   string   `json:"taskId"`
	Score    int      `json:"score"`
	Reasons  []string `json:"reasons"`
}
