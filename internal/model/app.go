package model

import "time"

// AppInfo /api/info 响应
type AppInfo struct {
	Message   string    `json:"message"`
	Branch    string    `json:"branch"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// MetricsInfo 每次抓取 /metrics 时的快照
type MetricsInfo struct {
	UptimeSeconds float64 `json:"uptime_seconds"`
	RequestsTotal uint64  `json:"requests_total"`
	Version       string  `json:"version"`
	Branch        string  `json:"branch"`
}
