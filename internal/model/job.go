package model

import "time"

// Job Jenkins 任务模型
type Job struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Buildable   bool   `json:"buildable"`
	LastBuild   *Build `json:"last_build,omitempty"`
}

// Build 构建模型
type Build struct {
	Number    int       `json:"number"`
	Status    string    `json:"status"`
	Result    string    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
	Duration  int64     `json:"duration"` // 毫秒
	URL       string    `json:"url"`
}

// JobList 任务列表
type JobList struct {
	Items    []*Job    `json:"items"`
	PageInfo *PageInfo `json:"page_info,omitempty"`
}

// JobStatus /job/{name}/api/json 的响应,字段均可能缺失
type JobStatus struct {
	Name      *string        `json:"name,omitempty"`
	Buildable *bool          `json:"buildable,omitempty"`
	LastBuild *LastBuildInfo `json:"lastBuild,omitempty"`
}

// LastBuildInfo 最近一次构建的引用
type LastBuildInfo struct {
	Number *int64  `json:"number,omitempty"`
	URL    *string `json:"url,omitempty"`
}

// TriggerResult 触发构建的结果
type TriggerResult struct {
	Job      string `json:"job"`
	QueueURL string `json:"queue_url,omitempty"` // Location 响应头
}
