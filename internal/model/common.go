package model

// PageInfo 分页信息
type PageInfo struct {
	PageNum  int `json:"page_num"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}
