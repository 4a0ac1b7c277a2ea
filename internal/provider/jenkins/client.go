package jenkins

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bndr/gojenkins"
)

// Client Jenkins 客户端
type Client struct {
	URL      string
	Username string
	Token    string

	httpClient *http.Client
	jenkins    *gojenkins.Jenkins
}

// NewClient 创建 Jenkins 客户端
func NewClient(baseURL, username, token string, timeout time.Duration) *Client {
	return &Client{
		URL:      strings.TrimRight(baseURL, "/"),
		Username: username,
		Token:    token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Connect 连接到 Jenkins
func (c *Client) Connect(ctx context.Context) error {
	if c.jenkins != nil {
		return nil
	}

	jenkins := gojenkins.CreateJenkins(c.httpClient, c.URL, c.Username, c.Token)
	_, err := jenkins.Init(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to Jenkins: %w", err)
	}

	c.jenkins = jenkins
	return nil
}

// GetJenkins 获取 Jenkins 客户端实例
func (c *Client) GetJenkins() *gojenkins.Jenkins {
	return c.jenkins
}

// jobURL 拼接 Job 的 REST 地址,支持 "folder/job" 形式的文件夹路径
func (c *Client) jobURL(jobName string, suffix string) string {
	return c.URL + jobPath(jobName) + "/" + suffix
}

// jobPath 将 "a/b" 转换为 "/job/a/job/b"
func jobPath(jobName string) string {
	var b strings.Builder
	for _, segment := range strings.Split(jobName, "/") {
		if segment == "" {
			continue
		}
		b.WriteString("/job/")
		b.WriteString(url.PathEscape(segment))
	}
	return b.String()
}

// jobIDs 将 "a/b/c" 拆成 gojenkins 使用的 Job ID 与父文件夹列表
func jobIDs(jobName string) (id string, parents []string) {
	for _, segment := range strings.Split(jobName, "/") {
		if segment != "" {
			parents = append(parents, segment)
		}
	}
	if len(parents) == 0 {
		return "", nil
	}
	return parents[len(parents)-1], parents[:len(parents)-1]
}

// doRequest 发送带 Basic Auth 的请求
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.SetBasicAuth(c.Username, c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return resp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
