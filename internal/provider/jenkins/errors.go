package jenkins

import (
	"errors"
	"fmt"
)

// maxErrorBody 错误响应体最多读取的字节数
const maxErrorBody = 64 << 10

var (
	// ErrDecode 响应体不是合法的 JSON
	ErrDecode = errors.New("failed to decode response")

	errJobNameRequired = errors.New("job name is required")
	errNotInitialized  = errors.New("jenkins provider not initialized")
)

// ConnectionError 请求未得到任何 HTTP 响应 (DNS、连接、超时等)
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("connection error: %v", e.Err)
	}
	return fmt.Sprintf("failed to %s: connection error: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// APIError Jenkins 返回了非 2xx 状态码
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("jenkins API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("jenkins API returned status %d: %s", e.StatusCode, e.Body)
}
