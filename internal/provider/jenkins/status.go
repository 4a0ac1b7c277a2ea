package jenkins

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/eryajf/jenkins-demo/internal/model"
)

// GetJobStatus 获取 Job 状态
func (c *Client) GetJobStatus(ctx context.Context, jobName string) (*model.JobStatus, error) {
	if jobName == "" {
		return nil, errJobNameRequired
	}

	endpoint := c.jobURL(jobName, "api/json")

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		var connErr *ConnectionError
		if errors.As(err, &connErr) {
			connErr.Op = "get job status"
		}
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		// 排空响应体以便复用连接
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	var status model.JobStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	logx.Debug("Fetched Jenkins job status, name %s", jobName)

	return &status, nil
}
