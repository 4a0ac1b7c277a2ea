package jenkins

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/eryajf/jenkins-demo/internal/model"
)

// TriggerJob 触发构建
// 无参数时 POST /job/{name}/build,否则以 JSON 对象 POST /job/{name}/buildWithParameters
func (c *Client) TriggerJob(ctx context.Context, jobName string, parameters map[string]string) (*model.TriggerResult, error) {
	if jobName == "" {
		return nil, errJobNameRequired
	}

	endpoint := c.jobURL(jobName, "build")
	var body io.Reader

	if len(parameters) > 0 {
		endpoint = c.jobURL(jobName, "buildWithParameters")

		data, err := json.Marshal(parameters)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal parameters: %w", err)
		}
		body = bytes.NewReader(data)
	}

	logx.Debug("Triggering Jenkins job, name %s, endpoint %s, params %d", jobName, endpoint, len(parameters))

	resp, err := c.doRequest(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		var connErr *ConnectionError
		if errors.As(err, &connErr) {
			connErr.Op = "trigger job"
		}
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	result := &model.TriggerResult{
		Job:      jobName,
		QueueURL: resp.Header.Get("Location"),
	}

	logx.Info("Jenkins job triggered, name %s, status %d, queue %s", jobName, resp.StatusCode, result.QueueURL)

	return result, nil
}
