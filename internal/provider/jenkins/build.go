package jenkins

import (
	"context"
	"fmt"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/bndr/gojenkins"
	"github.com/eryajf/jenkins-demo/internal/model"
)

const defaultBuildLimit = 10

// GetJobBuilds 获取 Job 最近的构建历史
func (p *JenkinsProvider) GetJobBuilds(ctx context.Context, jobName string, limit int) ([]*model.Build, error) {
	id, parents := jobIDs(jobName)
	if id == "" {
		return nil, errJobNameRequired
	}
	if err := p.ready(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultBuildLimit
	}

	jenkins := p.client.GetJenkins()

	job, err := jenkins.GetJob(ctx, id, parents...)
	if err != nil {
		return nil, fmt.Errorf("failed to get job '%s': %w", jobName, err)
	}

	buildIds, err := job.GetAllBuildIds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get build ids: %w", err)
	}

	logx.Debug("Fetched build IDs, job %s, count %d", jobName, len(buildIds))

	result := make([]*model.Build, 0, limit)
	for _, buildId := range buildIds {
		if len(result) >= limit {
			break
		}

		build, err := job.GetBuild(ctx, buildId.Number)
		if err != nil {
			logx.Warn("Failed to get build, job %s, build %d, error %v", jobName, buildId.Number, err)
			continue
		}

		result = append(result, convertBuildToModel(build))
	}

	return result, nil
}

// convertBuildToModel 将 Jenkins Build 转换为统一的 Build 模型
func convertBuildToModel(build *gojenkins.Build) *model.Build {
	modelBuild := &model.Build{
		Number:   int(build.Raw.Number),
		URL:      build.Raw.URL,
		Duration: int64(build.Raw.Duration), // 毫秒
	}

	switch {
	case build.Raw.Result != "":
		modelBuild.Status = build.Raw.Result
		modelBuild.Result = build.Raw.Result
	case build.Raw.Building:
		modelBuild.Status = "BUILDING"
	default:
		modelBuild.Status = "UNKNOWN"
	}

	if build.Raw.Timestamp > 0 {
		modelBuild.Timestamp = time.UnixMilli(build.Raw.Timestamp)
	}

	return modelBuild
}
