package jenkins

import (
	"context"
	"fmt"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/bndr/gojenkins"
	"github.com/eryajf/jenkins-demo/internal/model"
	"github.com/eryajf/jenkins-demo/internal/provider"
)

const folderClass = "com.cloudbees.hudson.plugins.folder.Folder"

// ListJobs 列出所有 Job
func (p *JenkinsProvider) ListJobs(ctx context.Context, opts *provider.QueryOptions) (*model.JobList, error) {
	if err := p.ready(ctx); err != nil {
		return nil, err
	}

	jenkins := p.client.GetJenkins()

	jobs, err := jenkins.GetAllJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all jobs: %w", err)
	}

	logx.Debug("Fetched Jenkins jobs, count %d", len(jobs))

	result := make([]*model.Job, 0, len(jobs))
	for _, job := range jobs {
		// 跳过文件夹类型
		if job.Raw.Class == folderClass {
			continue
		}
		result = append(result, convertJobToModel(job))
	}

	pageInfo := &model.PageInfo{Total: len(result)}
	if opts != nil {
		pageInfo.PageNum = opts.PageNum
		pageInfo.PageSize = opts.PageSize
	}

	return &model.JobList{
		Items:    paginate(result, opts),
		PageInfo: pageInfo,
	}, nil
}

// paginate 按页码截取,页码越界时返回空列表
func paginate(jobs []*model.Job, opts *provider.QueryOptions) []*model.Job {
	if opts == nil || opts.PageSize <= 0 || opts.PageNum <= 0 {
		return jobs
	}

	start := (opts.PageNum - 1) * opts.PageSize
	if start >= len(jobs) {
		return []*model.Job{}
	}
	end := start + opts.PageSize
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end]
}

// convertJobToModel 将 Jenkins Job 转换为统一的 Job 模型
func convertJobToModel(job *gojenkins.Job) *model.Job {
	modelJob := &model.Job{
		Name:        job.GetName(),
		DisplayName: job.Raw.DisplayName,
		Description: job.GetDescription(),
		URL:         job.Raw.URL,
		Buildable:   job.Raw.Buildable,
	}
	if modelJob.DisplayName == "" {
		modelJob.DisplayName = modelJob.Name
	}

	if job.Raw.LastBuild.Number > 0 {
		modelJob.LastBuild = &model.Build{
			Number: int(job.Raw.LastBuild.Number),
			URL:    job.Raw.LastBuild.URL,
		}
	}

	return modelJob
}
