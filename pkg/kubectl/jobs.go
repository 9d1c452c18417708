// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kubectl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
)

const (
	JobStatusPending   = "Pending"
	JobStatusRunning   = "Running"
	JobStatusSucceeded = "Succeeded"
	JobStatusFailed    = "Failed"
)

// Jobs submits and inspects jobs in a single namespace (or kubectl's
// current one when Namespace is empty).
type Jobs struct {
	runner    Runner
	Namespace string
}

func NewJobs(runner Runner, namespace string) Jobs {
	return Jobs{runner, namespace}
}

// Submit creates the job described by the manifest at path.
func (j Jobs) Submit(ctx context.Context, path string, stdout, stderr io.Writer) error {
	return j.runner.Stream(ctx, stdout, stderr, j.args("create", "-f", path)...)
}

func (j Jobs) List(ctx context.Context, selector string) ([]batchv1.Job, error) {
	args := []string{"get", "jobs", "-o", "json"}
	if len(selector) > 0 {
		args = append(args, "--selector", selector)
	}

	out, err := j.runner.Output(ctx, j.args(args...)...)
	if err != nil {
		return nil, err
	}

	var list batchv1.JobList

	err = json.Unmarshal(out, &list)
	if err != nil {
		return nil, fmt.Errorf("Unmarshaling job list: %s", err)
	}

	return list.Items, nil
}

func (j Jobs) Get(ctx context.Context, name string) (batchv1.Job, error) {
	out, err := j.runner.Output(ctx, j.args("get", "job", name, "-o", "json")...)
	if err != nil {
		return batchv1.Job{}, err
	}

	var job batchv1.Job

	err = json.Unmarshal(out, &job)
	if err != nil {
		return batchv1.Job{}, fmt.Errorf("Unmarshaling job '%s': %s", name, err)
	}

	return job, nil
}

// Cancel deletes the job along with its pods.
func (j Jobs) Cancel(ctx context.Context, name string, stdout, stderr io.Writer) error {
	return j.runner.Stream(ctx, stdout, stderr, j.args("delete", "job", name)...)
}

func (j Jobs) Logs(ctx context.Context, name string, follow bool, stdout, stderr io.Writer) error {
	args := []string{"logs", "job/" + name}
	if follow {
		args = append(args, "--follow")
	}
	return j.runner.Stream(ctx, stdout, stderr, j.args(args...)...)
}

func (j Jobs) args(args ...string) []string {
	if len(j.Namespace) > 0 {
		return append([]string{"--namespace", j.Namespace}, args...)
	}
	return args
}

type JobSummary struct {
	Name      string
	Status    string
	Active    int32
	Succeeded int32
	Failed    int32
	Age       time.Duration
	Duration  time.Duration
}

// Summarize condenses job status. now is used to compute age and
// the duration of jobs that have not finished yet.
func Summarize(job batchv1.Job, now time.Time) JobSummary {
	summary := JobSummary{
		Name:      job.Name,
		Status:    jobStatus(job),
		Active:    job.Status.Active,
		Succeeded: job.Status.Succeeded,
		Failed:    job.Status.Failed,
	}

	if !job.CreationTimestamp.IsZero() {
		summary.Age = now.Sub(job.CreationTimestamp.Time)
	}

	if job.Status.StartTime != nil {
		end := now
		if job.Status.CompletionTime != nil {
			end = job.Status.CompletionTime.Time
		}
		summary.Duration = end.Sub(job.Status.StartTime.Time)
	}

	return summary
}

func jobStatus(job batchv1.Job) string {
	for _, cond := range job.Status.Conditions {
		if cond.Status != corev1.ConditionTrue {
			continue
		}
		switch cond.Type {
		case batchv1.JobComplete:
			return JobStatusSucceeded
		case batchv1.JobFailed:
			return JobStatusFailed
		}
	}

	if job.Status.Active > 0 {
		return JobStatusRunning
	}
	return JobStatusPending
}
