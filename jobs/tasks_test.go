package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/billdesk/internal/analytics"
	jobmetrics "github.com/odyssey-erp/billdesk/internal/jobs"
)

func TestTaskByName(t *testing.T) {
	task, err := TaskByName("dashboard-warmup")
	require.NoError(t, err)
	require.Equal(t, TaskDashboardWarmup, task.Type())

	task, err = TaskByName(TaskOverdueScan)
	require.NoError(t, err)
	require.Equal(t, TaskOverdueScan, task.Type())

	_, err = TaskByName("gl-integrity")
	require.ErrorIs(t, err, ErrUnknownJob)
}

func TestMailJobLogsDelivery(t *testing.T) {
	var buf bytes.Buffer
	job := &MailJob{Logger: slog.New(slog.NewJSONHandler(&buf, nil)), From: "billing@billdesk.local"}

	task, err := NewSendEmailTask(SendEmailPayload{To: "a@b.example", Subject: "hello"})
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "mail sent", line["msg"])
	require.Equal(t, "billing@billdesk.local", line["from"])
	require.Equal(t, "a@b.example", line["to"])
}

func TestMailJobRejectsBadPayloads(t *testing.T) {
	job := &MailJob{}
	err := job.Handle(context.Background(), asynq.NewTask(TaskTypeSendEmail, []byte("{")))
	require.ErrorIs(t, err, asynq.SkipRetry)

	task, err := NewSendEmailTask(SendEmailPayload{Subject: "no recipient"})
	require.NoError(t, err)
	require.ErrorIs(t, job.Handle(context.Background(), task), asynq.SkipRetry)
}

type recordingWarmer struct {
	dashboards int
	reports    []analytics.Period
	err        error
}

func (r *recordingWarmer) Dashboard(context.Context) (analytics.Dashboard, error) {
	r.dashboards++
	return analytics.Dashboard{AsOf: "2024-06-15"}, r.err
}

func (r *recordingWarmer) Report(_ context.Context, p analytics.Period) (analytics.Report, error) {
	r.reports = append(r.reports, p)
	return analytics.Report{Period: p}, nil
}

func TestDashboardWarmupDefaultsToCurrentMonth(t *testing.T) {
	warmer := &recordingWarmer{}
	job := NewDashboardWarmupJob(warmer, nil, jobmetrics.NewMetrics(prometheus.NewRegistry()))
	job.Timeout = time.Second

	task, err := NewDashboardWarmupTask()
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))
	require.Equal(t, 1, warmer.dashboards)
	require.Equal(t, []analytics.Period{analytics.PeriodCurrentMonth}, warmer.reports)

	task, err = NewDashboardWarmupTask("all-time", "last-month")
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))
	require.Equal(t, []analytics.Period{analytics.PeriodCurrentMonth, analytics.PeriodAllTime, analytics.PeriodLastMonth}, warmer.reports)
}

func TestDashboardWarmupErrors(t *testing.T) {
	boom := errors.New("boom")
	job := NewDashboardWarmupJob(&recordingWarmer{err: boom}, nil, jobmetrics.NewMetrics(prometheus.NewRegistry()))

	task, err := NewDashboardWarmupTask()
	require.NoError(t, err)
	require.ErrorIs(t, job.Handle(context.Background(), task), boom)

	task, err = NewDashboardWarmupTask("fortnight")
	require.NoError(t, err)
	require.ErrorIs(t, job.Handle(context.Background(), task), asynq.SkipRetry)
}
