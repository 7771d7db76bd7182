package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeSendEmail delivers a transactional email.
	TaskTypeSendEmail = "mail:send"
	// TaskDashboardWarmup rebuilds the cached dashboard and current report.
	TaskDashboardWarmup = "analytics:dashboard_warmup"
	// TaskOverdueScan queues reminders for overdue invoices.
	TaskOverdueScan = "invoices:overdue_scan"
)

// ErrUnknownJob is returned for job names the CLI cannot trigger.
var ErrUnknownJob = errors.New("jobs: unknown job")

// SendEmailPayload describes the information required to send an email.
type SendEmailPayload struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewSendEmailTask constructs an Asynq task.
func NewSendEmailTask(payload SendEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeSendEmail, data), nil
}

// DashboardWarmupPayload selects the report periods primed next to the dashboard.
type DashboardWarmupPayload struct {
	Periods []string `json:"periods,omitempty"`
}

// NewDashboardWarmupTask builds a warm-up task. No periods means current-month.
func NewDashboardWarmupTask(periods ...string) (*asynq.Task, error) {
	data, err := json.Marshal(DashboardWarmupPayload{Periods: periods})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardWarmup, data), nil
}

// OverdueScanPayload is currently empty; the scan always uses the worker clock.
type OverdueScanPayload struct{}

// NewOverdueScanTask builds an overdue scan task.
func NewOverdueScanTask() (*asynq.Task, error) {
	data, err := json.Marshal(OverdueScanPayload{})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOverdueScan, data), nil
}

// TaskByName maps the operator facing job names to tasks.
func TaskByName(name string) (*asynq.Task, error) {
	switch strings.TrimSpace(name) {
	case "dashboard-warmup", TaskDashboardWarmup:
		return NewDashboardWarmupTask()
	case "overdue-scan", TaskOverdueScan:
		return NewOverdueScanTask()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownJob, name)
	}
}

// MailJob handles TaskTypeSendEmail. Delivery is a structured log line; no
// SMTP transport is configured.
type MailJob struct {
	Logger *slog.Logger
	From   string
}

// Handle processes TaskTypeSendEmail tasks.
func (j *MailJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload SendEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("decode mail payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.To == "" {
		return fmt.Errorf("mail without recipient: %w", asynq.SkipRetry)
	}
	from := payload.From
	if from == "" {
		from = j.From
	}
	logger := j.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "mail sent",
		slog.String("job", TaskTypeSendEmail),
		slog.String("from", from),
		slog.String("to", payload.To),
		slog.String("subject", payload.Subject),
	)
	return nil
}
