package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/odyssey-erp/billdesk/internal/analytics"
	jobmetrics "github.com/odyssey-erp/billdesk/internal/jobs"
)

var defaultJobMetrics = jobmetrics.NewMetrics(nil)

// AnalyticsWarmer is the slice of the analytics service the warm-up touches.
type AnalyticsWarmer interface {
	Dashboard(ctx context.Context) (analytics.Dashboard, error)
	Report(ctx context.Context, p analytics.Period) (analytics.Report, error)
}

// DashboardWarmupJob pre-populates the analytics cache.
type DashboardWarmupJob struct {
	Analytics AnalyticsWarmer
	Logger    *slog.Logger
	Metrics   *jobmetrics.Metrics
	// Timeout bounds a single run; zero means 20s.
	Timeout time.Duration
}

// NewDashboardWarmupJob wires dependencies for the warm-up handler.
func NewDashboardWarmupJob(svc AnalyticsWarmer, logger *slog.Logger, metrics *jobmetrics.Metrics) *DashboardWarmupJob {
	return &DashboardWarmupJob{Analytics: svc, Logger: logger, Metrics: metrics}
}

// Handle processes dashboard warm-up tasks.
func (j *DashboardWarmupJob) Handle(ctx context.Context, t *asynq.Task) (resultErr error) {
	if j == nil || j.Analytics == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	var payload DashboardWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("decode warmup payload: %v: %w", err, asynq.SkipRetry)
	}
	periods, err := parsePeriods(payload.Periods)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	tracker := j.metrics().Track(TaskDashboardWarmup)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	timeout := j.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	logger := j.logger()
	dash, err := j.Analytics.Dashboard(runCtx)
	if err != nil {
		logger.Error("warm dashboard", slog.Any("error", err))
		return err
	}
	for _, p := range periods {
		if _, err := j.Analytics.Report(runCtx, p); err != nil {
			logger.Error("warm report", slog.String("period", string(p)), slog.Any("error", err))
			return err
		}
	}
	logger.Info("completed dashboard warmup",
		slog.String("as_of", dash.AsOf),
		slog.Int("reports", len(periods)),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

func parsePeriods(raw []string) ([]analytics.Period, error) {
	if len(raw) == 0 {
		return []analytics.Period{analytics.PeriodCurrentMonth}, nil
	}
	out := make([]analytics.Period, 0, len(raw))
	for _, r := range raw {
		p, err := analytics.ParsePeriod(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (j *DashboardWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskDashboardWarmup))
	}
	return slog.Default().With(slog.String("job", TaskDashboardWarmup))
}

func (j *DashboardWarmupJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return defaultJobMetrics
}
