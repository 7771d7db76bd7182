package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/odyssey-erp/billdesk/internal/customers"
	"github.com/odyssey-erp/billdesk/internal/invoices"
	jobmetrics "github.com/odyssey-erp/billdesk/internal/jobs"
)

// reminderNamespace scopes the deterministic reminder task ids.
var reminderNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("billdesk/overdue-reminder"))

// ReminderRetention keeps a sent reminder in the queue long enough for its
// task id to reject a second send on the same day. asynq drops completed
// tasks without retention, which would free the id.
const ReminderRetention = 24 * time.Hour

// OverdueSource lists overdue invoices as of its own clock.
type OverdueSource interface {
	Overdue(ctx context.Context) ([]invoices.Invoice, error)
	Now() time.Time
}

// CustomerLister resolves reminder recipients.
type CustomerLister interface {
	List(ctx context.Context) ([]customers.Customer, error)
}

// Enqueuer submits tasks to the queue.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// OverdueScanJob queues one reminder mail per overdue invoice per day. The
// invoice status is left untouched; overdue is derived from the due date.
type OverdueScanJob struct {
	Invoices  OverdueSource
	Customers CustomerLister
	Queue     Enqueuer
	From      string
	Logger    *slog.Logger
	Metrics   *jobmetrics.Metrics
}

// ScanResult summarises one scan.
type ScanResult struct {
	Overdue    int
	Queued     int
	Duplicates int
	NoEmail    int
}

// Handle processes overdue scan tasks.
func (j *OverdueScanJob) Handle(ctx context.Context, _ *asynq.Task) (resultErr error) {
	if j == nil || j.Invoices == nil || j.Customers == nil || j.Queue == nil {
		return errors.New("overdue scan: handler not configured")
	}
	tracker := j.metrics().Track(TaskOverdueScan)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	start := time.Now()
	res, err := j.Scan(ctx)
	if err != nil {
		j.logger().Error("overdue scan failed", slog.Any("error", err))
		return err
	}
	j.logger().Info("completed overdue scan",
		slog.Int("overdue", res.Overdue),
		slog.Int("queued", res.Queued),
		slog.Int("duplicates", res.Duplicates),
		slog.Int("no_email", res.NoEmail),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// Scan finds overdue invoices and enqueues their reminders.
func (j *OverdueScanJob) Scan(ctx context.Context) (ScanResult, error) {
	overdue, err := j.Invoices.Overdue(ctx)
	if err != nil {
		return ScanResult{}, err
	}
	res := ScanResult{Overdue: len(overdue)}
	if len(overdue) == 0 {
		return res, nil
	}
	custs, err := j.Customers.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list customers: %w", err)
	}
	byID := make(map[int64]customers.Customer, len(custs))
	for _, c := range custs {
		byID[c.ID] = c
	}

	day := j.Invoices.Now().Format("2006-01-02")
	for _, inv := range overdue {
		cust, ok := byID[inv.CustomerID]
		if !ok || cust.Email == "" {
			res.NoEmail++
			j.logger().Warn("overdue invoice without reminder address",
				slog.Int64("invoice_id", inv.ID),
				slog.Int64("customer_id", inv.CustomerID),
			)
			continue
		}
		task, err := NewSendEmailTask(reminderMail(j.From, cust, inv))
		if err != nil {
			return res, err
		}
		_, err = j.Queue.EnqueueContext(ctx, task,
			asynq.Queue(QueueDefault),
			asynq.MaxRetry(3),
			asynq.TaskID(ReminderTaskID(inv.ID, day)),
			asynq.Retention(ReminderRetention),
		)
		switch {
		case errors.Is(err, asynq.ErrTaskIDConflict):
			res.Duplicates++
		case err != nil:
			return res, fmt.Errorf("enqueue reminder for invoice %d: %w", inv.ID, err)
		default:
			res.Queued++
		}
	}
	j.metrics().AddReminders("queued", res.Queued)
	j.metrics().AddReminders("duplicate", res.Duplicates)
	return res, nil
}

// ReminderTaskID is stable for an invoice and day so repeated scans on the
// same day do not queue a second mail.
func ReminderTaskID(invoiceID int64, day string) string {
	return uuid.NewSHA1(reminderNamespace, []byte(fmt.Sprintf("%d:%s", invoiceID, day))).String()
}

func reminderMail(from string, cust customers.Customer, inv invoices.Invoice) SendEmailPayload {
	return SendEmailPayload{
		From:    from,
		To:      cust.Email,
		Subject: fmt.Sprintf("Payment reminder: invoice %s is overdue", inv.InvoiceNumber),
		Body: fmt.Sprintf("Dear %s,\n\nInvoice %s for %.2f was due on %s and is still unpaid.\n",
			cust.Name, inv.InvoiceNumber, inv.Total, inv.DueDate),
	}
}

func (j *OverdueScanJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskOverdueScan))
	}
	return slog.Default().With(slog.String("job", TaskOverdueScan))
}

func (j *OverdueScanJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return defaultJobMetrics
}
