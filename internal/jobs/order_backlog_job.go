// Package jobs provides scheduled background tasks for the order service.
// Jobs are cron-based using github.com/robfig/cron/v3.
package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OrderBacklogJob periodically reports how many orders sit in each
// non-terminal status. The report feeds fulfillment dashboards through the
// structured log pipeline; a growing pending count is the earliest signal
// that processing has stalled.
type OrderBacklogJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderBacklogJob creates the backlog reporting job.
func NewOrderBacklogJob(db *gorm.DB, logger *slog.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		db:     db,
		cron:   cron.New(),
		logger: logger.With("component", "order_backlog_job"),
	}
}

// Start begins the backlog job, reporting at the top of every hour.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		j.report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started (running hourly)")
	return nil
}

// Stop stops the backlog job.
func (j *OrderBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}

func (j *OrderBacklogJob) report(ctx context.Context) {
	type statusCount struct {
		Status int
		Count  int64
	}

	var counts []statusCount
	err := j.db.WithContext(ctx).
		Table("orders").
		Select("status, count(*) as count").
		Where("status IN ?", []int{int(order.Pending), int(order.Processing), int(order.Shipped)}).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog report failed", "error", err)
		return
	}

	backlog := map[string]int64{
		order.Pending.String():    0,
		order.Processing.String(): 0,
		order.Shipped.String():    0,
	}
	for _, c := range counts {
		backlog[order.Status(c.Status).String()] = c.Count
	}

	j.logger.InfoContext(ctx, "Order backlog",
		"pending", backlog[order.Pending.String()],
		"processing", backlog[order.Processing.String()],
		"shipped", backlog[order.Shipped.String()],
	)
}
