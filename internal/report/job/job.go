package job

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	"github.com/fekuna/omnipos-ledger/internal/report"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Parser accepts standard five-field specs, an optional seconds field and descriptors like "@every 15m".
var Parser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// LowStockJob logs the stock summary and each product below its minimum.
type LowStockJob struct {
	uc      report.UseCase
	logger  logger.ZapLogger
	timeout time.Duration
}

func NewLowStockJob(uc report.UseCase, log logger.ZapLogger) *LowStockJob {
	return &LowStockJob{
		uc:      uc,
		logger:  log,
		timeout: 30 * time.Second,
	}
}

// Register schedules the job on c. An empty spec leaves c untouched.
func (j *LowStockJob) Register(c *cron.Cron, spec string) error {
	if spec == "" {
		j.logger.Info("low stock report disabled")
		return nil
	}
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.Run(ctx)
	})
	return err
}

func (j *LowStockJob) Run(ctx context.Context) {
	summary, err := j.uc.Summary(ctx)
	if err != nil {
		j.logger.Error("low stock report failed", zap.Error(err))
		return
	}
	j.logger.Info("stock summary",
		zap.Int("products", summary.ProductCount),
		zap.Int("units_in_stock", summary.UnitsInStock),
		zap.Int("low_stock", summary.LowStockCount),
		zap.Int("out_of_stock", summary.OutOfStockCount),
		zap.String("total_sales", summary.TotalSalesAmount.String()),
		zap.String("total_supply_cost", summary.TotalSupplyCost.String()),
	)
	if summary.LowStockCount == 0 {
		return
	}

	products, err := j.uc.LowStockProducts(ctx)
	if err != nil {
		j.logger.Error("low stock report failed", zap.Error(err))
		return
	}
	for _, p := range products {
		j.logger.Warn("low stock",
			zap.String("product_id", p.ID),
			zap.String("name", p.Name),
			zap.Int("quantity", p.Quantity),
			zap.Int("min_stock", p.MinStock),
			zap.Bool("out_of_stock", p.Quantity == 0),
		)
	}
}
