package job_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-ledger/internal/app/apptest"
	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	"github.com/fekuna/omnipos-ledger/internal/report/job"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunLogsLowStockProducts(t *testing.T) {
	l, _ := apptest.New(t)
	apptest.Product(t, l, "Plenty", "1.00", 40, 1)
	empty := apptest.Product(t, l, "Empty", "1.00", 0, 1)

	core, logs := observer.New(zapcore.InfoLevel)
	j := job.NewLowStockJob(l.Reports, logger.FromZap(zap.New(core)))
	j.Run(context.Background())

	summary := logs.FilterMessage("stock summary").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(1), summary[0].ContextMap()["low_stock"])

	low := logs.FilterMessage("low stock").All()
	require.Len(t, low, 1)
	fields := low[0].ContextMap()
	assert.Equal(t, empty.ID, fields["product_id"])
	assert.Equal(t, true, fields["out_of_stock"])
}

func TestRunQuietWhenStocked(t *testing.T) {
	l, _ := apptest.New(t)
	apptest.Product(t, l, "Plenty", "1.00", 40, 1)

	core, logs := observer.New(zapcore.InfoLevel)
	job.NewLowStockJob(l.Reports, logger.FromZap(zap.New(core))).Run(context.Background())

	assert.Equal(t, 1, logs.FilterMessage("stock summary").Len())
	assert.Zero(t, logs.FilterMessage("low stock").Len())
}

func TestRegister(t *testing.T) {
	l, _ := apptest.New(t)
	j := job.NewLowStockJob(l.Reports, logger.NewNop())
	c := cron.New(cron.WithParser(job.Parser))

	require.NoError(t, j.Register(c, ""))
	assert.Empty(t, c.Entries())

	require.NoError(t, j.Register(c, "@every 15m"))
	require.NoError(t, j.Register(c, "*/30 * * * * *"))
	assert.Len(t, c.Entries(), 2)

	assert.Error(t, j.Register(c, "not a schedule"))
}
