package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/vitrina/vitrina-backend/internal/app/service"
	"github.com/vitrina/vitrina-backend/pkg/logger"
)

// StockAuditScheduler periodically reports variants at or below their
// minimum stock level.
type StockAuditScheduler struct {
	cron           *cron.Cron
	variantService service.VariantService
}

func NewStockAuditScheduler(variantService service.VariantService) *StockAuditScheduler {
	return &StockAuditScheduler{
		cron:           cron.New(),
		variantService: variantService,
	}
}

// Start registers the daily audit job. Cron expression "0 7 * * *" runs
// every day at 7:00 AM server time.
func (s *StockAuditScheduler) Start() error {
	_, err := s.cron.AddFunc("0 7 * * *", func() {
		logger.Info("Starting scheduled stock audit", nil)

		variants, err := s.variantService.ListLowStockVariants()
		if err != nil {
			logger.Error("Failed to run stock audit", err)
			return
		}

		for _, v := range variants {
			logger.Warn("Variant at or below minimum stock", map[string]interface{}{
				"variant_id": v.ID,
				"product_id": v.ProductID,
				"name":       v.Name,
				"stock":      v.Stock,
				"min_stock":  v.MinStock,
			})
		}

		logger.Info("Stock audit completed", map[string]interface{}{
			"low_stock_count": len(variants),
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for stock audit", err)
		return err
	}

	s.cron.Start()
	logger.Info("Stock audit scheduler started successfully (daily at 7:00 AM)", nil)

	return nil
}

// Stop stops the scheduler.
func (s *StockAuditScheduler) Stop() {
	logger.Info("Stopping stock audit scheduler...", nil)
	s.cron.Stop()
	logger.Info("Stock audit scheduler stopped", nil)
}
