// Package service provides the business logic layer (use cases).
// FinanceService handles all family-finance operations: members,
// accounts, transactions, budgets, scheduled expenses, summaries.
package service

import (
	"context"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/infra/observability"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/port"

	"go.uber.org/zap"
)

// FinanceService orchestrates all finance operations via the Supabase store.
type FinanceService struct {
	store           port.FinanceStore
	txCache         port.Cache[[]domain.Transaction]
	metrics         *observability.Metrics
	logger          *zap.Logger
	defaultCurrency string
}

// NewFinanceService creates a new finance service.
func NewFinanceService(store port.FinanceStore, txCache port.Cache[[]domain.Transaction], metrics *observability.Metrics, logger *zap.Logger, defaultCurrency string) *FinanceService {
	if defaultCurrency == "" {
		defaultCurrency = "PEN"
	}
	return &FinanceService{
		store:           store,
		txCache:         txCache,
		metrics:         metrics,
		logger:          logger,
		defaultCurrency: defaultCurrency,
	}
}

// loadTransactions returns the family's transaction log, cached per
// family. Every aggregate (balances, budgets, cycles, summaries) reads
// through here.
func (s *FinanceService) loadTransactions(ctx context.Context, familyID string) ([]domain.Transaction, error) {
	if txs, ok := s.txCache.Get(familyID); ok {
		s.metrics.IncrCacheHit("transactions")
		return txs, nil
	}
	s.metrics.IncrCacheMiss("transactions")

	txs, err := s.store.ListTransactions(ctx, familyID)
	if err != nil {
		s.metrics.IncrExternalError("supabase/transactions")
		return nil, err
	}
	s.txCache.Set(familyID, txs)
	return txs, nil
}

// invalidateTransactions drops the cached log after any write to it.
func (s *FinanceService) invalidateTransactions(familyID string) {
	s.txCache.Delete(familyID)
}

// parseDate accepts YYYY-MM-DD or RFC3339 and normalises to UTC midnight.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, &domain.ErrValidation{Field: "date", Message: "expected YYYY-MM-DD or RFC3339"}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
