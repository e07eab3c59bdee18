package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/infra/observability"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/port"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Dashboard summary
// ============================================================

func getSummaryHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month := parseYearMonth(r)
		summary, err := svc.GetSummary(r.Context(), FamilyIDFromContext(r.Context()), year, month)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func getComparisonHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month := parseYearMonth(r)
		cmp, err := svc.GetComparison(r.Context(), FamilyIDFromContext(r.Context()), year, month)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cmp)
	}
}

// ============================================================
// Categories
// ============================================================

func listCategoriesHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := svc.ListCategories(r.Context(), FamilyIDFromContext(r.Context()))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cats)
	}
}

func createCategoryHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		cat, err := svc.CreateCategory(r.Context(), FamilyIDFromContext(r.Context()), &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, cat)
	}
}

// ============================================================
// Operational endpoints
// ============================================================

func healthzHandler(store port.FinanceStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		start := time.Now()
		status := "healthy"
		dbStatus := "healthy"
		if err := store.Ping(ctx); err != nil {
			logger.Warn("healthz: store unreachable", zap.Error(err))
			status = "degraded"
			dbStatus = "unhealthy"
		}

		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status: status,
			Services: []domain.ServiceHealth{
				{
					Name:        "supabase",
					Status:      dbStatus,
					LatencyMs:   time.Since(start).Milliseconds(),
					LastChecked: time.Now().UTC().Format(time.RFC3339),
				},
			},
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func appMetricsHandler(metrics *observability.Metrics, _ *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetAppSnapshot())
	}
}
