package handler

import (
	"encoding/json"
	"net/http"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ============================================================
// Budgets
// ============================================================

func upsertBudgetHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.BudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		budget, err := svc.UpsertBudget(r.Context(), FamilyIDFromContext(r.Context()), &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, budget)
	}
}

func listBudgetsHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month := parseYearMonth(r)
		budgets, err := svc.ListBudgets(r.Context(), FamilyIDFromContext(r.Context()), year, month)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, budgets)
	}
}

func trackBudgetsHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month := parseYearMonth(r)
		statuses, err := svc.TrackBudgets(r.Context(), FamilyIDFromContext(r.Context()), year, month)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, statuses)
	}
}

func deleteBudgetHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgetID := chi.URLParam(r, "budgetId")
		if err := svc.DeleteBudget(r.Context(), FamilyIDFromContext(r.Context()), budgetID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "budget deleted", ID: budgetID})
	}
}
