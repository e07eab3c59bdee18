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
// Scheduled expenses
// ============================================================

func listScheduledHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenses, err := svc.ListScheduledExpenses(r.Context(), FamilyIDFromContext(r.Context()))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, expenses)
	}
}

func createScheduledHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ScheduledExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		expense, err := svc.CreateScheduledExpense(r.Context(), FamilyIDFromContext(r.Context()), &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, expense)
	}
}

func updateScheduledHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ScheduledExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		expense, err := svc.UpdateScheduledExpense(r.Context(), FamilyIDFromContext(r.Context()), chi.URLParam(r, "expenseId"), &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, expense)
	}
}

func deleteScheduledHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenseID := chi.URLParam(r, "expenseId")
		if err := svc.DeleteScheduledExpense(r.Context(), FamilyIDFromContext(r.Context()), expenseID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "scheduled expense deleted", ID: expenseID})
	}
}

// projectScheduledHandler resolves every expense for a period with live
// credit-card amounts and confirmation state.
func projectScheduledHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month := parseYearMonth(r)
		views, err := svc.ProjectScheduledExpenses(r.Context(), FamilyIDFromContext(r.Context()), year, month)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func confirmScheduledHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ConfirmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		resp, err := svc.ConfirmScheduledExpense(r.Context(), FamilyIDFromContext(r.Context()), chi.URLParam(r, "expenseId"), &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}
