package handler

import (
	"net/http"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/infra/observability"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/port"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter creates the HTTP router with all routes and middleware.
// Everything under /v1 requires an authenticated family context.
func NewRouter(svc *service.FinanceService, store port.FinanceStore, metrics *observability.Metrics, jwtSecret string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger, metrics))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(store, logger))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		r.Use(JWTAuthMiddleware(jwtSecret, logger))

		// Members & invites
		r.Get("/members", listMembersHandler(svc, logger))
		r.Post("/members", createMemberHandler(svc, logger))
		r.Get("/members/{memberId}", getMemberHandler(svc, logger))
		r.Put("/members/{memberId}", updateMemberHandler(svc, logger))
		r.Delete("/members/{memberId}", deleteMemberHandler(svc, logger))
		r.Post("/members/invites", issueInviteHandler(svc, logger))
		r.Post("/members/invites/redeem", redeemInviteHandler(svc, logger))

		// Accounts
		r.Get("/accounts", listAccountsHandler(svc, logger))
		r.Post("/accounts", createAccountHandler(svc, logger))
		r.Get("/accounts/balances", getBalancesHandler(svc, logger))
		r.Get("/accounts/{accountId}", getAccountHandler(svc, logger))
		r.Put("/accounts/{accountId}", updateAccountHandler(svc, logger))
		r.Delete("/accounts/{accountId}", deleteAccountHandler(svc, logger))
		r.Get("/accounts/{accountId}/billing-cycle", getBillingCycleHandler(svc, logger))

		// Transactions & transfers
		r.Get("/transactions", listTransactionsHandler(svc, logger))
		r.Post("/transactions", createTransactionHandler(svc, logger))
		r.Get("/transactions/{transactionId}", getTransactionHandler(svc, logger))
		r.Put("/transactions/{transactionId}", updateTransactionHandler(svc, logger))
		r.Delete("/transactions/{transactionId}", deleteTransactionHandler(svc, logger))
		r.Post("/transfers", createTransferHandler(svc, logger))

		// Budgets
		r.Get("/budgets", listBudgetsHandler(svc, logger))
		r.Put("/budgets", upsertBudgetHandler(svc, logger))
		r.Get("/budgets/status", trackBudgetsHandler(svc, logger))
		r.Delete("/budgets/{budgetId}", deleteBudgetHandler(svc, logger))

		// Scheduled expenses
		r.Get("/scheduled", listScheduledHandler(svc, logger))
		r.Post("/scheduled", createScheduledHandler(svc, logger))
		r.Get("/scheduled/projection", projectScheduledHandler(svc, logger))
		r.Put("/scheduled/{expenseId}", updateScheduledHandler(svc, logger))
		r.Delete("/scheduled/{expenseId}", deleteScheduledHandler(svc, logger))
		r.Post("/scheduled/{expenseId}/confirm", confirmScheduledHandler(svc, logger))

		// Categories
		r.Get("/categories", listCategoriesHandler(svc, logger))
		r.Post("/categories", createCategoryHandler(svc, logger))

		// Summary
		r.Get("/summary", getSummaryHandler(svc, logger))
		r.Get("/summary/comparison", getComparisonHandler(svc, logger))

		// Metrics snapshot
		r.Get("/metrics/app", appMetricsHandler(metrics, logger))
	})

	return r
}
