package supabase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/infra/resilience"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/infra/supabase"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *supabase.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return supabase.NewClient(
		srv.Client(),
		srv.URL,
		"anon-key",
		"service-key",
		resilience.NewCircuitBreaker("supabase-test"),
		resilience.Config{MaxRetries: 1, InitialBackoff: time.Millisecond, MaxConcurrency: 2},
		zap.NewNop(),
	)
}

func TestListTransactions_GuardedRead(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("missing apikey header")
		}
		if r.Header.Get("Authorization") != "Bearer service-key" {
			t.Errorf("missing service key bearer")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"tx-1","family_id":"fam-1","date":"2025-03-10T00:00:00Z","amount":120,"type":"expense","category":"Transporte","account_id":"acc-1"}]`))
	})

	txs, err := client.ListTransactions(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 1 || txs[0].ID != "tx-1" || txs[0].Amount != 120 {
		t.Errorf("unexpected rows: %+v", txs)
	}
}

func TestListTransactions_ConcurrentReadsComplete(t *testing.T) {
	// More callers than bulkhead slots; every read must still finish.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.ListTransactions(context.Background(), "fam-1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("guarded read failed: %v", err)
		}
	}
}
