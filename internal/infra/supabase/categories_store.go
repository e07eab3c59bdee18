package supabase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
)

// ============================================================
// Categories
// ============================================================

func (c *Client) ListCategories(ctx context.Context, familyID string) ([]domain.Category, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListCategories")
	defer span.End()

	path := fmt.Sprintf("categories?family_id=eq.%s&order=name.asc", familyID)
	body, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/categories", Err: err}
	}
	return decodeRows[domain.Category](body, "categories")
}

func (c *Client) CreateCategory(ctx context.Context, familyID string, cat *domain.Category) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateCategory")
	defer span.End()

	body, err := c.doPost(ctx, "categories", map[string]any{
		"id":        cat.ID,
		"family_id": familyID,
		"name":      cat.Name,
		"type":      cat.Type,
		"icon":      cat.Icon,
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/categories", Err: err}
	}
	return firstRow[domain.Category](body, "category")
}

// SeedCategories inserts the default set in one batch, skipping names the
// family already has.
func (c *Client) SeedCategories(ctx context.Context, familyID string, cats []domain.Category) error {
	ctx, span := tracer.Start(ctx, "Supabase.SeedCategories")
	defer span.End()

	rows := make([]map[string]any, 0, len(cats))
	for i := range cats {
		rows = append(rows, map[string]any{
			"id":        cats[i].ID,
			"family_id": familyID,
			"name":      cats[i].Name,
			"type":      cats[i].Type,
			"icon":      cats[i].Icon,
		})
	}
	if _, err := c.doUpsert(ctx, "categories?on_conflict=family_id,name,type", rows); err != nil {
		return &domain.ErrExternalService{Service: "supabase/categories", Err: err}
	}
	return nil
}
