package service

import (
	"context"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var categoryTracer = otel.Tracer("service/categories")

// ============================================================
// Categories
// ============================================================

// ListCategories returns the family's categories, seeding the default set
// on first use.
func (s *FinanceService) ListCategories(ctx context.Context, familyID string) ([]domain.Category, error) {
	ctx, span := categoryTracer.Start(ctx, "FinanceService.ListCategories")
	defer span.End()

	cats, err := s.store.ListCategories(ctx, familyID)
	if err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		return cats, nil
	}

	seed := domain.DefaultCategories()
	for i := range seed {
		seed[i].ID = uuid.NewString()
		seed[i].FamilyID = familyID
	}
	if err := s.store.SeedCategories(ctx, familyID, seed); err != nil {
		return nil, err
	}
	return s.store.ListCategories(ctx, familyID)
}

func (s *FinanceService) CreateCategory(ctx context.Context, familyID string, req *domain.CategoryRequest) (*domain.Category, error) {
	ctx, span := categoryTracer.Start(ctx, "FinanceService.CreateCategory")
	defer span.End()

	if req.Name == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "name is required"}
	}
	if req.Type != domain.TxIncome && req.Type != domain.TxExpense {
		return nil, &domain.ErrValidation{Field: "type", Message: "type must be income or expense"}
	}

	existing, err := s.store.ListCategories(ctx, familyID)
	if err != nil {
		return nil, err
	}
	// Names repeat across types ("Otros" exists for income and expense);
	// only the (name, type) pair is unique.
	for i := range existing {
		if existing[i].Name == req.Name && existing[i].Type == req.Type {
			return nil, &domain.ErrConflict{Message: "category already exists: " + req.Name}
		}
	}

	return s.store.CreateCategory(ctx, familyID, &domain.Category{
		ID:       uuid.NewString(),
		FamilyID: familyID,
		Name:     req.Name,
		Type:     req.Type,
		Icon:     req.Icon,
	})
}
