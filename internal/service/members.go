package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var memberTracer = otel.Tracer("service/members")

const inviteTTL = 72 * time.Hour

// ============================================================
// Members
// ============================================================

func (s *FinanceService) CreateMember(ctx context.Context, familyID string, req *domain.MemberRequest) (*domain.Member, error) {
	ctx, span := memberTracer.Start(ctx, "FinanceService.CreateMember")
	defer span.End()

	if req.Name == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "name is required"}
	}
	if !domain.ValidRole(req.Role) {
		return nil, &domain.ErrValidation{Field: "role", Message: "role must be primary, contributor or dependent"}
	}

	m := &domain.Member{
		ID:        uuid.NewString(),
		FamilyID:  familyID,
		Name:      req.Name,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
	}
	created, err := s.store.CreateMember(ctx, familyID, m)
	if err != nil {
		return nil, err
	}

	s.logger.Info("member created",
		zap.String("family_id", familyID),
		zap.String("member_id", created.ID),
		zap.String("role", created.Role),
	)
	return created, nil
}

func (s *FinanceService) ListMembers(ctx context.Context, familyID string) ([]domain.Member, error) {
	ctx, span := memberTracer.Start(ctx, "FinanceService.ListMembers")
	defer span.End()

	return s.store.ListMembers(ctx, familyID)
}

func (s *FinanceService) GetMember(ctx context.Context, familyID, memberID string) (*domain.Member, error) {
	ctx, span := memberTracer.Start(ctx, "FinanceService.GetMember")
	defer span.End()

	return s.store.GetMember(ctx, familyID, memberID)
}

func (s *FinanceService) UpdateMember(ctx context.Context, familyID, memberID string, req *domain.MemberRequest) (*domain.Member, error) {
	ctx, span := memberTracer.Start(ctx, "FinanceService.UpdateMember")
	defer span.End()

	if req.Role != "" && !domain.ValidRole(req.Role) {
		return nil, &domain.ErrValidation{Field: "role", Message: "role must be primary, contributor or dependent"}
	}

	cur, err := s.store.GetMember(ctx, familyID, memberID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		cur.Name = req.Name
	}
	if req.Role != "" {
		cur.Role = req.Role
	}
	if req.AvatarURL != "" {
		cur.AvatarURL = req.AvatarURL
	}
	return s.store.UpdateMember(ctx, familyID, memberID, cur)
}

// DeleteMember removes a member, deletes the cash accounts the member
// owned, and orphans the member's transactions (member_id goes NULL, the
// rows survive so balances stay intact).
func (s *FinanceService) DeleteMember(ctx context.Context, familyID, memberID string) error {
	ctx, span := memberTracer.Start(ctx, "FinanceService.DeleteMember")
	defer span.End()
	span.SetAttributes(attribute.String("member.id", memberID))

	if _, err := s.store.GetMember(ctx, familyID, memberID); err != nil {
		return err
	}

	accounts, err := s.store.ListAccounts(ctx, familyID)
	if err != nil {
		return err
	}
	for i := range accounts {
		a := &accounts[i]
		if a.MemberID != memberID || a.Type != domain.AccountCash {
			continue
		}
		if err := s.store.DeleteAccount(ctx, familyID, a.ID); err != nil {
			return err
		}
		s.logger.Info("cascade deleted cash account",
			zap.String("member_id", memberID),
			zap.String("account_id", a.ID),
		)
	}

	if err := s.store.ClearTransactionMember(ctx, familyID, memberID); err != nil {
		return err
	}
	s.invalidateTransactions(familyID)

	if err := s.store.DeleteMember(ctx, familyID, memberID); err != nil {
		return err
	}

	s.logger.Info("member deleted", zap.String("family_id", familyID), zap.String("member_id", memberID))
	return nil
}

// ============================================================
// Invites
// ============================================================

// IssueInvite creates an invitation for a future member. The plaintext
// code is returned once; only its bcrypt hash is stored.
func (s *FinanceService) IssueInvite(ctx context.Context, familyID string, req *domain.MemberRequest) (*domain.MemberInviteResponse, error) {
	ctx, span := memberTracer.Start(ctx, "FinanceService.IssueInvite")
	defer span.End()

	if req.Name == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "name is required"}
	}
	if !domain.ValidRole(req.Role) {
		return nil, &domain.ErrValidation{Field: "role", Message: "role must be primary, contributor or dependent"}
	}

	code, err := generateInviteCode()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	inv := &domain.MemberInvite{
		ID:        uuid.NewString(),
		FamilyID:  familyID,
		Name:      req.Name,
		Role:      req.Role,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().UTC().Add(inviteTTL),
	}
	created, err := s.store.CreateInvite(ctx, familyID, inv)
	if err != nil {
		return nil, err
	}

	s.logger.Info("invite issued",
		zap.String("family_id", familyID),
		zap.String("invite_id", created.ID),
	)
	return &domain.MemberInviteResponse{
		InviteID:  created.ID,
		Code:      code,
		ExpiresAt: created.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// RedeemInvite matches a code against open invites and creates the member.
// Redemption is single-use: the redeemed flag flips atomically.
func (s *FinanceService) RedeemInvite(ctx context.Context, familyID, code string) (*domain.Member, error) {
	ctx, span := memberTracer.Start(ctx, "FinanceService.RedeemInvite")
	defer span.End()

	if code == "" {
		return nil, &domain.ErrValidation{Field: "inviteCode", Message: "code is required"}
	}

	invites, err := s.store.ListOpenInvites(ctx, familyID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range invites {
		inv := &invites[i]
		if now.After(inv.ExpiresAt) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(inv.CodeHash), []byte(code)) != nil {
			continue
		}
		if err := s.store.MarkInviteRedeemed(ctx, inv.ID); err != nil {
			return nil, err
		}
		return s.CreateMember(ctx, familyID, &domain.MemberRequest{
			Name: inv.Name,
			Role: inv.Role,
		})
	}
	return nil, &domain.ErrInvalidCode{}
}

// generateInviteCode returns an 8-char uppercase alphanumeric code.
func generateInviteCode() (string, error) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate invite code: %w", err)
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(buf), nil
}
