package supabase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
)

// ============================================================
// Family members — CRUD via PostgREST
// ============================================================

func (c *Client) CreateMember(ctx context.Context, familyID string, m *domain.Member) (*domain.Member, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateMember")
	defer span.End()

	body, err := c.doPost(ctx, "family_members", map[string]any{
		"id":         m.ID,
		"family_id":  familyID,
		"name":       m.Name,
		"role":       m.Role,
		"avatar_url": m.AvatarURL,
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/members", Err: err}
	}
	return firstRow[domain.Member](body, "member")
}

func (c *Client) ListMembers(ctx context.Context, familyID string) ([]domain.Member, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListMembers")
	defer span.End()

	path := fmt.Sprintf("family_members?family_id=eq.%s&order=created_at.asc", familyID)
	body, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/members", Err: err}
	}
	return decodeRows[domain.Member](body, "members")
}

func (c *Client) GetMember(ctx context.Context, familyID, memberID string) (*domain.Member, error) {
	ctx, span := tracer.Start(ctx, "Supabase.GetMember")
	defer span.End()

	path := fmt.Sprintf("family_members?family_id=eq.%s&id=eq.%s&limit=1", familyID, memberID)
	body, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/members", Err: err}
	}
	rows, err := decodeRows[domain.Member](body, "member")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "member", ID: memberID}
	}
	return &rows[0], nil
}

func (c *Client) UpdateMember(ctx context.Context, familyID, memberID string, m *domain.Member) (*domain.Member, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateMember")
	defer span.End()

	path := fmt.Sprintf("family_members?family_id=eq.%s&id=eq.%s", familyID, memberID)
	body, err := c.doPatch(ctx, path, map[string]any{
		"name":       m.Name,
		"role":       m.Role,
		"avatar_url": m.AvatarURL,
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/members", Err: err}
	}
	rows, err := decodeRows[domain.Member](body, "member")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "member", ID: memberID}
	}
	return &rows[0], nil
}

func (c *Client) DeleteMember(ctx context.Context, familyID, memberID string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteMember")
	defer span.End()

	path := fmt.Sprintf("family_members?family_id=eq.%s&id=eq.%s", familyID, memberID)
	if err := c.doDelete(ctx, path); err != nil {
		return &domain.ErrExternalService{Service: "supabase/members", Err: err}
	}
	return nil
}

// ============================================================
// Member invites
// ============================================================

func (c *Client) CreateInvite(ctx context.Context, familyID string, inv *domain.MemberInvite) (*domain.MemberInvite, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateInvite")
	defer span.End()

	body, err := c.doPost(ctx, "member_invites", map[string]any{
		"id":         inv.ID,
		"family_id":  familyID,
		"name":       inv.Name,
		"role":       inv.Role,
		"code_hash":  inv.CodeHash,
		"redeemed":   false,
		"expires_at": inv.ExpiresAt,
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/invites", Err: err}
	}
	return firstRow[domain.MemberInvite](body, "invite")
}

func (c *Client) ListOpenInvites(ctx context.Context, familyID string) ([]domain.MemberInvite, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListOpenInvites")
	defer span.End()

	path := fmt.Sprintf("member_invites?family_id=eq.%s&redeemed=eq.false&order=created_at.desc", familyID)
	body, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/invites", Err: err}
	}
	return decodeRows[domain.MemberInvite](body, "invites")
}

// MarkInviteRedeemed flips the redeemed flag only while it is still false,
// so two concurrent redemptions cannot both succeed.
func (c *Client) MarkInviteRedeemed(ctx context.Context, inviteID string) error {
	ctx, span := tracer.Start(ctx, "Supabase.MarkInviteRedeemed")
	defer span.End()

	path := fmt.Sprintf("member_invites?id=eq.%s&redeemed=eq.false", inviteID)
	body, err := c.doPatch(ctx, path, map[string]any{"redeemed": true})
	if err != nil {
		return &domain.ErrExternalService{Service: "supabase/invites", Err: err}
	}
	rows, err := decodeRows[domain.MemberInvite](body, "invite")
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return &domain.ErrDuplicate{Key: "invite:" + inviteID}
	}
	return nil
}
