package domain

import "time"

// ============================================================
// Family Members
// ============================================================

// Member roles within the family.
const (
	RolePrimary     = "primary"     // aportante principal
	RoleContributor = "contributor" // aporta ingresos
	RoleDependent   = "dependent"   // no aporta (hijos, etc.)
)

// Member represents a person participating in the family finances.
// Members are referenced (never owned) by accounts and transactions.
type Member struct {
	ID        string    `json:"id"`
	FamilyID  string    `json:"family_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRole reports whether r is one of the closed role set.
func ValidRole(r string) bool {
	return r == RolePrimary || r == RoleContributor || r == RoleDependent
}

// MemberRequest is the payload to create or invite a member.
type MemberRequest struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	InviteCode string `json:"inviteCode,omitempty"`
}

// MemberInvite is a pending invitation. The code itself is never stored,
// only its bcrypt hash.
type MemberInvite struct {
	ID        string    `json:"id"`
	FamilyID  string    `json:"family_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CodeHash  string    `json:"code_hash"`
	Redeemed  bool      `json:"redeemed"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberInviteResponse is returned when an invite is issued.
// Code is shown exactly once.
type MemberInviteResponse struct {
	InviteID  string `json:"inviteId"`
	Code      string `json:"code"`
	ExpiresAt string `json:"expiresAt"`
}
