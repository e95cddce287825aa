package registrationService

import (
	"fmt"
	"strings"

	teammodels "github.com/nikhil/hackfest/internal/models/teams"
)

const (
	minTeamSize = 1
	maxTeamSize = 5
)

// MemberInput is the member shape accepted on the wire.
type MemberInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	College    string `json:"college"`
	Role       string `json:"role"`
	RollNumber string `json:"rollNumber"`
}

// RegisterRequest is the registration submission body.
type RegisterRequest struct {
	TeamName string        `json:"teamName"`
	Domain   string        `json:"domain"`
	Members  []MemberInput `json:"members"`
}

// VerifyRequest is the payment confirmation callback body.
type VerifyRequest struct {
	TeamID    int64         `json:"teamId"`
	PaymentID string        `json:"paymentId"`
	OrderID   string        `json:"orderId"`
	Signature string        `json:"signature"`
	Members   []MemberInput `json:"members"`
}

// validateRegistration enforces the submission rules: required fields, a
// known domain, 1-5 members, exactly one team lead, allowed roles and no
// duplicate emails within the request.
func validateRegistration(req RegisterRequest) error {
	if strings.TrimSpace(req.TeamName) == "" {
		return fmt.Errorf("teamName is required")
	}
	if !teammodels.ValidDomain(req.Domain) {
		return fmt.Errorf("domain must be one of: %s", strings.Join(teammodels.Domains, ", "))
	}
	if len(req.Members) < minTeamSize || len(req.Members) > maxTeamSize {
		return fmt.Errorf("team must have between %d and %d members", minTeamSize, maxTeamSize)
	}

	leads := 0
	seen := make(map[string]bool, len(req.Members))
	for i, m := range req.Members {
		if strings.TrimSpace(m.Name) == "" ||
			strings.TrimSpace(m.Email) == "" ||
			strings.TrimSpace(m.Phone) == "" ||
			strings.TrimSpace(m.College) == "" {
			return fmt.Errorf("member %d is missing required fields (name, email, phone, college)", i+1)
		}

		switch m.Role {
		case teammodels.RoleTeamLead:
			leads++
		case teammodels.RoleMember:
		default:
			return fmt.Errorf("member %d has invalid role %q", i+1, m.Role)
		}

		email := strings.ToLower(strings.TrimSpace(m.Email))
		if seen[email] {
			return fmt.Errorf("duplicate email %s in member list", email)
		}
		seen[email] = true
	}

	if leads != 1 {
		return fmt.Errorf("team must have exactly one %s", teammodels.RoleTeamLead)
	}
	return nil
}

// validateVerification gates the callback payload: all identifiers present
// and every member carries the fields the final records need.
func validateVerification(req VerifyRequest) error {
	if req.TeamID <= 0 {
		return fmt.Errorf("teamId is required")
	}
	if strings.TrimSpace(req.PaymentID) == "" {
		return fmt.Errorf("paymentId is required")
	}
	if strings.TrimSpace(req.OrderID) == "" {
		return fmt.Errorf("orderId is required")
	}
	if strings.TrimSpace(req.Signature) == "" {
		return fmt.Errorf("signature is required")
	}
	if len(req.Members) == 0 {
		return fmt.Errorf("members list cannot be empty")
	}
	for i, m := range req.Members {
		if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" {
			return fmt.Errorf("member %d is missing required fields (name, email)", i+1)
		}
		if strings.TrimSpace(m.RollNumber) == "" {
			return fmt.Errorf("member %d is missing rollNumber", i+1)
		}
	}
	return nil
}
