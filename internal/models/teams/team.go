package teammodels

import "time"

// Payment lifecycle states for a team. A team only ever moves forward:
// Pending -> Initiated -> Completed/Failed, Completed -> Refunded.
const (
	StatusPending   = "Pending"
	StatusInitiated = "Initiated"
	StatusCompleted = "Completed"
	StatusFailed    = "Failed"
	StatusRefunded  = "Refunded"
)

// Member roles
const (
	RoleTeamLead = "Team Lead"
	RoleMember   = "Member"
)

// Domains is the closed set of tracks a team can register under.
var Domains = []string{
	"Web Dev",
	"App Dev",
	"AI/ML",
	"IoT",
	"Cybersecurity",
	"Open Innovation",
}

// Team represents one registration unit
type Team struct {
	ID            int64      `json:"id"`
	Name          string     `json:"team_name"`
	Domain        string     `json:"domain"`
	MemberCount   int        `json:"member_count"`
	PaymentStatus string     `json:"payment_status"`
	OrderID       string     `json:"order_id"`
	PaymentID     string     `json:"payment_id,omitempty"`
	AmountInPaise int64      `json:"amount_in_paise"`
	CreatedAt     time.Time  `json:"created_at"`
	InitiatedAt   *time.Time `json:"payment_initiated_at,omitempty"`
	VerifiedAt    *time.Time `json:"payment_verified_at,omitempty"`
}

// Member represents one registered participant belonging to a team
type Member struct {
	ID         int64  `json:"id"`
	TeamID     int64  `json:"team_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	College    string `json:"college"`
	Role       string `json:"role"`
	RollNumber string `json:"rollNumber,omitempty"`
}

// ValidDomain reports whether d is one of the registered tracks.
func ValidDomain(d string) bool {
	for _, v := range Domains {
		if v == d {
			return true
		}
	}
	return false
}
