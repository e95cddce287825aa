package registrationService

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/nikhil/hackfest/internal/events"
	"github.com/nikhil/hackfest/internal/httpx"
	teammodels "github.com/nikhil/hackfest/internal/models/teams"
)

// VerifyResponse is returned once a payment has been verified and the
// team's members persisted.
type VerifyResponse struct {
	Success       bool   `json:"success"`
	TeamID        int64  `json:"teamId"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentID     string `json:"paymentId"`
	OrderID       string `json:"orderId"`
	MemberCount   int    `json:"memberCount"`
}

const mysqlErrDuplicateEntry = 1062

// VerifyPayment validates a payment confirmation callback and finalizes the
// registration. Each gate below is ordered and hard: signature, team
// lookup, order identity, then an atomic Initiated->Completed transition.
// Members are inserted only after the transition succeeded, so a duplicate
// or concurrent callback can never finalize a team twice.
func (rs *RegistrationService) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rs.Log.Error("Failed to decode request body", "error", err)
		httpx.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validateVerification(req); err != nil {
		httpx.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Gate 2: the signature proves the gateway issued this payment for
	// this order. Checked before any database work.
	if !rs.Provider.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		rs.Log.Warn("Payment signature verification failed",
			"team_id", req.TeamID, "order_id", req.OrderID, "payment_id", req.PaymentID)
		httpx.RespondWithError(w, http.StatusBadRequest, "Payment signature verification failed")
		return
	}

	// Gate 3: the team must exist.
	var (
		teamName      string
		storedOrderID string
		status        string
	)
	err := rs.DB.QueryRowContext(ctx,
		`SELECT team_name, order_id, payment_status FROM teams WHERE team_id = ?`, req.TeamID,
	).Scan(&teamName, &storedOrderID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			httpx.RespondWithError(w, http.StatusNotFound, "Team not found")
			return
		}
		rs.Log.Error("Failed to query team", "error", err, "team_id", req.TeamID)
		httpx.RespondWithError(w, http.StatusInternalServerError, rs.publicError(err, "Database error"))
		return
	}

	// Gate 4: a valid signature for order A must not finalize team B.
	if storedOrderID != req.OrderID {
		rs.Log.Warn("Order ID mismatch on verification",
			"team_id", req.TeamID, "stored_order_id", storedOrderID, "given_order_id", req.OrderID)
		httpx.RespondWithError(w, http.StatusBadRequest, "Order does not belong to this team")
		return
	}

	// Gate 5: compare-and-set. The WHERE clause on the current status makes
	// the transition atomic at the store; concurrent duplicates see zero
	// rows affected.
	now := time.Now().UTC()
	result, err := rs.DB.ExecContext(ctx, `
		UPDATE teams
		SET payment_status = ?, payment_id = ?, payment_verified_at = ?
		WHERE team_id = ? AND payment_status = ?
	`, teammodels.StatusCompleted, req.PaymentID, now, req.TeamID, teammodels.StatusInitiated)
	if err != nil {
		rs.Log.Error("Failed to update payment status", "error", err, "team_id", req.TeamID)
		httpx.RespondWithError(w, http.StatusInternalServerError, rs.publicError(err, "Failed to update payment status"))
		return
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		rs.Log.Error("Failed to get rows affected", "error", err, "team_id", req.TeamID)
		httpx.RespondWithError(w, http.StatusInternalServerError, rs.publicError(err, "Failed to update payment status"))
		return
	}
	if rowsAffected == 0 {
		// Already finalized by an earlier (possibly concurrent) callback.
		rs.Log.Info("Duplicate verification callback", "team_id", req.TeamID, "payment_id", req.PaymentID)
		httpx.RespondWithError(w, http.StatusConflict, "Payment already verified for this team")
		return
	}

	// Gate 6: persist members, only reachable after a successful
	// transition. A failure here leaves the team Completed without member
	// rows; that is surfaced for manual reconciliation, never rolled back.
	if err := rs.insertMembers(ctx, req.TeamID, req.Members); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			rs.Log.Warn("Duplicate member record on finalization", "error", err, "team_id", req.TeamID)
			httpx.RespondWithError(w, http.StatusConflict, "A member with the same email or roll number is already registered")
			return
		}
		rs.Log.Error("Team completed without member rows, manual reconciliation required",
			"error", err, "team_id", req.TeamID, "payment_id", req.PaymentID)
		httpx.RespondWithError(w, http.StatusInternalServerError, rs.publicError(err, "Failed to save team members"))
		return
	}

	rs.Log.Audit("Payment verified", "team_id", req.TeamID, "payment_id", req.PaymentID, "order_id", req.OrderID)

	if rs.Hub != nil {
		rs.Hub.Publish(events.Event{
			Type:     events.EventPaymentCompleted,
			TeamID:   req.TeamID,
			TeamName: teamName,
			OrderID:  req.OrderID,
		})
	}

	httpx.RespondWithJSON(w, http.StatusOK, VerifyResponse{
		Success:       true,
		TeamID:        req.TeamID,
		PaymentStatus: teammodels.StatusCompleted,
		PaymentID:     req.PaymentID,
		OrderID:       req.OrderID,
		MemberCount:   len(req.Members),
	})
}

// insertMembers writes the member batch as a single multi-row statement.
func (rs *RegistrationService) insertMembers(ctx context.Context, teamID int64, members []MemberInput) error {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO members (team_id, name, email, phone, college, role, roll_number) VALUES `)

	args := make([]interface{}, 0, len(members)*7)
	for i, m := range members {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?)")

		role := m.Role
		if role == "" {
			role = teammodels.RoleMember
		}
		args = append(args, teamID, m.Name, strings.ToLower(strings.TrimSpace(m.Email)), m.Phone, m.College, role, m.RollNumber)
	}

	_, err := rs.DB.ExecContext(ctx, sb.String(), args...)
	return err
}
