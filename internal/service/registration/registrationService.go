package registrationService

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nikhil/hackfest/internal/config"
	"github.com/nikhil/hackfest/internal/events"
	"github.com/nikhil/hackfest/internal/httpx"
	"github.com/nikhil/hackfest/internal/logger"
	teammodels "github.com/nikhil/hackfest/internal/models/teams"
	"github.com/nikhil/hackfest/internal/payments"
)

const currency = "INR"

// RegistrationService handles team registration and payment finalization
type RegistrationService struct {
	DB       *sql.DB
	Provider payments.Provider
	Hub      *events.Hub
	Charge   float64
	Prod     bool
	Log      *logger.Logger
}

// RegisterResponse is returned to the client for completing payment.
type RegisterResponse struct {
	Success         bool    `json:"success"`
	TeamID          int64   `json:"teamId"`
	OrderID         string  `json:"orderId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	ChargePerMember float64 `json:"chargePerMember"`
}

// NewRegistrationService initializes the registration service
func NewRegistrationService(db *sql.DB, provider payments.Provider, hub *events.Hub, cfg config.Config) *RegistrationService {
	return &RegistrationService{
		DB:       db,
		Provider: provider,
		Hub:      hub,
		Charge:   cfg.ChargePerMember,
		Prod:     cfg.IsProduction(),
		Log:      logger.NewLogger("registration-service"),
	}
}

// RegisterTeam validates a submission, creates a payment order and records
// the team in Initiated state. Members are persisted later, once payment is
// verified.
func (rs *RegistrationService) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rs.Log.Error("Failed to decode request body", "error", err)
		httpx.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validateRegistration(req); err != nil {
		httpx.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Team names are unique across the event.
	var nameTaken bool
	err := rs.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM teams WHERE team_name = ?)`, req.TeamName,
	).Scan(&nameTaken)
	if err != nil {
		rs.Log.Error("Failed to check team name", "error", err)
		httpx.RespondWithError(w, http.StatusInternalServerError, rs.publicError(err, "Database error"))
		return
	}
	if nameTaken {
		httpx.RespondWithError(w, http.StatusBadRequest, "Team name is already registered")
		return
	}

	// Emails are unique across the whole event, including already stored
	// members of other teams.
	if taken, err := rs.anyEmailRegistered(ctx, req.Members); err != nil {
		rs.Log.Error("Failed to check member emails", "error", err)
		httpx.RespondWithError(w, http.StatusInternalServerError, rs.publicError(err, "Database error"))
		return
	} else if taken != "" {
		httpx.RespondWithError(w, http.StatusBadRequest, "Email "+taken+" is already registered")
		return
	}

	amount := float64(len(req.Members)) * rs.Charge
	amountPaise := int64(math.Round(amount * 100))

	// The order is created first so a team row never points at a
	// non-existent order. The reverse window (order without a team row) is
	// harmless: no funds move until the client pays against the order.
	receipt := uuid.NewString()
	orderID, err := rs.Provider.CreateOrder(ctx, amountPaise, currency, receipt)
	if err != nil {
		rs.Log.Error("Payment order creation failed", "error", err, "team_name", req.TeamName)
		httpx.RespondWithError(w, http.StatusBadGateway, "Payment gateway is unavailable, please try again")
		return
	}

	now := time.Now().UTC()
	result, err := rs.DB.ExecContext(ctx, `
		INSERT INTO teams (team_name, domain, member_count, payment_status, order_id, amount_in_paise, created_at, payment_initiated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, req.TeamName, req.Domain, len(req.Members), teammodels.StatusInitiated, orderID, amountPaise, now, now)
	if err != nil {
		// The created order is now orphaned; it expires unpaid on the
		// gateway side.
		rs.Log.Error("Failed to insert team after order creation", "error", err, "order_id", orderID)
		httpx.RespondWithError(w, http.StatusInternalServerError, rs.publicError(err, "Failed to create team"))
		return
	}

	teamID, err := result.LastInsertId()
	if err != nil {
		rs.Log.Error("Failed to get team ID", "error", err)
		httpx.RespondWithError(w, http.StatusInternalServerError, rs.publicError(err, "Failed to create team"))
		return
	}

	rs.Log.Info("Team registered", "team_id", teamID, "team_name", req.TeamName, "order_id", orderID, "amount_in_paise", amountPaise)

	if rs.Hub != nil {
		rs.Hub.Publish(events.Event{
			Type:          events.EventOrderInitiated,
			TeamID:        teamID,
			TeamName:      req.TeamName,
			OrderID:       orderID,
			AmountInPaise: amountPaise,
		})
	}

	httpx.RespondWithJSON(w, http.StatusCreated, RegisterResponse{
		Success:         true,
		TeamID:          teamID,
		OrderID:         orderID,
		Amount:          amount,
		Currency:        currency,
		ChargePerMember: rs.Charge,
	})
}

// anyEmailRegistered returns the first submitted email that already exists
// in the member store, or "" when all are new.
func (rs *RegistrationService) anyEmailRegistered(ctx context.Context, members []MemberInput) (string, error) {
	if len(members) == 0 {
		return "", nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(members)), ",")
	args := make([]interface{}, 0, len(members))
	for _, m := range members {
		args = append(args, strings.ToLower(strings.TrimSpace(m.Email)))
	}

	rows, err := rs.DB.QueryContext(ctx, `SELECT email FROM members WHERE LOWER(email) IN (`+placeholders+`)`, args...)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return "", err
		}
		return email, nil
	}
	return "", rows.Err()
}

// publicError hides driver detail from clients outside development.
func (rs *RegistrationService) publicError(err error, generic string) string {
	if rs.Prod {
		return generic
	}
	return generic + ": " + err.Error()
}
