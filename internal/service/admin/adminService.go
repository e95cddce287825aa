package adminService

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/nikhil/hackfest/internal/httpx"
	"github.com/nikhil/hackfest/internal/logger"
	teammodels "github.com/nikhil/hackfest/internal/models/teams"
)

// AdminService exposes organizer-facing read endpoints.
type AdminService struct {
	DB  *sql.DB
	Log *logger.Logger
}

// PaginationResponse wraps paginated team results
type PaginationResponse struct {
	Success    bool              `json:"success"`
	Teams      []teammodels.Team `json:"teams"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}

// NewAdminService initializes the admin service
func NewAdminService(db *sql.DB) *AdminService {
	return &AdminService{
		DB:  db,
		Log: logger.NewLogger("admin-service"),
	}
}

// GetTeams lists registered teams with their payment status, newest first.
func (as *AdminService) GetTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	var totalCount int
	err := as.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&totalCount)
	if err != nil {
		as.Log.Error("Failed to count teams", "error", err)
		httpx.RespondWithError(w, http.StatusInternalServerError, "Failed to get teams")
		return
	}

	rows, err := as.DB.QueryContext(ctx, `
		SELECT team_id, team_name, domain, member_count, payment_status, order_id, COALESCE(payment_id, ''), amount_in_paise, created_at
		FROM teams
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, perPage, offset)
	if err != nil {
		as.Log.Error("Failed to query teams", "error", err)
		httpx.RespondWithError(w, http.StatusInternalServerError, "Failed to get teams")
		return
	}
	defer rows.Close()

	var teams []teammodels.Team
	for rows.Next() {
		var t teammodels.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Domain, &t.MemberCount, &t.PaymentStatus, &t.OrderID, &t.PaymentID, &t.AmountInPaise, &t.CreatedAt); err != nil {
			as.Log.Error("Failed to scan team row", "error", err)
			httpx.RespondWithError(w, http.StatusInternalServerError, "Failed to process teams data")
			return
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		as.Log.Error("Error iterating teams rows", "error", err)
		httpx.RespondWithError(w, http.StatusInternalServerError, "Error processing teams data")
		return
	}

	httpx.RespondWithJSON(w, http.StatusOK, PaginationResponse{
		Success:    true,
		Teams:      teams,
		TotalCount: totalCount,
		Page:       page,
		PerPage:    perPage,
	})
}

// GetReconciliation lists Completed teams that have no member rows: the
// accepted inconsistency window when the member insert fails after the
// payment transition. These need manual follow-up.
func (as *AdminService) GetReconciliation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := as.DB.QueryContext(ctx, `
		SELECT t.team_id, t.team_name, t.domain, t.member_count, t.payment_status, t.order_id, COALESCE(t.payment_id, ''), t.amount_in_paise, t.created_at
		FROM teams t
		LEFT JOIN members m ON m.team_id = t.team_id
		WHERE t.payment_status = ? AND m.id IS NULL
		ORDER BY t.created_at ASC
	`, teammodels.StatusCompleted)
	if err != nil {
		as.Log.Error("Failed to query reconciliation report", "error", err)
		httpx.RespondWithError(w, http.StatusInternalServerError, "Failed to build reconciliation report")
		return
	}
	defer rows.Close()

	var teams []teammodels.Team
	for rows.Next() {
		var t teammodels.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Domain, &t.MemberCount, &t.PaymentStatus, &t.OrderID, &t.PaymentID, &t.AmountInPaise, &t.CreatedAt); err != nil {
			as.Log.Error("Failed to scan reconciliation row", "error", err)
			httpx.RespondWithError(w, http.StatusInternalServerError, "Failed to build reconciliation report")
			return
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		as.Log.Error("Error iterating reconciliation rows", "error", err)
		httpx.RespondWithError(w, http.StatusInternalServerError, "Failed to build reconciliation report")
		return
	}

	httpx.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"teams":   teams,
		"count":   len(teams),
	})
}
