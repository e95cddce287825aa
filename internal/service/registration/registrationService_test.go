package registrationService

import (
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	teammodels "github.com/nikhil/hackfest/internal/models/teams"
)

func TestRegisterTeamSuccess(t *testing.T) {
	provider := &fakeProvider{orderID: "order_alpha1", secret: "s3cret"}
	rs, mock, _ := newTestService(t, provider)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM teams WHERE team_name = ?)`)).
		WithArgs("Alpha").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT email FROM members WHERE LOWER(email) IN (?)`)).
		WillReturnRows(sqlmock.NewRows([]string{"email"}))
	// amount_in_paise for 1 member at 100 rupees/member must be 10000.
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO teams`)).
		WithArgs("Alpha", "Web Dev", 1, teammodels.StatusInitiated, "order_alpha1", int64(10000), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	w := doJSON(t, rs.RegisterTeam, RegisterRequest{
		TeamName: "Alpha",
		Domain:   "Web Dev",
		Members:  validMembers(1),
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("expected success=true, got %v", body["success"])
	}
	if body["orderId"] != "order_alpha1" {
		t.Errorf("expected orderId order_alpha1, got %v", body["orderId"])
	}
	if body["teamId"] != float64(42) {
		t.Errorf("expected teamId 42, got %v", body["teamId"])
	}
	if body["amount"] != float64(100) {
		t.Errorf("expected amount 100, got %v", body["amount"])
	}
	if body["currency"] != "INR" {
		t.Errorf("expected currency INR, got %v", body["currency"])
	}
	if body["chargePerMember"] != float64(100) {
		t.Errorf("expected chargePerMember 100, got %v", body["chargePerMember"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRegisterTeamNameTaken(t *testing.T) {
	provider := &fakeProvider{orderID: "order_x", secret: "s3cret"}
	rs, mock, _ := newTestService(t, provider)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM teams WHERE team_name = ?)`)).
		WithArgs("Alpha").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	w := doJSON(t, rs.RegisterTeam, RegisterRequest{
		TeamName: "Alpha",
		Domain:   "Web Dev",
		Members:  validMembers(2),
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRegisterTeamEmailAlreadyRegistered(t *testing.T) {
	provider := &fakeProvider{orderID: "order_x", secret: "s3cret"}
	rs, mock, _ := newTestService(t, provider)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM teams WHERE team_name = ?)`)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT email FROM members`)).
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("membera@example.com"))

	w := doJSON(t, rs.RegisterTeam, RegisterRequest{
		TeamName: "Beta",
		Domain:   "AI/ML",
		Members:  validMembers(2),
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Errorf("expected success=false, got %v", body["success"])
	}
}

func TestRegisterTeamGatewayUnavailable(t *testing.T) {
	provider := &fakeProvider{createErr: errors.New("connection refused"), secret: "s3cret"}
	rs, mock, _ := newTestService(t, provider)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM teams WHERE team_name = ?)`)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT email FROM members`)).
		WillReturnRows(sqlmock.NewRows([]string{"email"}))

	w := doJSON(t, rs.RegisterTeam, RegisterRequest{
		TeamName: "Gamma",
		Domain:   "IoT",
		Members:  validMembers(3),
	})

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	// No team row may be created when order creation fails.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRegisterTeamInvalidPayloadHasNoSideEffects(t *testing.T) {
	provider := &fakeProvider{orderID: "order_x", secret: "s3cret"}
	rs, mock, _ := newTestService(t, provider)

	w := doJSON(t, rs.RegisterTeam, RegisterRequest{
		TeamName: "Delta",
		Domain:   "Web Dev",
		Members:  validMembers(6),
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("validation failure must not touch the database: %v", err)
	}
}
