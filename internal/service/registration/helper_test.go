package registrationService

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/nikhil/hackfest/internal/logger"
	"github.com/nikhil/hackfest/pkg/utils"
)

// fakeProvider implements payments.Provider without touching the gateway.
type fakeProvider struct {
	orderID   string
	createErr error
	secret    string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.orderID, nil
}

func (f *fakeProvider) VerifySignature(orderID, paymentID, signature string) bool {
	expected := utils.HMACSHA256Hex(f.secret, orderID+"|"+paymentID)
	return utils.HMACEqual(expected, signature)
}

// sign produces the signature the fake provider accepts.
func (f *fakeProvider) sign(orderID, paymentID string) string {
	return utils.HMACSHA256Hex(f.secret, orderID+"|"+paymentID)
}

func newTestService(t *testing.T, provider *fakeProvider) (*RegistrationService, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	rs := &RegistrationService{
		DB:       db,
		Provider: provider,
		Charge:   100,
		Log:      logger.NewLogger("registration-service-test"),
	}
	return rs, mock, db
}

func doJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func validMembers(n int) []MemberInput {
	members := make([]MemberInput, 0, n)
	for i := 0; i < n; i++ {
		role := "Member"
		if i == 0 {
			role = "Team Lead"
		}
		members = append(members, MemberInput{
			Name:       "Member " + string(rune('A'+i)),
			Email:      "member" + string(rune('a'+i)) + "@example.com",
			Phone:      "9000000000",
			College:    "Test Institute of Technology",
			Role:       role,
			RollNumber: "21CS00" + string(rune('1'+i)),
		})
	}
	return members
}
