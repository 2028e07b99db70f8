package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/doctors-portal/api/internal/models"
)

func TestUpsertUser_StoresProfileAndIssuesToken(t *testing.T) {
	fs := newFakeStore()
	r, tokens := newTestRouter(fs)

	w := performJSON(r, http.MethodPut, "/user/jane@example.com", `{"name":"Jane Doe"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	email, err := tokens.Verify(resp.Token)
	if err != nil || email != "jane@example.com" {
		t.Errorf("issued token verifies to (%q, %v), want jane@example.com", email, err)
	}

	if u, ok := fs.users["jane@example.com"]; !ok || u.Name != "Jane Doe" {
		t.Errorf("user not upserted: %+v", fs.users)
	}
}

func TestMakeAdmin_NonAdminForbidden(t *testing.T) {
	fs := newFakeStore()
	fs.users["jane@example.com"] = models.User{Email: "jane@example.com"}
	r, tokens := newTestRouter(fs)
	tok, _ := tokens.Issue("jane@example.com")

	// Even promoting yourself is forbidden without the admin role.
	w := performJSON(r, http.MethodPut, "/user/jane@example.com/admin", "", tok)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if fs.users["jane@example.com"].Role == "admin" {
		t.Error("role was granted despite the failed gate")
	}
}

func TestMakeAdmin_AdminGrantsRole(t *testing.T) {
	fs := newFakeStore()
	fs.users["boss@example.com"] = models.User{Email: "boss@example.com", Role: "admin"}
	fs.users["jane@example.com"] = models.User{Email: "jane@example.com"}
	r, tokens := newTestRouter(fs)
	tok, _ := tokens.Issue("boss@example.com")

	w := performJSON(r, http.MethodPut, "/user/jane@example.com/admin", "", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if fs.users["jane@example.com"].Role != "admin" {
		t.Errorf("role = %q, want admin", fs.users["jane@example.com"].Role)
	}
}

func TestAddDoctor_AdminOnly(t *testing.T) {
	fs := newFakeStore()
	fs.users["boss@example.com"] = models.User{Email: "boss@example.com", Role: "admin"}
	r, tokens := newTestRouter(fs)

	body := `{"name":"Dr. Smith","email":"smith@example.com","specialty":"Orthodontics"}`

	// No credential at all.
	w := performJSON(r, http.MethodPost, "/doctor", body, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated: status = %d, want 401", w.Code)
	}

	tok, _ := tokens.Issue("boss@example.com")
	w = performJSON(r, http.MethodPost, "/doctor", body, tok)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin create: status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(fs.doctors) != 1 || fs.doctors[0].Email != "smith@example.com" {
		t.Errorf("doctor not stored: %+v", fs.doctors)
	}

	w = performJSON(r, http.MethodDelete, "/doctor/smith@example.com", "", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
	if len(fs.doctors) != 0 {
		t.Errorf("doctor not deleted: %+v", fs.doctors)
	}
}
