package routes

import (
	"net/http"
	"strings"
	"testing"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	app := buildTestApp(t)
	regular := createUser(t, "regular", "user")
	token := signTestToken(t, regular.ID, "user")

	for _, path := range []string{"/api/admin/users", "/api/admin/stats"} {
		if resp := doJSON(t, app, http.MethodGet, path, token, nil); resp.Code != http.StatusForbidden {
			t.Errorf("%s as user: expected 403, got %d", path, resp.Code)
		}
		if resp := doJSON(t, app, http.MethodGet, path, "", nil); resp.Code != http.StatusUnauthorized {
			t.Errorf("%s without token: expected 401, got %d", path, resp.Code)
		}
	}
}

func TestAdminListUsersHidesPasswords(t *testing.T) {
	app := buildTestApp(t)
	admin := createUser(t, "boss", "admin")
	createUser(t, "guest", "user")

	resp := doJSON(t, app, http.MethodGet, "/api/admin/users", signTestToken(t, admin.ID, "admin"), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Success bool `json:"success"`
		Results int  `json:"results"`
	}
	decodeBody(t, resp, &envelope)
	if envelope.Results != 2 {
		t.Errorf("expected 2 users, got %d", envelope.Results)
	}
	if strings.Contains(resp.Body.String(), `"password"`) {
		t.Error("user list must not expose password fields")
	}
}

func TestAdminStats(t *testing.T) {
	app := buildTestApp(t)
	admin := createUser(t, "boss", "admin")
	host := createUser(t, "host", "host")
	createProperty(t, host.ID, 100)

	resp := doJSON(t, app, http.MethodGet, "/api/admin/stats", signTestToken(t, admin.ID, "admin"), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Users      int64 `json:"users"`
			Properties int64 `json:"properties"`
			Bookings   int64 `json:"bookings"`
		} `json:"data"`
	}
	decodeBody(t, resp, &envelope)
	if envelope.Data.Users != 2 || envelope.Data.Properties != 1 || envelope.Data.Bookings != 0 {
		t.Errorf("unexpected counts: %+v", envelope.Data)
	}
}
