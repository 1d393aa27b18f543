package handler

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/testutil"
)

func TestLoginBootstrapAdmin(t *testing.T) {
	router, _ := setupOpsTest(t)

	w := testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("Expected a token in the login response")
	}
	user := data["user"].(map[string]interface{})
	if user["role"] != entity.RoleAdmin {
		t.Errorf("Expected admin role, got %v", user["role"])
	}

	// The issued token works against protected routes
	w = testutil.DoRequest(router, "GET", "/api/v1/auth/me", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /auth/me, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginDatabaseUser(t *testing.T) {
	router, db := setupOpsTest(t)
	testutil.SeedTestUser(t, db, "ravi", "secret123", entity.RoleManager)

	w := testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"username": "ravi",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	if user["username"] != "ravi" {
		t.Errorf("Expected username ravi, got %v", user["username"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, db := setupOpsTest(t)
	testutil.SeedTestUser(t, db, "ravi", "secret123", entity.RoleManager)

	w := testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"username": "ravi",
		"password": "wrongpass",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginUnknownUser(t *testing.T) {
	router, _ := setupOpsTest(t)

	w := testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"username": "nobody",
		"password": "whatever1",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginInactiveUser(t *testing.T) {
	router, db := setupOpsTest(t)
	user := testutil.SeedTestUser(t, db, "ravi", "secret123", entity.RoleManager)
	db.Model(user).Update("is_active", false)

	w := testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"username": "ravi",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 for inactive user, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginRateLimited(t *testing.T) {
	router, db := setupOpsTest(t)
	testutil.SeedTestUser(t, db, "ravi", "secret123", entity.RoleManager)

	for i := 0; i < 5; i++ {
		w := testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
			"username": "ravi",
			"password": "wrongpass",
		}, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("Attempt %d: expected 401, got %d: %s", i+1, w.Code, w.Body.String())
		}
	}

	// Sixth attempt is throttled even with the right password
	w := testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"username": "ravi",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429 after 5 failures, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginSuccessResetsFailures(t *testing.T) {
	router, db := setupOpsTest(t)
	testutil.SeedTestUser(t, db, "ravi", "secret123", entity.RoleManager)

	for i := 0; i < 4; i++ {
		testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
			"username": "ravi",
			"password": "wrongpass",
		}, "")
	}

	w := testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"username": "ravi",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 inside failure budget, got %d: %s", w.Code, w.Body.String())
	}

	// Failure counter restarts after a successful login
	w = testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"username": "ravi",
		"password": "wrongpass",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginValidation(t *testing.T) {
	router, _ := setupOpsTest(t)

	// Username below the minimum length
	w := testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"username": "ab",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for short username, got %d: %s", w.Code, w.Body.String())
	}

	// Password below the minimum length
	w = testutil.DoRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "abc",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for short password, got %d: %s", w.Code, w.Body.String())
	}
}
