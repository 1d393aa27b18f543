package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bitfantasy/ostrich-ops/internal/ops/testutil"
	"github.com/gin-gonic/gin"
)

func createCustomer(t *testing.T, router *gin.Engine, token, phone, email string) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/customers", map[string]interface{}{
		"customer_type":  "B2C",
		"contact_person": "Ravi Kumar",
		"email":          email,
		"phone":          phone,
		"address":        "14 Anna Salai, Teynampet",
		"city":           "Chennai",
		"state":          "Tamil Nadu",
		"pin_code":       "600018",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestCustomerCreateAssignsSequentialCodes(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	first := createCustomer(t, router, token, "9876543210", "first@test.com")
	second := createCustomer(t, router, token, "9876543211", "second@test.com")

	code1, _ := first["customer_code"].(string)
	code2, _ := second["customer_code"].(string)
	if code1 != "CUST001" {
		t.Errorf("Expected first code CUST001, got %q", code1)
	}
	if code2 != "CUST002" {
		t.Errorf("Expected second code CUST002, got %q", code2)
	}
}

func TestCustomerCreateRejectsBadPhone(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/customers", map[string]interface{}{
		"customer_type":  "B2C",
		"contact_person": "Ravi Kumar",
		"email":          "bad@test.com",
		"phone":          "1234567890",
		"address":        "14 Anna Salai, Teynampet",
		"city":           "Chennai",
		"state":          "Tamil Nadu",
		"pin_code":       "600018",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCustomerCreateRejectsDuplicatePhone(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	createCustomer(t, router, token, "9876543210", "first@test.com")

	w := testutil.DoRequest(router, "POST", "/api/v1/customers", map[string]interface{}{
		"customer_type":  "B2C",
		"contact_person": "Another Person",
		"email":          "other@test.com",
		"phone":          "9876543210",
		"address":        "22 Mount Road, Guindy",
		"city":           "Chennai",
		"state":          "Tamil Nadu",
		"pin_code":       "600032",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for duplicate phone, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	msg, _ := resp["message"].(string)
	if !strings.Contains(strings.ToLower(msg), "phone") {
		t.Errorf("Expected message mentioning phone, got %q", msg)
	}
}

func TestCustomerNormalizesPhoneOnCreate(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "98765 43210", "spaced@test.com")
	if customer["phone"] != "9876543210" {
		t.Errorf("Expected normalized phone 9876543210, got %v", customer["phone"])
	}
}

func TestCustomerUpdate(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "upd@test.com")
	id := customer["id"].(string)

	w := testutil.DoRequest(router, "PUT", "/api/v1/customers/"+id,
		map[string]string{"city": "Coimbatore"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["city"] != "Coimbatore" {
		t.Errorf("Expected city Coimbatore, got %v", data["city"])
	}
}

func TestCustomerGetNotFound(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/customers/00000000-0000-0000-0000-000000000000", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCustomerDelete(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "del@test.com")
	id := customer["id"].(string)

	w := testutil.DoRequest(router, "DELETE", "/api/v1/customers/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Soft-deleted customers disappear from reads
	w = testutil.DoRequest(router, "GET", "/api/v1/customers/"+id, nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCustomerDeleteBlockedBySales(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "guard@test.com")
	customerID := customer["id"].(string)
	productID := seedCatalog(t, router, token)

	createSale(t, router, token, customerID, productID)

	w := testutil.DoRequest(router, "DELETE", "/api/v1/customers/"+customerID, nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for guarded delete, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCustomerListSearch(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	createCustomer(t, router, token, "9876543210", "ravi@test.com")

	w := testutil.DoRequest(router, "GET", "/api/v1/customers?search=ravi", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if total := data["total"].(float64); total != 1 {
		t.Errorf("Expected 1 match, got %v", total)
	}
}

func TestCustomerRoutesRequireAuth(t *testing.T) {
	router, _ := setupOpsTest(t)

	w := testutil.DoRequest(router, "GET", "/api/v1/customers", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}
}

func TestCustomerDeleteFreesPhoneAndEmail(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	first := createCustomer(t, router, token, "9876543210", "reuse@test.com")

	w := testutil.DoRequest(router, "DELETE", "/api/v1/customers/"+first["id"].(string), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 deleting customer, got %d: %s", w.Code, w.Body.String())
	}

	// The same phone and email must be registrable again
	second := createCustomer(t, router, token, "9876543210", "reuse@test.com")
	if second["id"] == first["id"] {
		t.Error("Expected a new customer row, got the deleted one back")
	}
	if code, _ := second["customer_code"].(string); code == first["customer_code"].(string) {
		t.Errorf("Expected a fresh customer code, got %q again", code)
	}
}
