package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bitfantasy/ostrich-ops/internal/ops/testutil"
	"github.com/gin-gonic/gin"
)

// seedCatalog creates a category and a 1000-rupee product, returning the
// product id.
func seedCatalog(t *testing.T, router *gin.Engine, token string) string {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/categories", map[string]interface{}{
		"name": "Mobility Scooters",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 creating category, got %d: %s", w.Code, w.Body.String())
	}
	catResp := testutil.ParseResponse(w)
	categoryID := catResp["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(router, "POST", "/api/v1/products", map[string]interface{}{
		"name":        "Trailblazer Scooter",
		"description": "Four wheel mobility scooter",
		"price":       1000.0,
		"category_id": categoryID,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 creating product, got %d: %s", w.Code, w.Body.String())
	}
	prodResp := testutil.ParseResponse(w)
	return prodResp["data"].(map[string]interface{})["id"].(string)
}

func createSale(t *testing.T, router *gin.Engine, token, customerID, productID string) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/sales", map[string]interface{}{
		"customer_id": customerID,
		"items": []map[string]interface{}{
			{"product_id": productID, "quantity": 2},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 creating sale, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestSaleCreateComputesTotals(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "sale@test.com")
	productID := seedCatalog(t, router, token)

	sale := createSale(t, router, token, customer["id"].(string), productID)

	if number, _ := sale["sale_number"].(string); !strings.HasPrefix(number, "SAL") {
		t.Errorf("Expected sale number with SAL prefix, got %v", sale["sale_number"])
	}
	if sale["total_amount"].(float64) != 2000 {
		t.Errorf("Expected total 2000, got %v", sale["total_amount"])
	}
	if sale["final_amount"].(float64) != 2000 {
		t.Errorf("Expected final amount 2000, got %v", sale["final_amount"])
	}
	if sale["payment_status"] != "pending" {
		t.Errorf("Expected payment_status pending, got %v", sale["payment_status"])
	}
	if sale["delivery_status"] != "pending" {
		t.Errorf("Expected delivery_status pending, got %v", sale["delivery_status"])
	}
}

func TestSaleCreateRejectsExcessDiscount(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "disc@test.com")
	productID := seedCatalog(t, router, token)

	w := testutil.DoRequest(router, "POST", "/api/v1/sales", map[string]interface{}{
		"customer_id": customer["id"].(string),
		"discount":    5000.0,
		"items": []map[string]interface{}{
			{"product_id": productID, "quantity": 2},
		},
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for discount above total, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSaleUpdateGuardAfterDispatch(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "lock@test.com")
	productID := seedCatalog(t, router, token)
	sale := createSale(t, router, token, customer["id"].(string), productID)
	saleID := sale["id"].(string)

	// Dispatching moves the sale out of pending
	w := testutil.DoRequest(router, "POST", "/api/v1/dispatch", map[string]interface{}{
		"sale_id": saleID,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 creating dispatch, got %d: %s", w.Code, w.Body.String())
	}

	// Notes update is silently dropped once delivery has started
	w = testutil.DoRequest(router, "PUT", "/api/v1/sales/"+saleID,
		map[string]string{"notes": "urgent"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if notes, _ := data["notes"].(string); notes == "urgent" {
		t.Error("Expected notes unchanged on a non-pending sale")
	}

	// payment_status is still editable
	w = testutil.DoRequest(router, "PUT", "/api/v1/sales/"+saleID,
		map[string]string{"payment_status": "paid"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	if data["payment_status"] != "paid" {
		t.Errorf("Expected payment_status paid, got %v", data["payment_status"])
	}
}

func TestDispatchCreateCascadesToSale(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "cascade@test.com")
	productID := seedCatalog(t, router, token)
	sale := createSale(t, router, token, customer["id"].(string), productID)
	saleID := sale["id"].(string)

	w := testutil.DoRequest(router, "POST", "/api/v1/dispatch", map[string]interface{}{
		"sale_id": saleID,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	dispatch := resp["data"].(map[string]interface{})
	if number, _ := dispatch["dispatch_number"].(string); !strings.HasPrefix(number, "DISP") {
		t.Errorf("Expected dispatch number with DISP prefix, got %v", dispatch["dispatch_number"])
	}
	if dispatch["status"] != "pending" {
		t.Errorf("Expected dispatch status pending, got %v", dispatch["status"])
	}
	dispatchID := dispatch["id"].(string)

	w = testutil.DoRequest(router, "GET", "/api/v1/sales/"+saleID, nil, token)
	saleData := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if saleData["delivery_status"] != "processing" {
		t.Errorf("Expected sale delivery_status processing after dispatch, got %v", saleData["delivery_status"])
	}

	// Marking the dispatch delivered stamps the sale delivery date
	w = testutil.DoRequest(router, "PUT", "/api/v1/dispatch/"+dispatchID,
		map[string]string{"status": "delivered"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 updating dispatch, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/sales/"+saleID, nil, token)
	saleData = testutil.ParseResponse(w)["data"].(map[string]interface{})
	if saleData["delivery_status"] != "delivered" {
		t.Errorf("Expected sale delivery_status delivered, got %v", saleData["delivery_status"])
	}
	if saleData["delivery_date"] == nil {
		t.Error("Expected delivery_date set on delivered sale")
	}
}

func TestSaleDeleteBlockedByActiveDispatch(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "deld@test.com")
	productID := seedCatalog(t, router, token)
	sale := createSale(t, router, token, customer["id"].(string), productID)
	saleID := sale["id"].(string)

	w := testutil.DoRequest(router, "POST", "/api/v1/dispatch", map[string]interface{}{
		"sale_id": saleID,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	dispatchID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(router, "PUT", "/api/v1/dispatch/"+dispatchID,
		map[string]string{"status": "in_transit"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "DELETE", "/api/v1/sales/"+saleID, nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 deleting sale with active dispatch, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSaleDeleteRemovesPendingDispatches(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "clean@test.com")
	productID := seedCatalog(t, router, token)
	sale := createSale(t, router, token, customer["id"].(string), productID)
	saleID := sale["id"].(string)

	w := testutil.DoRequest(router, "POST", "/api/v1/dispatch", map[string]interface{}{
		"sale_id": saleID,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "DELETE", "/api/v1/sales/"+saleID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 deleting sale with pending dispatch, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/dispatch", nil, token)
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if total := data["total"].(float64); total != 0 {
		t.Errorf("Expected pending dispatches removed with the sale, got %v", total)
	}
}

func TestSaleUpdateRejectsExcessDiscountWithoutItems(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "hdisc@test.com")
	productID := seedCatalog(t, router, token)
	sale := createSale(t, router, token, customer["id"].(string), productID)
	saleID := sale["id"].(string)

	// Discount above the 2000 total, no item replacement
	w := testutil.DoRequest(router, "PUT", "/api/v1/sales/"+saleID,
		map[string]interface{}{"discount": 5000.0}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for discount above total, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/sales/"+saleID, nil, token)
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["final_amount"].(float64) != 2000 {
		t.Errorf("Expected final amount unchanged at 2000, got %v", data["final_amount"])
	}
}

func TestSaleListOrdersBySaleDate(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "order@test.com")
	productID := seedCatalog(t, router, token)
	customerID := customer["id"].(string)

	// The newer sale date is created first, so insertion order would list it
	// last
	for _, saleDate := range []string{"2026-03-05T00:00:00Z", "2026-01-10T00:00:00Z"} {
		w := testutil.DoRequest(router, "POST", "/api/v1/sales", map[string]interface{}{
			"customer_id": customerID,
			"sale_date":   saleDate,
			"items": []map[string]interface{}{
				{"product_id": productID, "quantity": 1},
			},
		}, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201 creating sale, got %d: %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(router, "GET", "/api/v1/sales", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 listing sales, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("Expected 2 sales, got %d", len(items))
	}
	first := items[0].(map[string]interface{})
	if date, _ := first["sale_date"].(string); !strings.HasPrefix(date, "2026-03-05") {
		t.Errorf("Expected most recent sale date first, got %v", first["sale_date"])
	}
}
