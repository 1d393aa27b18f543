package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bitfantasy/ostrich-ops/internal/ops/testutil"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func importTicketSheet(t *testing.T, router *gin.Engine, token string, rows [][]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []interface{}{"Customer Phone/Code", "Subject", "Description", "Priority", "Assigned To"}
	for col, h := range headers {
		name, _ := excelize.ColumnNumberToName(col + 1)
		f.SetCellValue(sheet, name+"1", h)
	}
	for i, row := range rows {
		for col, v := range row {
			name, _ := excelize.ColumnNumberToName(col + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", name, i+2), v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "tickets.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write(buf.Bytes())
	writer.Close()

	req, _ := http.NewRequest("POST", "/api/v1/service-tickets/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTicketCreate(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "tkt@test.com")

	w := testutil.DoRequest(router, "POST", "/api/v1/service-tickets", map[string]interface{}{
		"customer_id": customer["id"].(string),
		"subject":     "Wheel alignment issue",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	ticket := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if number, _ := ticket["ticket_number"].(string); !strings.HasPrefix(number, "TKT") {
		t.Errorf("Expected ticket number with TKT prefix, got %v", ticket["ticket_number"])
	}
	if ticket["status"] != "OPEN" {
		t.Errorf("Expected status OPEN, got %v", ticket["status"])
	}
	if ticket["priority"] != "MEDIUM" {
		t.Errorf("Expected default priority MEDIUM, got %v", ticket["priority"])
	}
}

func TestTicketResolveStampsTime(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	customer := createCustomer(t, router, token, "9876543210", "res@test.com")
	w := testutil.DoRequest(router, "POST", "/api/v1/service-tickets", map[string]interface{}{
		"customer_id": customer["id"].(string),
		"subject":     "Battery not charging",
	}, token)
	ticketID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(router, "PUT", "/api/v1/service-tickets/"+ticketID,
		map[string]string{"status": "resolved", "resolution": "Replaced the charger"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["status"] != "RESOLVED" {
		t.Errorf("Expected status RESOLVED, got %v", data["status"])
	}
	if data["resolved_at"] == nil {
		t.Error("Expected resolved_at stamped on resolution")
	}
}

func TestTicketImport(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	createCustomer(t, router, token, "9876543210", "imp@test.com")

	w := importTicketSheet(t, router, token, [][]interface{}{
		{"9876543210", "Seat adjustment", "Seat stuck in reclined position", "HIGH", "Team A"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if imported := data["imported"].(float64); imported != 1 {
		t.Errorf("Expected 1 imported, got %v", imported)
	}

	// Imported ticket is visible in the list
	w = testutil.DoRequest(router, "GET", "/api/v1/service-tickets", nil, token)
	list := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if total := list["total"].(float64); total != 1 {
		t.Errorf("Expected 1 ticket, got %v", total)
	}
}

func TestTicketImportReportsRowErrors(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	createCustomer(t, router, token, "9876543210", "mix@test.com")

	w := importTicketSheet(t, router, token, [][]interface{}{
		{"9999999999", "Unknown customer row", "", "", ""},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if failed := data["failed"].(float64); failed != 1 {
		t.Errorf("Expected 1 failed row, got %v", failed)
	}
}

func TestTicketImportRejectsEmptySheet(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	w := importTicketSheet(t, router, token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for empty sheet, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTicketTemplateDownload(t *testing.T) {
	router, _ := setupOpsTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/service-tickets/template", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, ".xlsx") {
		t.Errorf("Expected xlsx attachment, got %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("template is not a readable workbook: %v", err)
	}
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil || len(rows) == 0 {
		t.Fatalf("template has no header row: %v", err)
	}
	if rows[0][0] != "Customer Phone/Code" {
		t.Errorf("Expected first header 'Customer Phone/Code', got %q", rows[0][0])
	}
}
