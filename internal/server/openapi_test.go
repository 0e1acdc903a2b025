package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleOpenAPI(t *testing.T) {
	h := handleOpenAPI()
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()

	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "application/json") {
		t.Fatalf("content-type = %q, want application/json", got)
	}

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decoding spec: %v", err)
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		t.Errorf("openapi = %q", doc.OpenAPI)
	}
	for path, method := range map[string]string{
		"/healthz":                              "get",
		"/api/boards":                           "post",
		"/api/boards/{boardID}":                 "get",
		"/api/boards/{boardID}/drag/start":      "post",
		"/api/boards/{boardID}/undo":            "post",
		"/api/boards/{boardID}/history/{index}": "get",
		"/api/customizations/{marker}":          "patch",
		"/api/customizations/selected":          "put",
	} {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Errorf("spec missing %s %s", strings.ToUpper(method), path)
		}
	}

	getBoard, _ := json.Marshal(doc.Paths["/api/boards/{boardID}"]["get"])
	if !strings.Contains(string(getBoard), `"boardID"`) {
		t.Errorf("GET /api/boards/{boardID} does not declare its path parameter: %s", getBoard)
	}
}

func TestSwaggerUI(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/docs", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/html") {
		t.Fatalf("content-type = %q, want text/html", got)
	}
	if !strings.Contains(rec.Body.String(), "/openapi.json") {
		t.Fatalf("body missing /openapi.json")
	}
}
