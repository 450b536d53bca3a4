package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc := NewService(newMockRepo(), zerolog.New(os.Stderr))
	h := NewHandler(svc)
	e := echo.New()
	return h, e
}

func TestHandler_CreatePatient(t *testing.T) {
	h, e := newTestHandler()

	body := `{"family":"TestNone","given":"Test","dob":"1966-12-31","gender":"F","address":"1 Brookside St","phone":"100-222-3333"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePatient(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var p Patient
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.ID == 0 {
		t.Error("expected assigned id in response")
	}
	if p.Family != "TestNone" {
		t.Errorf("expected TestNone, got %s", p.Family)
	}
}

func TestHandler_CreatePatient_ValidationFailure(t *testing.T) {
	h, e := newTestHandler()

	body := `{"family":"","given":"Test","dob":"1966-12-31","phone":"not-a-phone"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePatient(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
	violations, ok := httpErr.Message.([]FieldViolation)
	if !ok {
		t.Fatalf("expected violation list, got %T", httpErr.Message)
	}
	if len(violations) != 2 {
		t.Errorf("expected 2 violations, got %v", violations)
	}
}

func TestHandler_CreatePatient_Duplicate(t *testing.T) {
	h, e := newTestHandler()

	body := `{"family":"TestNone","given":"Test","dob":"1966-12-31"}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.CreatePatient(c)
		if i == 0 {
			if err != nil {
				t.Fatalf("unexpected error on first create: %v", err)
			}
			continue
		}

		httpErr, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("expected *echo.HTTPError on duplicate, got %T", err)
		}
		if httpErr.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", httpErr.Code)
		}
	}
}

func TestHandler_GetPatient(t *testing.T) {
	h, e := newTestHandler()

	created, _ := h.svc.CreatePatient(nil, testPatient())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(created.ID))

	err := h.GetPatient(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetPatient_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.GetPatient(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Code)
	}
}

func TestHandler_GetPatient_BadID(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetPatient(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestHandler_UpdatePatient(t *testing.T) {
	h, e := newTestHandler()

	created, _ := h.svc.CreatePatient(nil, testPatient())

	body := `{"family":"NewName","given":"Test","dob":"1966-12-31"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(created.ID))

	err := h.UpdatePatient(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var p Patient
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Family != "NewName" {
		t.Errorf("expected NewName, got %s", p.Family)
	}
}

func TestHandler_UpdatePatient_NotFound(t *testing.T) {
	h, e := newTestHandler()

	body := `{"family":"NewName","given":"Test","dob":"1966-12-31"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.UpdatePatient(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Code)
	}
}

func TestHandler_DeletePatient(t *testing.T) {
	h, e := newTestHandler()

	created, _ := h.svc.CreatePatient(nil, testPatient())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(created.ID))

	err := h.DeletePatient(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}

	_, found, _ := h.svc.GetPatientByID(nil, created.ID)
	if found {
		t.Error("expected patient to be deleted")
	}
}

func TestHandler_DeletePatient_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.DeletePatient(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Code)
	}
}

func TestHandler_ListPatients(t *testing.T) {
	h, e := newTestHandler()

	h.svc.CreatePatient(nil, testPatient())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListPatients(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var patients []Patient
	json.Unmarshal(rec.Body.Bytes(), &patients)
	if len(patients) != 1 {
		t.Errorf("expected 1 patient, got %d", len(patients))
	}
}
