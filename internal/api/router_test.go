package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/cras-office/agenda/internal/api/handler"
	"github.com/cras-office/agenda/internal/core/service"
	"github.com/cras-office/agenda/internal/infrastructure/store/memory"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	log := zerolog.Nop()
	records := service.NewRecords(memory.New())
	if err := service.NewSeeder(records, log).Initialize(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return NewRouter(Services{
		Auth:         service.NewAuthService(records, "secret", 0, log),
		Users:        service.NewUserService(records, log),
		Appointments: service.NewAppointmentService(records, log),
		Reports:      service.NewReportService(records, nil),
		Extraction:   service.NewExtractionService(nil, log),
	}, Options{
		JWTSecret:  "secret",
		Settings:   handler.Settings{StoreBackend: "memory"},
		Log:        log,
		Registerer: prometheus.NewRegistry(),
	})
}

func do(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/auth/login", "", `{"email":"`+email+`","password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", email, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login %s: missing token: %v", email, err)
	}
	return resp.Token
}

func TestRouter_LoginFailure(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/auth/login", "", `{"email":"admin@cras.com","password":"nope"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email ou senha inválidos.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_RegistrarIsGated(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "maria@cras.com", "123")

	allowed := []string{"/v1/dashboard", "/v1/appointments", "/v1/navigation", "/auth/session"}
	for _, path := range allowed {
		if rec := do(e, http.MethodGet, path, token, ""); rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}

	forbidden := []string{"/v1/users", "/v1/settings", "/v1/reports", "/v1/reports/export"}
	for _, path := range forbidden {
		rec := do(e, http.MethodGet, path, token, "")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("GET %s: expected 403, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Acesso não autorizado.") {
			t.Fatalf("GET %s: unexpected body %s", path, rec.Body.String())
		}
	}
}

func TestRouter_NavigationFollowsRole(t *testing.T) {
	e := newTestRouter(t)

	cases := map[string]int{"admin@cras.com/admin": 6, "maria@cras.com/123": 3}
	for creds, want := range cases {
		parts := strings.SplitN(creds, "/", 2)
		token := login(t, e, parts[0], parts[1])

		rec := do(e, http.MethodGet, "/v1/navigation", token, "")
		var resp struct {
			Pages []struct {
				Page string `json:"page"`
			} `json:"pages"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(resp.Pages) != want {
			t.Fatalf("%s: expected %d pages, got %d", parts[0], want, len(resp.Pages))
		}
	}
}

func TestRouter_SingleSession(t *testing.T) {
	e := newTestRouter(t)
	adminToken := login(t, e, "admin@cras.com", "admin")
	mariaToken := login(t, e, "maria@cras.com", "123")

	if rec := do(e, http.MethodGet, "/v1/dashboard", adminToken, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("replaced session: expected 401, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/v1/dashboard", mariaToken, ""); rec.Code != http.StatusOK {
		t.Fatalf("current session: expected 200, got %d", rec.Code)
	}

	if rec := do(e, http.MethodPost, "/auth/logout", mariaToken, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/v1/dashboard", mariaToken, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("after logout: expected 401, got %d", rec.Code)
	}
}

func TestRouter_AppointmentLifecycle(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "maria@cras.com", "123")

	body := `{"applicantName":"Pedro Alves","cpf":"444.444.444-44","birthDate":"1975-03-02","phone":"11900000000",
		"address":"Rua Nova, 10","neighborhood":"Vila Rica","cep":"02000-000","reason":"DENÚNCIA","equipmentName":"CRAS Norte",
		"schedulerName":"Admin","status":"Cancelado"}`
	rec := do(e, http.MethodPost, "/v1/appointments", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if created["status"] != "Agendado" {
		t.Fatalf("expected status Agendado, got %v", created["status"])
	}
	if created["schedulerName"] != "Maria Souza" {
		t.Fatalf("expected scheduler from session, got %v", created["schedulerName"])
	}
	id, _ := created["id"].(string)

	rec = do(e, http.MethodGet, "/v1/appointments/"+id, token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("expected ETag header")
	}

	update := strings.Replace(body, `"status":"Cancelado"`, `"status":"Concluído","visitorName":"Carlos Andrade","visitDate":"2024-06-01"`, 1)
	req := httptest.NewRequest(http.MethodPut, "/v1/appointments/"+id, strings.NewReader(update))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("If-Match", etag)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// The same precondition is now stale.
	req = httptest.NewRequest(http.MethodPut, "/v1/appointments/"+id, strings.NewReader(update))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("If-Match", etag)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusPreconditionFailed {
		t.Fatalf("stale update: expected 412, got %d", rec.Code)
	}

	rec = do(e, http.MethodGet, "/v1/appointments?q=pedro", token, "")
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(list) != 1 || list[0]["status"] != "Concluído" || list[0]["schedulerName"] != "Maria Souza" {
		t.Fatalf("unexpected search result: %v", list)
	}
}

func TestRouter_AdminManagesUsers(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "admin@cras.com", "admin")

	rec := do(e, http.MethodPost, "/v1/users", token, `{"name":"X","email":"x@cras.com","role":"Cadastrador","password":"p"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("secret leaked: %s", rec.Body.String())
	}

	rec = do(e, http.MethodPost, "/v1/users", token, `{"name":"Y","email":"y@cras.com","role":"Gerente","password":"p"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad role: expected 400, got %d", rec.Code)
	}

	if rec := do(e, http.MethodDelete, "/v1/users/2", token, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}

	rec = do(e, http.MethodGet, "/v1/users", token, "")
	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("secret leaked: %s", rec.Body.String())
	}
}

func TestRouter_ExtractionUnavailable(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "maria@cras.com", "123")

	rec := do(e, http.MethodPost, "/v1/extractions", token, "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRouter_ReportExport(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "admin@cras.com", "admin")

	rec := do(e, http.MethodGet, "/v1/reports/export?scheduler=maria", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(got, "relatorio_agendamentos.csv") {
		t.Fatalf("unexpected Content-Disposition %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "ID,Solicitante,CPF,") {
		t.Fatalf("unexpected CSV: %s", rec.Body.String())
	}

	if rec := do(e, http.MethodGet, "/v1/reports?startDate=yesterday", token, ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad date: expected 400, got %d", rec.Code)
	}
}
