package webui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/empmgmt/employee-backend/internal/client"
	"github.com/empmgmt/employee-backend/internal/config"
	"github.com/empmgmt/employee-backend/internal/dto"
	"github.com/empmgmt/employee-backend/internal/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// webRouter stands up the web tier against a stub API server.
func webRouter(t *testing.T, api http.HandlerFunc) *gin.Engine {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	tokens := service.NewTokenService(&config.Config{
		JWTSecret:   "webui-test-secret",
		JWTIssuer:   "employee-mgmt-web",
		JWTAudience: "employee-mgmt-api",
		JWTExpiry:   time.Hour,
	})

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	h := NewHandlers(
		client.NewEmployeeClient(srv.URL, tokens, zerolog.Nop()),
		client.NewDepartmentClient(srv.URL, tokens, zerolog.Nop()),
		zerolog.Nop(),
	)
	h.Register(r)
	return r
}

func apiError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  nil,
		"error": map[string]string{"code": code, "message": code},
	})
}

func TestListEmployeesRenders(t *testing.T) {
	r := webRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"employees": []dto.EmployeeDTO{{
					ID: 1, Code: "E001", Name: "Alice Johnson",
					Email: "alice@example.com", HireDate: time.Now(), DepartmentID: 1,
				}},
			},
		})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Alice Johnson")
}

func TestEditMissingEmployeeRendersNotFound(t *testing.T) {
	r := webRouter(t, func(w http.ResponseWriter, req *http.Request) {
		apiError(w, http.StatusNotFound, "NOT_FOUND")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/999/edit", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "not found")
}

func TestDeleteRestrictedDepartmentRendersConflict(t *testing.T) {
	r := webRouter(t, func(w http.ResponseWriter, req *http.Request) {
		apiError(w, http.StatusConflict, "DEPENDENCY_EXISTS")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/departments/1/delete", nil))

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "conflicts")
}

func TestAPIDownRendersServerError(t *testing.T) {
	r := webRouter(t, func(w http.ResponseWriter, req *http.Request) {
		apiError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "try again")
}
