package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gorilla/mux"
	"gotest.tools/assert"
)

const testSecret = "test-secret"

func testAPIRouter(rt runtimeConfig) *mux.Router {
	handler := newAPIHandler(rt, testSecret)
	r := mux.NewRouter()
	r.Use(handler.BasicAuth)
	r.HandleFunc("/api/status", handler.apiStatus).Methods("GET")
	r.HandleFunc("/api/config", handler.apiConfig).Methods("POST")
	r.HandleFunc("/api/{cmd}", handler.apiError)
	r.HandleFunc("/", handler.rootHandler)
	return r
}

func testRequest(t *testing.T, router *mux.Router, method, path string, body []byte, auth bool) (*httptest.ResponseRecorder, configResponse) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if auth {
		req.SetBasicAuth("nixie6", testSecret)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var cr configResponse
	if w.Code == http.StatusOK {
		assert.NilError(t, json.Unmarshal(w.Body.Bytes(), &cr))
	}
	return w, cr
}

func TestAPIRequiresAuth(t *testing.T) {
	rt, _ := testRuntime(t)
	router := testAPIRouter(rt)

	w, _ := testRequest(t, router, "GET", "/api/status", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest("GET", "/api/status", nil)
	req.SetBasicAuth("nixie6", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIStatus(t *testing.T) {
	rt, _ := testRuntime(t)
	rt.board.publish(statusSnapshot{
		PWMOnTime:   148,
		PWMTopTime:  178,
		HVSmoothed:  364,
		OffCount:    800,
		Impressions: 42,
	})
	router := testAPIRouter(rt)

	w, cr := testRequest(t, router, "GET", "/api/status", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", cr.Response)
	assert.Equal(t, 148, cr.Status.PWMOnTime)
	assert.Equal(t, uint64(42), cr.Status.Impressions)

	// the editable config rides along with the snapshot
	assert.Equal(t, float64(50), cr.Config[sFadeSteps])
	assert.Equal(t, true, cr.Config[sScrollback])
}

func TestAPIConfigAppliesAndClamps(t *testing.T) {
	rt, _ := testRuntime(t)
	router := testAPIRouter(rt)

	body := []byte(`{"fadeSteps": 1000, "scrollback": false, "hvVoltage": 163}`)
	w, cr := testRequest(t, router, "POST", "/api/config", body, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", cr.Response)

	// values pass through the same clamp the config file does
	assert.Equal(t, fadeStepsMax, rt.settings.GetInt(sFadeSteps))
	assert.Equal(t, 160, rt.settings.GetInt(sHVTarget))
	assert.Assert(t, !rt.settings.GetBool(sScrollback))

	// a successful apply persists the state file
	_, err := os.Stat(rt.settings.GetString(sStateFile))
	assert.NilError(t, err)

	// non-persisted keys are not writable through the API
	body = []byte(`{"listen": ":9999"}`)
	testRequest(t, router, "POST", "/api/config", body, true)
	assert.Equal(t, ":8080", rt.settings.GetString(sListen))
}

func TestAPIConfigRejectsGarbage(t *testing.T) {
	rt, _ := testRuntime(t)
	router := testAPIRouter(rt)

	w, cr := testRequest(t, router, "POST", "/api/config", []byte("not json"), true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BAD", cr.Response)
	assert.Assert(t, cr.Error != "")
}

func TestAPIUnknownEndpoint(t *testing.T) {
	rt, _ := testRuntime(t)
	router := testAPIRouter(rt)

	w, cr := testRequest(t, router, "GET", "/api/bogus", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BAD", cr.Response)
}

func TestAPIRoot(t *testing.T) {
	rt, _ := testRuntime(t)
	router := testAPIRouter(rt)

	w, cr := testRequest(t, router, "GET", "/", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", cr.Response)
}
