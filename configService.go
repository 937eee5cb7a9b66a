package main

import (
	"crypto/subtle"
	"encoding/json"
	"io/ioutil"
	"net/http"
)

type configResponse struct {
	Response string                 `json:"response"`
	Error    string                 `json:"error,omitempty"`
	Status   *statusSnapshot        `json:"status,omitempty"`
	Config   map[string]interface{} `json:"config,omitempty"`
}

// apiHandler serves the same configuration values the menu edits, plus a
// status snapshot from the clock loop.
type apiHandler struct {
	rt     runtimeConfig
	secret string
	user   string
	realm  string
}

func newAPIHandler(rt runtimeConfig, secret string) *apiHandler {
	return &apiHandler{
		rt:     rt,
		secret: secret,
		user:   "nixie6",
		realm:  "nixie6",
	}
}

// BasicAuth - middleware to authenticate config clients
func (m *apiHandler) BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(user), []byte(m.user)) != 1 ||
			subtle.ConstantTimeCompare([]byte(pass), []byte(m.secret)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+m.realm+`"`)
			w.WriteHeader(401)
			w.Write([]byte("Unauthorised.\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeAnswer(w http.ResponseWriter, cr configResponse) {
	output, _ := json.Marshal(cr)
	w.Header().Set("Content-Type", "application/json")
	w.Write(output)
}

func (m *apiHandler) configMap() map[string]interface{} {
	out := make(map[string]interface{}, len(persistedKeys))
	for _, k := range persistedKeys {
		switch k {
		case sScrollback, s24Hour, sBlankZero, sNeedsCal:
			out[k] = m.rt.settings.GetBool(k)
		default:
			out[k] = m.rt.settings.GetInt(k)
		}
	}
	return out
}

func (m *apiHandler) apiStatus(w http.ResponseWriter, r *http.Request) {
	snap := m.rt.board.snapshot()
	writeAnswer(w, configResponse{
		Response: "OK",
		Status:   &snap,
		Config:   m.configMap(),
	})
}

// apiConfig accepts a flat JSON object of settings. Values pass through
// the same clamp the config file does; nothing out of range is an error.
func (m *apiHandler) apiConfig(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, 1<<16))
	if err != nil {
		writeAnswer(w, configResponse{Response: "BAD", Error: err.Error()})
		return
	}

	var in map[string]interface{}
	if err := json.Unmarshal(body, &in); err != nil {
		writeAnswer(w, configResponse{Response: "BAD", Error: err.Error()})
		return
	}

	for _, k := range persistedKeys {
		v, ok := in[k]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case bool:
			m.rt.settings.SetBool(k, val)
		case float64: // json numbers
			m.rt.settings.SetInt(k, int(val))
		}
	}
	if err := m.rt.settings.saveState(); err != nil {
		writeAnswer(w, configResponse{Response: "BAD", Error: err.Error()})
		return
	}
	writeAnswer(w, configResponse{Response: "OK", Config: m.configMap()})
}

func (m *apiHandler) apiError(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, configResponse{Response: "BAD", Error: "no such endpoint"})
}

func (m *apiHandler) rootHandler(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, configResponse{Response: "OK"})
}
