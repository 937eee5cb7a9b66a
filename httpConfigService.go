package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type httpConfigService struct {
	srv     *http.Server
	handler *apiHandler
}

func (h *httpConfigService) launch(handler *apiHandler, addr string) {
	h.handler = handler

	r := mux.NewRouter()
	// auth middleware
	r.Use(handler.BasicAuth)
	// api server
	r.HandleFunc("/api/status", handler.apiStatus).Methods("GET")
	r.HandleFunc("/api/config", handler.apiConfig).Methods("POST")
	r.HandleFunc("/api/{cmd}", handler.apiError)
	// root handler
	r.HandleFunc("/", handler.rootHandler)

	h.srv = &http.Server{Addr: addr, Handler: r}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("starting config service http server")
		err := h.srv.ListenAndServe()
		log.Print(err)
		log.Print("Exiting config service")
	}()
}

func (h *httpConfigService) stop() {
	if h.srv != nil {
		h.srv.Shutdown(context.Background())
	}
}

func runConfigService(rt runtimeConfig) {
	if rt.settings.GetBool(sSkipHTTP) {
		return
	}
	// the secret rotates every boot; read it from the log to pair
	secret := rt.clock.Now().String()
	log.Printf("config service secret: %s", secret)

	svc := &httpConfigService{}
	svc.launch(newAPIHandler(rt, secret), rt.settings.GetString(sListen))

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-rt.comms.quit
		svc.stop()
	}()
}
