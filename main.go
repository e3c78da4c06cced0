// main.go
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/rizo8107/razorpay-proxy/internal/auth"
	"github.com/rizo8107/razorpay-proxy/internal/config"
	"github.com/rizo8107/razorpay-proxy/internal/handlers"
	"github.com/rizo8107/razorpay-proxy/internal/razorpay"
	m "github.com/rizo8107/razorpay-proxy/pkg/metrics"
)

const serviceName = "razorpay-proxy"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[config] %v", err)
	}
	log.Printf("[config] loaded (razorpay key %s, api key %s)",
		config.Redact(cfg.RazorpayKeyID), config.Redact(cfg.APIKey))

	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(metricsMiddleware)
	r.Use(auth.Middleware(cfg.APIKey))

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	handlers.Register(r, handlers.Deps{
		Relay:     razorpay.New(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		KeySecret: cfg.RazorpayKeySecret,
	})

	handler := corsHandler(cfg.AllowedOrigins, r)

	addr := ":" + cfg.Port
	log.Printf("%s listening at %s", serviceName, addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func corsHandler(origins []string, next http.Handler) http.Handler {
	if len(origins) == 0 {
		return cors.AllowAll().Handler(next)
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", auth.HeaderName},
	}).Handler(next)
}

/*************** Request-id middleware ***************/

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

/*************** Metrics middleware ***************/

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		statusLabel := "FAILED"
		if rec.status >= 200 && rec.status < 400 {
			statusLabel = "SUCCESS"
		}
		m.IncRequest(serviceName, statusLabel, r.Method)
		m.ObserveDuration(serviceName, statusLabel, time.Since(start).Seconds())
	})
}
