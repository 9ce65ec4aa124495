package data

import (
	"context"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"net/http"
	"strings"
	"time"
)

const headerRequestID = "X-Request-ID"

var (
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsAllowedHeaders = []string{"Content-Type", "Authorization", "X-Requested-With"}
)

// MiddlewareRequestID assigns every request an ID, either taken from the X-Request-ID header or freshly generated.
// The ID is echoed in the response, stored for middleware.GetReqID and attached to the request logger.
func MiddlewareRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		id := strings.TrimSpace(request.Header.Get(headerRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		writer.Header().Set(headerRequestID, id)

		zerolog.Ctx(request.Context()).UpdateContext(func(ctx zerolog.Context) zerolog.Context {
			return ctx.Str("request_id", id)
		})
		ctx := context.WithValue(request.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// MiddlewareMetrics records the method, route, status and duration of every request
func (service *Service) MiddlewareMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		wrapped := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)
		next.ServeHTTP(wrapped, request)

		route := "unmatched"
		if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}
		service.Metrics.ObserveRequest(methodLabel(request.Method), route, status, time.Since(start))
	})
}

// methodLabel maps client-chosen methods outside the standard set onto a single label value
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodConnect, http.MethodOptions, http.MethodTrace:
		return method
	}
	return "other"
}

// MiddlewareCORS returns the CORS middleware matching the configured allowed origins.
// If any origin is allowed, every response carries static permissive CORS headers; otherwise the origins are
// negotiated using go-chi/cors.
func (service *Service) MiddlewareCORS() func(http.Handler) http.Handler {
	if service.Config.AllowsAnyOrigin() {
		return middlewareStaticCORS
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:     service.Config.AllowedOrigins,
		AllowedMethods:     corsAllowedMethods,
		AllowedHeaders:     corsAllowedHeaders,
		OptionsPassthrough: true,
	})
}

func middlewareStaticCORS(next http.Handler) http.Handler {
	methods := strings.Join(corsAllowedMethods, ", ")
	headers := strings.Join(corsAllowedHeaders, ", ")
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Access-Control-Allow-Origin", "*")
		writer.Header().Set("Access-Control-Allow-Methods", methods)
		writer.Header().Set("Access-Control-Allow-Headers", headers)
		next.ServeHTTP(writer, request)
	})
}

// MiddlewarePreflight answers every OPTIONS request with an empty 200 OK before any further processing
func MiddlewarePreflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method == http.MethodOptions {
			writer.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(writer, request)
	})
}
