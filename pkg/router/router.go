package router

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

// RequestIDHeader carries the per-request ID in both directions
const RequestIDHeader = "X-Request-ID"

type HandlerFunc func(http.ResponseWriter, *http.Request)

// Middleware wraps a handler
type Middleware func(http.Handler) http.Handler

type mount struct {
	prefix  string
	handler http.Handler
}

type Router struct {
	mux        *http.ServeMux
	routes     map[string]HandlerFunc // key = METHOD:PATH
	paths      map[string]bool        // track registered paths
	wildcards  []string               // wildcard paths in registration order
	mounts     []mount
	middleware []Middleware
	quiet      bool
}

func New() *Router {
	r := &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]HandlerFunc),
		paths:  make(map[string]bool),
	}

	// Catch-all handler, all dispatching happens here
	r.mux.HandleFunc("/", r.dispatch)

	return r
}

// Quiet disables the access log
func (r *Router) Quiet() { r.quiet = true }

// Use appends middleware; it runs in the order added, before dispatch
func (r *Router) Use(mw ...Middleware) { r.middleware = append(r.middleware, mw...) }

// Mount serves every path under prefix with h
func (r *Router) Mount(prefix string, h http.Handler) {
	r.mounts = append(r.mounts, mount{prefix: prefix, handler: h})
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	reqID := req.Header.Get(RequestIDHeader)
	if reqID == "" {
		reqID = uuid.New().String()
	}
	lrw.Header().Set(RequestIDHeader, reqID)

	var h http.Handler = http.HandlerFunc(r.route)
	for i := len(r.middleware) - 1; i >= 0; i-- {
		h = r.middleware[i](h)
	}
	h.ServeHTTP(lrw, req)

	if r.quiet {
		return
	}

	duration := time.Since(start)
	color := statusColor(lrw.statusCode)
	methodColor := methodColor(req.Method)

	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s %s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor, req.Method, colorReset,
		req.URL.Path,
		color, lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
		reqID,
	)
}

func (r *Router) route(w http.ResponseWriter, req *http.Request) {
	key := req.Method + ":" + req.URL.Path
	if h, ok := r.routes[key]; ok {
		h(w, req)
		return
	}

	// Try wildcard routes, most specific registered first
	for _, routePath := range r.wildcards {
		if matchWildcardRoute(req.URL.Path, routePath) {
			if h, ok := r.routes[req.Method+":"+routePath]; ok {
				h(w, req)
				return
			}
		}
	}

	for _, m := range r.mounts {
		if strings.HasPrefix(req.URL.Path, m.prefix) {
			m.handler.ServeHTTP(w, req)
			return
		}
	}

	if _, pathExists := r.paths[req.URL.Path]; pathExists {
		// Path exists but method not allowed
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	http.Error(w, "Not Found", http.StatusNotFound)
}

// matchWildcardRoute checks if a request path matches a wildcard route pattern
func matchWildcardRoute(requestPath, routePattern string) bool {
	// Split both paths into segments
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	if len(requestSegments) != len(routeSegments) {
		return false
	}

	// Check each segment
	for i, routeSegment := range routeSegments {
		if routeSegment == "*" {
			// Wildcard matches any non-empty segment
			if requestSegments[i] == "" {
				return false
			}
			continue
		}
		if requestSegments[i] != routeSegment {
			// Exact match required for non-wildcard segments
			return false
		}
	}

	return true
}

// --- Register paths ---
func (r *Router) register(method, path string, handler HandlerFunc) {
	key := method + ":" + path
	r.routes[key] = handler
	if !r.paths[path] && strings.Contains(path, "/*") {
		r.wildcards = append(r.wildcards, path)
	}
	r.paths[path] = true
}

func (r *Router) GET(path string, handler HandlerFunc)  { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc) { r.register(http.MethodPost, path, handler) }

// Routes and Paths expose the registered route table
func (r *Router) Routes() map[string]HandlerFunc {
	return r.routes
}

func (r *Router) Paths() map[string]bool {
	return r.paths
}

// Handler exposes the router to an external server or httptest
func (r *Router) Handler() http.Handler {
	return r.mux
}

// ServerOptions tunes the HTTP listener
type ServerOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// --- Start server ---

// Start serves on addr until ctx is cancelled, then shuts down gracefully
func (r *Router) Start(ctx context.Context, addr string, opts ServerOptions) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      r.mux,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Print("[SERVER] Context cancelled, shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	default:
		return colorCyan
	}
}
