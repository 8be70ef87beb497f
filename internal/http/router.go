package http

import (
	"net/http"
	"strings"
	"time"

	"gradrecruit/internal/domain/user"
	"gradrecruit/internal/http/handlers"
	"gradrecruit/internal/http/metrics"
	httpmw "gradrecruit/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler         *handlers.AuthHandler
	StudentHandler      *handlers.StudentHandler
	VacancyHandler      *handlers.VacancyHandler
	ApplicationHandler  *handlers.ApplicationHandler
	NotificationHandler *handlers.NotificationHandler
	EmploymentHandler   *handlers.EmploymentHandler
	StatsHandler        *handlers.StatsHandler
	MetricsHandler      *metrics.Handler
	AuthMiddleware      *httpmw.AuthMiddleware
	Metrics             *metrics.Collector
	RequestTimeout      time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/vacancies":
			r.deps.VacancyHandler.ListActive(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/vacancies/"):
			r.deps.VacancyHandler.Get(w, req)
			return
		}

		if strings.HasPrefix(path, "/students") || strings.HasPrefix(path, "/vacancies") ||
			strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/notifications") ||
			strings.HasPrefix(path, "/employment-reports") || path == "/stats" {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/students/profile":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.StudentHandler.GetProfile)).ServeHTTP(w, req)
		return
	case (req.Method == http.MethodPost || req.Method == http.MethodPut) && path == "/students/profile":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.StudentHandler.UpsertProfile)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/students":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.StudentHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/students/"):
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.StudentHandler.Get)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/students/"):
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.StudentHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/vacancies":
		httpmw.RequireRole(user.RoleEmployer, user.RoleAdmin)(http.HandlerFunc(r.deps.VacancyHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/vacancies/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireRole(user.RoleEmployer, user.RoleAdmin)(http.HandlerFunc(r.deps.VacancyHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/vacancies/"):
		httpmw.RequireRole(user.RoleEmployer, user.RoleAdmin)(http.HandlerFunc(r.deps.VacancyHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/applications":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications":
		r.deps.ApplicationHandler.List(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications/recent":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.ListRecent)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/notifications":
		r.deps.NotificationHandler.List(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/notifications/") && strings.HasSuffix(path, "/read"):
		r.deps.NotificationHandler.MarkRead(w, req)
		return
	case req.Method == http.MethodPost && path == "/employment-reports":
		httpmw.RequireRole(user.RoleAdmin, user.RoleEmployer)(http.HandlerFunc(r.deps.EmploymentHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/employment-reports":
		httpmw.RequireRole(user.RoleAdmin, user.RoleEmployer)(http.HandlerFunc(r.deps.EmploymentHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/stats":
		r.deps.StatsHandler.Get(w, req)
		return
	}

	http.NotFound(w, req)
}
