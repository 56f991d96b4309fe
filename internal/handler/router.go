package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig collects the handlers the router mounts.
type RouterConfig struct {
	Base        *Handler
	Contact     *ContactHandler
	Projects    *ProjectHandler
	Experiences *ExperienceHandler

	// ContactLimiter guards POST /api/contact. Nil disables limiting.
	ContactLimiter *RateLimiter

	// UploadDir is served under UploadPrefix when non-empty (local storage).
	UploadDir    string
	UploadPrefix string
}

// NewRouter wires HTTP routes to the handlers.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)
	r.Use(cfg.Base.CORS)

	r.NotFound(cfg.Base.NotFound)
	r.MethodNotAllowed(cfg.Base.MethodNotAllowed)

	r.Get("/", cfg.Base.Root)
	r.Handle("/metrics", promhttp.Handler())

	if cfg.UploadDir != "" && cfg.UploadPrefix != "" {
		prefix := cfg.UploadPrefix
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(noDirFS{http.Dir(cfg.UploadDir)})))
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", cfg.Base.Health)

		api.Route("/contact", func(c chi.Router) {
			submit := http.Handler(http.HandlerFunc(cfg.Contact.Submit))
			if cfg.ContactLimiter != nil {
				submit = cfg.ContactLimiter.Middleware(submit)
			}
			c.Method(http.MethodPost, "/", submit)
			c.Get("/", cfg.Contact.List)
			c.Delete("/{id}", cfg.Contact.Delete)
		})

		api.Route("/projects", func(p chi.Router) {
			p.Get("/", cfg.Projects.List)
			p.Post("/", cfg.Projects.Create)
			p.Post("/upload", cfg.Projects.CreateWithUpload)
			p.Get("/{id}", cfg.Projects.Get)
			p.Put("/{id}", cfg.Projects.Update)
			p.Delete("/{id}", cfg.Projects.Delete)
		})

		api.Route("/experiences", func(e chi.Router) {
			e.Get("/", cfg.Experiences.List)
			e.Post("/", cfg.Experiences.Create)
			e.Get("/{id}", cfg.Experiences.Get)
			e.Put("/{id}", cfg.Experiences.Update)
			e.Delete("/{id}", cfg.Experiences.Delete)
		})
	})

	return r
}

// noDirFS hides directory listings from http.FileServer.
type noDirFS struct {
	fs http.FileSystem
}

func (n noDirFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.IsDir() {
		f.Close()
		return nil, errDirListing
	}
	return f, nil
}
