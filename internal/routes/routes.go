// Package routes assembles the HTTP API.
package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/site-content-api/internal/handlers"
	"github.com/sbilibin2017/site-content-api/internal/middlewares"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/sbilibin2017/site-content-api/internal/respond"
	"github.com/sbilibin2017/site-content-api/internal/services"
)

// AuthService is the session surface used by the auth endpoints.
type AuthService interface {
	handlers.Loginer
	handlers.ProfileReader
	handlers.Logouter
}

// ContentStore reads and upserts site content.
type ContentStore interface {
	handlers.ContentReader
	handlers.ContentWriter
}

// Options configures the router.
type Options struct {
	// AllowedOrigins for CORS; "*" allows any origin.
	AllowedOrigins []string
	// MaxBodyBytes caps every request body.
	MaxBodyBytes int64
	// ImagesDir is served read-only under /uploads/images/.
	ImagesDir string
}

// Dependencies are the services behind the handlers.
type Dependencies struct {
	DB          *sqlx.DB
	Tokener     middlewares.Tokener
	Revocations middlewares.RevocationChecker // optional

	Auth         AuthService
	Content      ContentStore
	Services     handlers.ServiceStore
	Projects     handlers.ProjectStore
	Testimonials handlers.TestimonialStore
	News         handlers.NewsStore
	Contact      handlers.ContactSubmitter
	Inbox        handlers.ContactInbox
	Uploader     handlers.Uploader
	Stats        handlers.StatsReader
}

// NewRouter returns the full API handler.
// Write endpoints authenticate before the request transaction is opened,
// so a rejected token never reaches the store.
func NewRouter(opts Options, d Dependencies) http.Handler {
	r := chi.NewRouter()

	r.NotFound(respond.NotFound)
	r.MethodNotAllowed(respond.MethodNotAllowed)

	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.RecoverMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:         300,
	}))
	if opts.MaxBodyBytes > 0 {
		r.Use(middlewares.BodyLimitMiddleware(opts.MaxBodyBytes))
	}

	authenticated := middlewares.AuthMiddleware(d.Tokener, d.Revocations)
	protected := chi.Middlewares{authenticated, middlewares.TxMiddleware(d.DB)}

	r.Get("/health", handlers.NewHealthHandler(d.DB))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Get(services.ImagesURLPrefix+"*", imagesHandler(opts.ImagesDir))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handlers.NewLoginHandler(d.Auth))
			r.With(authenticated).Get("/me", handlers.NewMeHandler(d.Auth))
			r.With(authenticated).Post("/logout", handlers.NewLogoutHandler(d.Auth))
		})

		r.Get("/content", handlers.NewGetContentHandler(d.Content))
		r.Get("/content/{section}", handlers.NewGetContentSectionHandler(d.Content))
		r.With(protected...).Put("/content/{section}/{key}", handlers.NewUpdateContentHandler(d.Content))

		mountCollection(r, "/services", handlers.NewCollection[models.Service, models.ServiceInput](d.Services, "Service"), protected)
		mountCollection(r, "/projects", handlers.NewCollection[models.Project, models.ProjectInput](d.Projects, "Project"), protected)
		mountCollection(r, "/testimonials", handlers.NewCollection[models.Testimonial, models.TestimonialInput](d.Testimonials, "Testimonial"), protected)
		mountCollection(r, "/news", handlers.NewCollection[models.News, models.NewsInput](d.News, "News"), protected)

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", handlers.NewSubmitContactHandler(d.Contact))
			r.With(protected...).Get("/", handlers.NewListContactHandler(d.Inbox))
			r.With(protected...).Put("/{id:[0-9]+}/read", handlers.NewMarkContactReadHandler(d.Inbox))
			r.With(protected...).Delete("/{id:[0-9]+}", handlers.NewDeleteContactHandler(d.Inbox))
		})

		r.With(authenticated).Post("/upload", handlers.NewUploadHandler(d.Uploader))
		r.With(protected...).Get("/stats", handlers.NewStatsHandler(d.Stats))
	})

	return r
}

func mountCollection[T any, I handlers.Input[T]](r chi.Router, path string, c *handlers.Collection[T, I], protected chi.Middlewares) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", c.List())
		r.Get("/{id:[0-9]+}", c.Get())
		r.With(protected...).Post("/", c.Create())
		r.With(protected...).Put("/{id:[0-9]+}", c.Update())
		r.With(protected...).Delete("/{id:[0-9]+}", c.Delete())
	})
}

// imagesHandler serves stored images without directory listings.
func imagesHandler(dir string) http.HandlerFunc {
	fs := http.StripPrefix(services.ImagesURLPrefix, http.FileServer(http.Dir(dir)))
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			respond.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	}
}
