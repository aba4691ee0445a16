package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"prism/internal/ports"
	"prism/internal/report"
)

// Server exposes the product and report API over chi.
type Server struct {
	products  ports.Products
	reports   ports.Reports
	questions ports.Questions
	renderer  *report.Renderer
	log       *zap.Logger
	now       func() time.Time
}

func New(products ports.Products, reports ports.Reports, questions ports.Questions, renderer *report.Renderer, logger *zap.Logger) *Server {
	return &Server{
		products:  products,
		reports:   reports,
		questions: questions,
		renderer:  renderer,
		log:       logger.Named("http"),
		now:       time.Now,
	}
}

// Routes returns the chi router for the whole API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/healthz", s.handleHealthz)

	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", s.handleCreateProduct)
		r.Get("/", s.handleListProducts)
		r.Get("/{id}", s.handleGetProduct)
		r.Put("/{id}", s.handleUpdateProduct)
		r.Delete("/{id}", s.handleDeleteProduct)
	})

	r.Route("/api/reports", func(r chi.Router) {
		r.Get("/generate/{productID}", s.handleGenerateReport)
		r.Post("/", s.handleSaveReport)
		r.Get("/{productID}", s.handleGetReport)
	})

	r.Post("/api/questions/generate", s.handleGenerateQuestions)

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"message": "Product Transparency API is running"})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
