package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"prism/internal/domain"
	"prism/internal/ports"
)

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.NewProduct
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	created, err := s.products.Create(r.Context(), p)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error creating product", err)
		return
	}
	respondData(w, http.StatusCreated, created)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching products", err)
		return
	}
	respondData(w, http.StatusOK, products)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.products.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ports.ErrNotFound) {
		respondNotFound(w, "Product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching product", err)
		return
	}
	respondData(w, http.StatusOK, product)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.NewProduct
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	updated, err := s.products.Update(r.Context(), chi.URLParam(r, "id"), p)
	if errors.Is(err, ports.ErrNotFound) {
		respondNotFound(w, "Product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error updating product", err)
		return
	}
	respondData(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	err := s.products.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ports.ErrNotFound) {
		respondNotFound(w, "Product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting product", err)
		return
	}
	respondMessage(w, http.StatusOK, "Product deleted successfully")
}
