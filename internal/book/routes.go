package book

import "net/http"

// Routes registers every book endpoint on mux. Literal segments
// (search, stats, status) take precedence over the {id} wildcard
// under Go 1.22 ServeMux matching, so registration order does not
// matter here.
func (h *HTTPHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/search", h.Search)
	mux.HandleFunc("GET /books/stats", h.GetStats)
	mux.HandleFunc("GET /books/status/{status}", h.ListByStatus)
	mux.HandleFunc("GET /books/{id}", h.GetByID)
	mux.HandleFunc("PUT /books/{id}", h.Update)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
	mux.HandleFunc("POST /books/{id}/borrow", h.Borrow)
	mux.HandleFunc("POST /books/{id}/return", h.Return)
}
