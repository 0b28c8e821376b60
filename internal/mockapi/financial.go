package mockapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Server) financialData(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid year")
		return
	}

	respondJSON(w, http.StatusOK, s.store.FinancialData(year))
}
