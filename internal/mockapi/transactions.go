package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"moneta/internal/api"
)

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	q := transactionQuery{Category: r.URL.Query().Get("category")}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		date, err := api.ParseDate(raw)
		if err != nil {
			respondValidation(w, []problem{{Loc: []any{"query", "start_date"}, Msg: "invalid date", Type: "value_error.date"}})
			return
		}

		q.StartDate = &date
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		date, err := api.ParseDate(raw)
		if err != nil {
			respondValidation(w, []problem{{Loc: []any{"query", "end_date"}, Msg: "invalid date", Type: "value_error.date"}})
			return
		}

		q.EndDate = &date
	}

	respondJSON(w, http.StatusOK, s.store.ListTransactions(q))
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var data api.TransactionCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var problems []problem

	if data.Category == "" {
		problems = append(problems, fieldProblem("category", "field required"))
	}

	if data.Description == "" {
		problems = append(problems, fieldProblem("description", "field required"))
	}

	if len(problems) > 0 {
		respondValidation(w, problems)
		return
	}

	respondJSON(w, http.StatusCreated, s.store.CreateTransaction(data))
}

func (s *Server) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var data api.TransactionUpdate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	tx, found := s.store.UpdateTransaction(id, data)
	if !found {
		respondMessage(w, http.StatusNotFound, "transaction not found")
		return
	}

	respondJSON(w, http.StatusOK, tx)
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if !s.store.DeleteTransaction(id) {
		respondMessage(w, http.StatusNotFound, "transaction not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} route parameter, answering 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}

	return id, true
}
