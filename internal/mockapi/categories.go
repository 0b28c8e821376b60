package mockapi

import (
	"encoding/json"
	"net/http"

	"moneta/internal/api"
)

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categoryType := api.CategoryType(r.URL.Query().Get("category_type"))

	switch categoryType {
	case "", api.CategoryExpense, api.CategoryIncome:
	default:
		respondValidation(w, []problem{{Loc: []any{"query", "category_type"}, Msg: "must be expense or income", Type: "value_error"}})
		return
	}

	respondJSON(w, http.StatusOK, s.store.ListCategories(categoryType))
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var data api.CategoryCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var problems []problem

	if data.Name == "" {
		problems = append(problems, fieldProblem("name", "field required"))
	}

	if data.Type != api.CategoryExpense && data.Type != api.CategoryIncome {
		problems = append(problems, fieldProblem("type", "must be expense or income"))
	}

	if len(problems) > 0 {
		respondValidation(w, problems)
		return
	}

	respondJSON(w, http.StatusCreated, s.store.CreateCategory(data))
}
