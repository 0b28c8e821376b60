package mockapi

import (
	"encoding/json"
	"net/http"

	"moneta/internal/api"
)

var accountTypes = map[api.AccountType]bool{
	api.AccountChecking:   true,
	api.AccountSavings:    true,
	api.AccountCash:       true,
	api.AccountCredit:     true,
	api.AccountInvestment: true,
	api.AccountOther:      true,
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.ListAccounts())
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	account, found := s.store.GetAccount(id)
	if !found {
		respondMessage(w, http.StatusNotFound, "account not found")
		return
	}

	respondJSON(w, http.StatusOK, account)
}

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var data api.AccountCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var problems []problem

	if data.Name == "" {
		problems = append(problems, fieldProblem("name", "field required"))
	}

	if !accountTypes[data.Type] {
		problems = append(problems, fieldProblem("account_type", "unknown account type"))
	}

	if len(problems) > 0 {
		respondValidation(w, problems)
		return
	}

	respondJSON(w, http.StatusCreated, s.store.CreateAccount(data))
}

func (s *Server) updateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var data api.AccountUpdate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if data.Type != nil && !accountTypes[*data.Type] {
		respondValidation(w, []problem{fieldProblem("account_type", "unknown account type")})
		return
	}

	account, found := s.store.UpdateAccount(id, data)
	if !found {
		respondMessage(w, http.StatusNotFound, "account not found")
		return
	}

	respondJSON(w, http.StatusOK, account)
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if !s.store.DeleteAccount(id) {
		respondMessage(w, http.StatusNotFound, "account not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
