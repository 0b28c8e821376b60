package mockapi

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"moneta/internal/api"
	"moneta/internal/statement"
)

const maxStatementSize = 10 << 20

func (s *Server) uploadStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxStatementSize); err != nil {
		respondMessage(w, http.StatusBadRequest, "failed to parse form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondValidation(w, []problem{{Loc: []any{"file"}, Msg: "file field is required", Type: "value_error.missing"}})
		return
	}
	defer file.Close()

	preview, err := statement.Parse(file)
	if err != nil {
		respondValidation(w, []problem{{Loc: []any{"file"}, Msg: err.Error(), Type: "value_error"}})
		return
	}

	added, skipped := s.store.ImportStatement(preview.Records)

	descriptions := make([]string, 0, len(added))
	for _, tx := range added {
		descriptions = append(descriptions, tx.Description)
	}

	// The receipt id lets a processed upload be referenced in logs even
	// though the stub keeps nothing on disk.
	respondJSON(w, http.StatusOK, api.UploadResult{
		Success:               true,
		Message:               fmt.Sprintf("statement processed (receipt %s)", uuid.New()),
		TransactionsProcessed: preview.Rows(),
		TransactionsAdded:     len(added),
		TransactionsSkipped:   len(skipped) + len(preview.Errors),
		Transactions:          descriptions,
	})
}
