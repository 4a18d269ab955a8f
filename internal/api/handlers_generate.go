package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/accordohq/accordo/internal/contract"
)

type generateRequest struct {
	ContractText    string              `json:"contractText"`
	SelectedClauses contract.Selections `json:"selectedClauses"`
}

// handleGenerate rebuilds the contract with the selected clauses and
// returns the reference to the rendered artifact. The request is rejected
// before any document work if the contract text or any selection is
// missing.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 2<<20)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.ContractText) == "" {
		jsonError(w, "contract text is required", http.StatusBadRequest)
		return
	}
	if missing := req.SelectedClauses.Missing(); len(missing) > 0 {
		jsonError(w, "missing selected clauses: "+strings.Join(missing, ", "), http.StatusBadRequest)
		return
	}

	doc := contract.BuildDocument(req.ContractText, req.SelectedClauses)

	pdfURL, err := s.assembler.Assemble(r.Context(), doc)
	if err != nil {
		s.log.Error("contract generation failed", "error", err)
		jsonError(w, "failed to generate contract", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"pdfUrl": pdfURL})
}
