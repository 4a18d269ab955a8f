package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/accordohq/accordo/internal/artifact"
)

// handleDownload resolves an artifact reference and streams the stored PDF.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("file")
	if name == "" {
		jsonError(w, "no file specified", http.StatusBadRequest)
		return
	}
	name = sanitizeFilename(name)

	f, err := s.store.Open(name)
	if errors.Is(err, artifact.ErrNotFound) {
		jsonError(w, "file not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("artifact open failed", "file", name, "error", err)
		jsonError(w, "failed to download file", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	if _, err := io.Copy(w, f); err != nil {
		s.log.Warn("artifact stream interrupted", "file", name, "error", err)
	}
}
