package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/accordohq/accordo/internal/doccheck"
	"github.com/accordohq/accordo/internal/negotiate"
)

// handleNegotiate accepts a contract upload plus the three numeric
// objectives and responds with one SuggestionSet per category, in fixed
// order, together with the synthesized contract text the suggestions were
// generated against.
func (s *Server) handleNegotiate(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	obj, err := parseObjectives(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	filename := sanitizeFilename(header.Filename)
	if !doccheck.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s (upload a PDF or DOCX)", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	// Validity gate only: the uploaded content is discarded and the
	// negotiation runs against the synthesized base contract.
	if err := doccheck.Validate(data, filename); err != nil {
		s.log.Warn("document validation failed", "filename", filename, "error", err)
		jsonError(w, "failed to process the document; ensure it is a valid PDF or DOCX file", http.StatusBadRequest)
		return
	}

	contractText := negotiate.BaseContract(obj, time.Now())
	suggestions := s.orch.Negotiate(r.Context(), contractText, obj)

	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions":  suggestions,
		"contractText": contractText,
	})
}

func parseObjectives(r *http.Request) (negotiate.Objectives, error) {
	paymentDays, errPay := strconv.Atoi(strings.TrimSpace(r.FormValue("paymentDays")))
	deliveryDays, errDel := strconv.Atoi(strings.TrimSpace(r.FormValue("deliveryDays")))
	penaltyRate, errPen := strconv.ParseFloat(strings.TrimSpace(r.FormValue("penaltyRate")), 64)
	if errPay != nil || errDel != nil || errPen != nil {
		return negotiate.Objectives{}, fmt.Errorf("invalid objectives provided")
	}

	obj := negotiate.Objectives{
		PaymentDays:  paymentDays,
		DeliveryDays: deliveryDays,
		PenaltyRate:  penaltyRate,
	}
	if err := obj.Validate(); err != nil {
		return negotiate.Objectives{}, fmt.Errorf("invalid objectives provided: %s", err)
	}
	return obj, nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
