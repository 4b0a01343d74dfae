package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"eventpass/internal/models"
	"eventpass/internal/services"
)

// VerifyHandler handles the check-in endpoint used by scanners
type VerifyHandler struct {
	verificationService services.VerificationServiceInterface
}

// NewVerifyHandler creates a new verify handler
func NewVerifyHandler(verificationService services.VerificationServiceInterface) *VerifyHandler {
	return &VerifyHandler{verificationService: verificationService}
}

// VerifyTicket handles POST /api/verify. Rejections (unknown or already
// used tickets) are 200 responses with valid=false; only storage failures
// surface as 500s so a scanner can safely retry.
func (h *VerifyHandler) VerifyTicket(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.TicketID) == "" {
		writeError(w, http.StatusBadRequest, "ticket id is required")
		return
	}

	result, err := h.verificationService.Verify(req.TicketID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
