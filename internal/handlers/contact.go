package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"vado.sa/internal/services"
)

// ContactHandler handles the JSON contact endpoint
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

type contactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

type contactResponse struct {
	ID           string `json:"id"`
	Submitted    bool   `json:"submitted"`
	ResetAfterMs int64  `json:"resetAfterMs"`
}

type missingResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	form := h.contactService.NewForm()
	defer form.Close()
	values := map[string]string{
		services.FieldFullName: req.FullName,
		services.FieldEmail:    req.Email,
		services.FieldPhone:    req.Phone,
		services.FieldMessage:  req.Message,
	}
	fill(form, func(name string) string { return values[name] })

	ctx, cancel := contextWithDelivery(r)
	defer cancel()
	msg, err := h.contactService.Submit(ctx, form)

	var missing *services.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		respondJSON(w, http.StatusUnprocessableEntity, missingResponse{
			Error:  services.ErrMissingField.Error(),
			Fields: missing.Fields,
		})
	case err != nil:
		respondError(w, http.StatusBadGateway, "Message could not be delivered")
	default:
		respondJSON(w, http.StatusOK, contactResponse{
			ID:           msg.ID,
			Submitted:    true,
			ResetAfterMs: h.contactService.ResetAfter().Milliseconds(),
		})
	}
}
