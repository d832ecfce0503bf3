package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"vado.sa/internal/interaction"
	"vado.sa/internal/render"
	"vado.sa/internal/services"
)

// deliveryTimeout bounds a contact delivery started by a request
const deliveryTimeout = 5 * time.Second

// fieldLabels names the contact fields in error messages
var fieldLabels = map[string]string{
	services.FieldFullName: "Full name",
	services.FieldEmail:    "Email",
	services.FieldPhone:    "Phone",
	services.FieldMessage:  "Message",
}

// PageHandler serves the HTML pages
type PageHandler struct {
	pages    *services.PageService
	contact  *services.ContactService
	renderer *render.Renderer
	logger   *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(pages *services.PageService, contact *services.ContactService, renderer *render.Renderer, logger *zap.Logger) *PageHandler {
	return &PageHandler{pages: pages, contact: contact, renderer: renderer, logger: logger}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.home(w, http.StatusOK, services.ContactState{ResetAfter: h.contact.ResetAfter()})
}

// Project handles GET /projects/{slug}
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	page, ok := h.pages.Project(chi.URLParam(r, "slug"))
	if !ok {
		h.NotFound(w, r)
		return
	}
	var buf bytes.Buffer
	if err := h.renderer.Project(&buf, page); err != nil {
		h.fail(w, "project", err)
		return
	}
	writeHTML(w, http.StatusOK, &buf)
}

// NotFound renders the not-found page with a 404
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.renderer.NotFound(&buf, h.pages.NotFound()); err != nil {
		h.fail(w, "not found", err)
		return
	}
	writeHTML(w, http.StatusNotFound, &buf)
}

// Contact handles POST /contact, the form fallback when scripts are off.
// The form lives for one request; the reset shows as a meta refresh.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.home(w, http.StatusBadRequest, services.ContactState{
			Errors:     []string{"The form could not be read."},
			ResetAfter: h.contact.ResetAfter(),
		})
		return
	}

	form := h.contact.NewForm()
	defer form.Close()
	fill(form, func(name string) string { return r.PostForm.Get(name) })

	ctx, cancel := contextWithDelivery(r)
	defer cancel()
	_, err := h.contact.Submit(ctx, form)

	state := services.ContactState{Form: form.Snapshot(), ResetAfter: h.contact.ResetAfter()}
	status := http.StatusOK
	var missing *services.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		status = http.StatusUnprocessableEntity
		state.Errors = missingMessages(missing.Fields)
	case err != nil:
		status = http.StatusBadGateway
		state.Form.Submitted = false
		state.Errors = []string{"Your message could not be sent. Please try again."}
	}
	h.home(w, status, state)
}

func contextWithDelivery(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), deliveryTimeout)
}

func (h *PageHandler) home(w http.ResponseWriter, status int, state services.ContactState) {
	var buf bytes.Buffer
	if err := h.renderer.Home(&buf, h.pages.Home(state)); err != nil {
		h.fail(w, "home", err)
		return
	}
	writeHTML(w, status, &buf)
}

func (h *PageHandler) fail(w http.ResponseWriter, page string, err error) {
	h.logger.Error("render failed", zap.String("page", page), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// writeHTML sends a fully rendered page, so a template error never
// leaves a half-written response behind
func writeHTML(w http.ResponseWriter, status int, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func fill(form *interaction.Form, get func(string) string) {
	for _, name := range []string{services.FieldFullName, services.FieldEmail, services.FieldPhone, services.FieldMessage} {
		form.Set(name, get(name))
	}
}

func missingMessages(fields []string) []string {
	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = fieldLabels[f] + " is required."
	}
	return msgs
}
