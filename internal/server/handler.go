package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/gompdf/invoicepdf/internal/encoding"
	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/layout"
	"github.com/gompdf/invoicepdf/internal/logger"
	"github.com/gompdf/invoicepdf/pkg/api"
)

// Generator is the part of api.Generator the handlers use
type Generator interface {
	Layout(ctx context.Context, d *invoice.Data) (*layout.Document, error)
	Render(ctx context.Context, d *invoice.Data, w io.Writer) error
	RenderLanguages(ctx context.Context, d *invoice.Data, langs []i18n.Language) (map[i18n.Language][]byte, error)
}

type Handler struct {
	gen Generator
}

func NewHandler(gen Generator) *Handler {
	return &Handler{gen: gen}
}

func (h *Handler) Routes(r chi.Router) {
	r.With(middleware.AllowContentType("application/json")).Post("/pdf", h.pdf)
	r.With(middleware.AllowContentType("application/json")).Post("/layout", h.layout)
	r.With(middleware.AllowContentType("application/json")).Post("/zip", h.zip)
	r.Get("/share", h.share)
}

type errorResponse struct {
	Error    string `json:"error"`
	RenderID string `json:"render_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	} else {
		log.Info("rejected request", zap.Error(err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:    err.Error(),
		RenderID: w.Header().Get(logger.RequestIDHeader),
	})
}

// statusOf maps input errors to 400 and everything else to 500
func statusOf(err error) int {
	switch {
	case errors.Is(err, invoice.ErrInvalid),
		errors.Is(err, invoice.ErrInvalidShareLink),
		errors.Is(err, i18n.ErrUnsupportedLanguage):
		return http.StatusBadRequest
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// decode reads an invoice body in any common charset
func decode(r *http.Request) (*invoice.Data, error) {
	body, err := encoding.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	d, err := invoice.DecodeBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invoice.ErrInvalid, err)
	}
	return d, nil
}

func attachment(w http.ResponseWriter, contentType, name string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}

func (h *Handler) renderPDF(w http.ResponseWriter, r *http.Request, d *invoice.Data) {
	var buf bytes.Buffer
	if err := h.gen.Render(r.Context(), d, &buf); err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	logger.FromContext(r.Context()).Info("rendered invoice",
		zap.String("language", string(d.Language)),
		zap.String("template", string(d.Template)),
		zap.Int("bytes", buf.Len()))

	attachment(w, "application/pdf", api.FileName(d.InvoiceNumber.Value, d.Language))
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	d, err := decode(r)
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	h.renderPDF(w, r, d)
}

func (h *Handler) share(w http.ResponseWriter, r *http.Request) {
	d, err := invoice.DecodeShareLink(r.URL.Query().Get("data"))
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	h.renderPDF(w, r, d)
}

func (h *Handler) layout(w http.ResponseWriter, r *http.Request) {
	d, err := decode(r)
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	doc, err := h.gen.Layout(r.Context(), d)
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode layout", zap.Error(err))
	}
}

func (h *Handler) zip(w http.ResponseWriter, r *http.Request) {
	langs, err := i18n.ParseLanguages(r.URL.Query().Get("languages"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	d, err := decode(r)
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}

	results, err := h.gen.RenderLanguages(r.Context(), d, langs)
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	var buf bytes.Buffer
	if err := api.WriteZip(&buf, d.InvoiceNumber.Value, d.DateOfIssue.Time, results); err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	logger.FromContext(r.Context()).Info("rendered invoice archive", zap.Int("languages", len(langs)))

	attachment(w, "application/zip", "invoices.zip")
	_, _ = w.Write(buf.Bytes())
}
