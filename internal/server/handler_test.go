package server

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/logger"
	"github.com/gompdf/invoicepdf/pkg/api"
)

func sample() *invoice.Data {
	d := invoice.Defaults()
	d.Language = i18n.English
	d.Currency = invoice.USD
	d.InvoiceNumber = invoice.InvoiceNumber{Value: "7/2025"}
	d.DateOfIssue = invoice.NewDate(2025, time.January, 15)
	d.DateOfService = invoice.NewDate(2025, time.January, 15)
	d.PaymentDue = invoice.NewDate(2025, time.January, 31)
	d.Seller.Name = "Acme"
	d.Seller.Address = "1 Side St"
	d.Buyer.Name = "Globex"
	d.Buyer.Address = "2 Main St"

	it := invoice.DefaultItem()
	it.Name = "Consulting"
	it.NetPrice, it.NetAmount, it.PreTaxAmount = 100, 100, 100
	d.Items = []invoice.Item{it}
	d.Total = 100
	return d
}

func body(t *testing.T, d *invoice.Data) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(d)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func newServer() http.Handler {
	return New(NewHandler(api.New()), zap.NewNop(), RouterConfig{
		CORSOrigins:  []string{"https://app.example"},
		MaxBodyBytes: 1 << 20,
	})
}

func do(t *testing.T, h http.Handler, method, target string, r *bytes.Reader) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if r == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, r)
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestHealthz(t *testing.T) {
	w := do(t, newServer(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(logger.RequestIDHeader))
}

func TestRenderPDF(t *testing.T) {
	w := do(t, newServer(), http.MethodPost, "/api/v1/invoices/pdf", body(t, sample()))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoice-7-2025-en.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
}

func TestRenderPDFFromLegacyCharset(t *testing.T) {
	d := sample()
	d.Seller.Name = "Société Générale"
	d.Seller.Address = "Place de la Défense, prestations réalisées en été"
	b, err := json.Marshal(d)
	require.NoError(t, err)
	latin1, err := charmap.Windows1252.NewEncoder().Bytes(b)
	require.NoError(t, err)

	w := do(t, newServer(), http.MethodPost, "/api/v1/invoices/pdf", bytes.NewReader(latin1))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRenderPDFRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"language":`, "invalid invoice data"},
		{"unknown field", `{"colour":"red"}`, "invalid invoice data"},
		{"missing seller", `{"language":"en","currency":"USD"}`, "Seller.Name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newServer(), http.MethodPost, "/api/v1/invoices/pdf", bytes.NewReader([]byte(tt.body)))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Contains(t, resp.Error, tt.want)
			assert.Equal(t, w.Header().Get(logger.RequestIDHeader), resp.RenderID)
		})
	}
}

func TestLogoPathsAreRejected(t *testing.T) {
	const secret = "db-password=hunter2"
	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte(secret), 0o600))

	d := sample()
	d.Template = invoice.TemplateStripe
	d.Logo = path

	for _, target := range []string{"/api/v1/invoices/layout", "/api/v1/invoices/pdf"} {
		t.Run(target, func(t *testing.T) {
			w := do(t, newServer(), http.MethodPost, target, body(t, d))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotContains(t, w.Body.String(), secret)
			assert.NotContains(t, w.Body.String(), base64.StdEncoding.EncodeToString([]byte(secret)))
			assert.Contains(t, decodeError(t, w).Error, "logo must be a data URL")
		})
	}
}

func TestRenderPDFRequiresJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/pdf", strings.NewReader("x"))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	newServer().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestRequestBodyLimit(t *testing.T) {
	h := New(NewHandler(api.New()), zap.NewNop(), RouterConfig{MaxBodyBytes: 64})
	w := do(t, h, http.MethodPost, "/api/v1/invoices/pdf", body(t, sample()))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestLayout(t *testing.T) {
	w := do(t, newServer(), http.MethodPost, "/api/v1/invoices/layout", body(t, sample()))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var doc struct {
		Meta struct {
			Title string `json:"title"`
		} `json:"meta"`
		Children []struct {
			Kind   string `json:"kind"`
			Region string `json:"region"`
		} `json:"children"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&doc))
	assert.Equal(t, "Invoice 7/2025", doc.Meta.Title)
	require.NotEmpty(t, doc.Children)
	last := doc.Children[len(doc.Children)-1]
	assert.Equal(t, "view", last.Kind)
	assert.Equal(t, "footer", last.Region)
}

func TestZip(t *testing.T) {
	w := do(t, newServer(), http.MethodPost, "/api/v1/invoices/zip?languages=pl,en", body(t, sample()))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"invoice-7-2025-en.pdf", "invoice-7-2025-pl.pdf"}, names)
}

func TestZipRejectsUnknownLanguage(t *testing.T) {
	w := do(t, newServer(), http.MethodPost, "/api/v1/invoices/zip?languages=en,xx", body(t, sample()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Error, "unsupported language")

	w = do(t, newServer(), http.MethodPost, "/api/v1/invoices/zip", body(t, sample()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShareLink(t *testing.T) {
	link, err := invoice.EncodeShareLink(sample())
	require.NoError(t, err)

	w := do(t, newServer(), http.MethodGet, "/api/v1/invoices/share?data="+url.QueryEscape(link), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))

	w = do(t, newServer(), http.MethodGet, "/api/v1/invoices/share", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/invoices/pdf", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	newServer().ServeHTTP(w, req)

	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}
