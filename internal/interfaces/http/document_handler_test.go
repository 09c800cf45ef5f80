package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paktech/tender-docs/internal/application/documents"
	"github.com/paktech/tender-docs/internal/application/dto"
	"github.com/paktech/tender-docs/internal/domain/entity"
	"github.com/paktech/tender-docs/internal/infrastructure/pdf"
	apphttp "github.com/paktech/tender-docs/internal/interfaces/http"
)

type memRepo struct {
	quotations map[string]*entity.Quotation
}

func (r *memRepo) GetInvoice(context.Context, string) (*entity.Invoice, error) { return nil, nil }

func (r *memRepo) GetPurchaseOrder(context.Context, string) (*entity.PurchaseOrder, error) {
	return nil, nil
}

func (r *memRepo) GetQuotation(_ context.Context, id string) (*entity.Quotation, error) {
	return r.quotations[id], nil
}

func (r *memRepo) ListSummaries(context.Context, entity.DocumentKind, int, int) ([]entity.DocumentSummary, error) {
	return []entity.DocumentSummary{{Number: "Q-1", Date: "2024-03-05", GrandTotal: decimal.NewFromInt(220)}}, nil
}

type failingArchiver struct{}

func (failingArchiver) Archive(context.Context, entity.DocumentKind, string, []byte) (string, error) {
	return "", errors.New("bucket not found")
}

func newDocsApp(archiver documents.Archiver) *fiber.App {
	repo := &memRepo{quotations: map[string]*entity.Quotation{
		"q1": {QuoteNo: "Q-1", ForCompany: "Paktech", Items: []entity.LineItem{{SNo: 1, Description: "Valve", Quantity: decimal.NewFromInt(1)}}},
	}}
	opts := pdf.Options{Locale: "en", Issuer: entity.Party{Name: "Paktech Engineering"}}
	gen := pdf.NewGenerator(nil, opts, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName: "tender-docs",
		PDF:         documents.NewPDFUseCase(repo, gen, nil, archiver, "", nil),
		Register:    documents.NewRegisterUseCase(repo, pdf.NewRegisterRenderer(opts), nil),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, role, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e.Code
}

const technoBody = `{
	"forCompany": "Techno",
	"items": [{"sNo": 1, "item": "<p>Valve</p>", "qty": 2, "unitPrice": 100}],
	"tax": 0.1, "subTotal": 200, "grandTotal": 220, "currencyUnit": "PKR"
}`

func TestRenderQuotation_DescargaPDF(t *testing.T) {
	resp := send(t, newDocsApp(nil), http.MethodPost, "/api/pdf/quotations", apphttp.RoleProcurement, technoBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Quotation_draft.pdf"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "1", resp.Header.Get("X-Page-Count"))
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	assert.True(t, bytes.Contains(body, []byte("(PKR 220.00) Tj")))
}

func TestRenderQuotation_PlantillaInvalida(t *testing.T) {
	resp := send(t, newDocsApp(nil), http.MethodPost, "/api/pdf/quotations", apphttp.RoleAdmin, `{"forCompany":"Acme"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_TEMPLATE", errorCode(t, resp))
}

func TestRenderInvoice_CuerpoInvalido(t *testing.T) {
	resp := send(t, newDocsApp(nil), http.MethodPost, "/api/pdf/invoices", apphttp.RoleAdmin, `{"items": "x"`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp))
}

func TestRenderPurchaseOrder_ViewerNoPuedeRenderizar(t *testing.T) {
	resp := send(t, newDocsApp(nil), http.MethodPost, "/api/pdf/purchase-orders", apphttp.RoleViewer, `{"poNumber":"PO-1"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRenderPurchaseOrder_FallaDeArchivo(t *testing.T) {
	resp := send(t, newDocsApp(failingArchiver{}), http.MethodPost, "/api/pdf/purchase-orders", apphttp.RoleAdmin, `{"poNumber":"PO-1"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "ARCHIVE_FAILED", errorCode(t, resp))
}

func TestQuotationByID(t *testing.T) {
	app := newDocsApp(nil)

	resp := send(t, app, http.MethodGet, "/api/quotations/q1/pdf", apphttp.RoleViewer, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="Quotation_Q-1.pdf"`, resp.Header.Get("Content-Disposition"))

	missing := send(t, app, http.MethodGet, "/api/invoices/nope/pdf", apphttp.RoleViewer, "")
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, missing))
}

func TestRegister(t *testing.T) {
	app := newDocsApp(nil)

	resp := send(t, app, http.MethodGet, "/api/quotations/register.pdf?limit=10", apphttp.RoleViewer, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="quotations_register.pdf"`, resp.Header.Get("Content-Disposition"))

	bad := send(t, app, http.MethodGet, "/api/customers/register.pdf", apphttp.RoleViewer, "")
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, bad))
}

func TestRutasProtegidas(t *testing.T) {
	resp := send(t, newDocsApp(nil), http.MethodPost, "/api/pdf/quotations", "", technoBody)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	resp := send(t, newDocsApp(nil), http.MethodGet, "/health", "", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var h dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "tender-docs", h.Service)
}
