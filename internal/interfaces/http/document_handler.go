package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/paktech/tender-docs/internal/application/documents"
	"github.com/paktech/tender-docs/internal/application/dto"
	"github.com/paktech/tender-docs/internal/domain"
	"github.com/paktech/tender-docs/internal/domain/entity"
)

// DocumentHandler descarga de PDFs de facturas, órdenes de compra y cotizaciones.
type DocumentHandler struct {
	pdf      *documents.PDFUseCase
	register *documents.RegisterUseCase
}

// NewDocumentHandler construye el handler. register puede ser nil si no hay base de datos.
func NewDocumentHandler(pdf *documents.PDFUseCase, register *documents.RegisterUseCase) *DocumentHandler {
	return &DocumentHandler{pdf: pdf, register: register}
}

// ── Render desde el cuerpo ───────────────────────────────────────────────────

// RenderInvoice POST /api/pdf/invoices
func (h *DocumentHandler) RenderInvoice(c *fiber.Ctx) error {
	var inv entity.Invoice
	if err := c.BodyParser(&inv); err != nil {
		return invalidBody(c)
	}
	res, err := h.pdf.RenderInvoice(c.UserContext(), &inv)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, res)
}

// RenderPurchaseOrder POST /api/pdf/purchase-orders
func (h *DocumentHandler) RenderPurchaseOrder(c *fiber.Ctx) error {
	var po entity.PurchaseOrder
	if err := c.BodyParser(&po); err != nil {
		return invalidBody(c)
	}
	res, err := h.pdf.RenderPurchaseOrder(c.UserContext(), &po)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, res)
}

// RenderQuotation POST /api/pdf/quotations
func (h *DocumentHandler) RenderQuotation(c *fiber.Ctx) error {
	var q entity.Quotation
	if err := c.BodyParser(&q); err != nil {
		return invalidBody(c)
	}
	res, err := h.pdf.RenderQuotation(c.UserContext(), &q)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, res)
}

// ── Render por ID ────────────────────────────────────────────────────────────

// InvoiceByID GET /api/invoices/:id/pdf
func (h *DocumentHandler) InvoiceByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idRequired(c)
	}
	res, err := h.pdf.InvoicePDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, res)
}

// PurchaseOrderByID GET /api/purchase-orders/:id/pdf
func (h *DocumentHandler) PurchaseOrderByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idRequired(c)
	}
	res, err := h.pdf.PurchaseOrderPDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, res)
}

// QuotationByID GET /api/quotations/:id/pdf
func (h *DocumentHandler) QuotationByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idRequired(c)
	}
	res, err := h.pdf.QuotationPDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, res)
}

// Register GET /api/:kind/register.pdf?limit=&offset=
func (h *DocumentHandler) Register(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit/offset inválidos"})
	}
	page.DefaultPage()
	if h.register == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_DISABLED", Message: "listados no disponibles sin base de datos"})
	}
	res, err := h.register.Export(c.UserContext(), entity.DocumentKind(c.Params("kind")), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, res)
}

// ── Respuestas ───────────────────────────────────────────────────────────────

func sendPDF(c *fiber.Ctx, res *entity.RenderedPDF) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
	c.Set("X-Page-Count", strconv.Itoa(res.Pages))
	if res.Cached {
		c.Set("X-Cache", "HIT")
	} else {
		c.Set("X-Cache", "MISS")
	}
	return c.Status(fiber.StatusOK).Send(res.Content)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func idRequired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
}

// writeError traduce errores de dominio a status + código.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTemplate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TEMPLATE", Message: domain.ErrInvalidTemplate.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, documents.ErrArchive):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "ARCHIVE_FAILED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
