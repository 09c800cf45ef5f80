package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/paktech/tender-docs/internal/application/documents"
	"github.com/paktech/tender-docs/internal/application/dto"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	PDF         *documents.PDFUseCase
	Register    *documents.RegisterUseCase // nil sin base de datos
	JWTSecret   string
	Health      dto.HealthResponse
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		h := deps.Health
		h.Status = "ok"
		h.Service = deps.ServiceName
		return c.JSON(h)
	})

	api := app.Group("/api")
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	h := NewDocumentHandler(deps.PDF, deps.Register)

	// Render de documentos enviados en el cuerpo
	render := protected.Group("/pdf", RequireRole(RoleAdmin, RoleProcurement))
	render.Post("/invoices", h.RenderInvoice)
	render.Post("/purchase-orders", h.RenderPurchaseOrder)
	render.Post("/quotations", h.RenderQuotation)

	// Documentos ya guardados
	read := RequireRole(RoleAdmin, RoleProcurement, RoleViewer)
	protected.Get("/invoices/:id/pdf", read, h.InvoiceByID)
	protected.Get("/purchase-orders/:id/pdf", read, h.PurchaseOrderByID)
	protected.Get("/quotations/:id/pdf", read, h.QuotationByID)
	protected.Get("/:kind/register.pdf", read, h.Register)
}
