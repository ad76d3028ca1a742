package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"faena/internal/csvexport"
	"faena/internal/service"
)

// ProviderHandler handles provider query endpoints.
type ProviderHandler struct {
	providerService service.ProviderService
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(providerService service.ProviderService) *ProviderHandler {
	return &ProviderHandler{providerService: providerService}
}

// Search handles GET /api/v1/providers/search?q=...&limit=...
func (h *ProviderHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_QUERY", "query parameter q is required")
		return
	}
	limit := intQuery(c, "limit", 50)

	result, err := h.providerService.Search(c.Request.Context(), query, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// List handles GET /api/v1/providers
func (h *ProviderHandler) List(c *gin.Context) {
	offset := intQuery(c, "offset", 0)
	limit := intQuery(c, "limit", 50)

	records, total, err := h.providerService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Export handles GET /api/v1/providers/export as a CSV download.
func (h *ProviderHandler) Export(c *gin.Context) {
	records, err := h.providerService.ExportAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("proveedores")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteProviders(records); err != nil {
		return
	}
	w.Flush()
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
