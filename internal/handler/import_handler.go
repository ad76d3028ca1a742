package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"faena/internal/domain"
	"faena/internal/service"
)

// ImportHandler handles provider import endpoints.
type ImportHandler struct {
	importService service.ImportService
	maxSources    int
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportService, maxSources int) *ImportHandler {
	return &ImportHandler{importService: importService, maxSources: maxSources}
}

// ImportFiles handles POST /api/v1/providers/import.
// Accepts multipart uploads under the "files" field. Each file's format is
// taken from the optional "format" form value or inferred from its extension.
func (h *ImportHandler) ImportFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_MULTIPART", "request is not valid multipart form data")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		RespondError(c, http.StatusBadRequest, "EMPTY_SOURCE", "no files submitted under the files field")
		return
	}
	if h.maxSources > 0 && len(files) > h.maxSources {
		RespondError(c, http.StatusBadRequest, "TOO_MANY_SOURCES", "too many source files in one import")
		return
	}

	declared := domain.SourceFormat(c.PostForm("format"))
	units := make([]domain.SourceUnit, 0, len(files))
	for _, fh := range files {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
		if !domain.AllowedUploadExtensions[ext] {
			RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported file extension: "+ext)
			return
		}

		format := declared
		if format == "" {
			format = domain.FormatForExtension[ext]
		}

		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "cannot open uploaded file "+fh.Filename)
			return
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "cannot read uploaded file "+fh.Filename)
			return
		}

		units = append(units, domain.SourceUnit{
			Name:    fh.Filename,
			Format:  format,
			Content: content,
		})
	}

	result, err := h.importService.ImportSources(c.Request.Context(), units)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// textImportRequest is the body of a pasted-blob import.
type textImportRequest struct {
	Name    string `json:"name"`
	Content string `json:"content" binding:"required"`
}

// ImportText handles POST /api/v1/providers/import/text.
// The body carries free-form text pasted out of a document.
func (h *ImportHandler) ImportText(c *gin.Context) {
	var req textImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PAYLOAD", "body must carry a non-empty content field")
		return
	}
	name := req.Name
	if name == "" {
		name = "pasted-text"
	}

	result, err := h.importService.ImportSources(c.Request.Context(), []domain.SourceUnit{{
		Name:    name,
		Format:  domain.FormatFreeText,
		Content: []byte(req.Content),
	}})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// ImportJSON handles POST /api/v1/providers/import/json.
// The body must be a JSON array of provider objects; anything else is the
// one malformed-input case that aborts the whole import.
func (h *ImportHandler) ImportJSON(c *gin.Context) {
	var objects []map[string]json.RawMessage
	if err := c.ShouldBindJSON(&objects); err != nil {
		HandleError(c, domain.ErrInvalidPayload)
		return
	}
	content, err := json.Marshal(objects)
	if err != nil {
		HandleError(c, domain.ErrInvalidPayload)
		return
	}

	result, err := h.importService.ImportSources(c.Request.Context(), []domain.SourceUnit{{
		Name:    "json-payload",
		Format:  domain.FormatStructured,
		Content: content,
	}})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
