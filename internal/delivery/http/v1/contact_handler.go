package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ContactResponse is the body the contact form script reads.
type ContactResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type ContactHandler struct {
	contactUC    domain.ContactUsecase
	maxBodyBytes int64
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, maxBodyBytes int64) {
	handler := &ContactHandler{
		contactUC:    contactUC,
		maxBodyBytes: maxBodyBytes,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Accepts a name, email and message. Unreadable bodies are treated as empty.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  v1.ContactResponse
// @Failure      400      {object}  v1.ContactResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	input, err := decodeContactBody(c)
	if err != nil {
		// Malformed or oversized bodies fall through as an empty record.
		logger.Log.DebugContext(c.Request.Context(), "contact body not parsed", "error", err)
		input = nil
	}

	if _, err := h.contactUC.Submit(c.Request.Context(), input); err != nil {
		var missing *domain.MissingFieldsError
		if errors.As(err, &missing) {
			logger.Log.InfoContext(c.Request.Context(), "contact submission rejected", "missing", missing.Detail())
			c.JSON(http.StatusBadRequest, ContactResponse{OK: false, Error: missing.Error()})
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	c.JSON(http.StatusOK, ContactResponse{OK: true})
}

// decodeContactBody parses the whole body as one JSON object. Trailing data
// after the object is an error.
func decodeContactBody(c *gin.Context) (map[string]any, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	var input map[string]any
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, err
	}
	return input, nil
}
