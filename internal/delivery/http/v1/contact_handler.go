package v1

import (
	"errors"
	"net/http"

	"go-contact-form/internal/delivery/http/response"
	"go-contact-form/internal/domain"
	"go-contact-form/pkg/apperror"
	"go-contact-form/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	// Public Routes - NO authentication required
	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact message and relay it to the contact-form function. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactMessage  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var msg domain.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		response.Error(c, http.StatusBadRequest, "Please correct the highlighted fields.", validation.FormatBindingErrors(err))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &msg); err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			// Binding bounds and usecase rules can disagree on edge cases
			// (e.g. a field that is all whitespace); surface per-field here too
			response.Error(c, http.StatusBadRequest, "Please correct the highlighted fields.", vErr.Fields)
		case errors.Is(err, domain.ErrSenderNotConfigured):
			c.Error(apperror.Unavailable("Contact service temporarily unavailable", err))
		default:
			c.Error(apperror.BadGateway("Failed to send message. Please try again later.", err))
		}
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", nil)
}
