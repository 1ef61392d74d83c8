package booking

import (
	"errors"
	"net/http"

	"eaglegym/internal/api"
	"eaglegym/internal/content"
	"eaglegym/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// BookMembership godoc
// @Summary      Book a membership offer
// @Description  Redirects to the messaging deep link for the offer.
// @Tags         booking
// @Param        branchSlug path string true "Branch slug"
// @Param        offerID    path string true "Offer ID" format(uuid)
// @Success      302
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /branches/{branchSlug}/book/membership/{offerID} [get]
func (h *Handler) BookMembership(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Session not found"})
		return
	}

	offerID, err := uuid.Parse(c.Param("offerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid offer ID"})
		return
	}

	link, err := h.service.MembershipLink(c.Request.Context(), sess.Content, offerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, link.URL)
}

// BookPersonalTraining godoc
// @Summary      Book a personal training package
// @Description  Redirects to the messaging deep link for the package.
// @Tags         booking
// @Param        branchSlug path string true "Branch slug"
// @Param        packageID  path string true "Package ID" format(uuid)
// @Success      302
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /branches/{branchSlug}/book/pt/{packageID} [get]
func (h *Handler) BookPersonalTraining(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Session not found"})
		return
	}

	packageID, err := uuid.Parse(c.Param("packageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid package ID"})
		return
	}

	link, err := h.service.PersonalTrainingLink(c.Request.Context(), sess.Content, packageID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, link.URL)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownItem), errors.Is(err, content.ErrBranchNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "Content store unavailable"})
	}
}
