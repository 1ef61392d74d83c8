package gym

import (
	"errors"
	"net/http"

	"eaglegym/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      List gyms
// @Tags         gyms
// @Produce      json
// @Success      200 {array} gym.Gym
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	gyms, err := h.service.GetGyms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      List active branches of a gym
// @Tags         gyms
// @Produce      json
// @Param        gymSlug path string true "Gym slug"
// @Success      200 {array} gym.Branch
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms/{gymSlug}/branches [get]
func (h *Handler) ListBranches(c *gin.Context) {
	branches, err := h.service.GetBranches(c.Request.Context(), c.Param("gymSlug"))
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch branches"})
		}
		return
	}

	c.JSON(http.StatusOK, branches)
}
