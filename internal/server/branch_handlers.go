package server

import (
	"errors"
	"net/http"
	"time"

	"eaglegym/internal/api"
	"eaglegym/internal/config"
	"eaglegym/internal/content"
	"eaglegym/internal/gym"
	"eaglegym/internal/session"

	"github.com/gin-gonic/gin"
)

type BranchHandler struct {
	config *config.Config
	gyms   gym.Service
	now    func() time.Time
}

func NewBranchHandler(cfg *config.Config, gyms gym.Service) *BranchHandler {
	return &BranchHandler{
		config: cfg,
		gyms:   gyms,
		now:    time.Now,
	}
}

var errStoreUnavailable = errors.New("content store unavailable")

// publicError hides store failure details from visitors.
func publicError(err error) error {
	if err == nil || errors.Is(err, content.ErrBranchNotFound) || errors.Is(err, gym.ErrGymNotFound) {
		return err
	}
	return errStoreUnavailable
}

func currentSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := session.FromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Session not found"})
	}
	return sess, ok
}

// Landing godoc
// @Summary      Branch chooser
// @Description  Lists the configured branches, enriched with store details when available.
// @Tags         branches
// @Produce      json
// @Success      200 {object} server.LandingResponse
// @Router       / [get]
func (h *BranchHandler) Landing(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	gymSlug := sess.Selection.SelectedGym()
	if gymSlug == "" {
		gymSlug = h.config.DefaultGym
	}

	resp := LandingResponse{Gym: gymSlug, Branches: make([]BranchCard, 0, len(h.config.KnownBranches))}

	stored := map[string]gym.Branch{}
	branches, err := h.gyms.GetBranches(c.Request.Context(), gymSlug)
	if err != nil {
		resp.Error = publicError(err).Error()
	}
	for _, b := range branches {
		stored[b.Slug] = b
	}

	selected := sess.Selection.SelectedBranch()
	for _, slug := range h.config.KnownBranches {
		card := BranchCard{Slug: slug, Selected: slug == selected}
		if b, ok := stored[slug]; ok {
			card.NameEn = b.NameEn
			card.NameAr = b.NameAr
			card.AddressEn = b.AddressEn
			card.AddressAr = b.AddressAr
		}
		resp.Branches = append(resp.Branches, card)
	}

	c.JSON(http.StatusOK, resp)
}

// BranchPage godoc
// @Summary      Branch page
// @Description  Selects the branch and returns its offers, PT packages and current promotion.
// @Tags         branches
// @Produce      json
// @Param        branchSlug path string true "Branch slug"
// @Success      200 {object} server.BranchPageResponse
// @Success      302
// @Router       /branches/{branchSlug} [get]
func (h *BranchHandler) BranchPage(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	resp := BranchPageResponse{}
	if b, ok := sess.Selection.CurrentBranch(); ok {
		resp.Branch = &b
	}

	var err error
	if resp.Offers, err = sess.Content.GetOffers(ctx); err != nil {
		resp.Errors = append(resp.Errors, publicError(err).Error())
	}
	if resp.PtPackages, err = sess.Content.GetPtPackages(ctx); err != nil {
		resp.Errors = append(resp.Errors, publicError(err).Error())
	}

	specials, err := sess.Content.GetSpecialOffers(ctx, "")
	if err != nil {
		resp.Errors = append(resp.Errors, publicError(err).Error())
	}
	if offer, ok := content.CurrentSpecialOffer(specials, h.now()); ok {
		left := content.TimeLeft(offer, h.now())
		resp.SpecialOffer = &offer
		resp.TimeLeft = &left
	}

	c.JSON(http.StatusOK, resp)
}

// Offers godoc
// @Summary      Membership offers
// @Tags         branches
// @Produce      json
// @Param        branchSlug path string true "Branch slug"
// @Success      200 {object} api.ListResponse[content.Offer]
// @Router       /branches/{branchSlug}/offers [get]
func (h *BranchHandler) Offers(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	offers, err := sess.Content.GetOffers(c.Request.Context())
	c.JSON(http.StatusOK, api.NewListResponse(offers, publicError(err)))
}

// Coaches godoc
// @Summary      Coaches
// @Tags         branches
// @Produce      json
// @Param        branchSlug path string true "Branch slug"
// @Success      200 {object} api.ListResponse[content.Coach]
// @Router       /branches/{branchSlug}/coaches [get]
func (h *BranchHandler) Coaches(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	coaches, err := sess.Content.GetCoaches(c.Request.Context())
	c.JSON(http.StatusOK, api.NewListResponse(coaches, publicError(err)))
}

// Classes godoc
// @Summary      Class schedule
// @Tags         branches
// @Produce      json
// @Param        branchSlug path string true "Branch slug"
// @Success      200 {object} api.ListResponse[content.ClassSession]
// @Router       /branches/{branchSlug}/classes [get]
func (h *BranchHandler) Classes(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	classes, err := sess.Content.GetClasses(c.Request.Context())
	c.JSON(http.StatusOK, api.NewListResponse(classes, publicError(err)))
}

// PtPackages godoc
// @Summary      Personal training packages
// @Tags         branches
// @Produce      json
// @Param        branchSlug path string true "Branch slug"
// @Success      200 {object} api.ListResponse[content.PtPackage]
// @Router       /branches/{branchSlug}/pt-packages [get]
func (h *BranchHandler) PtPackages(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	packages, err := sess.Content.GetPtPackages(c.Request.Context())
	c.JSON(http.StatusOK, api.NewListResponse(packages, publicError(err)))
}

// SpecialOffers godoc
// @Summary      Special offers
// @Tags         branches
// @Produce      json
// @Param        branchSlug path  string true  "Branch slug"
// @Param        type       query string false "Offer type, e.g. black_friday"
// @Success      200 {object} api.ListResponse[content.SpecialOffer]
// @Failure      400 {object} api.ErrorResponse
// @Router       /branches/{branchSlug}/special-offers [get]
func (h *BranchHandler) SpecialOffers(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var q specialOfferQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid query"})
		return
	}
	if errs := ValidateStruct(q); errs != nil {
		RespondWithValidationErrors(c, errs)
		return
	}

	offers, err := sess.Content.GetSpecialOffers(c.Request.Context(), q.Type)
	c.JSON(http.StatusOK, api.NewListResponse(offers, publicError(err)))
}
