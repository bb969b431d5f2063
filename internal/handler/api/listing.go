package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "roomhub/internal/handler/dto/request"
	resdto "roomhub/internal/handler/dto/response"
	"roomhub/internal/handler/httperr"
	"roomhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingUseCase usecase.ListingUseCase
}

func NewListingHandler(listingUseCase usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{listingUseCase: listingUseCase}
}

// @Summary Submit listing
// @Description Partner submits a new listing for moderation
// @Tags listings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateListingRequest true "Listing request"
// @Success 201 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Router /api/listings [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	owner := resolveActor(c, req.Owner)
	if owner == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Owner id required"})
		return
	}

	created, err := h.listingUseCase.Create(c.Request.Context(), owner, req.ToFields())
	if err != nil {
		respondListingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

// @Summary List listings
// @Description List listings filtered by status and owner
// @Tags listings
// @Produce json
// @Param status query string false "Status filter"
// @Param owner query string false "Owner filter"
// @Success 200 {array} resdto.ListingResponse
// @Router /api/listings [get]
func (h *ListingHandler) ListListings(c *gin.Context) {
	filter := usecase.ListingFilter{
		Status: c.Query("status"),
		Owner:  c.Query("owner"),
	}

	seq, err := h.listingUseCase.List(c.Request.Context(), filter)
	if err != nil {
		respondListingError(c, err)
		return
	}

	listings := []*resdto.ListingResponse{}
	for l := range seq {
		listings = append(listings, resdto.FromListing(&l))
	}
	c.JSON(http.StatusOK, listings)
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} map[string]string
// @Router /api/listings/{id} [get]
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	found, err := h.listingUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListing(found))
}

// @Summary Approve listing
// @Description Moderator approves a pending listing; the catalog gains its public entry
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body reqdto.ModerateListingRequest true "Moderator"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/listings/{id}/approve [put]
func (h *ListingHandler) ApproveListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	moderator, ok := h.bindModerator(c)
	if !ok {
		return
	}

	updated, err := h.listingUseCase.Approve(c.Request.Context(), id, moderator.Moderator)
	if err != nil {
		respondListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListing(updated))
}

// @Summary Reject listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body reqdto.ModerateListingRequest true "Moderator and reason"
// @Success 200 {object} resdto.ListingResponse
// @Router /api/listings/{id}/reject [put]
func (h *ListingHandler) RejectListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	moderator, ok := h.bindModerator(c)
	if !ok {
		return
	}

	updated, err := h.listingUseCase.Reject(c.Request.Context(), id, moderator.Moderator, moderator.Reason)
	if err != nil {
		respondListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListing(updated))
}

// @Summary Request listing deletion
// @Description Owning partner asks moderation to take the listing down
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body reqdto.RequestDeleteRequest true "Owner and reason"
// @Success 200 {object} resdto.ListingResponse
// @Failure 403 {object} map[string]string
// @Router /api/listings/{id}/request-delete [put]
func (h *ListingHandler) RequestDelete(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req reqdto.RequestDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	owner := resolveActor(c, req.Owner)
	if owner == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Owner id required"})
		return
	}

	updated, err := h.listingUseCase.RequestDelete(c.Request.Context(), id, owner, req.Reason)
	if err != nil {
		respondListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListing(updated))
}

// @Summary Approve deletion request
// @Description Removes the listing and its catalog entry
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body reqdto.ModerateListingRequest true "Moderator"
// @Success 200 {object} map[string]bool
// @Router /api/listings/{id}/approve-delete [put]
func (h *ListingHandler) ApproveDelete(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	moderator, ok := h.bindModerator(c)
	if !ok {
		return
	}

	if err := h.listingUseCase.ApproveDelete(c.Request.Context(), id, moderator.Moderator); err != nil {
		respondListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// @Summary Reject deletion request
// @Description Returns a delete_pending listing to approved
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body reqdto.ModerateListingRequest true "Moderator"
// @Success 200 {object} resdto.ListingResponse
// @Router /api/listings/{id}/reject-delete [put]
func (h *ListingHandler) RejectDelete(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	moderator, ok := h.bindModerator(c)
	if !ok {
		return
	}

	updated, err := h.listingUseCase.RejectDelete(c.Request.Context(), id, moderator.Moderator)
	if err != nil {
		respondListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListing(updated))
}

// @Summary Force remove listing
// @Description Administrative removal regardless of status
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} map[string]bool
// @Router /api/listings/{id} [delete]
func (h *ListingHandler) HardDelete(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req reqdto.ModerateListingRequest
	// Body is optional on DELETE; the moderator may come from the token.
	_ = c.ShouldBindJSON(&req)
	moderator := resolveActor(c, req.Moderator)
	if moderator == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moderator id required"})
		return
	}

	if err := h.listingUseCase.HardDelete(c.Request.Context(), id, moderator); err != nil {
		respondListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

func (h *ListingHandler) bindModerator(c *gin.Context) (reqdto.ModerateListingRequest, bool) {
	var req reqdto.ModerateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return req, false
	}
	req.Moderator = resolveActor(c, req.Moderator)
	if req.Moderator == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moderator id required"})
		return req, false
	}
	return req, true
}

func listingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return 0, false
	}
	return id, true
}

func respondListingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
	case errors.Is(err, usecase.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Listing status does not permit this operation"})
	case errors.Is(err, usecase.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Actor does not own this listing"})
	case errors.Is(err, usecase.ErrValidation):
		field, _ := usecase.MissingField(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": field})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
