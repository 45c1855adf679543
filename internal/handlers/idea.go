package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/morisawa/ideapool/internal/dto"
	apierrors "github.com/morisawa/ideapool/internal/errors"
	"github.com/morisawa/ideapool/internal/middleware"
	"github.com/morisawa/ideapool/internal/services"
	"github.com/morisawa/ideapool/internal/utils"
	"github.com/morisawa/ideapool/internal/validation"
)

// IdeaHandler coordinates the idea CRUD and listing endpoints. Every route
// runs behind RequireAuth, so the owner is always the authenticated identity.
type IdeaHandler struct {
	ideaService *services.IdeaService
}

// NewIdeaHandler creates a new IdeaHandler.
func NewIdeaHandler(ideaService *services.IdeaService) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
	}
}

// IdeaRequest is the request body for create and update.
type IdeaRequest struct {
	Content    string `json:"content"`
	Impact     int    `json:"impact"`
	Ease       int    `json:"ease"`
	Confidence int    `json:"confidence"`
}

// Create stores a new idea for the current user.
// POST /ideas
func (h *IdeaHandler) Create(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	idea, err := h.ideaService.Create(email, services.IdeaInput{
		Content:    req.Content,
		Impact:     req.Impact,
		Ease:       req.Ease,
		Confidence: req.Confidence,
	})
	if err != nil {
		respondIdeaError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToIdeaDTO(*idea))
}

// List returns one page of the current user's ideas ranked by average
// score. ?page=N is 1-based and defaults to 1.
// GET /ideas
func (h *IdeaHandler) List(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	page, ok := utils.GetPageParam(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid page")
		return
	}

	ideas, err := h.ideaService.List(email, page-1)
	if err != nil {
		respondIdeaError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIdeaDTOs(ideas))
}

// Update rewrites the content and scores of an idea the current user owns.
// PUT /ideas/:id
func (h *IdeaHandler) Update(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIdeaID(c)
	if !ok {
		return
	}

	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	idea, err := h.ideaService.Update(id, email, services.IdeaInput{
		Content:    req.Content,
		Impact:     req.Impact,
		Ease:       req.Ease,
		Confidence: req.Confidence,
	})
	if err != nil {
		respondIdeaError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToIdeaDTO(*idea))
}

// Delete removes an idea the current user owns.
// DELETE /ideas/:id
func (h *IdeaHandler) Delete(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIdeaID(c)
	if !ok {
		return
	}

	if err := h.ideaService.Delete(id, email); err != nil {
		respondIdeaError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIdeaID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid idea id")
		return 0, false
	}
	return id, true
}

func respondIdeaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validation.ErrInvalidInput):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrIdeaNotFound):
		apierrors.NotFound(c, "Idea does not exist")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
