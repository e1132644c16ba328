package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabhub_backend/internal/middleware"
	"collabhub_backend/internal/models"
	"collabhub_backend/internal/services"
	"collabhub_backend/internal/services/dto"
	"collabhub_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	apps := r.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		// Creator-only
		creator := apps.Group("")
		creator.Use(middleware.RoleMiddleware(models.UserRoleCreator))
		{
			creator.POST("", h.Apply)
			creator.GET("/mine", h.ListMine)
			creator.PUT("/:id/withdraw", h.Withdraw)
		}

		// Brand-only
		brand := apps.Group("")
		brand.Use(middleware.RoleMiddleware(models.UserRoleBrand))
		{
			brand.GET("/requirement/:reqId", h.ListForRequirement)
			brand.PUT("/:id/status", h.UpdateStatus)
		}

		// Any authenticated user
		apps.GET("/accepted-partners", h.ListAcceptedPartners)
		apps.GET("/:id", h.GetByID)
	}
}

// Apply handles POST /applications.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	req.CreatorID = userID

	app, err := h.applicationService.Apply(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListMine handles GET /applications/mine.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	items, err := h.applicationService.ListMine(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": items, "total": len(items)})
}

// ListForRequirement handles GET /applications/requirement/:reqId.
func (h *ApplicationHandler) ListForRequirement(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	requirementID := c.Param("reqId")

	items, err := h.applicationService.ListForRequirement(h.GetDB(c), requirementID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": items, "total": len(items)})
}

// GetByID handles GET /applications/:id.
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	app, err := h.applicationService.GetByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// UpdateStatus handles PUT /applications/:id/status (brand accepts or
// rejects).
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	status, ok := models.ParseApplicationStatus(req.Status)
	if !ok {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unknown application status"))
		return
	}

	app, err := h.applicationService.UpdateStatus(
		h.GetDB(c),
		c.Param("id"),
		userID,
		middleware.GetUserRole(c),
		status,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// Withdraw handles PUT /applications/:id/withdraw. The route is creator
// gated, and the transition table only allows creators to reach
// withdrawn, so the shared transition path stays single.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	app, err := h.applicationService.UpdateStatus(
		h.GetDB(c),
		c.Param("id"),
		userID,
		models.UserRoleCreator,
		models.ApplicationStatusWithdrawn,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// ListAcceptedPartners handles GET /applications/accepted-partners.
func (h *ApplicationHandler) ListAcceptedPartners(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	partners, err := h.applicationService.ListAcceptedPartners(h.GetDB(c), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"partners": partners})
}
