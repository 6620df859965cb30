package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commentbox/comment-system/internal/core/ports"
)

// SiteHandler handles the admin-facing site registry endpoints. All of
// them sit behind the session middleware.
type SiteHandler struct {
	siteService ports.SiteService
}

func NewSiteHandler(siteService ports.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// Create registers a new site.
//
// @Summary      Register a site
// @Tags         sites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSiteRequest  true  "Site record"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/sites [post]
func (h *SiteHandler) Create(c echo.Context) error {
	var req createSiteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "请求无效")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "参数缺失")
	}

	err := h.siteService.Create(c.Request().Context(), ports.CreateSiteInput{
		ID:               req.ID,
		URL:              req.URL,
		TurnstileSiteKey: req.TurnstileSiteKey,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "站点创建成功"})
}

// List returns all registered sites.
//
// @Summary      List sites
// @Tags         sites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.SiteListing
// @Failure      401  {object}  map[string]string
// @Router       /api/sites [get]
func (h *SiteHandler) List(c echo.Context) error {
	listings, err := h.siteService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// Delete removes a site and all of its comments.
//
// @Summary      Delete a site
// @Tags         sites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Site id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/sites/{id} [delete]
func (h *SiteHandler) Delete(c echo.Context) error {
	if err := h.siteService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "站点已删除"})
}
