package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commentbox/comment-system/internal/core/ports"
)

// ProvisionHandler handles the public apply-code flow.
type ProvisionHandler struct {
	provisionService ports.ProvisionService
}

func NewProvisionHandler(provisionService ports.ProvisionService) *ProvisionHandler {
	return &ProvisionHandler{provisionService: provisionService}
}

// Apply mints a new self-service site id for a widget without one.
//
// @Summary      Apply for a site code
// @Tags         provisioning
// @Accept       json
// @Produce      json
// @Param        body  body      applyCodeRequest  true  "Apply-code request"
// @Success      200   {object}  applyCodeResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/apply-code [post]
func (h *ProvisionHandler) Apply(c echo.Context) error {
	var req applyCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "请求无效")
	}

	siteID, err := h.provisionService.Apply(c.Request().Context(), ports.ApplyCodeInput{
		TurnstileToken: req.TurnstileToken,
		URL:            req.URL,
		ClientIP:       c.RealIP(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, applyCodeResponse{
		Message: "代号申请成功",
		SiteID:  siteID,
	})
}
