package api

import (
	"net/http"

	resdto "surplusfood-api/internal/handler/dto/response"
	"surplusfood-api/internal/handler/httperr"
	"surplusfood-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OutletHandler struct {
	outletQueries queries.OutletQueries
}

func NewOutletHandler(outletQueries queries.OutletQueries) *OutletHandler {
	return &OutletHandler{outletQueries: outletQueries}
}

// @Summary List outlets
// @Description List all canteen outlets
// @Tags outlets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OutletResponse
// @Failure 401 {object} httperr.Response
// @Router /outlets [get]
func (h *OutletHandler) ListOutlets(c *gin.Context) {
	views, err := h.outletQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.OutletResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromOutletView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get outlet
// @Description Get a single outlet by ID
// @Tags outlets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Outlet ID"
// @Success 200 {object} resdto.OutletResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /outlets/{id} [get]
func (h *OutletHandler) GetOutlet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.outletQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Outlet not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOutletView(view))
}

// @Summary Get outlet by site code
// @Description Get a single outlet by its site code (e.g. "LA")
// @Tags outlets
// @Produce json
// @Security BearerAuth
// @Param code path string true "Site code"
// @Success 200 {object} resdto.OutletResponse
// @Failure 404 {object} httperr.Response
// @Router /outlets/code/{code} [get]
func (h *OutletHandler) GetOutletBySiteCode(c *gin.Context) {
	view, err := h.outletQueries.GetBySiteCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Outlet not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOutletView(view))
}
