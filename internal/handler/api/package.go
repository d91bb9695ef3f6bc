package api

import (
	"net/http"

	reqdto "surplusfood-api/internal/handler/dto/request"
	resdto "surplusfood-api/internal/handler/dto/response"
	"surplusfood-api/internal/handler/httperr"
	"surplusfood-api/internal/handler/middleware"
	"surplusfood-api/internal/pkg/errs"
	"surplusfood-api/internal/usecase/commands"
	"surplusfood-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PackageHandler struct {
	packageCommands commands.PackageCommands
	packageQueries  queries.PackageQueries
}

func NewPackageHandler(packageCommands commands.PackageCommands, packageQueries queries.PackageQueries) *PackageHandler {
	return &PackageHandler{
		packageCommands: packageCommands,
		packageQueries:  packageQueries,
	}
}

// @Summary List available packages
// @Description List unreserved, unexpired packages ordered by pickup time
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param city query string false "Filter by city"
// @Param meal_type query string false "Filter by meal type"
// @Success 200 {array} resdto.PackageListResponse
// @Failure 401 {object} httperr.Response
// @Router /packages [get]
func (h *PackageHandler) ListAvailable(c *gin.Context) {
	filter := queries.AvailableFilter{}
	if city := c.Query("city"); city != "" {
		filter.City = &city
	}
	if mealType := c.Query("meal_type"); mealType != "" {
		filter.MealType = &mealType
	}

	items, err := h.packageQueries.ListAvailable(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toPackageList(items))
}

// @Summary Get package
// @Description Get a package with its products
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /packages/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.packageQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary List outlet packages
// @Description List all packages offered by an outlet, reserved ones included
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Outlet ID"
// @Success 200 {array} resdto.PackageListResponse
// @Failure 400 {object} httperr.Response
// @Router /outlets/{id}/packages [get]
func (h *PackageHandler) ListByOutlet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.packageQueries.ListByOutlet(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toPackageList(items))
}

// @Summary List my reservations
// @Description List the packages reserved by the current user
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PackageListResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *PackageHandler) ListMyReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	items, err := h.packageQueries.ListReservedByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toPackageList(items))
}

// @Summary Create package
// @Description Offer a new surplus package (staff only)
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PackageDraftRequest true "Package draft"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req reqdto.PackageDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.packageCommands.CreatePackage(c.Request.Context(), req.ToDraft())
	if err != nil {
		h.writePackageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update package
// @Description Edit an unreserved package (staff only)
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Param request body reqdto.PackageDraftRequest true "Package draft"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /packages/{id} [put]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.PackageDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.packageCommands.UpdatePackage(c.Request.Context(), id, req.ToDraft()); err != nil {
		h.writePackageError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete package
// @Description Delete an unreserved package (staff only)
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.packageCommands.DeletePackage(c.Request.Context(), id); err != nil {
		h.writePackageError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reserve package
// @Description Reserve an available package for the current user
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /packages/{id}/reserve [post]
func (h *PackageHandler) ReservePackage(c *gin.Context) {
	packageID, ok := pathID(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	reservationID, err := h.packageCommands.ReservePackage(c.Request.Context(), packageID, userID)
	if err != nil {
		h.writePackageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ReservationResponse{
		ReservationID: reservationID,
		PackageID:     packageID,
	})
}

func toPackageList(items []*queries.PackageListItem) []*resdto.PackageListResponse {
	list := make([]*resdto.PackageListResponse, len(items))
	for i, item := range items {
		list[i] = resdto.FromPackageListItem(item)
	}
	return list
}

func (h *PackageHandler) writePackageError(c *gin.Context, err error) {
	// errs.Is, not errors.Is: the usecase sentinels arrive as marks.
	switch {
	case errs.Is(err, commands.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
	case errs.Is(err, commands.ErrOutletNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Outlet not found", nil)
	case errs.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, rootReason(err), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
