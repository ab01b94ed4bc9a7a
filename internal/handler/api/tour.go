package api

import (
	"net/http"
	"strconv"

	resdto "tourpay/internal/handler/dto/response"
	"tourpay/internal/handler/httperr"
	"tourpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TourHandler struct {
	q queries.TourQueries
}

func NewTourHandler(q queries.TourQueries) *TourHandler {
	return &TourHandler{q: q}
}

// @Summary List tours
// @Description List the tour catalog with per-asset prices
// @Tags tours
// @Produce json
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.TourResponse
// @Failure 400 {object} httperr.Response
// @Router /tours [get]
func (h *TourHandler) List(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offset", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), limit, offset)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromTourViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get tour
// @Description Get a tour and its prices
// @Tags tours
// @Produce json
// @Param id path int true "Tour ID"
// @Success 200 {object} resdto.TourResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tours/{id} [get]
func (h *TourHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tour ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromTourView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
