package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evangerty1/stocks-pipeline/internal/domain/dto"
	"github.com/evangerty1/stocks-pipeline/internal/service"
)

// Handler provides the HTTP handlers for the movers query endpoint.
//
// Responsibilities:
//   - Delegate to the service layer for the trailing-window read
//   - Translate domain records into response DTOs
//   - Return structured JSON with appropriate HTTP status codes
type Handler struct {
	svc service.MoversService
}

// NewHandler constructs a Handler with its service dependency injected.
func NewHandler(svc service.MoversService) *Handler {
	return &Handler{svc: svc}
}

// GetMovers handles GET /api/v1/movers requests.
//
// The window is fixed at the trailing 7 calendar days; the request takes no
// parameters. Days with no record are simply absent from the list, which is
// how the frontend tells "never ingested" apart from the explicit
// market-closed and no-data sentinels.
//
// GetMovers godoc
// @Summary      Recent top movers
// @Description  Returns the daily top-mover records of the trailing 7 days, ordered by date ascending
// @Tags         movers
// @Produce      json
// @Success      200  {object}  dto.MoversResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/movers [get]
func (h *Handler) GetMovers(c *gin.Context) {
	movers, err := h.svc.GetRecentMovers(c.Request.Context())
	if err != nil {
		// a store failure must stay distinguishable from "no data yet"
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch movers", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewMoversResponse(movers))
}
