// Seed HTTP handler (development/test data generation).
//
// The route is mounted only when seeding is enabled in configuration, so a
// production deployment never exposes it.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-workout-backend/internal/services"
	"github.com/tbourn/go-workout-backend/internal/utils"
)

// SeedResponse wraps the generated records.
type SeedResponse struct {
	Count     int                         `json:"count"`
	Generated []services.GeneratedWorkout `json:"generated"`
}

// Seed godoc
// @ID          seed
// @Summary     Generate random workout data
// @Description Ensures exercise reference data exists, then inserts random set+workout pairs for today's date. Available only when seeding is enabled.
// @Tags        Seed
// @Produce     json
//
// @Param       count  query  int  false  "Number of pairs to generate"  minimum(1) default(100)
//
// @Success     200  {object}  handlers.SeedResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /seed [post]
func (h *Handlers) Seed(c *gin.Context) {
	count := utils.AtoiDefault(c.Query("count"), 100)

	out, err := h.seedSvc.Generate(c.Request.Context(), count)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSeedFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, SeedResponse{Count: len(out), Generated: out})
}
