// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aleoresto/internal/http/middleware"
	"aleoresto/internal/modules/restaurant"
)

const (
	msgMethodNotAllowed = "Method Not Allowed"
	msgInvalidInput     = "Invalid input. 'location' with 'lat' and 'lng' and 'radius' are required."
	msgNoPreferences    = "No restaurants found matching your preferences."
	msgNoPriceRange     = "No restaurants found matching your price range."
	msgMissingPlaceID   = "Selected restaurant does not have a valid place_id."
	msgInternal         = "Internal Server Error"
)

// statusClientClosedRequest is used when the caller disconnects mid-pipeline.
const statusClientClosedRequest = 499

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// MethodNotAllowed answers verbs other than the ones a route accepts.
func MethodNotAllowed(c *gin.Context) {
	writeError(c, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// writeRandomError maps a FindRandom error to the response and writes one
// log entry with the detail the caller does not get to see.
func writeRandomError(c *gin.Context, err error) {
	log := middleware.Logger(c).WithField("state", restaurant.FailedState(err))

	var (
		ve    *restaurant.ValidationError
		upErr *restaurant.UpstreamError
	)
	switch {
	case errors.As(err, &ve):
		log.WithError(err).Info("invalid pick request")
		writeError(c, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, restaurant.ErrNoRestaurants):
		log.Info("no restaurants matched preferences")
		writeError(c, http.StatusNotFound, msgNoPreferences)
	case errors.Is(err, restaurant.ErrNoPriceMatch):
		log.Info("no restaurants matched price range")
		writeError(c, http.StatusNotFound, msgNoPriceRange)
	case errors.Is(err, restaurant.ErrMissingPlaceID):
		log.Error("selected candidate has no place id")
		writeError(c, http.StatusInternalServerError, msgMissingPlaceID)
	case errors.Is(err, context.Canceled) && c.Request.Context().Err() != nil:
		log.Info("client closed request")
		c.AbortWithStatus(statusClientClosedRequest)
	case errors.As(err, &upErr):
		log.WithFields(logrus.Fields{
			"stage":            upErr.Stage,
			"status":           upErr.Status,
			"provider_message": upErr.Message,
		}).WithError(upErr.Err).Error("upstream call failed")
		writeError(c, http.StatusInternalServerError, upErr.PublicMessage())
	default:
		log.WithError(err).Error("pick failed")
		writeError(c, http.StatusInternalServerError, msgInternal)
	}
}
