package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runway-finance/backend/pkg/httputil"
)

// Set by the router, see RegisterRoutes.
var (
	apiVersion = "0.0.0"
	horizon    = 365
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}
type Object struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the Runway backend
	Horizon int    `json:"horizon" example:"365"`   // days projected by /v1/timelines when no "days" query parameter is set
}

// RegisterRoutes registers the version endpoint with the version string and
// the default projection horizon this instance runs with.
func RegisterRoutes(r *gin.RouterGroup, version string, defaultHorizon int) {
	apiVersion = version
	horizon = defaultHorizon

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API and the projection horizon it is configured with
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Data: Object{
			Version: apiVersion,
			Horizon: horizon,
		},
	})
}
