// Package v1 implements the HTTP API for projections, purchase analyses
// and goal simulations.
package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/runway-finance/backend/pkg/forecast"
	"github.com/runway-finance/backend/pkg/httputil"
)

// MaxHorizon is the maximum number of days a timeline can be projected for.
const MaxHorizon = 1095

var (
	ErrHorizonOutOfRange = fmt.Errorf("%w: the number of days must be between 1 and %d", httputil.ErrInvalidQuery, MaxHorizon)
	ErrMissingProfile    = fmt.Errorf("%w: a profile or a snapshot must be set", httputil.ErrInvalidBody)
	ErrMissingGoal       = fmt.Errorf("%w: a goal must be set in the body or selected with the goal query parameter", httputil.ErrInvalidBody)
	errGoalNotInList     = errors.New("there is no goal with this ID in the goals list")
)

// Controller holds the configuration shared by all v1 handlers.
type Controller struct {
	Now     func() time.Time // Clock used as "today" for all computations
	Horizon int              // Days projected by default, forecast.DefaultHorizon if 0
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

// DefaultHorizon returns the number of days projected when a request sets none.
func (co Controller) DefaultHorizon() int {
	if co.Horizon < 1 {
		return forecast.DefaultHorizon
	}
	return co.Horizon
}

// ParseHorizon parses a number of days to project.
func ParseHorizon(s string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	if days < 1 || days > MaxHorizon {
		return 0, ErrHorizonOutOfRange
	}

	return days, nil
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	r.OPTIONS("/timelines", httputil.OptionsPost)
	r.POST("/timelines", co.CreateTimeline)

	r.OPTIONS("/analyses", httputil.OptionsPost)
	r.POST("/analyses", co.CreateAnalysis)

	r.OPTIONS("/goal-simulations", httputil.OptionsPost)
	r.POST("/goal-simulations", co.CreateGoalSimulation)

	r.OPTIONS("/snapshots", httputil.OptionsPost)
	r.POST("/snapshots", co.CreateSnapshot)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Timelines       string `json:"timelines" example:"https://example.com/api/v1/timelines"`              // URL of the timeline projection endpoint
	Analyses        string `json:"analyses" example:"https://example.com/api/v1/analyses"`                // URL of the purchase analysis endpoint
	GoalSimulations string `json:"goalSimulations" example:"https://example.com/api/v1/goal-simulations"` // URL of the goal simulation endpoint
	Snapshots       string `json:"snapshots" example:"https://example.com/api/v1/snapshots"`              // URL of the budget snapshot endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(httputil.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Timelines:       url + "/v1/timelines",
			Analyses:        url + "/v1/analyses",
			GoalSimulations: url + "/v1/goal-simulations",
			Snapshots:       url + "/v1/snapshots",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
