package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/runway-finance/backend/pkg/forecast"
	"github.com/runway-finance/backend/pkg/httperrors"
	"github.com/runway-finance/backend/pkg/httputil"
	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// TimelineEditable is the input for a timeline projection.
type TimelineEditable struct {
	Profile  ProfileEditable        `json:"profile"`
	History  []HistoryEntryEditable `json:"history"`
	Purchase *PurchaseEditable      `json:"purchase"` // Purchase to simulate on top of the history, if any
}

type TimelineResponse struct {
	Data  models.Timeline `json:"data"`                                               // Month buckets of the projection
	Error *string         `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// @Summary		Project the balance
// @Description	Projects the daily balance from the first day of the balance month on.
// @Description	Days before the balance date have an unknown balance.
// @Tags			Timelines
// @Accept			json
// @Produce		json
// @Success		200				{object}	TimelineResponse
// @Failure		400				{object}	httperrors.HTTPError
// @Failure		500				{object}	httperrors.HTTPError
// @Param			timeline		body		TimelineEditable	true	"Profile, history and purchase"
// @Param			days			query		int					false	"Days projected after the balance date. Defaults to the configured horizon."
// @Param			warningBelow	query		number				false	"Balances below this are marked as warning"
// @Router			/v1/timelines [post]
func (co Controller) CreateTimeline(c *gin.Context) {
	var query QueryTimeline
	if err := httputil.BindQuery(c, &query); err != nil {
		httperrors.Handler(c, err)
		return
	}

	horizon := co.DefaultHorizon()
	if query.Days != "" {
		days, err := ParseHorizon(query.Days)
		if err != nil {
			httperrors.Handler(c, err)
			return
		}
		horizon = days
	}

	var threshold decimal.NullDecimal
	if query.WarningBelow != "" {
		d, err := decimal.NewFromString(query.WarningBelow)
		if err != nil {
			httperrors.Handler(c, httputil.ErrInvalidQuery)
			return
		}
		threshold = decimal.NewNullDecimal(d)
	}

	var editable TimelineEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	now := co.now()
	in := forecast.Input{
		Profile: editable.Profile.model(),
		History: history(editable.History),
		Horizon: horizon,
		Now:     now,
	}

	if editable.Purchase != nil {
		in.Simulated = forecast.Simulate(editable.Purchase.model(), now)
	}

	timeline := forecast.Build(in)
	if threshold.Valid {
		timeline = timeline.WithWarningThreshold(threshold.Decimal)
	}

	timelinesBuilt.Inc()
	log.Debug().Int("horizon", horizon).Int("months", len(timeline)).Msg("timeline projected")

	c.JSON(http.StatusOK, TimelineResponse{Data: timeline})
}
