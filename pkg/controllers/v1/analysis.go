package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runway-finance/backend/pkg/analysis"
	"github.com/runway-finance/backend/pkg/httperrors"
	"github.com/runway-finance/backend/pkg/httputil"
	"github.com/runway-finance/backend/pkg/models"
)

// AnalysisEditable is the input for a purchase analysis.
//
// With a profile, the snapshot is derived from it and the purchase is also
// checked against the projected cash flow. A snapshot alone only allows the
// static checks.
type AnalysisEditable struct {
	Profile  *ProfileEditable       `json:"profile"`
	History  []HistoryEntryEditable `json:"history"`
	Purchase PurchaseEditable       `json:"purchase"`
	Snapshot *SnapshotEditable      `json:"snapshot"` // Used instead of the one derived from the profile
}

type AnalysisResponse struct {
	Data  *models.AnalysisResult `json:"data"`                                               // The verdict for the purchase
	Error *string                `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// @Summary		Analyze a purchase
// @Description	Classifies a purchase as green, orange or red and returns the reasons, tips and projected figures
// @Tags			Analyses
// @Accept			json
// @Produce		json
// @Success		200			{object}	AnalysisResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			analysis	body		AnalysisEditable	true	"Purchase and profile or snapshot"
// @Router			/v1/analyses [post]
func (co Controller) CreateAnalysis(c *gin.Context) {
	var editable AnalysisEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if editable.Profile == nil && editable.Snapshot == nil {
		httperrors.Handler(c, ErrMissingProfile)
		return
	}

	var (
		snapshot models.Snapshot
		dynamic  *analysis.Dynamic
	)

	if editable.Profile != nil {
		profile := editable.Profile.model()
		snapshot = analysis.NewSnapshot(profile)
		dynamic = &analysis.Dynamic{
			Profile: profile,
			History: history(editable.History),
		}
	}

	if editable.Snapshot != nil {
		snapshot = editable.Snapshot.model()
	}

	result := analysis.Analyze(snapshot, editable.Purchase.model(), dynamic, co.now())
	observeAnalysis(result.Verdict)

	c.JSON(http.StatusOK, AnalysisResponse{Data: &result})
}
