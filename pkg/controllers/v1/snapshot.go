package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runway-finance/backend/pkg/analysis"
	"github.com/runway-finance/backend/pkg/httperrors"
	"github.com/runway-finance/backend/pkg/httputil"
	"github.com/runway-finance/backend/pkg/models"
)

type SnapshotCreate struct {
	Profile ProfileEditable `json:"profile"`
}

type SnapshotResponse struct {
	Data  *models.Snapshot `json:"data"`                                               // The budget snapshot
	Error *string          `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// @Summary		Derive a budget snapshot
// @Description	Computes the monthly figures and ratios a purchase is judged against
// @Tags			Snapshots
// @Accept			json
// @Produce		json
// @Success		200			{object}	SnapshotResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			snapshot	body		SnapshotCreate	true	"Profile"
// @Router			/v1/snapshots [post]
func (co Controller) CreateSnapshot(c *gin.Context) {
	var create SnapshotCreate
	if err := httputil.BindData(c, &create); err != nil {
		httperrors.Handler(c, err)
		return
	}

	snapshot := analysis.NewSnapshot(create.Profile.model())
	c.JSON(http.StatusOK, SnapshotResponse{Data: &snapshot})
}
