package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ez_uuid "github.com/runway-finance/backend/internal/uuid"
	"github.com/runway-finance/backend/pkg/analysis"
	"github.com/runway-finance/backend/pkg/goals"
	"github.com/runway-finance/backend/pkg/httperrors"
	"github.com/runway-finance/backend/pkg/httputil"
	"github.com/runway-finance/backend/pkg/models"
	"golang.org/x/exp/slices"
)

// GoalSimulationEditable is the input for a goal simulation.
type GoalSimulationEditable struct {
	Profile ProfileEditable `json:"profile"`
	Goals   []GoalEditable  `json:"goals"` // All goals of the user. Their contributions are committed before the simulated goal.
	Goal    *GoalEditable   `json:"goal"`  // The goal to simulate, unless selected with the goal query parameter
}

type GoalSimulationResponse struct {
	Data  *models.GoalSimulation `json:"data"`                                               // The feasibility of the goal
	Error *string                `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// @Summary		Simulate a goal
// @Description	Checks whether a savings goal can be reached by its deadline and suggests a later deadline if not
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200			{object}	GoalSimulationResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		404			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			simulation	body		GoalSimulationEditable	true	"Profile and goals"
// @Param			goal		query		string					false	"ID of the goal in the goals list to simulate"
// @Router			/v1/goal-simulations [post]
func (co Controller) CreateGoalSimulation(c *gin.Context) {
	var query QueryGoalSimulation
	if err := httputil.BindQuery(c, &query); err != nil {
		httperrors.Handler(c, err)
		return
	}

	var editable GoalSimulationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	list := make([]models.Goal, 0, len(editable.Goals))
	for _, g := range editable.Goals {
		list = append(list, g.model())
	}

	var goal models.Goal
	switch {
	case query.Goal != ez_uuid.Nil:
		i := slices.IndexFunc(list, func(g models.Goal) bool {
			return g.ID == query.Goal.UUID
		})
		if i == -1 {
			httperrors.New(c, http.StatusNotFound, "%s: %s", errGoalNotInList.Error(), query.Goal.String())
			return
		}
		goal = list[i]

	case editable.Goal != nil:
		goal = editable.Goal.model()

	default:
		httperrors.Handler(c, ErrMissingGoal)
		return
	}

	snapshot := analysis.NewSnapshot(editable.Profile.model())
	simulation := goals.Solve(snapshot.CapacityToSave, goals.Commitments(list, goal.ID), goal, co.now())
	observeGoalSimulation(simulation.IsPossible)

	c.JSON(http.StatusOK, GoalSimulationResponse{Data: &simulation})
}
