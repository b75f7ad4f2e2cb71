package controllers

import (
	"net/http"
	"time"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/services"
	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

// CronController exposes the scheduler's roll-forward as an HTTP trigger so
// an external cron (or an operator) can force a run. The in-process cron
// calls the service directly.
type CronController struct {
	schedulerService *services.RentSchedulerService
}

func NewCronController(schedulerService *services.RentSchedulerService) *CronController {
	return &CronController{schedulerService: schedulerService}
}

// POST /api/v1/cron/process-rents
func (c *CronController) ProcessRentsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r); !ok {
		respondUnauthorized(w)
		return
	}

	count, err := c.schedulerService.AdvancePeriods(r.Context(), time.Now().UTC())
	if err != nil {
		respondServiceError(w, err, "Failed to process rents")
		return
	}
	utils.Logger.Infof("Manual rent roll-forward created %d rents", count)
	w.WriteHeader(http.StatusNoContent)
}
