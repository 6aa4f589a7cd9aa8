package adaptor

import (
	"net/http"

	"ora-booking/internal/usecase"
	"ora-booking/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboard usecase.DashboardService
	log       *zap.Logger
}

func NewDashboardHandler(dashboard usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		log:       log.With(zap.String("handler", "dashboard")),
	}
}

// GetDashboard handles GET /api/admin/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.GetDashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard retrieved", stats)
}
