package http

import (
	"net/http"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/handler/http/response"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/period"
)

type PeriodHandler interface {
	// Resolve returns the concrete date range of a period selection
	Resolve(w http.ResponseWriter, r *http.Request)
}

type periodHandlerImpl struct {
	resolver *period.Resolver
}

func NewPeriodHandler(resolver *period.Resolver) PeriodHandler {
	return &periodHandlerImpl{resolver: resolver}
}

// Resolve handles GET /periods/resolve
func (h *periodHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sel, err := period.ParseSelection(q.Get("period"), q.Get("start_date"), q.Get("end_date"), h.resolver.Location)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rng, err := h.resolver.Resolve(sel)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.PeriodRange{
		Type:      string(sel.Type),
		StartDate: rng.StartDate(),
		EndDate:   rng.EndDate(),
		Days:      rng.Days(),
	})
}
