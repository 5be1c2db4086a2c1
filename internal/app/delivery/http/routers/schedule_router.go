package routers

import (
	"openhours-service/internal/app/delivery/http/middlewares"
	"openhours-service/internal/app/services/schedules"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, m *middlewares.Middlewares, c *schedules.ScheduleController) {
	router.Get("/", c.FindAllSchedules)
	router.With(m.APIKeyAuth).Post("/", c.CreateSchedule)
	router.Post("/merge", c.MergeRanges)

	router.Route("/{scheduleID}", func(r chi.Router) {
		r.Get("/", c.FindScheduleByID)
		r.With(m.APIKeyAuth).Put("/", c.UpdateSchedule)
		r.With(m.APIKeyAuth).Delete("/", c.DeleteSchedule)

		r.Get("/status", c.ScheduleStatus)
		r.Get("/next-open", c.NextOpen)
		r.Get("/next-close", c.NextClose)
		r.Get("/previous-open", c.PreviousOpen)
		r.Get("/previous-close", c.PreviousClose)
		r.Get("/current-range", c.CurrentOpenRange)
		r.Get("/diff", c.DiffInState)
		r.Get("/week", c.Week)
		r.Get("/exceptions", c.Exceptions)
	})
}
