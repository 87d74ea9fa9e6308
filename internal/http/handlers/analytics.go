package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type reportDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Param       string `json:"param,omitempty"`
}

func (a *App) AnalyticsReports(w http.ResponseWriter, r *http.Request) {
	reports := a.Analytics.Reports()
	dtos := make([]reportDTO, 0, len(reports))
	for _, rep := range reports {
		dtos = append(dtos, reportDTO{Name: rep.Name, Description: rep.Description, Param: rep.Param})
	}
	a.json(w, http.StatusOK, map[string]any{"items": dtos, "count": len(dtos)})
}

func (a *App) AnalyticsRun(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	res, err := a.Analytics.Run(r.Context(), name, r.URL.Query().Get("city"))
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"report":  name,
		"columns": res.Columns,
		"rows":    res.Rows,
	})
}
