package handlers

import (
	"context"
	"net/http"
	"time"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, database := "ok", "ok"
	if a.DB == nil {
		database = "not configured"
	} else if err := a.DB.PingContext(ctx); err != nil {
		status, database = "degraded", "unreachable"
	}
	a.json(w, http.StatusOK, map[string]string{"status": status, "database": database})
}
