package handler

import (
	"context"
	"time"

	"github.com/wanderwise/backend/internal/handler/gen"
)

const pingTimeout = 2 * time.Second

// GetHealth handles GET /healthz.
// It returns 200 {"status":"ok"} when the server is running and, if a
// database is configured, reachable; otherwise 503 {"status":"unavailable"}.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	if s.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := s.db.Ping(pingCtx); err != nil {
			s.log.WarnContext(ctx, "health check failed", "error", err)
			return gen.GetHealth503JSONResponse{Status: gen.HealthStatusUnavailable}, nil
		}
	}
	return gen.GetHealth200JSONResponse{Status: gen.HealthStatusOk}, nil
}
