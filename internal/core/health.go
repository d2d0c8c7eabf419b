package core

import "net/http"

// healthResponse is the health endpoint payload.
type healthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
}

// HandleHealth reports liveness. The service has no stateful dependencies to
// probe: the park dataset is embedded and weather upstreams are checked
// lazily per request.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, r, http.StatusOK, healthResponse{
		Status:      "ok",
		Service:     s.Config.Service,
		Environment: s.Config.Environment,
	})
}
