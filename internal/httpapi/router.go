package httpapi

import (
	"net/http"

	"resumatch-engine/internal/events"
)

type Deps struct {
	Engine Matcher
	Hub    *events.Hub
}

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mh := MatchHandler{Engine: d.Engine}
	mux.HandleFunc("/match", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: mh.Match,
	}))
	mux.HandleFunc("/skills/scan", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: mh.Scan,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
