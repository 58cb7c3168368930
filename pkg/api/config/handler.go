package config

import (
	"encoding/json"
	"net/http"

	coreConfig "strategic_posture/pkg/core/config"
	"strategic_posture/pkg/core/profile"
)

type Response struct {
	DefaultSelection string   `json:"default_selection"`
	Parallel         bool     `json:"parallel"`
	Locale           string   `json:"locale"`
	Profiles         []string `json:"profiles"`
	Tags             []string `json:"tags"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	Resolver *profile.Resolver
	Settings coreConfig.Settings
}

// NewHandler creates a new config handler
func NewHandler(resolver *profile.Resolver, settings coreConfig.Settings) *Handler {
	if resolver == nil {
		resolver = profile.NewResolver()
	}
	return &Handler{
		Resolver: resolver,
		Settings: settings,
	}
}

func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	resp := Response{
		DefaultSelection: h.Settings.DefaultSelection,
		Parallel:         h.Settings.Parallel,
		Locale:           h.Settings.Language().String(),
		Profiles:         h.Resolver.Names(),
		Tags:             knownTags(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func knownTags() []string {
	tags := profile.Vocabulary()
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
