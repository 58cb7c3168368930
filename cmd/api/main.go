package main

import (
	"log"
	"net/http"

	"strategic_posture/pkg/api/config"
	"strategic_posture/pkg/api/dashboard"
	coreConfig "strategic_posture/pkg/core/config"
	"strategic_posture/pkg/core/dataset"
)

func main() {
	// Load .env and environment settings
	settings, err := coreConfig.Load()
	if err != nil {
		coreConfig.Exitf("[FATAL] Failed to load settings: %v", err)
	}

	resolver, err := settings.Resolver()
	if err != nil {
		coreConfig.Exitf("[FATAL] Failed to load profiles: %v", err)
	}
	assembler := dataset.NewAssembler(resolver)

	// Config endpoints
	configHandler := config.NewHandler(resolver, settings)
	http.HandleFunc("/api/config", configHandler.HandleConfig)

	// Dashboard endpoints
	dashboardHandler := dashboard.NewHandler(assembler, settings)
	http.HandleFunc("/api/dashboard", dashboardHandler.HandleDashboard)
	http.HandleFunc("/api/dashboard/report", dashboardHandler.HandleReport)

	// Catalog endpoints
	http.HandleFunc("/api/catalog/branches", dashboard.HandleBranches)
	http.HandleFunc("/api/catalog/programs", dashboard.HandlePrograms)
	http.HandleFunc("/api/catalog/missiles", dashboard.HandleMissiles)
	http.HandleFunc("/api/catalog/naval-assets", dashboard.HandleNavalAssets)
	http.HandleFunc("/api/catalog/reference", dashboard.HandleReference)

	log.Printf("[API] Server starting on %s (default selection %q, parallel=%t)", settings.APIAddr, settings.DefaultSelection, settings.Parallel)
	log.Println("[API]   - GET /api/config")
	log.Println("[API]   - GET /api/dashboard?mode=&selection=")
	log.Println("[API]   - GET /api/dashboard/report?format=markdown|html|csv|json")
	log.Println("[API]   - GET /api/catalog/{branches,programs,missiles,naval-assets,reference}")

	if err := http.ListenAndServe(settings.APIAddr, nil); err != nil {
		coreConfig.Exitf("[FATAL] Server failed to start: %v", err)
	}
}
