package launcher

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/schardosin/askhook/pkg/api"
	"github.com/schardosin/askhook/pkg/config"
	"github.com/schardosin/askhook/pkg/webhook"
)

// ServeConfig contains configuration for the web server
type ServeConfig struct {
	Port       int
	WebhookURL string // prefills the page's URL field
}

// RunServe runs the embedded single-page UI and its JSON API
func RunServe(cfg *ServeConfig) error {
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		log.Printf("Warning: failed to load config: %v", err)
		appCfg = &config.AppConfig{}
	}

	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		webhookURL = appCfg.Webhook.URL
	}

	api.GetStore().Configure(webhook.NewClient(appCfg.Webhook.Timeout()), appCfg.UI.AckText, appCfg.UI.ErrorText)

	router := mux.NewRouter()
	api.RegisterRoutes(router)
	router.HandleFunc("/", serveIndex(webhookURL)).Methods("GET")

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting askhook web UI on http://localhost:%d", cfg.Port)
	log.Printf("Open your browser to ask questions")

	return http.ListenAndServe(addr, router)
}

// serveIndex renders the page with a fresh session token baked in.
// Every page load gets its own session; nothing survives a reload.
func serveIndex(webhookURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := indexPageData{
			SessionID:  api.GetStore().CreateSession(),
			WebhookURL: webhookURL,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexPageTmpl.Execute(w, data); err != nil {
			log.Printf("failed to render index page: %v", err)
		}
	}
}
