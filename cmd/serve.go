package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sitegen-cli/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server for live generation and deployment",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer env.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(env),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func newRouter(env *pipelineEnv) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/generate-site", handleGenerateSite(env))
	r.Post("/api/augment", handleAugment(env))

	return r
}

// generateSiteRequest is the live generation/deploy request. A caller may
// hand back a previously merged configuration to deploy as-is.
type generateSiteRequest struct {
	ScrapedData *model.RawBusinessRecord `json:"scrapedData"`
	FullConfig  *model.SiteConfig        `json:"fullConfig,omitempty"`
	Deploy      bool                     `json:"deploy,omitempty"`
}

func handleGenerateSite(env *pipelineEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateSiteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ScrapedData == nil || !req.ScrapedData.Valid() {
			writeError(w, http.StatusBadRequest, "scrapedData with a business name is required")
			return
		}

		siteCfg := req.FullConfig
		if siteCfg == nil {
			siteCfg = env.buildConfig(r.Context(), *req.ScrapedData)
		}

		if !req.Deploy {
			writeJSON(w, http.StatusOK, map[string]any{
				"success":      true,
				"businessJson": siteCfg.Business,
				"preview":      true,
			})
			return
		}

		res, err := env.deployConfig(r.Context(), siteCfg)
		if err != nil {
			zap.L().Error("deploy failed",
				zap.String("business", siteCfg.Business.Slug),
				zap.Error(err),
			)
			writeError(w, http.StatusInternalServerError, eris.ToString(err, false))
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":      true,
			"businessJson": siteCfg.Business,
			"deployment": map[string]string{
				"url":       res.URL,
				"projectId": res.ProjectID,
			},
		})
	}
}

func handleAugment(env *pipelineEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ScrapedData *model.RawBusinessRecord `json:"scrapedData"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ScrapedData == nil || !req.ScrapedData.Valid() {
			writeError(w, http.StatusBadRequest, "scrapedData with a business name is required")
			return
		}

		siteCfg := env.buildConfig(r.Context(), *req.ScrapedData)

		// usedAI reports whether a credential was configured, not whether
		// this particular call's synthesis succeeded.
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"config":  siteCfg,
			"usedAI":  env.synth.Enabled(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}
