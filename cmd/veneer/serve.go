package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var serveOpts struct {
	theme  string
	listen string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the active theme over HTTP",
	Long: `Activate a theme and serve it: published assets are mounted under
/themes/ straight from the public root, and / renders the theme's
index.html template resolved through the view search paths (the theme
template shadows any application default of the same name).

This is the bootstrap sequence a host application performs, in
miniature. The theme defaults to themes.default from the config file.

Examples:
  veneer serve --theme dark
  veneer serve --theme dark --listen :3000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveOpts.theme, "theme", "",
		"Theme to activate (default: themes.default from config)")
	serveCmd.Flags().StringVar(&serveOpts.listen, "listen", "",
		"Listen address (default: server.listen from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	id := serveOpts.theme
	if id == "" {
		id = cfg.Themes.Default
	}
	if id == "" {
		return fmt.Errorf("no theme to serve: pass --theme or set themes.default")
	}

	listen := serveOpts.listen
	if listen == "" {
		listen = cfg.Server.Listen
	}

	if err := registry.Activate(id); err != nil {
		return fmt.Errorf("activate %q: %w", id, err)
	}
	logger.Info("theme activated", "theme", id, "search_paths", finder.Locations())

	mux := http.NewServeMux()
	mux.Handle("/themes/", http.StripPrefix("/themes/",
		http.FileServer(http.Dir(cfg.Themes.PublicRoot))))
	mux.HandleFunc("/", serveIndex)

	srv := &http.Server{
		Addr:    listen,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "theme", id, "listen", listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// serveIndex renders the theme's index.html template with the merged
// theme configuration as data.
func serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	path, ok := finder.Lookup("index.html")
	if !ok {
		http.Error(w, "no index.html on the template search path", http.StatusNotFound)
		return
	}

	tpl, err := template.ParseFiles(path)
	if err != nil {
		logger.Error("parse template", "path", path, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Theme":  currentThemeID(),
		"Config": confStore.Sub("theme"),
	}
	if err := tpl.Execute(w, data); err != nil {
		logger.Error("render template", "path", path, "error", err)
	}
}

func currentThemeID() string {
	id, _ := registry.Current()
	return id
}
