package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	apperrors "github.com/robertoranon/gltf-transform/pkg/errors"
	gio "github.com/robertoranon/gltf-transform/pkg/io"
	"github.com/robertoranon/gltf-transform/pkg/pipeline"
	"github.com/robertoranon/gltf-transform/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	listen  string // listen address, e.g. ":8080"
	noCache bool   // disable the artifact cache
}

// serveCommand creates the serve command exposing the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{listen: c.Config.Listen}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve documents and rendering over HTTP",
		Long: `Serve starts an HTTP server exposing snapshot storage and rendering.

Endpoints:
  GET    /healthz                    liveness probe
  POST   /render                     render a posted snapshot
  GET    /snapshots                  list stored snapshot names
  PUT    /snapshots/{name}           store a snapshot
  GET    /snapshots/{name}           fetch a stored snapshot
  DELETE /snapshots/{name}           delete a stored snapshot
  GET    /snapshots/{name}/render    render a stored snapshot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.listen, "listen", opts.listen, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := &server{
		runner: runner,
		store:  st,
		cli:    c,
	}

	httpServer := &http.Server{
		Addr:              opts.listen,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", opts.listen)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// server holds the HTTP handler dependencies.
type server struct {
	runner *pipeline.Runner
	store  store.Store
	cli    *CLI
}

// routes builds the chi router.
func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)

	r.Route("/snapshots", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Put("/{name}", s.handleSave)
		r.Get("/{name}", s.handleGet)
		r.Delete("/{name}", s.handleDelete)
		r.Get("/{name}/render", s.handleRenderStored)
	})

	return r
}

// logRequests logs each request with method, path, and duration.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.cli.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// renderRequest is the POST /render body.
type renderRequest struct {
	Snapshot gio.Snapshot `json:"snapshot"`
	Formats  []string     `json:"formats,omitempty"`
	Style    string       `json:"style,omitempty"`
	Detailed bool         `json:"detailed,omitempty"`
}

// renderResponse is the render endpoint response. Artifact bytes are
// base64-encoded by encoding/json.
type renderResponse struct {
	SnapshotHash string            `json:"snapshot_hash"`
	Artifacts    map[string][]byte `json:"artifacts"`
	CacheHit     bool              `json:"cache_hit"`
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid request body: %v", err))
		return
	}
	s.renderSnapshot(w, r, req.Snapshot, pipeline.Options{
		Formats:  req.Formats,
		Style:    req.Style,
		Detailed: req.Detailed,
	})
}

func (s *server) handleRenderStored(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}

	opts := pipeline.Options{
		Style:    r.URL.Query().Get("style"),
		Detailed: r.URL.Query().Get("detailed") == "true",
	}
	if f := r.URL.Query().Get("format"); f != "" {
		opts.Formats = []string{f}
	}
	s.renderSnapshot(w, r, rec.Snapshot, opts)
}

func (s *server) renderSnapshot(w http.ResponseWriter, r *http.Request, snap gio.Snapshot, opts pipeline.Options) {
	opts.Snapshot = &snap
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	// A single requested format is returned raw with its content type.
	if len(opts.Formats) == 1 {
		format := opts.Formats[0]
		w.Header().Set("Content-Type", contentType(format))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[format])
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		SnapshotHash: result.SnapshotHash,
		Artifacts:    result.Artifacts,
		CacheHit:     result.CacheInfo.RenderHit,
	})
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"snapshots": names})
}

func (s *server) handleSave(w http.ResponseWriter, r *http.Request) {
	var snap gio.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid snapshot body: %v", err))
		return
	}

	// Reject snapshots that cannot be materialized.
	if _, err := gio.ToDocument(snap); err != nil {
		writeError(w, err)
		return
	}

	name := chi.URLParam(r, "name")
	if err := s.store.Save(r.Context(), name, snap); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// contentType maps a render format to its MIME type.
func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps application error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidDocument,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidStyle,
		apperrors.ErrCodeInvalidPath, apperrors.ErrCodeInvalidExtension:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound,
		apperrors.ErrCodeSnapshotNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": apperrors.UserMessage(err)})
}
