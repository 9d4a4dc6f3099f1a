package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/procwatch/procwatch/internal/manager"
	"github.com/procwatch/procwatch/internal/metrics"
	"github.com/procwatch/procwatch/internal/process"
)

// Router provides the HTTP control surface. It owns no supervision state; it
// is a stateless caller of the manager.
// Endpoints:
//
//	GET  {basePath}/processes                    list statuses in declaration order
//	POST {basePath}/processes/:name/start
//	POST {basePath}/processes/:name/stop
//	POST {basePath}/processes/:name/restart
//	POST {basePath}/processes/:name/git-pull     run "git pull" in the spec's cwd
//	POST {basePath}/config/reload
//	POST {basePath}/reconcile                    trigger one reconciliation pass
//	GET  {basePath}/healthz
//	GET  {basePath}/metrics
type Router struct {
	mgr      *manager.Manager
	basePath string
	reload   func() ([]process.Spec, error) // re-reads the config file
}

// NewRouter constructs a Router. reload re-reads the configuration and
// returns the new spec list; it may be nil when reloading is not supported
// (embedded use without a config file).
func NewRouter(mgr *manager.Manager, basePath string, reload func() ([]process.Spec, error)) *Router {
	return &Router{mgr: mgr, basePath: sanitizeBase(basePath), reload: reload}
}

// Handler returns an http.Handler powered by gin that can be mounted in any
// server or mux.
func (r *Router) Handler() http.Handler {
	g := gin.New()
	g.Use(gin.Recovery())
	group := g.Group(r.basePath)
	group.GET("/processes", r.handleList)
	group.POST("/processes/:name/start", r.handleStart)
	group.POST("/processes/:name/stop", r.handleStop)
	group.POST("/processes/:name/restart", r.handleRestart)
	group.POST("/processes/:name/git-pull", r.handleGitPull)
	group.POST("/config/reload", r.handleReload)
	group.POST("/reconcile", r.handleReconcile)
	group.GET("/healthz", r.handleHealthz)
	group.GET("/metrics", gin.WrapH(metrics.Handler()))
	return g
}

// NewServer starts a standalone HTTP server on addr using this router. When
// certFile and keyFile are both set the server uses TLS.
func NewServer(addr, certFile, keyFile string, r *Router) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if certFile != "" && keyFile != "" {
			_ = server.ListenAndServeTLS(certFile, keyFile)
			return
		}
		_ = server.ListenAndServe()
	}()
	return server
}

func sanitizeBase(bp string) string {
	bp = strings.TrimRight(bp, "/")
	if bp != "" && !strings.HasPrefix(bp, "/") {
		bp = "/" + bp
	}
	return bp
}

// --- Handlers ---

type errorResp struct {
	Error string `json:"error"`
}

type actionResp struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (r *Router) handleList(c *gin.Context) {
	c.JSON(http.StatusOK, r.mgr.Statuses())
}

func (r *Router) handleStart(c *gin.Context) {
	name := c.Param("name")
	if err := r.mgr.Start(name); err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: "failed to start process: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, actionResp{Name: name, Status: "success", Message: "Process started"})
}

func (r *Router) handleStop(c *gin.Context) {
	name := c.Param("name")
	if !r.mgr.Stop(name) {
		c.JSON(http.StatusInternalServerError, errorResp{Error: "failed to stop process or process not running"})
		return
	}
	c.JSON(http.StatusOK, actionResp{Name: name, Status: "success", Message: "Process stopped"})
}

func (r *Router) handleRestart(c *gin.Context) {
	name := c.Param("name")
	if err := r.mgr.Restart(name); err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: "failed to restart process: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, actionResp{Name: name, Status: "success", Message: "Process restarted"})
}

func (r *Router) handleReload(c *gin.Context) {
	if r.reload == nil {
		c.JSON(http.StatusNotImplemented, errorResp{Error: "configuration reload not supported"})
		return
	}
	specs, err := r.reload()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: "reload failed: " + err.Error()})
		return
	}
	if err := r.mgr.Reload(specs); err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: "reload failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Configuration reloaded"})
}

func (r *Router) handleReconcile(c *gin.Context) {
	r.mgr.ReconcileOnce()
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (r *Router) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
