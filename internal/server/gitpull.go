package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/procwatch/procwatch/internal/manager"
)

type commitInfo struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Message string `json:"message"`
}

type gitPullResp struct {
	Name         string      `json:"name"`
	Status       string      `json:"status"`
	Output       string      `json:"output"`
	Error        string      `json:"error"`
	LatestCommit *commitInfo `json:"latest_commit,omitempty"`
}

// handleGitPull runs "git pull" in the spec's working directory and, when the
// pull changed anything, reports the latest commit.
func (r *Router) handleGitPull(c *gin.Context) {
	name := c.Param("name")
	ctx := c.Request.Context()

	result, err := r.mgr.RunCommand(ctx, name, []string{"git", "pull"})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, manager.ErrNotConfigured) {
			code = http.StatusNotFound
		}
		c.JSON(code, errorResp{Error: err.Error()})
		return
	}

	resp := gitPullResp{
		Name:   name,
		Status: "error",
		Output: result.Stdout,
		Error:  result.Stderr,
	}
	if result.Success {
		resp.Status = "success"
	}

	if result.Success && !strings.Contains(result.Stdout, "Already up to date") {
		logResult, err := r.mgr.RunCommand(ctx, name, []string{"git", "log", "-1", "--format=%H|%an|%s"})
		if err == nil && logResult.Success {
			parts := strings.SplitN(strings.TrimSpace(logResult.Stdout), "|", 3)
			if len(parts) == 3 {
				resp.LatestCommit = &commitInfo{Hash: parts[0], Author: parts[1], Message: parts[2]}
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
