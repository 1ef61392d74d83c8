package server

import (
	"net/http"

	"eaglegym/internal/config"
	"eaglegym/internal/logger"
	"eaglegym/internal/session"

	"github.com/gin-gonic/gin"
)

// BranchMiddleware selects the branch named in the path for the visitor's
// session. Unknown slugs redirect to the landing page and leave the
// selection untouched.
func BranchMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params branchPath
		if err := c.ShouldBindUri(&params); err != nil || ValidateStruct(params) != nil || !cfg.IsKnownBranch(params.Slug) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		sess, ok := session.FromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session not found"})
			return
		}

		gymSlug := sess.Selection.SelectedGym()
		if gymSlug == "" {
			gymSlug = cfg.DefaultGym
		}
		if err := sess.Selection.SelectBranch(c.Request.Context(), gymSlug, params.Slug); err != nil {
			// the selection is applied; only the branch list reload failed
			logger.Warn("Branch list reload failed", "gym", gymSlug, "branch", params.Slug, "error", err)
		}

		c.Next()
	}
}
