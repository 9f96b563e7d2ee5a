package middleware

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Sravanvenkat03/library/internal/config"
)

// Profiler times each request, logs the interval, and appends a line
// to a per-endpoint report file. It never touches the response body
// or status. Report writes are best-effort: a failed write is logged
// and the request proceeds unchanged.
func Profiler(cfg config.ProfilerConfig) gin.HandlerFunc {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		log.Warn().Err(err).Str("dir", cfg.Dir).Msg("could not create profiler directory")
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		path := c.Request.URL.Path

		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Dur("elapsed_ms", elapsed).
			Msg("Request profile")

		if err := appendReport(cfg.Dir, c.Request.Method, path, c.Writer.Status(), elapsed); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not write profile report")
		}
	}
}

func appendReport(dir, method, path string, status int, elapsed time.Duration) error {
	endpoint := strings.ReplaceAll(path, "/", "_")
	name := filepath.Join(dir, fmt.Sprintf("profile%s.txt", endpoint))

	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s %s %s %d %s\n",
		time.Now().Format(time.RFC3339), method, path, status, elapsed)
	return err
}
