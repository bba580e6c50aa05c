package mw

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// storedResponse is the cached form of a successful GET reply.
type storedResponse struct {
	status int
	header http.Header
	body   []byte
}

// captureWriter tees the response body so it can be stored after the
// handlers run.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func succeeded(status int) bool {
	return status >= 200 && status < 300
}

// Cache serves repeated GETs from an in-memory store keyed by request URI.
// A successful mutating request flushes the store, so a deleted or updated
// resource is never replayed from a stale entry.
func Cache(store *cache.Cache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			if succeeded(c.Writer.Status()) {
				store.Flush()
			}
			return
		}

		key := c.Request.RequestURI
		if hit, ok := store.Get(key); ok {
			replay(c, hit.(storedResponse))
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if succeeded(w.Status()) {
			store.Set(key, storedResponse{
				status: w.Status(),
				header: w.Header().Clone(),
				body:   w.buf.Bytes(),
			}, ttl)
		}
	}
}

func replay(c *gin.Context, resp storedResponse) {
	header := c.Writer.Header()
	for k, v := range resp.header {
		header[k] = v
	}
	c.Writer.WriteHeader(resp.status)
	c.Writer.Write(resp.body)
	c.Abort()
}
