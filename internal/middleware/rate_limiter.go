package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"pdvmercado/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ── Login rate limiter ────────────────────────────────────────────────────────

const loginLimitePorMinuto = 20

// ipEntry tracks login attempts per IP within a fixed window.
type ipEntry struct {
	count     int
	windowEnd time.Time
}

type loginLimiter struct {
	mu      sync.Mutex
	entries map[string]*ipEntry
	now     func() time.Time
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[ip]
	if !ok || now.After(e.windowEnd) {
		e = &ipEntry{windowEnd: now.Add(time.Minute)}
		l.entries[ip] = e
	}
	e.count++
	return e.count <= loginLimitePorMinuto
}

func (l *loginLimiter) purge() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	n := 0
	for ip, e := range l.entries {
		if now.After(e.windowEnd) {
			delete(l.entries, ip)
			n++
		}
	}
	return n
}

// LoginRateLimiter limits login attempts to 20 per minute per IP. It is kept
// in process memory so brute force is throttled even when Redis is down.
func LoginRateLimiter() gin.HandlerFunc {
	l := &loginLimiter{entries: make(map[string]*ipEntry), now: time.Now}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := l.purge(); n > 0 {
				log.Debug().Int("login_entries_purged", n).Msg("rate limiter map purged")
			}
		}
	}()

	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.WithCode("limite_excedido", "Muitas tentativas de login. Tente novamente em 1 minuto."))
			return
		}
		c.Next()
	}
}

// ── General API rate limiter ──────────────────────────────────────────────────

// RateLimiter is a fixed-window limiter shared by all instances through Redis
// (INCR + EXPIRE on "ratelimit:<ip>:<window>"). Redis failures let the
// request through.
func RateLimiter(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		slot := time.Now().UnixNano() / int64(window)
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), slot)

		pipe := rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn().Err(err).Msg("rate limiter: redis indisponível")
			c.Next()
			return
		}

		if incr.Val() > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.WithCode("limite_excedido", "Muitas requisições. Tente novamente em instantes."))
			return
		}
		c.Next()
	}
}
