package middleware

import (
	"net/http"
	"sync"

	"EportsTech/pkg/handlerUtil"
	"EportsTech/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var (
	ErrTooManyRequests = response.NewError(http.StatusTooManyRequests, "too many requests")
)

type rateLimiter struct {
	bucket    map[string]*rate.Limiter
	rate      rate.Limit
	burstSize int
	mutex     *sync.Mutex
}

func newRateLimiter(reqRate rate.Limit, burstSize int) *rateLimiter {
	return &rateLimiter{
		bucket:    make(map[string]*rate.Limiter),
		rate:      reqRate,
		burstSize: burstSize,
		mutex:     &sync.Mutex{},
	}
}

func (r *rateLimiter) GetLimiterFrom(ip string) *rate.Limiter {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exist := r.bucket[ip]; !exist {
		r.bucket[ip] = rate.NewLimiter(r.rate, r.burstSize)
	}

	return r.bucket[ip]
}

func (m *middleware) NewRateLimiter(ctx *fiber.Ctx) error {
	return m.limit(ctx, m.rateLimitter)
}

// NewStrictRateLimiter guards public writes: leads, chat and login.
func (m *middleware) NewStrictRateLimiter(ctx *fiber.Ctx) error {
	return m.limit(ctx, m.strictRateLimitter)
}

func (m *middleware) limit(ctx *fiber.Ctx, limiter *rateLimiter) error {
	clientIP := ctx.IP()

	if !limiter.GetLimiterFrom(clientIP).Allow() {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"ip":         clientIP,
			"path":       ctx.Path(),
		}).Warn("Too many requests")
		return handlerUtil.New(m.log).Handle(ctx, m.GetRequestID(ctx), ErrTooManyRequests, ctx.Path(), "rate_limit")
	}

	return ctx.Next()
}
