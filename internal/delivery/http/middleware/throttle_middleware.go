package middleware

import (
	"fmt"
	"net/http"
	"time"

	"clinic-management-api/config"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// incrWithExpire bumps the counter and sets its TTL atomically so a crashed
// request can never leave a counter without expiry.
var incrWithExpire = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return current
`)

type ThrottleMiddleware struct {
	redisClient *redis.Client
	log         *logrus.Logger
	cfg         config.ThrottleConfig
}

func NewThrottleMiddleware(redisClient *redis.Client, log *logrus.Logger, cfg config.ThrottleConfig) *ThrottleMiddleware {
	return &ThrottleMiddleware{
		redisClient: redisClient,
		log:         log,
		cfg:         cfg,
	}
}

// Handle enforces a per-user, per-minute request budget scoped by role.
// Unauthenticated requests and roles without a configured budget pass through.
func (m *ThrottleMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		roleID, _ := GetRoleIDFromContext(r.Context())

		var scope string
		var limit int
		switch roleID {
		case entity.RoleIDDoctor:
			scope, limit = "doctor", m.cfg.DoctorPerMinute
		case entity.RoleIDNurse:
			scope, limit = "nurse", m.cfg.NursePerMinute
		case entity.RoleIDPatient:
			scope, limit = "patient", m.cfg.PatientPerMinute
		default:
			next.ServeHTTP(w, r)
			return
		}

		key := fmt.Sprintf("throttle:%s:%s", scope, userID.String())
		window := int(time.Minute.Seconds())

		count, err := incrWithExpire.Run(r.Context(), m.redisClient, []string{key}, window).Int64()
		if err != nil {
			// Fail open, throttling is a protection layer, not an access rule
			m.log.WithError(err).Warn("Failed to check request throttle")
			next.ServeHTTP(w, r)
			return
		}

		if count > int64(limit) {
			response.TooManyRequests(w, "Request was throttled. Try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
