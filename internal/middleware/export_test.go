package middleware

import "time"

func SetLimiterClock(k *KeyedRateLimiter, now func() time.Time) {
	k.now = now
	k.lastSweep = now()
}
