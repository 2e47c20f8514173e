// Package ratelimit provides the sliding-window throttle that gates requests to
// each upstream market-data source.
//
// Every source owns its own Limiter; there is no sharing across sources and no
// persistence across restarts. The limits are conservative safety margins kept
// below the providers' published quotas.
//
//	l := ratelimit.New(60, time.Minute)
//	if err := l.Wait(ctx); err != nil {
//	    return err
//	}
package ratelimit
