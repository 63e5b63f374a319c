package requestcontext

import (
	"context"
	"net"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// TrustedHeader takes precedence when set and valid (e.g. X-Real-IP, CF-Connecting-IP).
	TrustedHeader string `mapstructure:"trusted_header"`

	// TrustedProxiesIP are CIDR ranges of the proxies in front of the server.
	// The client IP is the last X-Forwarded-For entry outside these ranges.
	TrustedProxiesIP []string `mapstructure:"trusted_proxies_ip"`
}

// WithClientIP stores the client IP in the request context.
func WithClientIP(config WithClientIPConfig) (Option, error) {
	proxies, err := parseCIDRs(config.TrustedProxiesIP)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		if config.TrustedHeader != "" {
			if headerIP := c.Get(config.TrustedHeader); net.ParseIP(headerIP) != nil {
				return context.WithValue(ctx, clientIPKey{}, headerIP), nil
			}
		}

		forwarded := c.IPs()
		if len(forwarded) == 0 {
			return context.WithValue(ctx, clientIPKey{}, c.IP()), nil
		}

		for i := len(forwarded) - 1; i >= 0 && len(proxies) > 0; i-- {
			ip := net.ParseIP(forwarded[i])
			if ip != nil && !isTrusted(proxies, ip) {
				return context.WithValue(ctx, clientIPKey{}, ip.String()), nil
			}
		}

		logger.DebugContext(ctx, "falling back to first forwarded ip",
			slogx.String("event", "requestcontext/clientip_fallback"),
			slogx.Any("ips", forwarded),
		)
		return context.WithValue(ctx, clientIPKey{}, forwarded[0]), nil
	}, nil
}

// GetClientIP returns the client IP stored by [WithClientIP], or an empty string.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

func isTrusted(proxies []*net.IPNet, ip net.IP) bool {
	for _, r := range proxies {
		if r.Contains(ip) {
			return true
		}
	}
	return false
}

func parseCIDRs(ranges []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, r := range ranges {
		_, ipnet, err := net.ParseCIDR(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse CIDR %q", r)
		}
		nets = append(nets, ipnet)
	}
	return nets, nil
}
