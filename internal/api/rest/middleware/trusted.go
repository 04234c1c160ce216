package middleware

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/config"
)

// TrustedNet admits requests to operational endpoints from the configured subnets only.
type TrustedNet struct {
	prefixes []netip.Prefix
	log      *logrus.Logger
}

// NewTrustedNet parses cfg.TrustedSubnet as a comma-separated list of CIDRs.
// Unparsable entries are skipped, an empty list denies every request.
func NewTrustedNet(cfg *config.Config, log *logrus.Logger) *TrustedNet {
	tn := &TrustedNet{log: log}
	for _, raw := range strings.Split(cfg.TrustedSubnet, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			log.WithField("subnet", raw).Warn("trusted subnet ignored: ", err)
			continue
		}
		tn.prefixes = append(tn.prefixes, prefix.Masked())
	}
	if len(tn.prefixes) == 0 {
		log.Warn("no trusted subnet configured, operational endpoints are closed")
	}
	return tn
}

// Contains reports whether addr belongs to a trusted subnet.
func (tn *TrustedNet) Contains(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range tn.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// TrustedHandle rejects requests whose peer and forwarded client addresses are all untrusted.
func (tn *TrustedNet) TrustedHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, addr := range clientAddrs(r) {
			if tn.Contains(addr) {
				next.ServeHTTP(w, r)
				return
			}
		}
		tn.log.WithFields(logrus.Fields{
			"path":   r.URL.Path,
			"remote": r.RemoteAddr,
		}).Warn("untrusted access to operational endpoint")
		http.Error(w, "Internal subnet access violation", http.StatusForbidden)
	})
}

// clientAddrs returns the peer address followed by X-Real-IP or else the first X-Forwarded-For entry.
func clientAddrs(r *http.Request) []netip.Addr {
	var addrs []netip.Addr
	if peer, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		addrs = append(addrs, peer.Addr())
	}
	forwarded := r.Header.Get("X-Real-IP")
	if forwarded == "" {
		forwarded, _, _ = strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
	}
	if addr, err := netip.ParseAddr(strings.TrimSpace(forwarded)); err == nil {
		addrs = append(addrs, addr)
	}
	return addrs
}
