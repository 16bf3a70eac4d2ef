package httpapi

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
)

type principalKey struct{}

// requirePrincipal rejects requests without a valid principal header.
func requirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(PrincipalHeader)
		if !common.IsHexAddress(raw) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "missing or invalid " + PrincipalHeader + " header",
				"class": "authorization",
			})
			return
		}
		ctx := context.WithValue(r.Context(), principalKey{}, common.HexToAddress(raw))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principalFrom returns the caller set by requirePrincipal.
func principalFrom(ctx context.Context) common.Address {
	principal, _ := ctx.Value(principalKey{}).(common.Address)
	return principal
}
