package middlewarex

import (
	"net/http"

	"charity_token/pkg/contextx"
)

const headerNameAccountID = "X-Account-Id"

// AccountID lifts the environment-supplied caller identity into the request
// context. Requests without the header stay anonymous; handlers decide
// whether that is acceptable.
func AccountID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := r.Header.Get(headerNameAccountID)

		if accountID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := contextx.WithAccountID(r.Context(), contextx.AccountID(accountID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
