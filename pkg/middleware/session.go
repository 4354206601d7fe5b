package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/session"
	"github.com/vfg2006/kol-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

// SessionHeader carrega o token da sessão na requisição e a versão renovada na resposta
const SessionHeader = "X-Session-Token"

// SessionMiddleware resolve a sessão da requisição. Sem token, uma sessão nova
// é emitida; com token inválido ou expirado a requisição é recusada.
// A sessão renovada volta no cabeçalho X-Session-Token.
func SessionMiddleware(manager session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			var (
				current domain.Session
				token   string
				err     error
			)

			tokenString := r.Header.Get(SessionHeader)
			if tokenString == "" {
				current, token, err = manager.Issue()
			} else {
				current, err = manager.Parse(tokenString)
				if err != nil {
					logrus.WithError(err).Warn("session: rejected token")
					apiErrors.WriteError(w, apiErrors.ErrInvalidSession, err.Error(), nil)
					return
				}
				current, token, err = manager.Renew(current)
			}

			if err != nil {
				logrus.WithError(err).Error("session: failed to sign session")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar sessão", nil)
				return
			}

			w.Header().Set(SessionHeader, token)

			ctx := context.WithValue(r.Context(), ContextKeySession, current)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext obtém a sessão resolvida pelo SessionMiddleware
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	current, ok := ctx.Value(ContextKeySession).(domain.Session)
	return current, ok
}
