package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/treinorpg/backend/internal/telemetry/tracing"
	"github.com/treinorpg/backend/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type loginChecker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

type AuthMiddlewareHandler struct {
	mobileAppSecret string
	loginChecker    loginChecker
	allowedPaths    map[string]bool
}

func NewAuthMiddlewareHandler(
	mobileAppSecret string,
	loginChecker loginChecker,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		mobileAppSecret: mobileAppSecret,
		loginChecker:    loginChecker,
		allowedPaths: map[string]bool{
			"/":         true,
			"/version":  true,
			"/a/login":  true,
			"/a/logout": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get("X-TREINO-TOKEN")

			// requests coming from the mobile app carry the app secret
			if strings.HasPrefix(r.URL.Path, "/workouts") ||
				strings.HasPrefix(r.URL.Path, "/progression") ||
				strings.HasPrefix(r.URL.Path, "/achievements") ||
				strings.HasPrefix(r.URL.Path, "/records") ||
				strings.HasPrefix(r.URL.Path, "/exercise") ||
				strings.HasPrefix(r.URL.Path, "/powerday") {
				if authToken == h.mobileAppSecret {
					span.SetStatus(codes.Ok, "ok")
					next.ServeHTTP(w, r)
					return
				}
			}

			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			isLogged, err := h.loginChecker.IsLogged(ctx, authToken)
			if err != nil {
				log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-logged-err")
				span.RecordError(err)
				return
			}
			if !isLogged {
				reqIp, _ := pkg.ReadUserIP(r)
				log.Tracef("[invalid token] [auth middleware] unauthorized request from %s => %s", reqIp, r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
