package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const identityKey contextKey = "identity"

// Claims is the bearer-token payload issued by the login service. The oid
// claim is the stable user identity tasks are owned by.
type Claims struct {
	Oid string `json:"oid"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the given identity. The login flow itself
// lives outside this service; this is used by tooling and tests.
func GenerateToken(oid, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		Oid: oid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// auth validates the bearer token and stores the caller identity in the
// request context. Every data endpoint sits behind it.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			s.unauthorized(w)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(s.jwtSecret), nil
		})
		if err != nil || !token.Valid || claims.Oid == "" {
			s.unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, claims.Oid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) unauthorized(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusUnauthorized, map[string]string{
		"erro": "Acesso não autorizado. Faça o login.",
	})
}

func identity(r *http.Request) string {
	if oid, ok := r.Context().Value(identityKey).(string); ok {
		return oid
	}
	return ""
}
