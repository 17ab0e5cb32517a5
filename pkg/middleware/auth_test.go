package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/zakcom/sales-tracker-api/internal/config"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/internal/usecases/authenticating"
	"github.com/zakcom/sales-tracker-api/pkg/apiErrors"
)

const testSecret = "chave-de-teste"

func signedToken(t *testing.T, userID int, expiresAt time.Time) string {
	t.Helper()

	claims := domain.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func decodeAPIError(t *testing.T, body []byte) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	assert.NoError(t, json.Unmarshal(body, &apiErr))
	return apiErr
}

func TestAuthMiddleware(t *testing.T) {
	authService := authenticating.NewService(nil, &config.Config{SecretKey: testSecret})

	tests := []struct {
		name         string
		path         string
		authHeader   string
		wantStatus   int
		wantCode     string
		wantNextCall bool
	}{
		{
			name:         "Rota pública passa sem token",
			path:         "/v1/login",
			wantStatus:   http.StatusOK,
			wantNextCall: true,
		},
		{
			name:       "Sem cabeçalho Authorization - 401",
			path:       "/v1/visits",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Cabeçalho sem o prefixo Bearer - 401",
			path:       "/v1/visits",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Token malformado - 401",
			path:       "/v1/visits",
			authHeader: "Bearer token-invalido",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Token expirado - código próprio de expiração",
			path:       "/v1/visits",
			authHeader: "Bearer " + signedToken(t, 7, time.Now().Add(-time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:         "Token válido injeta as claims no contexto",
			path:         "/v1/visits",
			authHeader:   "Bearer " + signedToken(t, 7, time.Now().Add(time.Hour)),
			wantStatus:   http.StatusOK,
			wantNextCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				if tt.authHeader != "" {
					claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
					assert.True(t, ok)
					assert.Equal(t, 7, claims.UserID)
				}
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authService)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCall, nextCalled)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec.Body.Bytes()).Code)
			}
		})
	}
}
