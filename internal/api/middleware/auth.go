package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"

	defaultLeeway = 5 * time.Second
)

var (
	ErrMissingToken = errors.New("auth: missing bearer token")
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Claims содержимое токена доступа
type Claims struct {
	UserID string `json:"id,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator проверяет Bearer токены (HS256)
type Authenticator struct {
	secret []byte
	leeway time.Duration
	logger Logger
}

// NewAuthenticator создает проверку токенов с общим секретом
func NewAuthenticator(secret string, logger Logger) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		leeway: defaultLeeway,
		logger: logger,
	}
}

// Parse проверяет подпись и срок действия и возвращает пользователя
func (a *Authenticator) Parse(tokenStr string) (domain.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(a.leeway),
	)
	if err != nil || !token.Valid {
		return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	// id может прийти как в "id", так и в стандартном "sub"
	id := claims.UserID
	if id == "" {
		id = claims.Subject
	}
	if id == "" || claims.Role == "" {
		return domain.Principal{}, fmt.Errorf("%w: id and role are required", ErrInvalidToken)
	}

	return domain.Principal{
		ID:    id,
		Email: claims.Email,
		Role:  domain.ParseRole(claims.Role),
	}, nil
}

// Auth требует валидный Bearer токен, иначе 401
func (a *Authenticator) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := a.fromRequest(r)
		if err != nil {
			a.logger.Warn("%s %s - unauthorized: %v", r.Method, r.URL.Path, err)
			if errors.Is(err, ErrMissingToken) {
				handlers.RespondUnauthorized(w, msgMissingToken)
			} else {
				handlers.RespondUnauthorized(w, msgInvalidToken)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// Optional кладет пользователя в контекст, если токен передан.
// Невалидный токен отклоняется, отсутствие токена - нет.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := a.fromRequest(r)
		switch {
		case errors.Is(err, ErrMissingToken):
			next.ServeHTTP(w, r)
		case err != nil:
			a.logger.Warn("%s %s - unauthorized: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
		default:
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		}
	})
}

func (a *Authenticator) fromRequest(r *http.Request) (domain.Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return domain.Principal{}, ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return domain.Principal{}, fmt.Errorf("%w: malformed authorization header", ErrInvalidToken)
	}

	return a.Parse(strings.TrimSpace(token))
}
