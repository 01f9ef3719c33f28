package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAdminAuthDisabled  = errors.New("admin auth not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrJWTInvalid         = errors.New("jwt invalid")
	ErrJWTExpired         = errors.New("jwt expired")
)

// AdminAuthService valida la password de administrador con bcrypt y emite
// access tokens HS256 para el dashboard de analytics.
type AdminAuthService struct {
	secret       []byte
	passwordHash []byte
	accessTTL    time.Duration
	issuer       string
}

type AdminClaims struct {
	Role      string `json:"role"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

func NewAdminAuthService(secret, passwordHash string, accessTTL time.Duration) *AdminAuthService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	return &AdminAuthService{
		secret:       []byte(secret),
		passwordHash: []byte(passwordHash),
		accessTTL:    accessTTL,
		issuer:       "dialogue-personas",
	}
}

// Login compara la password contra el hash configurado y firma un token.
func (s *AdminAuthService) Login(password string) (string, int64, error) {
	if len(s.secret) == 0 || len(s.passwordHash) == 0 {
		return "", 0, ErrAdminAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := AdminClaims{
		Role:      "admin",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(s.accessTTL.Seconds()), nil
}

// ParseAccessToken valida firma, expiracion, issuer y rol del token.
func (s *AdminAuthService) ParseAccessToken(tokenString string) (AdminClaims, error) {
	if len(s.secret) == 0 {
		return AdminClaims{}, ErrAdminAuthDisabled
	}
	if strings.TrimSpace(tokenString) == "" {
		return AdminClaims{}, ErrJWTInvalid
	}

	var claims AdminClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AdminClaims{}, ErrJWTExpired
		}
		return AdminClaims{}, ErrJWTInvalid
	}

	if claims.TokenType != "access" || claims.Role != "admin" {
		return AdminClaims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(claims.Issuer) != s.issuer {
		return AdminClaims{}, ErrJWTInvalid
	}
	return claims, nil
}
