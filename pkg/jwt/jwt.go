package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity lo que el servidor sabe del usuario mientras el token sea válido.
type Identity struct {
	UserID string
	Name   string
	Role   string // "admin" | "staff"
}

// Claims del token de sesión. El usuario va en "sub".
//
// Name es el nombre visible (users.name) en el momento del login. AuthMiddleware lo deja
// en c.Locals("name") y CurrentActor lo copia tal cual a created_by_name (lencería,
// tickets, objetos perdidos), sender_name (chat) y author_name (tablón) sin consultar la
// DB. Un cambio de nombre solo se ve en documentos nuevos tras volver a iniciar sesión.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

var errEmptySecret = errors.New("jwt: secret vacío")

// Generate firma (HS256) un token para id que caduca tras ttl.
func Generate(secret string, id Identity, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errEmptySecret
	}
	if strings.TrimSpace(id.UserID) == "" {
		return "", errors.New("jwt: usuario vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name: id.Name,
		Role: id.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve la identidad del token.
// Un rol vacío no es error aquí: lo decide RequireRole.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, errEmptySecret
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("jwt: %w", err)
	}
	if claims.Subject == "" {
		return Identity{}, errors.New("jwt: token sin sub")
	}
	return Identity{UserID: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}
