package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims é o conteúdo próprio da aplicação dentro do token: papel e
// escopo do operador (hospital e unidade associados), para que o middleware
// e o motor de movimentação decidam sem consultar a base a cada requisição.
type UserClaims struct {
	UserID               string `json:"user_id"`
	Role                 string `json:"role"`
	AssociatedHospitalID string `json:"hospital_id,omitempty"`
	AssociatedUnitID     string `json:"unit_id,omitempty"`
}

// Claims inclui os claims padrão JWT mais os campos da aplicação.
type Claims struct {
	jwt.RegisteredClaims
	UserClaims
}

// Generate gera um token JWT assinado com o escopo do usuário.
func Generate(secret string, user UserClaims, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserClaims: user,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve os claims da aplicação.
// Retorna erro se o token for inválido, expirado ou com assinatura errada.
func Parse(secret, tokenString string) (UserClaims, error) {
	if secret == "" {
		return UserClaims{}, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return UserClaims{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return UserClaims{}, fmt.Errorf("claims inválidos")
	}
	return claims.UserClaims, nil
}
