package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type Claims struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Role   int    `json:"role"`
	jwt.StandardClaims
}

func GenerateToken(actor Actor, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := Claims{
		UserID: actor.ID,
		Name:   actor.Name,
		Role:   actor.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
			Subject:   fmt.Sprintf("%d", actor.ID),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken checks the HS256 signature and expiry and returns the token's Actor.
func ParseToken(tokenString, secret string) (Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Actor{}, err
	}
	if !token.Valid || claims.UserID == 0 {
		return Actor{}, errors.New("invalid token")
	}
	return Actor{ID: claims.UserID, Name: claims.Name, Role: claims.Role}, nil
}
