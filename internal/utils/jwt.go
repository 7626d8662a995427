package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-staff-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// bearerScheme is the only accepted Authorization scheme.
const bearerScheme = "Bearer "

var (
	// ErrInvalidTokenParams is returned by GenerateJWTToken when one of the
	// required parameters is empty or zero.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")

	// ErrEmptySubject is returned when a verified token carries no subject.
	ErrEmptySubject = errors.New("empty subject in token")

	// ErrNoBearerToken is returned by ParseBearerToken when the header does
	// not carry a bearer token.
	ErrNoBearerToken = errors.New("no bearer token in authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns ErrInvalidTokenParams if any of them
// are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-staff-keeper", userID, 7*24*time.Hour, "secret")
func GenerateJWTToken(issuer string, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with HS256 and the provided sign key
//     (tokens signed with any other method are rejected)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "go-staff-keeper")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		UserID:           claims.Subject,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. Any other scheme, a missing token or an empty header yields
// ErrNoBearerToken.
func ParseBearerToken(authorizationHeader string) (string, error) {
	if !strings.HasPrefix(authorizationHeader, bearerScheme) {
		return "", ErrNoBearerToken
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, bearerScheme))
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrNoBearerToken
	}

	return token, nil
}
