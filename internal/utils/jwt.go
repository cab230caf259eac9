package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/agil-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSessionToken is returned for malformed, tampered or
	// foreign-signed tokens.
	ErrInvalidSessionToken = errors.New("invalid session token")
	// ErrExpiredSessionToken is returned for well-signed tokens whose
	// expiry instant has passed.
	ErrExpiredSessionToken = errors.New("session token has expired")
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT token for subject.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//
// JWT timestamps have second resolution, so issuedAt is truncated to the
// second and the returned session carries the values encoded in the token.
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	session, err := utils.GenerateSessionToken("agil-auth", userID, time.Now(), time.Hour, "secret")
func GenerateSessionToken(issuer, subject string, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	iat := issuedAt.Truncate(time.Second)
	exp := iat.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(iat),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Session{
		SubjectID: subject,
		IssuedAt:  iat,
		ExpiresAt: exp,
		Token:     tokenString,
	}, nil
}

// ParseSessionToken validates the given token string and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - strict base64 decoding, so any altered character is rejected
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check against now()
//   - Subject (sub) claim presence
//
// A token whose expiry has passed yields ErrExpiredSessionToken; every other
// failure yields ErrInvalidSessionToken. The underlying jwt error is joined
// for logging.
func ParseSessionToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Session, error) {
	if now == nil {
		now = time.Now
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Session{}, errors.Join(ErrExpiredSessionToken, err)
		}
		return models.Session{}, errors.Join(ErrInvalidSessionToken, err)
	}

	if claims.Subject == "" || claims.IssuedAt == nil {
		return models.Session{}, fmt.Errorf("%w: missing subject or issued-at claim", ErrInvalidSessionToken)
	}

	return models.Session{
		SubjectID: claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		Token:     tokenString,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
