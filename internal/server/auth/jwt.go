// Package auth issues and verifies the signed bearer tokens carried in the
// auth cookie, and hashes user passwords.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/hotelbook/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the owning user's id.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for userID issued at issuedAt. The iat
// and exp claims have whole-second precision, so exp is issuedAt+validity
// rounded down to the second: the token is accepted on
// [issuedAt, floor(issuedAt+validity)), never past issuedAt+validity and
// less than a second short of it.
func GenerateToken(userID string, secretKey []byte, issuedAt time.Time, validity time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}

	iat := issuedAt.Truncate(time.Second)
	exp := issuedAt.Add(validity).Truncate(time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken verifies tokenString against secretKey as of now and
// returns the user id it carries. A token is accepted while now < exp.
// Expired tokens yield common.ErrTokenExpired; any other defect yields
// common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte, now time.Time) (string, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
