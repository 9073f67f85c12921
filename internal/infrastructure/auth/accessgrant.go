package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GrantResource is the kind of resource an access grant unlocks.
type GrantResource string

const (
	GrantResourceStudent GrantResource = "student"
	GrantResourceWorkout GrantResource = "workout"
)

// GrantClaims binds an access grant to exactly one resource. A grant for one
// resource never authorizes access to another: both kind and id are checked
// at verification time.
type GrantClaims struct {
	Resource   GrantResource `json:"resource"`
	ResourceID uint          `json:"resource_id"`
	jwt.RegisteredClaims
}

// GrantService issues and verifies signed, tamper-evident access-grant tokens
// for the public portal. Tokens replace plain boolean cookies: the resource id
// and expiry are embedded in the signed payload and verified server-side.
type GrantService struct {
	secret []byte
	expiry time.Duration
}

func NewGrantService(secret string, expiryHours int) *GrantService {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &GrantService{
		secret: []byte(secret),
		expiry: time.Duration(expiryHours) * time.Hour,
	}
}

// Expiry returns the grant lifetime.
func (s *GrantService) Expiry() time.Duration {
	return s.expiry
}

// Issue signs a grant for the given resource.
func (s *GrantService) Issue(resource GrantResource, resourceID uint) (string, error) {
	now := time.Now().UTC()
	claims := &GrantClaims{
		Resource:   resource,
		ResourceID: resourceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access grant: %w", err)
	}
	return token, nil
}

// Verify checks the token signature and that the grant was issued for exactly
// the requested resource.
func (s *GrantService) Verify(tokenString string, resource GrantResource, resourceID uint) error {
	token, err := jwt.ParseWithClaims(tokenString, &GrantClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return fmt.Errorf("failed to parse access grant: %w", err)
	}

	claims, ok := token.Claims.(*GrantClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid access grant")
	}

	if claims.Resource != resource || claims.ResourceID != resourceID {
		return fmt.Errorf("access grant does not match resource")
	}

	return nil
}
