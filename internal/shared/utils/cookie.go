package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/internal/shared/config"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// StudentGrantCookie returns the cookie name carrying the access grant for a
// single student portal. Grants are keyed per resource id, never global.
func StudentGrantCookie(studentID uint) string {
	return fmt.Sprintf("student_auth_%d", studentID)
}

// WorkoutGrantCookie returns the cookie name carrying the access grant for a
// single shared workout.
func WorkoutGrantCookie(workoutID uint) string {
	return fmt.Sprintf("workout_auth_%d", workoutID)
}

// SetAuthCookies sets access and refresh token as HttpOnly cookies
func SetAuthCookies(c *gin.Context, cookieConfig config.CookieConfig, accessToken, refreshToken string, accessMaxAge, refreshMaxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(AccessTokenCookie, accessToken, accessMaxAge,
		cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, refreshMaxAge,
		cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
}

// ClearAuthCookies clears access and refresh token cookies
func ClearAuthCookies(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(AccessTokenCookie, "", -1,
		cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1,
		cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
}

// SetGrantCookie sets a signed access-grant token as an HttpOnly, path-root
// cookie on the requester.
func SetGrantCookie(c *gin.Context, cookieConfig config.CookieConfig, name, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(name, token, maxAge, "/", cookieConfig.Domain, cookieConfig.Secure, true)
}

// GetTokenFromCookie retrieves a token from a cookie, empty string when absent.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
