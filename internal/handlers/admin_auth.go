package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginRequest struct {
	Password string `json:"password"`
}

// checkAdminPassword accepts either a bcrypt hash (preferred) or a plain
// configured password compared in constant time. This gate has no user
// identity and no rate limiting; it is a console speed bump, not a real
// access-control boundary.
func checkAdminPassword(submitted, password, passwordHash string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}

	if passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(submitted)) == nil
	}

	if password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(password)) == 1
}

/*
POST /admin/login
- On match issues the admin token the console stores client-side
*/
func AdminLogin(password, passwordHash, jwtSecret string, tokenTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		if !checkAdminPassword(req.Password, password, passwordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		claims := jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().Add(tokenTTL).Unix(),
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": signed,
		})
	}
}

/*
POST /admin/logout
- Stateless: the client drops the token, the server only acknowledges
*/
func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
