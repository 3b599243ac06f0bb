package middleware

import (
	"net/http"
	"strings"

	"pdvmercado/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"

	tokenAcesso = "access"
)

// JWTClaims are the custom claims embedded in every token.
type JWTClaims struct {
	FuncionarioID string `json:"funcionario_id"`
	Nome          string `json:"nome"`
	Cargo         string `json:"cargo"`
	Tipo          string `json:"tipo"` // access | refresh
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route. Refresh
// tokens are rejected here.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.WithCode("nao_autenticado", "Autenticação obrigatória"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid || claims.Tipo != tokenAcesso {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.WithCode("nao_autenticado", "Token inválido ou expirado"))
			return
		}
		if _, err := uuid.Parse(claims.FuncionarioID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.WithCode("nao_autenticado", "Token mal formado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose cargo is not in the allowed list.
func RequireRole(cargos ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cargos))
	for _, r := range cargos {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !allowed[claims.Cargo] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.WithCode("sem_permissao", "Permissão insuficiente"))
			return
		}
		c.Next()
	}
}

// GetClaims returns the typed claims set by JWTAuth, or nil.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}

// FuncionarioID is the authenticated employee. JWTAuth already checked the format.
func FuncionarioID(c *gin.Context) uuid.UUID {
	claims := GetClaims(c)
	if claims == nil {
		return uuid.Nil
	}
	id, _ := uuid.Parse(claims.FuncionarioID)
	return id
}
