package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roypriyanshu02/graphic-walker-app/internal/appcontext"
	"github.com/roypriyanshu02/graphic-walker-app/internal/store"
	"github.com/roypriyanshu02/graphic-walker-app/internal/utils"
)

func Register(ctx *appcontext.Context, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			Name     string `json:"name"`
		}
		if err := c.BindJSON(&request); err != nil {
			respondError(c, http.StatusBadRequest, "Failed to bind request")
			return
		}

		user, err := users.Register(request.Email, request.Password, request.Name)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to register user")
			return
		}

		token, err := utils.GenerateJWT(ctx.Config.JWTSecret, ctx.Config.JWTExpiry, user)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to generate token")
			return
		}

		respondMessage(c, http.StatusCreated, "User registered successfully", gin.H{
			"user":  user,
			"token": token,
		})
	}
}

func Login(ctx *appcontext.Context, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BindJSON(&request); err != nil {
			respondError(c, http.StatusBadRequest, "Failed to bind request")
			return
		}

		user, err := users.Login(request.Email, request.Password)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to log in")
			return
		}

		token, err := utils.GenerateJWT(ctx.Config.JWTSecret, ctx.Config.JWTExpiry, user)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to generate token")
			return
		}

		respondMessage(c, http.StatusOK, "Logged in successfully", gin.H{
			"user":  user,
			"token": token,
		})
	}
}

// Logout exists for client symmetry. Tokens are stateless, so there is
// nothing to revoke server-side.
func Logout(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondMessage(c, http.StatusOK, "Logged out successfully", nil)
	}
}

func GetProfile(ctx *appcontext.Context, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := users.GetByID(userID)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to get profile")
			return
		}

		respondData(c, http.StatusOK, user)
	}
}

func VerifyToken(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		respondData(c, http.StatusOK, gin.H{
			"user_id": claims.UserID,
			"email":   claims.Email,
			"name":    claims.Name,
		})
	}
}
