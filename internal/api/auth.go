package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"time"     // Token lifetime

	"wallet_ledger/internal/service" // Business logic
	"wallet_ledger/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RegisterRequest is the body of POST /user
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`           // Display name
	Email    string `json:"email" binding:"required,email"`    // Login email
	Password string `json:"password" binding:"required,min=6"` // Plain password, hashed before storage
}

// LoginRequest is the body of POST /auth
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Login email
	Password string `json:"password" binding:"required"` // Plain password
}

// UserDTO is the public form of a user
type UserDTO struct {
	ID    uint   `json:"id"`    // User ID
	Name  string `json:"name"`  // Display name
	Email string `json:"email"` // Login email
}

// AuthResponse carries an issued token
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

var registerMessages = fieldMessages{
	"Name.required":     "name is required",
	"Email.required":    "email is required",
	"Email.email":       "email is invalid",
	"Password.required": "password is required",
	"Password.min":      "password must have at least 6 characters",
}

var loginMessages = fieldMessages{
	"Email.required":    "email is required",
	"Password.required": "password is required",
}

// RegisterHandler creates a user account
func RegisterHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, bindErrors(err, registerMessages)...)
			return
		}
		u, err := users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			handleError(c, err, logrus.Fields{"email": req.Email}, "Failed to register user")
			return
		}
		logrus.WithField("user_id", u.ID).Info("User registered") // Log registration
		respond(c, http.StatusCreated, UserDTO{ID: u.ID, Name: u.Name, Email: u.Email})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(users *service.UserService, jwtSecret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, bindErrors(err, loginMessages)...)
			return
		}
		u, err := users.Authenticate(c.Request.Context(), req.Email, req.Password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, err.Error())
			return
		}
		if err != nil {
			handleError(c, err, logrus.Fields{"email": req.Email}, "Failed to authenticate user")
			return
		}
		token, err := utils.GenerateJWT(u.ID, u.Email, jwtSecret, ttl) // Generate JWT token
		if err != nil {
			handleError(c, err, logrus.Fields{"user_id": u.ID}, "Failed to generate token")
			return
		}
		respond(c, http.StatusOK, AuthResponse{Token: token}) // Return the token in the response
	}
}
