package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"frota_admin/internal/middleware"
	"frota_admin/internal/models"
	"frota_admin/internal/repository"
)

type AuthController struct {
	Users repository.UserRepository
}

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup creates an admin account and returns a session token for it.
func (ctl *AuthController) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not hash password", nil)
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
	}
	if err := ctl.Users.Create(c.Request.Context(), &user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			respondError(c, http.StatusConflict, "Email already in use", nil)
			return
		}
		logrus.WithError(err).Error("Failed to create user")
		respondError(c, http.StatusInternalServerError, "Could not create user", nil)
		return
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not generate token", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login checks credentials and issues a session token.
func (ctl *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := ctl.Users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch user for login")
		respondError(c, http.StatusInternalServerError, "Could not log in", nil)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not generate token", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
