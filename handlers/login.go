package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"conference-central/errors"
)

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

// Login resolves credentials against the accounts collection and issues
// the JWT carrying the opaque identity claims the services rely on.
func (h *Handler) Login(c *fiber.Ctx) error {
	type Credentials struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	creds := new(Credentials)
	if err := c.BodyParser(creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable credentials: %v", err))
	}

	account, err := h.store.AccountByLogin(c.Context(), creds.Login)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	if account == nil || !isPasswordHashCorrect(account.HashedPassword, creds.Password) {
		return errors.RaiseUnauthorizedError(c, "invalid login or password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": account.ID,
		"email":   account.Email,
		"name":    account.DisplayName,
		"exp":     time.Now().Add(time.Hour * 8).Unix(),
	})
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		h.log.Errorw("cannot sign token", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": signed})
}
