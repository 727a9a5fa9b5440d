package handler

import (
	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/helper"
	"airline_manager/model"
	"airline_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Login(c *fiber.Ctx) error {
	loginInput := new(model.LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	user, err := helper.GetUserByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_EMAIL, errors.New("email not exists"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}

	tokenClaim := model.TokenClaim{
		UserId:      user.ID,
		Email:       user.Email,
		Role:        user.Role.Name,
		AirlineCode: user.AirlineCode,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false, // nếu deploy HTTPS thì true
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"user": fiber.Map{
			"id":          user.ID,
			"email":       user.Email,
			"name":        user.Name,
			"lastname":    user.Lastname,
			"role":        user.Role.Name,
			"airlineCode": user.AirlineCode,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", nil)
	}

	token, err := helper.ParseToken(refresh)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}
	if helper.IsTokenRevoked(c.Context(), token) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token revoked", nil)
	}

	claims := token.Claims.(jwt.MapClaims)
	userId := uint(claims["userId"].(float64))

	var user model.User
	if err := database.DB.Preload("Role").First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, err)
	}

	accessToken, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId:      user.ID,
		Email:       user.Email,
		Role:        user.Role.Name,
		AirlineCode: user.AirlineCode,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{"message": "token refreshed"})
}

// Logout blacklists the current tokens in Redis and clears the cookies
func Logout(c *fiber.Ctx) error {
	if raw, ok := c.Locals("user").(*jwt.Token); ok {
		if err := helper.RevokeToken(c.Context(), raw); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	if refresh := c.Cookies("refresh_token"); refresh != "" {
		if token, err := helper.ParseToken(refresh); err == nil && token.Valid {
			_ = helper.RevokeToken(c.Context(), token)
		}
	}

	c.ClearCookie("access_token", "refresh_token")
	return c.JSON(fiber.Map{"message": "logout success"})
}
