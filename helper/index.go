package helper

import (
	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/model"
	"airline_manager/utils"
	"context"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Preload("Role").Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	if tokenClaim.AirlineCode != nil {
		claims["airlineCode"] = *tokenClaim.AirlineCode
	}
	claims["jti"] = uuid.NewString()
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["jti"] = uuid.NewString()
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// RevokeToken blacklists a token's jti in Redis until the token would
// have expired anyway
func RevokeToken(ctx context.Context, token *jwt.Token) error {
	claims := token.Claims.(jwt.MapClaims)
	jti, ok := claims["jti"].(string)
	if !ok {
		return errors.New("token carries no jti")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("token carries no exp")
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl <= 0 {
		return nil
	}
	return database.Redis.Set(ctx, "revoked:"+jti, "1", ttl).Err()
}

func IsTokenRevoked(ctx context.Context, token *jwt.Token) bool {
	claims := token.Claims.(jwt.MapClaims)
	jti, ok := claims["jti"].(string)
	if !ok {
		return false
	}
	exists, err := database.Redis.Exists(ctx, "revoked:"+jti).Result()
	return err == nil && exists > 0
}

// GetUserFromToken loads the account behind the parsed token set by the
// jwt middleware. Second return reports whether the caller may continue.
func GetUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token := c.Locals("user").(*jwt.Token)
	tokenClaim := token.Claims.(jwt.MapClaims)
	userId := uint(tokenClaim["userId"].(float64))

	var user model.User
	db := database.DB
	if err := db.Preload("Role").First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, err)
		} else {
			utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return model.TokenClaim{}, false
	}

	return model.TokenClaim{
		UserId:      user.ID,
		Email:       user.Email,
		Role:        user.Role.Name,
		AirlineCode: user.AirlineCode,
	}, true
}

// RequireAirline checks that the token belongs to airline staff of the
// given carrier (admins pass everywhere)
func RequireAirline(c *fiber.Ctx, claim model.TokenClaim, airlineCode string) bool {
	if claim.Role == constants.ROLE_ADMIN {
		return true
	}
	if claim.Role == constants.ROLE_AIRLINE && claim.AirlineCode != nil && *claim.AirlineCode == airlineCode {
		return true
	}
	utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
	return false
}
