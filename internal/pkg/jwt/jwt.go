package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/staffclock/attendance-backend-go/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(userID int64, username string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID int64, username string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":  userID,
		"username": username,
		"role":     string(role),
		"type":     "access",
		"jti":      uuid.NewString(),
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
