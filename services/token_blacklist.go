package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance
var TokenBlacklist *RedisTokenBlacklist

// NewTokenBlacklist creates a new Redis-backed token blacklist
func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistTokens adds both access and refresh tokens to the blacklist.
// Without redis the tokens simply run out their own expiry.
func BlacklistTokens(accessToken, refreshToken string) error {
	if TokenBlacklist == nil {
		log.Println("Warning: token blacklist not configured, tokens expire naturally")
		return nil
	}

	if err := TokenBlacklist.blacklistSingleToken(accessToken); err != nil {
		return fmt.Errorf("failed to blacklist access token: %v", err)
	}
	if err := TokenBlacklist.blacklistSingleToken(refreshToken); err != nil {
		return fmt.Errorf("failed to blacklist refresh token: %v", err)
	}

	return nil
}

// IsTokenBlacklisted reports whether a token has been invalidated by logout
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}

	ctx := context.Background()
	key := blacklistKey(tokenString)

	exists, err := TokenBlacklist.Client.Exists(ctx, key).Result()
	if err != nil {
		log.Printf("Warning: blacklist lookup failed: %v", err)
		return false
	}
	return exists > 0
}

// blacklistSingleToken stores the token until its own expiry time
func (tb *RedisTokenBlacklist) blacklistSingleToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		return fmt.Errorf("failed to parse token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return fmt.Errorf("token has no expiration")
	}

	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl <= 0 {
		// Already expired, nothing to store
		return nil
	}

	ctx := context.Background()
	return tb.Client.Set(ctx, blacklistKey(tokenString), "1", ttl).Err()
}

func blacklistKey(tokenString string) string {
	return fmt.Sprintf("blacklist:%s", tokenString)
}
