package config

import (
	"os"
	"strconv"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	BcryptCost int
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		cost := bcrypt.DefaultCost
		if v := os.Getenv("AUTH_BCRYPT_COST"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= bcrypt.MinCost && parsed <= bcrypt.MaxCost {
				cost = parsed
			}
		}
		authConfig = &AuthConfig{
			BcryptCost: cost,
		}
	})
	return authConfig
}
