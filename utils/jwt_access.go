package utils

import (
	"log"
	"os"
)

// JWTSecretKey verifies tokens minted by the external identity
// provider; this service never issues tokens itself.
var JWTSecretKey string

func InitJWT() {
	// For tests, use a default secret if the environment isn't set
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}
}
