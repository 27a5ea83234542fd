package configs

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
)

// GenerateAndPrintKeys prints fresh base64 values for SESSION_KEY,
// JWT_SECRET and CSRF_KEY, ready to paste into .env. Regenerating
// invalidates existing sessions and tokens.
func GenerateAndPrintKeys() error {
	sessionKey := securecookie.GenerateRandomKey(64)
	jwtSecret := securecookie.GenerateRandomKey(64)
	csrfKey := securecookie.GenerateRandomKey(32)
	if sessionKey == nil || jwtSecret == nil || csrfKey == nil {
		return fmt.Errorf("could not generate random keys")
	}

	fmt.Println("================================================")
	fmt.Printf("SESSION_KEY=%s\n", base64.URLEncoding.EncodeToString(sessionKey))
	fmt.Printf("JWT_SECRET=%s\n", base64.URLEncoding.EncodeToString(jwtSecret))
	fmt.Printf("CSRF_KEY=%s\n", base64.URLEncoding.EncodeToString(csrfKey))
	fmt.Println("================================================")
	fmt.Println("Copy these lines into your .env file.")

	return nil
}
