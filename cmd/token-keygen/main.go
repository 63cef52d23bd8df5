package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/jwt"
	"studio-backend/log"
)

// Mints a long-lived access token for operational use.
func main() {
	userID := flag.String("user", "", "user id (hex) the token is issued for")
	key := flag.String("key", "", "signing key")
	days := flag.Int("days", 30, "token lifetime in days")
	flag.Parse()

	log.EnsureLogger()

	if *userID == "" || *key == "" {
		fmt.Println("both -user and -key are required")
		os.Exit(1)
	}

	id, err := primitive.ObjectIDFromHex(*userID)
	if err != nil {
		fmt.Println("invalid user id:", err)
		os.Exit(1)
	}

	exp := time.Now().Add(time.Duration(*days) * 24 * time.Hour)
	token, err := jwt.NewAccessTokenWithExpiry(&entity.User{ID: id, Role: "admin"}, []byte(*key), exp)
	if err != nil {
		fmt.Println("signing failure:", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
