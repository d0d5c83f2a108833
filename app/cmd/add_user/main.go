package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

// Seeds an account, defaulting to an admin. Usage:
//
//	go run ./app/cmd/add_user -email admin@reliefassist.org -password secret -role admin
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	role := flag.String("role", "admin", "account role")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email <email> -password <password> [-role <role>]")
		return
	}

	r := models.Role(*role)
	if !r.Valid() {
		fmt.Printf("Unknown role %q\n", *role)
		return
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Email:    strings.ToLower(strings.TrimSpace(*email)),
		Password: *password,
		Role:     r,
	}

	if err := database.CreateUser(db, user); err != nil {
		if database.IsUniqueViolation(err) {
			fmt.Printf("An account for %s already exists\n", user.Email)
			return
		}
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s (%s)\n", user.Email, user.Role)
}
