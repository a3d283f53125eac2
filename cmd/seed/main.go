package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	defaultDSN := os.Getenv("IDENTITY_DATABASE_URL")
	dsn := flag.String("dsn", defaultDSN, "identity database url")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("DSN required via flag -dsn or IDENTITY_DATABASE_URL env")
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Cannot ping DB:", err)
	}

	seedUser(db)
}

func seedUser(db *sql.DB) {
	email := "admin@clienteapi.local"
	password := "password"
	nome := "Administrador"

	if envEmail := os.Getenv("SEED_USER_EMAIL"); envEmail != "" {
		email = envEmail
	}

	if envPass := os.Getenv("SEED_USER_PASSWORD"); envPass != "" {
		password = envPass
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	query := `
		INSERT INTO users (id, user_name, email, nome, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET password_hash = excluded.password_hash;
	`

	_, err := db.Exec(query, uuid.NewString(), email, email, nome, string(hashed))
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	fmt.Printf("User seeded!\n   User: %s\n   Pass: %s\n", email, password)
}
