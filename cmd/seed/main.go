// seed inserts a dev user and a handful of items into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aibekm/item-service/internal/auth"
	"github.com/aibekm/item-service/internal/infrastructure/postgres"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "seed-password-1"
)

type itemSpec struct {
	name        string
	description string
}

var items = []itemSpec{
	{"Sample notebook", "Plain ruled notebook for testing list ordering"},
	{"Desk lamp", "Adjustable arm, warm light"},
	{"Mechanical keyboard", "Tenkeyless, brown switches"},
	{"Water bottle", "750ml, insulated"},
	{"Monitor stand", "Raises the screen about 10cm"},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	hash, err := auth.NewHasher(auth.DefaultBcryptCost).Hash(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert dev user
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (
			email, password_hash, first_name, last_name, contact_number,
			user_type, home_number, address_line1, pin_code, city, state
		) VALUES ($1, $2, 'Seed', 'User', '9998887777', 'consumer', '1',
			'1 Seed Street', '560001', 'Bangalore', 'Karnataka')
		ON CONFLICT (lower(email)) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		seedEmail, hash,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	// Insert items, skip any that already exist (idempotent re-runs)
	var inserted, skipped int
	for _, spec := range items {
		tag, err := pool.Exec(ctx, `
			INSERT INTO items (owner_id, name, description)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (
				SELECT 1 FROM items WHERE owner_id = $1 AND name = $2
			)`,
			userID, spec.name, spec.description,
		)
		if err != nil {
			log.Fatalf("insert item %q: %v", spec.name, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:          %s\n", seedEmail)
	fmt.Printf("  User ID:       %s\n", userID)
	fmt.Printf("  Password:      %s\n", seedPassword)
	fmt.Printf("  Items created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/auth/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPassword)
	fmt.Println("    # → {\"access_token\":\"eyJ...\",\"token_type\":\"bearer\"}")
	fmt.Println()
	fmt.Println("  Step 2 — list the seeded items:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/items -H \"Authorization: Bearer $JWT\"")
}
