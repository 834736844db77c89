// seed inserts two test users and a few courses into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/danabekov/course-catalog/internal/infrastructure/postgres"
	"github.com/danabekov/course-catalog/internal/password"
)

type userSpec struct {
	firstName string
	lastName  string
	email     string
	password  string
}

type courseSpec struct {
	ownerEmail      string
	title           string
	description     string
	estimatedTime   string
	materialsNeeded string
}

var users = []userSpec{
	{"Joe", "Smith", "joe@smith.com", "joepassword"},
	{"Sally", "Jones", "sally@jones.com", "sallypassword"},
}

var courses = []courseSpec{
	{
		"joe@smith.com",
		"Build a Basic Bookcase",
		"High-end furniture projects are great to dream about. But unless you have a well-equipped shop and some serious woodworking experience to draw on, it can be difficult to turn the dream into a reality.",
		"12 hours",
		"1/2 x 3/4 inch parting strip, 1 x 2 common pine, 1 x 4 common pine, 1 x 10 common pine",
	},
	{
		"joe@smith.com",
		"Learn How to Program",
		"In this course, you'll learn how to write code like a pro!",
		"6 hours",
		"Notebook computer running Mac OS X or Windows, Text editor",
	},
	{
		"sally@jones.com",
		"Learn How to Test Programs",
		"In this course, you'll learn how to test programs.",
		"",
		"",
	},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	// Upsert users, re-hashing the password on every run so the seed
	// credentials always work.
	userIDs := make(map[string]int64, len(users))
	for _, spec := range users {
		digest, err := password.Hash(spec.password, password.DefaultCost)
		if err != nil {
			log.Fatalf("hash password for %s: %v", spec.email, err)
		}

		var id int64
		err = pool.QueryRow(ctx, `
			INSERT INTO users (first_name, last_name, email_address, password_hash)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email_address) DO UPDATE
			SET password_hash = EXCLUDED.password_hash, updated_at = NOW()
			RETURNING id`,
			spec.firstName, spec.lastName, spec.email, digest,
		).Scan(&id)
		if err != nil {
			log.Fatalf("upsert user %s: %v", spec.email, err)
		}
		userIDs[spec.email] = id
	}

	// Insert courses, skipping titles that already exist for the owner
	// (idempotent re-runs).
	var inserted, skipped int
	for _, spec := range courses {
		ownerID := userIDs[spec.ownerEmail]

		var estimatedTime, materialsNeeded *string
		if spec.estimatedTime != "" {
			estimatedTime = &spec.estimatedTime
		}
		if spec.materialsNeeded != "" {
			materialsNeeded = &spec.materialsNeeded
		}

		tag, err := pool.Exec(ctx, `
			INSERT INTO courses (user_id, title, description, estimated_time, materials_needed)
			SELECT $1, $2, $3, $4, $5
			WHERE NOT EXISTS (
				SELECT 1 FROM courses WHERE user_id = $1 AND title = $2
			)`,
			ownerID, spec.title, spec.description, estimatedTime, materialsNeeded,
		)
		if err != nil {
			log.Fatalf("insert course %q: %v", spec.title, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	for _, spec := range users {
		fmt.Printf("  User: %-18s password: %-15s id: %d\n", spec.email, spec.password, userIDs[spec.email])
	}
	fmt.Printf("  Courses created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  List courses (public):")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/courses")
	fmt.Println()
	fmt.Println("  Who am I (basic auth, credentials re-checked every request):")
	fmt.Println()
	fmt.Println("    curl -s -u joe@smith.com:joepassword http://localhost:8080/users")
	fmt.Println()
	fmt.Println("  Create a course — note the Location header:")
	fmt.Println()
	fmt.Println("    curl -si -u joe@smith.com:joepassword -X POST http://localhost:8080/courses \\")
	fmt.Println("      -H 'Content-Type: application/json' \\")
	fmt.Println("      -d '{\"title\":\"New Course\",\"description\":\"Something new\"}'")
	fmt.Println()
	fmt.Println("  Update someone else's course — expect 403 Access Denied:")
	fmt.Println()
	fmt.Println("    curl -si -u sally@jones.com:sallypassword -X PUT http://localhost:8080/courses/1 \\")
	fmt.Println("      -H 'Content-Type: application/json' \\")
	fmt.Println("      -d '{\"title\":\"Taken over\",\"description\":\"Nope\"}'")
}
