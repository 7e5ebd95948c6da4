// Command main seeds the database with demo users, posts, and comments.
package main

import (
	"flag"
	"log"

	"finlit/internal/config"
	"finlit/internal/database"
	"finlit/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "number of users to create")
	postsPerUser := flag.Int("posts", 3, "posts per user")
	maxComments := flag.Int("comments", 5, "maximum comments per post")
	clean := flag.Bool("clean", false, "delete existing data first")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "store plaintext passwords (fast local seeding only)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:           *numUsers,
		PostsPerUser:       *postsPerUser,
		MaxCommentsPerPost: *maxComments,
		ShouldClean:        *clean,
		SkipBcrypt:         *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
