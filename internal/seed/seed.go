package seed

import (
	"fmt"
	"log"

	"finlit/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers           int
	PostsPerUser       int
	MaxCommentsPerPost int
	MaxDays            int
	SkipBcrypt         bool
	ShouldClean        bool
}

// Seed populates the database with demo users, posts, and comments.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.PostsPerUser <= 0 {
		opts.PostsPerUser = 3
	}
	if opts.MaxCommentsPerPost <= 0 {
		opts.MaxCommentsPerPost = 5
	}

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	posts := make([]*models.Post, 0, opts.NumUsers*opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := factory.CreatePost(user)
			if err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}
			posts = append(posts, post)
		}
	}
	log.Printf("seeded %d posts", len(posts))

	comments := 0
	for _, post := range posts {
		n := factory.rng.Intn(opts.MaxCommentsPerPost + 1)
		for i := 0; i < n; i++ {
			commenter := users[factory.rng.Intn(len(users))]
			if _, err := factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++
		}
	}
	log.Printf("seeded %d comments", comments)

	return nil
}

func clearData(db *gorm.DB) error {
	// delete children before parents
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.User{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
