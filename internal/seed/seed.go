// Package seed provides database seeding utilities for development and
// demo environments.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	ShouldClean bool

	// MaxDays spreads post timestamps over the last N days.
	MaxDays int

	// SkipBcrypt stores a plaintext password for faster local seeding.
	SkipBcrypt bool
}

// groupPresets are the topical communities every seeded database gets.
var groupPresets = []models.Group{
	{Title: "Поэзия", Slug: "poetry", Description: "Стихи и разборы"},
	{Title: "Проза", Slug: "prose", Description: "Рассказы и романы"},
	{Title: "Путешествия", Slug: "travel", Description: "Заметки из поездок"},
	{Title: "Кулинария", Slug: "cooking", Description: "Рецепты и кухни мира"},
	{Title: "Технологии", Slug: "tech", Description: "Код, железо и гаджеты"},
	{Title: "Фотография", Slug: "photo", Description: "Снимки и обработка"},
	{Title: "Музыка", Slug: "music", Description: "Альбомы и концерты"},
	{Title: "Кино", Slug: "movies", Description: "Рецензии и премьеры"},
}

// Seed populates the database with demo data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	users, err := factory.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	groups, err := factory.CreateGroups()
	if err != nil {
		return fmt.Errorf("failed to create groups: %w", err)
	}
	log.Printf("✓ %d groups available", len(groups))

	posts, err := factory.CreatePosts(users, groups, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	comments, err := factory.CreateComments(users, posts, opts.NumComments)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", comments)

	follows, err := factory.CreateFollows(users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("✓ %d follow edges created", follows)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, follows, posts, groups, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// spreadTimestamp returns a time within the last maxDays days so feeds
// look lived-in rather than created in one burst.
func spreadTimestamp(r *rand.Rand, maxDays int) time.Time {
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
