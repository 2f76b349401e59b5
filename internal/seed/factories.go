package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{
		db:   db,
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUsers persists count users. The first three are fixed accounts
// so a fresh database always has known logins.
func (f *Factory) CreateUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)

	password := "password123"
	if !f.opts.SkipBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		password = string(hashed)
	}

	if count >= 3 {
		for _, username := range []string{"leo", "author", "test"} {
			user := models.User{
				Username: username,
				Email:    fmt.Sprintf("%s@example.com", username),
				Password: password,
			}
			if err := f.db.Create(&user).Error; err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		// suffix keeps generated usernames unique
		username := strings.ToLower(fmt.Sprintf("%s%d", gofakeit.Username(), i))

		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@example.com", username),
			Password: password,
		}
		if err := f.db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", username, err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// CreateGroups ensures the preset communities exist, reusing rows that
// are already there.
func (f *Factory) CreateGroups() ([]models.Group, error) {
	groups := make([]models.Group, 0, len(groupPresets))

	for _, preset := range groupPresets {
		var group models.Group
		err := f.db.Where(models.Group{Slug: preset.Slug}).
			Attrs(models.Group{Title: preset.Title, Description: preset.Description}).
			FirstOrCreate(&group).Error
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// CreatePosts persists count posts spread across users and groups.
// Roughly a third of the posts stay outside any group.
func (f *Factory) CreatePosts(users []models.User, groups []models.Group, count int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}
	posts := make([]models.Post, 0, count)

	for i := 0; i < count; i++ {
		author := users[f.rand.Intn(len(users))]

		post := models.Post{
			Text:      gofakeit.Paragraph(1, 3, 8, "\n"),
			AuthorID:  author.ID,
			CreatedAt: spreadTimestamp(f.rand, f.opts.MaxDays),
		}
		if len(groups) > 0 && f.rand.Float32() < 0.66 {
			group := groups[f.rand.Intn(len(groups))]
			post.GroupID = &group.ID
		}

		if err := f.db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	return posts, nil
}

// CreateComments persists count comments on random posts.
func (f *Factory) CreateComments(users []models.User, posts []models.Post, count int) (int, error) {
	if len(users) == 0 || len(posts) == 0 {
		return 0, nil
	}

	created := 0
	for i := 0; i < count; i++ {
		author := users[f.rand.Intn(len(users))]
		post := posts[f.rand.Intn(len(posts))]

		comment := models.Comment{
			Text:     gofakeit.Sentence(8),
			PostID:   post.ID,
			AuthorID: author.ID,
		}
		if err := f.db.Create(&comment).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// CreateFollows gives every user a handful of subscriptions. Self edges
// are skipped and duplicate pairs collapse on the unique index.
func (f *Factory) CreateFollows(users []models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	created := 0
	for _, user := range users {
		subscriptions := f.rand.Intn(4) + 1
		for i := 0; i < subscriptions; i++ {
			author := users[f.rand.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}

			follow := models.Follow{UserID: user.ID, AuthorID: author.ID}
			result := f.db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "author_id"}},
				DoNothing: true,
			}).Create(&follow)
			if result.Error != nil {
				return created, result.Error
			}
			created += int(result.RowsAffected)
		}
	}
	return created, nil
}
