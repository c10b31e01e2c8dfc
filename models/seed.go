package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cppla/aiblog/utils"
)

// DefaultSeedAuthorID is the account every generated post is attributed to.
const DefaultSeedAuthorID uint = 1

// Seeder fills the store with plausible fake accounts, posts and comments.
type Seeder struct {
	db       *gorm.DB
	fake     *gofakeit.Faker
	log      *zap.Logger
	authorID uint

	newAccount func() (*Account, error)
}

// SeederOption customizes a Seeder.
type SeederOption func(*Seeder)

// WithSeedAuthor attributes generated posts to account id.
func WithSeedAuthor(id uint) SeederOption {
	return func(s *Seeder) { s.authorID = id }
}

// WithFaker uses f instead of a randomly seeded faker.
func WithFaker(f *gofakeit.Faker) SeederOption {
	return func(s *Seeder) { s.fake = f }
}

// WithLogger sets the logger; the global logger is used otherwise.
func WithLogger(l *zap.Logger) SeederOption {
	return func(s *Seeder) { s.log = l }
}

// NewSeeder returns a Seeder writing to db, attributing posts to DefaultSeedAuthorID unless overridden.
func NewSeeder(db *gorm.DB, opts ...SeederOption) *Seeder {
	s := &Seeder{
		db:       db,
		fake:     gofakeit.New(0),
		log:      utils.L(),
		authorID: DefaultSeedAuthorID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.newAccount = s.fakeAccount
	return s
}

// GenerateAccounts inserts count fake accounts and returns how many were persisted.
func GenerateAccounts(db *gorm.DB, count int) (int, error) {
	return NewSeeder(db).Accounts(count)
}

// GeneratePosts inserts count fake posts by the default seed author.
func GeneratePosts(db *gorm.DB, count int) (int, error) {
	return NewSeeder(db).Posts(count)
}

// GenerateComments inserts count fake comments on random posts by random accounts.
func GenerateComments(db *gorm.DB, count int) (int, error) {
	return NewSeeder(db).Comments(count)
}

// Accounts inserts count fake accounts one by one. An insert rejected for a duplicate
// email or username is rolled back and skipped; any other failure stops generation.
func (s *Seeder) Accounts(count int) (int, error) {
	created := 0
	for i := 0; i < count; i++ {
		a, err := s.newAccount()
		if err != nil {
			return created, err
		}
		if err := CreateAccount(s.db, a); err != nil {
			if errors.Is(err, ErrUniquenessViolation) {
				s.log.Debug("skip duplicate fake account",
					zap.String("email", a.Email), zap.String("username", a.Username))
				continue
			}
			return created, err
		}
		created++
	}
	s.log.Info("generated fake accounts", zap.Int("requested", count), zap.Int("created", created))
	return created, nil
}

// Posts inserts count fake posts attributed to the seed author. When that account does
// not exist nothing is inserted and no error is returned.
func (s *Seeder) Posts(count int) (int, error) {
	if count <= 0 {
		return 0, nil
	}
	author, err := LoadAccount(s.db, s.authorID)
	if err != nil {
		if errors.Is(err, ErrAttributeResolution) {
			s.log.Warn("seed author missing, skipping fake posts",
				zap.Uint("author_id", s.authorID), zap.Int("skipped", count))
			return 0, nil
		}
		return 0, err
	}

	created := 0
	for i := 0; i < count; i++ {
		p := NewPost(author,
			s.sentences(1),
			s.sentences(s.fake.Number(3, 5)),
			s.sentences(s.fake.Number(8, 10)))
		p.CreatedAt = s.pastDate()
		if err := CreatePost(s.db, p); err != nil {
			return created, err
		}
		created++
	}
	s.log.Info("generated fake posts", zap.Uint("author_id", author.ID), zap.Int("created", created))
	return created, nil
}

// Comments inserts count fake comments, each by a uniformly random account on a
// uniformly random post. Both tables must be non-empty.
func (s *Seeder) Comments(count int) (int, error) {
	if count <= 0 {
		return 0, nil
	}
	var accounts, posts int64
	if err := s.db.Model(&Account{}).Count(&accounts).Error; err != nil {
		return 0, err
	}
	if err := s.db.Model(&Post{}).Count(&posts).Error; err != nil {
		return 0, err
	}
	if accounts == 0 {
		return 0, fmt.Errorf("generate comments: no accounts: %w", ErrPreconditionViolation)
	}
	if posts == 0 {
		return 0, fmt.Errorf("generate comments: no posts: %w", ErrPreconditionViolation)
	}

	created := 0
	for i := 0; i < count; i++ {
		var author Account
		if err := s.db.Offset(s.fake.Number(0, int(accounts)-1)).First(&author).Error; err != nil {
			return created, err
		}
		var post Post
		if err := s.db.Offset(s.fake.Number(0, int(posts)-1)).First(&post).Error; err != nil {
			return created, err
		}
		c := NewComment(&author, &post, s.sentences(s.fake.Number(1, 2)))
		c.CreatedAt = s.pastDate()
		if err := CreateComment(s.db, c); err != nil {
			return created, err
		}
		created++
	}
	s.log.Info("generated fake comments", zap.Int("created", created))
	return created, nil
}

func (s *Seeder) fakeAccount() (*Account, error) {
	return NewAccount(s.fake.Email(), s.fake.Username(), s.fake.Word())
}

func (s *Seeder) sentences(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = s.fake.Sentence(s.fake.Number(4, 12))
	}
	return strings.Join(out, " ")
}

func (s *Seeder) pastDate() time.Time {
	now := time.Now()
	return s.fake.DateRange(now.AddDate(-1, 0, 0), now)
}
