package models

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeederAccountsSkipsDuplicates(t *testing.T) {
	db := newTestDB(t)
	mustAccount(t, db, "taken@example.com", "taken")

	emails := []string{"n1@example.com", "n2@example.com", "taken@example.com", "n4@example.com", "n5@example.com"}
	i := 0
	s := NewSeeder(db)
	s.newAccount = func() (*Account, error) {
		a, err := NewAccount(emails[i], fmt.Sprintf("fresh%d", i), "pw")
		i++
		return a, err
	}

	created, err := s.Accounts(5)
	require.NoError(t, err)
	assert.Equal(t, 4, created)
	assert.Equal(t, int64(5), countRows(t, db, &Account{}))

	// the duplicate was rolled back and later inserts still landed
	var last Account
	require.NoError(t, db.Where("email = ?", "n5@example.com").First(&last).Error)
	assert.Equal(t, "fresh4", last.Username)
}

func TestGenerateAccounts(t *testing.T) {
	db := newTestDB(t)

	created, err := GenerateAccounts(db, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(created), countRows(t, db, &Account{}))
	assert.LessOrEqual(t, created, 3)

	var accounts []Account
	require.NoError(t, db.Find(&accounts).Error)
	for _, a := range accounts {
		assert.NotEmpty(t, a.Email)
		assert.NotEmpty(t, a.Username)
		assert.NotEmpty(t, a.PasswordHash)
		assert.NotEmpty(t, a.AvatarHash)
		assert.False(t, a.IsAdmin)
	}
}

func TestSeederPostsWithoutSeedAuthor(t *testing.T) {
	db := newTestDB(t)

	created, err := GeneratePosts(db, 4)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Zero(t, countRows(t, db, &Post{}))
}

func TestSeederPosts(t *testing.T) {
	db := newTestDB(t)
	first := mustAccount(t, db, "first@example.com", "first")
	second := mustAccount(t, db, "second@example.com", "second")

	created, err := NewSeeder(db, WithFaker(gofakeit.New(7))).Posts(3)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	var posts []Post
	require.NoError(t, db.Find(&posts).Error)
	require.Len(t, posts, 3)
	for _, p := range posts {
		assert.Equal(t, first.ID, p.AuthorID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.ContentHTML)
		assert.NotEmpty(t, p.SummaryHTML)
		assert.False(t, p.CreatedAt.IsZero())
	}

	created, err = NewSeeder(db, WithSeedAuthor(second.ID)).Posts(2)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	var n int64
	require.NoError(t, db.Model(&Post{}).Where("author_id = ?", second.ID).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestSeederCommentsRequiresPosts(t *testing.T) {
	db := newTestDB(t)
	mustAccount(t, db, "lonely@example.com", "lonely")

	created, err := GenerateComments(db, 1)
	assert.ErrorIs(t, err, ErrPreconditionViolation)
	assert.Zero(t, created)
	assert.Zero(t, countRows(t, db, &Comment{}))
}

func TestSeederCommentsRequiresAccounts(t *testing.T) {
	db := newTestDB(t)

	_, err := GenerateComments(db, 1)
	assert.ErrorIs(t, err, ErrPreconditionViolation)
}

func TestSeederComments(t *testing.T) {
	db := newTestDB(t)
	author := mustAccount(t, db, "author@example.com", "author")
	mustAccount(t, db, "reader@example.com", "reader")
	for i := 0; i < 2; i++ {
		require.NoError(t, CreatePost(db, NewPost(author, "t", "s", "c")))
	}

	created, err := GenerateComments(db, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, created)

	var comments []Comment
	require.NoError(t, db.Find(&comments).Error)
	require.Len(t, comments, 6)
	for _, c := range comments {
		assert.NotZero(t, c.AuthorID)
		assert.NotZero(t, c.PostID)
		assert.NotEmpty(t, c.Content)
		assert.False(t, c.Disabled)
	}
}

func TestSeederZeroCount(t *testing.T) {
	db := newTestDB(t)
	s := NewSeeder(db)

	n, err := s.Accounts(0)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = s.Posts(0)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = s.Comments(0)
	require.NoError(t, err)
	assert.Zero(t, n)
}
