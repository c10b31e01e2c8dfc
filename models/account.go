package models

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cppla/aiblog/utils"
)

// AvatarOptions are the Gravatar parameters used by Account.Gravatar.
type AvatarOptions struct {
	Size    int
	Default string
	Rating  string
}

// AvatarDefaults is overridden from configuration at boot.
var AvatarDefaults = AvatarOptions{Size: 100, Default: "identicon", Rating: "g"}

// Account is a registered user. Passwords are stored as bcrypt hashes only.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:64;uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:128" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	AvatarHash   string    `gorm:"size:32" json:"avatar_hash"`
	CreatedAt    time.Time `json:"created_at"`
	Posts        []Post    `gorm:"foreignKey:AuthorID" json:"-"`
	Comments     []Comment `gorm:"foreignKey:AuthorID" json:"-"`
}

// NewAccount validates the input, hashes the password and derives the avatar fingerprint.
func NewAccount(email, username, password string) (*Account, error) {
	a := &Account{Email: email, Username: username}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := a.SetPassword(password); err != nil {
		return nil, err
	}
	a.AvatarHash = utils.EmailFingerprint(email)
	return a, nil
}

// Validate checks the identifying fields.
func (a *Account) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Email, validation.Required, is.EmailFormat, validation.Length(3, 64)),
		validation.Field(&a.Username, validation.Required, validation.Length(1, 64)),
	)
}

// Password always fails: the plaintext is never kept and the hash is not handed out.
func (a *Account) Password() (string, error) {
	return "", ErrAccessDenied
}

// SetPassword replaces the stored hash with a fresh salted hash of plaintext.
func (a *Account) SetPassword(plaintext string) error {
	hash, err := utils.HashPassword(plaintext)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
func (a *Account) VerifyPassword(plaintext string) bool {
	return utils.CheckPassword(a.PasswordHash, plaintext)
}

// IsAdministrator reports the admin flag as stored.
func (a *Account) IsAdministrator() bool { return a.IsAdmin }

// IsAuthenticated is always true for a real account.
func (a *Account) IsAuthenticated() bool { return true }

// AvatarURL builds the Gravatar image URL. secure selects the https host.
func (a *Account) AvatarURL(size int, defaultStyle, rating string, secure bool) string {
	hash := a.AvatarHash
	if hash == "" {
		hash = utils.EmailFingerprint(a.Email)
	}
	return utils.GravatarURL(hash, size, defaultStyle, rating, secure)
}

// Gravatar is AvatarURL with AvatarDefaults.
func (a *Account) Gravatar(secure bool) string {
	return a.AvatarURL(AvatarDefaults.Size, AvatarDefaults.Default, AvatarDefaults.Rating, secure)
}

// BeforeCreate fills the fingerprint and creation time when the caller did not.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.AvatarHash == "" && a.Email != "" {
		a.AvatarHash = utils.EmailFingerprint(a.Email)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return nil
}

// CreateAccount inserts a. A duplicate email or username yields ErrUniquenessViolation.
func CreateAccount(db *gorm.DB, a *Account) error {
	if err := db.Omit(clause.Associations).Create(a).Error; err != nil {
		return wrapStoreError("create account", err)
	}
	return nil
}

// SaveAccount writes every field of an existing account.
func SaveAccount(db *gorm.DB, a *Account) error {
	if err := db.Omit(clause.Associations).Save(a).Error; err != nil {
		return wrapStoreError("save account", err)
	}
	return nil
}

// LoadAccount resolves a session's account id.
func LoadAccount(db *gorm.DB, id uint) (*Account, error) {
	var a Account
	if err := db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d: %w", id, ErrAttributeResolution)
		}
		return nil, err
	}
	return &a, nil
}

func wrapStoreError(op string, err error) error {
	if utils.IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrUniquenessViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
