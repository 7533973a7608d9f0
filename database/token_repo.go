package database

import (
	"crypto/rand"
	"errors"
	"math/big"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kichu12348/kichu-space-backend/models"
)

// tokenAlphabet matches the character set the frontend already accepts.
// 32 characters over 70 symbols comes out to roughly 196 bits of entropy.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789$@!%*?&"

const tokenLength = 32

type tokenRepo struct {
	db *gorm.DB
}

func newTokenRepo(db *gorm.DB) *tokenRepo {
	return &tokenRepo{db}
}

func generateToken() (string, error) {
	token := make([]byte, tokenLength)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		token[i] = tokenAlphabet[n.Int64()]
	}
	return string(token), nil
}

// Mint generates a fresh token, stores it and returns it. The token value is
// the primary key, so a collision upserts rather than duplicating a row.
func (r *tokenRepo) Mint() (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	err = r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserToken{Token: token}).Error
	if err != nil {
		return "", err
	}
	return token, nil
}

// Check reports whether token is present in the store. The returned row must
// equal the input exactly; an empty token is false without touching the
// database.
func (r *tokenRepo) Check(token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	var row models.UserToken
	err := r.db.First(&row, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return row.Token == token, nil
}
