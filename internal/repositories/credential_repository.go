package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/zldymlg/soccom-lineup/pkg/utils"
)

// CredentialRepository backs the password side of sign-in. Identities
// live in their own table, separate from the account rows the admin
// screens manage; provisioning an account writes both.
type CredentialRepository interface {
	FindHashByEmail(ctx context.Context, email string) (string, error)
	Upsert(ctx context.Context, email, passwordHash string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

const credentialTable = "auth_accounts"

func (r *credentialRepository) FindHashByEmail(ctx context.Context, email string) (string, error) {
	var rows []map[string]interface{}
	err := r.db.WithContext(ctx).
		Table(credentialTable).
		Select(`"email", "password_hash"`).
		Where("email = ?", email).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", utils.ErrAccountNotFound
	}
	return stringField(rows[0], "password_hash"), nil
}

func (r *credentialRepository) Upsert(ctx context.Context, email, passwordHash string) error {
	query := fmt.Sprintf(
		`INSERT INTO %s ("email", "password_hash") VALUES (?, ?)
		 ON CONFLICT ("email") DO UPDATE SET "password_hash" = EXCLUDED."password_hash"`,
		quoteIdent(credentialTable),
	)
	return r.db.WithContext(ctx).Exec(query, email, passwordHash).Error
}

func (r *credentialRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return r.db.WithContext(ctx).
		Table(credentialTable).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}
