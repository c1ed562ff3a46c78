package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
)

type AccountRepository interface {
	List(ctx context.Context) ([]dbm.Account, error)
	FindByEmail(ctx context.Context, email string) (*dbm.Account, error)
	Insert(ctx context.Context, account *dbm.Account) error
	Update(ctx context.Context, account *dbm.Account) error
	Delete(ctx context.Context, id int64) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

var accountFields = []string{
	"id", "name", "position", "email", "profile", "phone", "department", "created_at",
}

func accountFromRow(row map[string]interface{}) dbm.Account {
	return dbm.Account{
		ID:         int64Field(row, "id"),
		Name:       stringField(row, "name"),
		Role:       strings.ToLower(strings.TrimSpace(stringField(row, "position"))),
		Email:      stringField(row, "email"),
		ProfileURL: stringField(row, "profile"),
		Phone:      stringField(row, "phone"),
		Department: stringField(row, "department"),
		CreatedAt:  timeField(row, "created_at"),
	}
}

func (r *accountRepository) List(ctx context.Context) ([]dbm.Account, error) {
	var accounts []dbm.Account
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		var rows []map[string]interface{}
		err := r.db.WithContext(ctx).
			Table(s.Table).
			Select(selectList(s, accountFields...)).
			Where(fmt.Sprintf("%s IS NOT NULL", quoteIdent(s.Col("email")))).
			Order("id DESC").
			Limit(200).
			Find(&rows).Error
		if err != nil {
			return err
		}

		accounts = make([]dbm.Account, 0, len(rows))
		for _, row := range rows {
			accounts = append(accounts, accountFromRow(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	var account *dbm.Account
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		var rows []map[string]interface{}
		err := r.db.WithContext(ctx).
			Table(s.Table).
			Select(selectList(s, accountFields...)).
			Where(fmt.Sprintf("%s = ?", quoteIdent(s.Col("email"))), email).
			Limit(1).
			Find(&rows).Error
		if err != nil {
			return err
		}

		account = nil
		if len(rows) > 0 {
			a := accountFromRow(rows[0])
			account = &a
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (r *accountRepository) Insert(ctx context.Context, account *dbm.Account) error {
	return runWithFallback(accountSchemas, func(s tableSchema) error {
		return r.db.WithContext(ctx).
			Table(s.Table).
			Create(accountValues(s, account)).Error
	})
}

func (r *accountRepository) Update(ctx context.Context, account *dbm.Account) error {
	return runWithFallback(accountSchemas, func(s tableSchema) error {
		return r.db.WithContext(ctx).
			Table(s.Table).
			Where("id = ?", account.ID).
			Updates(accountValues(s, account)).Error
	})
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	return runWithFallback(accountSchemas, func(s tableSchema) error {
		return r.db.WithContext(ctx).
			Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", quoteIdent(s.Table)), id).Error
	})
}

func accountValues(s tableSchema, account *dbm.Account) map[string]interface{} {
	values := map[string]interface{}{
		s.Col("name"):     account.Name,
		s.Col("email"):    account.Email,
		s.Col("position"): account.Role,
		s.Col("profile"):  account.ProfileURL,
	}
	// Optional columns stay NULL when blank, matching historical rows.
	values[s.Col("phone")] = nullIfEmpty(account.Phone)
	values[s.Col("department")] = nullIfEmpty(account.Department)
	return values
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
