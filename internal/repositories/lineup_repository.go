package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
)

// LineupRepository reads and updates the administrator-facing scheduled
// lineup records (the LINEUP family, keyed by scheduled timestamp).
type LineupRepository interface {
	Upcoming(ctx context.Context, since time.Time, limit int) ([]dbm.LineupApproval, error)
	FindByID(ctx context.Context, id int64) (*dbm.LineupApproval, error)
	NextScheduled(ctx context.Context, after time.Time) (*dbm.LineupApproval, error)
	Approve(ctx context.Context, id int64, approvedAt time.Time) error
	UpdateApproval(ctx context.Context, id int64, name, position, status string) error
	// ProfileURLByName is the best-effort link between submissions and
	// accounts: there is no foreign key, only matching name strings.
	ProfileURLByName(ctx context.Context, name string) (string, error)
}

type lineupRepository struct {
	db *gorm.DB
}

func NewLineupRepository(db *gorm.DB) LineupRepository {
	return &lineupRepository{db: db}
}

var approvalFields = []string{"id", "name", "position", "profile", "scheduled_at", "status"}

func approvalFromRow(row map[string]interface{}) dbm.LineupApproval {
	return dbm.LineupApproval{
		ID:          int64Field(row, "id"),
		Name:        stringField(row, "name"),
		Position:    stringField(row, "position"),
		ProfileURL:  stringField(row, "profile"),
		ScheduledAt: timeField(row, "scheduled_at"),
		Status:      strings.ToLower(strings.TrimSpace(stringField(row, "status"))),
	}
}

func (r *lineupRepository) Upcoming(ctx context.Context, since time.Time, limit int) ([]dbm.LineupApproval, error) {
	var lineups []dbm.LineupApproval
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		var rows []map[string]interface{}
		err := r.db.WithContext(ctx).
			Table(s.Table).
			Select(selectList(s, approvalFields...)).
			Where("scheduled_at >= ?", since).
			Order("scheduled_at ASC").
			Limit(limit).
			Find(&rows).Error
		if err != nil {
			return err
		}

		lineups = make([]dbm.LineupApproval, 0, len(rows))
		for _, row := range rows {
			lineups = append(lineups, approvalFromRow(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lineups, nil
}

func (r *lineupRepository) FindByID(ctx context.Context, id int64) (*dbm.LineupApproval, error) {
	var lineup *dbm.LineupApproval
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		var rows []map[string]interface{}
		err := r.db.WithContext(ctx).
			Table(s.Table).
			Select(selectList(s, approvalFields...)).
			Where("id = ?", id).
			Limit(1).
			Find(&rows).Error
		if err != nil {
			return err
		}

		lineup = nil
		if len(rows) > 0 {
			l := approvalFromRow(rows[0])
			lineup = &l
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if lineup == nil {
		return nil, utils.ErrLineupNotFound
	}
	return lineup, nil
}

// NextScheduled returns the earliest future lineup regardless of
// status; the caller decides what a non-pending row means.
func (r *lineupRepository) NextScheduled(ctx context.Context, after time.Time) (*dbm.LineupApproval, error) {
	var lineup *dbm.LineupApproval
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		var rows []map[string]interface{}
		err := r.db.WithContext(ctx).
			Table(s.Table).
			Select(selectList(s, approvalFields...)).
			Where("scheduled_at >= ?", after).
			Order("scheduled_at ASC").
			Limit(1).
			Find(&rows).Error
		if err != nil {
			return err
		}

		lineup = nil
		if len(rows) > 0 {
			l := approvalFromRow(rows[0])
			lineup = &l
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if lineup == nil {
		return nil, utils.ErrLineupNotFound
	}
	return lineup, nil
}

func (r *lineupRepository) Approve(ctx context.Context, id int64, approvedAt time.Time) error {
	return runWithFallback(accountSchemas, func(s tableSchema) error {
		return r.db.WithContext(ctx).
			Table(s.Table).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				s.Col("status"): "Approved",
				"approved_at":   approvedAt,
			}).Error
	})
}

func (r *lineupRepository) UpdateApproval(ctx context.Context, id int64, name, position, status string) error {
	return runWithFallback(accountSchemas, func(s tableSchema) error {
		return r.db.WithContext(ctx).
			Table(s.Table).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				s.Col("name"):     name,
				s.Col("position"): position,
				s.Col("status"):   status,
			}).Error
	})
}

func (r *lineupRepository) ProfileURLByName(ctx context.Context, name string) (string, error) {
	var profileURL string
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		var rows []map[string]interface{}
		err := r.db.WithContext(ctx).
			Table(s.Table).
			Select(selectList(s, "profile")).
			Where(fmt.Sprintf("%s = ?", quoteIdent(s.Col("name"))), name).
			Limit(1).
			Find(&rows).Error
		if err != nil {
			return err
		}

		profileURL = ""
		if len(rows) > 0 {
			profileURL = stringField(rows[0], "profile")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return profileURL, nil
}
