package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
)

// SubmissionRepository reads and writes the lineup submission table
// (lineupinfo): one row per submitted song plan, with a column triple
// per mass part: <part>, <part>lyrics, <part>storage. The storage
// column holds the JSON-encoded file-URL list.
type SubmissionRepository interface {
	Insert(ctx context.Context, sub *dbm.LineupSubmission) (int64, error)
	FindByID(ctx context.Context, id int64) (*dbm.LineupSubmission, error)
	Recent(ctx context.Context, limit int) ([]dbm.LineupSubmission, error)
	Update(ctx context.Context, id int64, sub *dbm.LineupSubmission) error
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func submissionFromRow(row map[string]interface{}) dbm.LineupSubmission {
	sub := dbm.LineupSubmission{
		ID:        int64Field(row, "id"),
		Name:      stringField(row, "name"),
		Position:  stringField(row, "position"),
		MassDate:  stringField(row, "date"),
		MassTime:  stringField(row, "time"),
		CreatedAt: timeField(row, "created_at"),
	}

	sub.Slots = make([]dbm.MassPartSlot, 0, len(dbm.MassParts))
	for _, part := range dbm.MassParts {
		sub.Slots = append(sub.Slots, dbm.MassPartSlot{
			Part:      part,
			SongTitle: stringField(row, part.Key),
			Lyrics:    stringField(row, part.Key+"lyrics"),
			FileURLs:  NormalizeFileList(ResolveField(row, part.Key+"storage")),
		})
	}
	return sub
}

func (r *submissionRepository) Insert(ctx context.Context, sub *dbm.LineupSubmission) (int64, error) {
	cols := []string{"name", "position", "date", "time"}
	vals := []interface{}{sub.Name, sub.Position, sub.MassDate, sub.MassTime}

	for _, part := range dbm.MassParts {
		slot := sub.Slot(part.Key)
		if slot == nil {
			continue
		}
		cols = append(cols, part.Key, part.Key+"lyrics", part.Key+"storage")
		vals = append(vals, slot.SongTitle, slot.Lyrics, storageValue(slot.FileURLs))
	}

	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quoteIdent(c)
		placeholders[i] = "?"
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		quoteIdent(submissionSchema.Table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	var id int64
	if err := r.db.WithContext(ctx).Raw(query, vals...).Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

func (r *submissionRepository) FindByID(ctx context.Context, id int64) (*dbm.LineupSubmission, error) {
	var rows []map[string]interface{}
	err := r.db.WithContext(ctx).
		Table(submissionSchema.Table).
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.ErrLineupNotFound
	}

	sub := submissionFromRow(rows[0])
	return &sub, nil
}

func (r *submissionRepository) Recent(ctx context.Context, limit int) ([]dbm.LineupSubmission, error) {
	var rows []map[string]interface{}
	err := r.db.WithContext(ctx).
		Table(submissionSchema.Table).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	subs := make([]dbm.LineupSubmission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, submissionFromRow(row))
	}
	return subs, nil
}

func (r *submissionRepository) Update(ctx context.Context, id int64, sub *dbm.LineupSubmission) error {
	values := map[string]interface{}{
		"name":     sub.Name,
		"position": sub.Position,
		"date":     nullIfEmpty(sub.MassDate),
		"time":     nullIfEmpty(sub.MassTime),
	}
	for _, part := range dbm.MassParts {
		slot := sub.Slot(part.Key)
		if slot == nil {
			continue
		}
		values[part.Key] = slot.SongTitle
		values[part.Key+"lyrics"] = slot.Lyrics
		values[part.Key+"storage"] = storageValue(slot.FileURLs)
	}

	return r.db.WithContext(ctx).
		Table(submissionSchema.Table).
		Where("id = ?", id).
		Updates(values).Error
}

// storageValue serializes a slot's file list to the historical
// JSON-encoded-string column form, NULL when empty.
func storageValue(urls []string) interface{} {
	s := SerializeFileList(urls)
	if s == nil {
		return nil
	}
	return *s
}
