package store

import (
	"context"
	"fmt"

	"github.com/fujioka8700/eitan/ent"
	"github.com/fujioka8700/eitan/ent/userwordstat"
	"github.com/fujioka8700/eitan/ent/word"
)

// StatusMastered and StatusLearning are the two per-word study states.
const (
	StatusMastered = "習得済み"
	StatusLearning = "学習中"
)

// statRepo implements StatRepo using the ent client.
type statRepo struct {
	client *ent.Client
}

// Upsert is find-then-update: the unique (user_id, word_id) index means
// at most one row can exist, so a lookup miss is the create path.
func (r *statRepo) Upsert(ctx context.Context, userID string, upd StatUpdate) error {
	if userID == "" {
		return nil
	}

	existing, err := r.client.UserWordStat.Query().
		Where(
			userwordstat.UserID(userID),
			userwordstat.WordID(upd.WordID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("find stat: %w", err)
	}

	correct, incorrect := 0, 0
	if upd.Correct {
		correct = 1
	} else {
		incorrect = 1
	}

	if existing == nil {
		_, err = r.client.UserWordStat.Create().
			SetUserID(userID).
			SetWordID(upd.WordID).
			SetStatus(upd.Status).
			SetCorrectCount(correct).
			SetIncorrectCount(incorrect).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create stat: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetStatus(upd.Status).
		AddCorrectCount(correct).
		AddIncorrectCount(incorrect).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update stat: %w", err)
	}
	return nil
}

func (r *statRepo) ListRecent(ctx context.Context, userID string, limit int) ([]WordStat, error) {
	if userID == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.client.UserWordStat.Query().
		Where(userwordstat.UserID(userID)).
		Order(ent.Desc(userwordstat.FieldLastStudiedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}

	stats := make([]WordStat, 0, len(rows))
	for _, row := range rows {
		st := WordStat{
			WordID:         row.WordID,
			Status:         row.Status,
			CorrectCount:   row.CorrectCount,
			IncorrectCount: row.IncorrectCount,
			LastStudiedAt:  row.LastStudiedAt,
		}
		// Stats reference words by ID; a word removed by a re-import
		// simply shows up without its text.
		w, err := r.client.Word.Query().Where(word.ID(row.WordID)).Only(ctx)
		if err == nil {
			st.English = w.English
			st.Japanese = w.Japanese
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("resolve word %d: %w", row.WordID, err)
		}
		stats = append(stats, st)
	}
	return stats, nil
}

func (r *statRepo) Totals(ctx context.Context, userID string) (studied, mastered, accuracy int, err error) {
	if userID == "" {
		return 0, 0, 0, nil
	}

	rows, err := r.client.UserWordStat.Query().
		Where(userwordstat.UserID(userID)).
		All(ctx)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("query totals: %w", err)
	}

	correct, total := 0, 0
	for _, row := range rows {
		studied++
		if row.Status == StatusMastered {
			mastered++
		}
		correct += row.CorrectCount
		total += row.CorrectCount + row.IncorrectCount
	}
	if total > 0 {
		accuracy = (correct*100 + total/2) / total
	}
	return studied, mastered, accuracy, nil
}

func (r *statRepo) Reset(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	_, err := r.client.UserWordStat.Delete().
		Where(userwordstat.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}
