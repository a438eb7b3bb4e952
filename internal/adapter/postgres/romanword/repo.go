// Package romanword implements the romanization dictionary repository.
package romanword

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sindhipoetry/backend/internal/adapter/postgres"
	"github.com/sindhipoetry/backend/internal/domain"
)

// Repo provides roman_words persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new romanization dictionary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var sortColumns = map[string]string{
	"word_sd":    "word_sd",
	"word_roman": "word_roman",
	"created_at": "created_at",
}

var wordColumns = []string{"id", "word_sd", "word_roman", "synced_at", "created_at"}

// Upsert stores a romanization. Re-adding an existing Sindhi word replaces
// its roman form and marks it unsynced again.
func (r *Repo) Upsert(ctx context.Context, wordSD, wordRoman string) (*domain.RomanWord, error) {
	query, args, err := postgres.Psql.Insert("roman_words").
		Columns("word_sd", "word_roman").
		Values(wordSD, wordRoman).
		Suffix("ON CONFLICT (word_sd) DO UPDATE SET word_roman = EXCLUDED.word_roman, synced_at = NULL " +
			"RETURNING id, word_sd, word_roman, synced_at, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("upsert roman word: build: %w", err)
	}

	w, err := scanWord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "roman_word", wordSD)
	}
	return &w, nil
}

// List returns one page of dictionary entries.
func (r *Repo) List(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.RomanWord], error) {
	spec := postgres.NewListSpec(lq, sortColumns, "created_at")
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := postgres.Psql.Select().From("roman_words")
	if where := postgres.SearchAny(spec.Search, "word_sd", "word_roman"); where != nil {
		base = base.Where(where)
	}

	total, err := postgres.Count(ctx, q, base)
	if err != nil {
		return domain.Page[domain.RomanWord]{}, fmt.Errorf("list roman words: %w", err)
	}

	query, args, err := spec.Paginate(base.Columns(wordColumns...), "id").ToSql()
	if err != nil {
		return domain.Page[domain.RomanWord]{}, fmt.Errorf("list roman words: build: %w", err)
	}

	words, err := r.query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.RomanWord]{}, fmt.Errorf("list roman words: %w", err)
	}
	return domain.NewPage(words, total, spec.Page, spec.Limit), nil
}

// ListUnsynced returns entries not yet merged into the lookup artifact,
// oldest first, locking them for the rest of the transaction.
func (r *Repo) ListUnsynced(ctx context.Context) ([]domain.RomanWord, error) {
	b := postgres.Psql.Select(wordColumns...).
		From("roman_words").
		Where(sq.Eq{"synced_at": nil}).
		OrderBy("id")
	if _, inTx := postgres.TxFromCtx(ctx); inTx {
		b = b.Suffix("FOR UPDATE SKIP LOCKED")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list unsynced roman words: build: %w", err)
	}

	words, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list unsynced roman words: %w", err)
	}
	return words, nil
}

// MarkSynced stamps the given entries as merged. Returns the number of rows
// updated.
func (r *Repo) MarkSynced(ctx context.Context, ids []int64, at time.Time) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Psql.Update("roman_words").
		Set("synced_at", at).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("mark roman words synced: build: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("mark roman words synced: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repo) query(ctx context.Context, query string, args ...any) ([]domain.RomanWord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []domain.RomanWord{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func scanWord(row pgx.Row) (domain.RomanWord, error) {
	var w domain.RomanWord
	err := row.Scan(&w.ID, &w.WordSD, &w.WordRoman, &w.SyncedAt, &w.CreatedAt)
	return w, err
}
