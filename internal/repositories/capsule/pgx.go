package capsule

import (
	"context"
	"errors"
	"time"

	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/capsy-labs/capsy-companion/internal/repositories"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	sq "github.com/Masterminds/squirrel"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("CapsuleRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Create(ctx context.Context, c domain.Capsule) error {
	query, args, err := repositories.SqBuilder.
		Insert("capsules").
		Columns("post_id", "title", "channel_id", "reveal_at", "created_at").
		Values(c.PostID, c.Title, c.ChannelID, c.RevealAt, time.Now()).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (p *Pgx) ListDue(ctx context.Context, now time.Time) ([]*domain.Capsule, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "post_id", "title", "channel_id", "reveal_at", "notified", "created_at").
		From("capsules").
		Where(sq.LtOrEq{"reveal_at": now}).
		Where(sq.Eq{"notified": false}).
		OrderBy("reveal_at ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var capsules []*domain.Capsule
	for rows.Next() {
		var c domain.Capsule
		if err := rows.Scan(&c.ID, &c.PostID, &c.Title, &c.ChannelID, &c.RevealAt, &c.Notified, &c.CreatedAt); err != nil {
			return nil, err
		}
		capsules = append(capsules, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return capsules, nil
}

func (p *Pgx) MarkNotified(ctx context.Context, id int64) error {
	query, args, err := repositories.SqBuilder.
		Update("capsules").
		Set("notified", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
