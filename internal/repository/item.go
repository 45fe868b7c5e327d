package repository

import (
	"context"
	"fmt"

	"projects/showcase/internal/domain"
	"projects/showcase/internal/fixture"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemRepository reads catalog fixtures from PostgreSQL. It never writes:
// likes and selections live only in memory.
type ItemRepository interface {
	fixture.Source
}

// Querier is the subset of *pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type itemRepository struct {
	db    Querier
	query string
}

func NewItemRepository(db *pgxpool.Pool, table string) ItemRepository {
	return newItemRepository(db, table)
}

func newItemRepository(db Querier, table string) *itemRepository {
	return &itemRepository{
		db: db,
		query: fmt.Sprintf(`
	SELECT id, title, description, author, sdg, views, created_at, rating,
	       thumbnail, likes, github_link, hosted_link
	FROM %s
	WHERE catalog = $1
	ORDER BY position, id`, pgx.Identifier{table}.Sanitize()),
	}
}

func (r *itemRepository) LoadCatalog(ctx context.Context, kind domain.CatalogKind) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, r.query, kind.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query %s items: %w", kind, err)
	}

	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s items: %w", kind, err)
	}

	return fixture.Items(records), nil
}

func scanRecord(row pgx.CollectableRow) (fixture.Record, error) {
	var (
		r                              fixture.Record
		author, thumbnail, github, web *string
		likes                          *int64
	)

	err := row.Scan(
		&r.ID, &r.Title, &r.Description, &author, &r.SDG, &r.Views, &r.CreatedAt.Time, &r.Rating,
		&thumbnail, &likes, &github, &web,
	)
	if err != nil {
		return r, err
	}

	r.Author = deref(author)
	r.Thumbnail = deref(thumbnail)
	r.GitHubLink = deref(github)
	r.HostedLink = deref(web)
	if likes != nil {
		r.Likes = *likes
	}

	return r, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
