package corpus

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// placesQuery returns names grouped by region in corpus order
const placesQuery = `
	SELECT region, name
	FROM places
	ORDER BY region_pos, name_pos
`

// PostgresSource reads the corpus from a places table
type PostgresSource struct {
	pool *pgxpool.Pool
}

// Connect opens a pool and verifies it with a ping
func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to database: %v", ErrLoad, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %v", ErrLoad, err)
	}

	return pool, nil
}

// NewPostgresSource creates a source over an open pool
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Name returns the source identifier
func (s *PostgresSource) Name() string {
	return "postgres"
}

// Load reads every row, starting a new group whenever the region changes
func (s *PostgresSource) Load(ctx context.Context) (*Corpus, error) {
	rows, err := s.pool.Query(ctx, placesQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query places: %v", ErrLoad, err)
	}
	defer rows.Close()

	c := &Corpus{}
	for rows.Next() {
		var region, name string
		if err := rows.Scan(&region, &name); err != nil {
			return nil, fmt.Errorf("%w: failed to scan place: %v", ErrLoad, err)
		}
		c.appendName(region, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read places: %v", ErrLoad, err)
	}
	return c, nil
}

func (c *Corpus) appendName(region, name string) {
	if n := len(c.Groups); n == 0 || c.Groups[n-1].Name != region {
		c.Groups = append(c.Groups, Group{Name: region})
	}
	last := &c.Groups[len(c.Groups)-1]
	last.Names = append(last.Names, name)
}
