package corpus

import "context"

// Open selects the Postgres source when databaseURL is set and the JSON file
// at path otherwise. The returned close function releases any connection.
func Open(ctx context.Context, databaseURL, path string) (Source, func(), error) {
	if databaseURL == "" {
		return NewFileSource(path), func() {}, nil
	}

	pool, err := Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	return NewPostgresSource(pool), pool.Close, nil
}
