package postgres

// Source database: measurements and credentials.
const (
	// queryCountData and querySelectData are completed by buildDataFilter.
	// Column lists are taken from a fixed whitelist, never from user input.
	queryCountData  = `SELECT COUNT(*) FROM data`
	querySelectData = `SELECT %s FROM data`

	queryLookupAPIKey = `
		SELECT k.id, k.user_id, u.username
		FROM api_keys k
		JOIN users u ON u.id = k.user_id
		WHERE k.hashed_key = $1
		  AND k.is_active = TRUE
		LIMIT 1
	`

	queryInsertUser = `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING id
	`

	queryUserHasAPIKey = `SELECT EXISTS (SELECT 1 FROM api_keys WHERE user_id = $1)`

	queryInsertAPIKey = `
		INSERT INTO api_keys (user_id, hashed_key, description, is_active, created_at)
		VALUES ($1, $2, $3, TRUE, $4)
		RETURNING id
	`
)

// Target database: signal dictionary and 10-minute aggregates.
const (
	querySelectSignals = `SELECT id, name FROM signal ORDER BY name`

	querySelectSignalsByName = `SELECT id, name FROM signal WHERE name = ANY($1)`

	// queryInsertSignals returns only the rows it actually created.
	queryInsertSignals = `
		INSERT INTO signal (name)
		SELECT DISTINCT unnest($1::text[])
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name
	`

	queryUpsertAggregate = `
		INSERT INTO data (signal_id, ts, value, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (signal_id, ts)
		DO UPDATE SET value = EXCLUDED.value
	`
)

// schemaCheckQuery reports whether a table exists.
const schemaCheckQuery = `
	SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_name = $1
	)
`
