// Package pgstorage is a fixreg.Storage and fixreg.PersistenceLayer backed by PostgreSQL.
//
// Entities are kept as JSONB documents in a single table keyed by entity type and identity.
// The table is created on Connect, and ResetSchema drops and recreates it.
package pgstorage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	uuid "github.com/satori/go.uuid"

	"github.com/adamluzsi/fixreg"
	"github.com/adamluzsi/fixreg/internal/reflects"
)

const DefaultTableName = "fixreg_entities"

func Connect(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	pg := &Postgres{Pool: pool}
	if err := pg.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pg, nil
}

type Postgres struct {
	Pool *pgxpool.Pool
	// Table [optional] is the name of the table that holds the entities.
	//
	// default: DefaultTableName
	Table string
	// Cleanup is the storage side flag that allows schema reset at the end of a suite.
	Cleanup bool
}

func (pg *Postgres) Close() error {
	pg.Pool.Close()
	return nil
}

// Migrate creates the entity table when it doesn't exist yet.
func (pg *Postgres) Migrate(ctx context.Context) error {
	_, err := pg.Pool.Exec(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	entity_type TEXT  NOT NULL,
	id          TEXT  NOT NULL,
	body        JSONB NOT NULL,
	PRIMARY KEY (entity_type, id)
);`, pg.table()))
	return err
}

func (pg *Postgres) Save(ctx context.Context, t fixreg.EntityType, ptr fixreg.Entity) error {
	id, ok := reflects.LookupID(ptr)
	if !ok {
		return fixreg.ErrIDRequired
	}
	if id == "" {
		id = uuid.NewV4().String()
		if err := reflects.SetID(ptr, id); err != nil {
			return err
		}
	}
	body, err := json.Marshal(ptr)
	if err != nil {
		return err
	}
	_, err = pg.Pool.Exec(ctx, fmt.Sprintf(`
INSERT INTO %s (entity_type, id, body) VALUES ($1, $2, $3::jsonb)
ON CONFLICT (entity_type, id) DO UPDATE SET body = EXCLUDED.body`, pg.table()),
		string(t), id, string(body))
	return err
}

func (pg *Postgres) FindByID(ctx context.Context, t fixreg.EntityType, id string, ptr fixreg.Entity) (bool, error) {
	var body []byte
	err := pg.Pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT body FROM %s WHERE entity_type = $1 AND id = $2`, pg.table()),
		string(t), id).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(body, ptr)
}

func (pg *Postgres) Config(key string) (interface{}, bool) {
	switch key {
	case fixreg.CleanupConfigKey:
		return pg.Cleanup, true
	case "driver":
		return "postgres", true
	case "table":
		return pg.tableName(), true
	default:
		return nil, false
	}
}

// ResetSchema drops the entity table and creates it again.
func (pg *Postgres) ResetSchema(ctx context.Context, _ fixreg.Container) error {
	if _, err := pg.Pool.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, pg.table())); err != nil {
		return err
	}
	return pg.Migrate(ctx)
}

func (pg *Postgres) tableName() string {
	if pg.Table != "" {
		return pg.Table
	}
	return DefaultTableName
}

func (pg *Postgres) table() string {
	return pgx.Identifier{pg.tableName()}.Sanitize()
}
