package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StartPostgres returns a DSN for an empty database. TEST_DB_DSN is used as is
// when set, otherwise a postgres:15 container is started.
func StartPostgres(ctx context.Context) (string, func(), error) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		return dsn, func() {}, waitForDB(dsn)
	}

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "dashboard",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = pg.Terminate(context.Background()) }

	host, err := pg.Host(ctx)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		cleanup()
		return "", nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=dashboard sslmode=disable", host, port.Port())
	if err := waitForDB(dsn); err != nil {
		cleanup()
		return "", nil, err
	}
	return dsn, cleanup, nil
}

func waitForDB(dsn string) error {
	var err error
	for i := 0; i < 10; i++ {
		var db *sql.DB
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
			_ = db.Close()
			if err == nil {
				return nil
			}
		}
		time.Sleep(time.Second)
	}
	return err
}
