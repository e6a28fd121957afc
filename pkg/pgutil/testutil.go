package pgutil

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"

	"github.com/chainsafe/gas-batcher/pkg/config"
)

const (
	testImage    = "postgres:16-alpine"
	testDatabase = "gas_batcher_test"
	testUser     = "test_user"
	testPassword = "test_pass"
)

// SetupTestDB starts a disposable Postgres container and connects to it.
// Tests are skipped when no container provider is reachable.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx, testImage,
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(wait.ForAll(
			// Postgres logs readiness twice: once for the init run, once for the real server.
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithDeadline(90*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	terminate := func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	cfg, err := containerConfig(ctx, container)
	if err != nil {
		terminate()
		t.Fatalf("failed to resolve container address: %v", err)
	}

	db, err := connectWithRetry(cfg, 5)
	if err != nil {
		terminate()
		t.Fatalf("failed to connect to test database: %v", err)
	}

	return db, func() {
		_ = db.Close()
		terminate()
	}
}

func containerConfig(ctx context.Context, c *postgres.PostgresContainer) (*config.DatabaseConfig, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		return nil, err
	}
	return &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     testUser,
		Password: testPassword,
		Database: testDatabase,
		SSLMode:  "disable",
	}, nil
}

func connectWithRetry(cfg *config.DatabaseConfig, attempts int) (db *bun.DB, err error) {
	delay := 200 * time.Millisecond
	for i := 0; i < attempts; i++ {
		if db, err = ConnectDB(cfg); err == nil {
			return db, nil
		}
		time.Sleep(delay)
		delay *= 2
	}
	return nil, err
}

func catalogHas(t *testing.T, db *bun.DB, query string, args ...any) bool {
	t.Helper()
	var exists bool
	if err := db.NewSelect().ColumnExpr("EXISTS ("+query+")", args...).Scan(context.Background(), &exists); err != nil {
		t.Fatalf("catalog lookup failed: %v", err)
	}
	return exists
}

func tableExists(t *testing.T, db *bun.DB, table string) bool {
	t.Helper()
	return catalogHas(t, db,
		"SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?", table)
}

// AssertTableExists fails t unless the public schema has table.
func AssertTableExists(t *testing.T, db *bun.DB, table string) {
	t.Helper()
	if !tableExists(t, db, table) {
		t.Errorf("table %s does not exist", table)
	}
}

// AssertTableNotExists fails t if the public schema has table.
func AssertTableNotExists(t *testing.T, db *bun.DB, table string) {
	t.Helper()
	if tableExists(t, db, table) {
		t.Errorf("table %s should not exist but it does", table)
	}
}

// AssertIndexExists fails t unless the public schema has index.
func AssertIndexExists(t *testing.T, db *bun.DB, index string) {
	t.Helper()
	if !catalogHas(t, db, "SELECT 1 FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?", index) {
		t.Errorf("index %s does not exist", index)
	}
}

// AssertRowCount fails t unless table holds exactly expected rows.
func AssertRowCount(t *testing.T, db *bun.DB, table string, expected int) {
	t.Helper()
	var count int
	if err := db.NewSelect().TableExpr("?", bun.Ident(table)).ColumnExpr("COUNT(*)").Scan(context.Background(), &count); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", table, expected, count)
	}
}
