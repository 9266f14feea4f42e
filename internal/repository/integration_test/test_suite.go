package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"shipment-service/internal/pkg/config"
	"shipment-service/internal/pkg/migrations"
	"shipment-service/internal/pkg/postgres"
	"shipment-service/pkg/logger/zap_adapter"
	"shipment-service/pkg/querier"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func initDB() {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{
			Service: "integration-test",
			Level:   "warn",
		})
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			_ = zapLogger.Sync()
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := migrations.Up(ctx, connPool); err != nil {
			panic(err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	initDB()
	return querierInstance
}

// GetPool нужен для tx.Manager в тестах с транзакциями.
func GetPool() *pgxpool.Pool {
	initDB()
	return poolInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE transport_packs, shipment_organizations, shipments, organizations CASCADE;
	`)
	require.NoError(t, err)
}
