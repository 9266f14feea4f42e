package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"shipment-service/migrations"
	"shipment-service/pkg/logger"
)

const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandVersion = "version"
	CommandReset   = "reset"

	dialect = "postgres"
	dir     = "."
)

var ErrUnknownCommand = errors.New("unknown migration command")

// Commands поддерживаемые команды goose.
func Commands() []string {
	return []string{CommandUp, CommandDown, CommandStatus, CommandVersion, CommandReset}
}

func IsCommand(command string) bool {
	for _, c := range Commands() {
		if c == command {
			return true
		}
	}
	return false
}

// Run выполняет команду goose над встроенными миграциями через пул pgx.
func Run(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, command string) error {
	if !IsCommand(command) {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close migrations connection", logger.NewField("error", err))
		}
	}()

	err := run(ctx, db, command)
	if err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	log.With(logger.NewField("command", command)).Info("migrations applied")
	return nil
}

// Up применяет все миграции, используется в интеграционных тестах.
func Up(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return run(ctx, db, CommandUp)
}

func run(ctx context.Context, db *sql.DB, command string) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	return goose.RunContext(ctx, command, db, dir)
}
