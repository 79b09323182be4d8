package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/upservice/user-profile-service/pkg/log"
)

const (
	migrationLockName = "perform_migration_lock"
	querySeparator    = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type MigrationSource fs.ReadDirFS

func FSMigrations(migrations fs.ReadDirFS) MigrationSource {
	return migrations
}

type Migrator struct {
	txClient TxClient
	logger   log.Logger
}

func NewMigrator(txClient TxClient, logger log.Logger) *Migrator {
	return &Migrator{txClient: txClient, logger: logger}
}

// Execute applies all pending migration files from the sources in order,
// each in its own transaction, serialized by an advisory lock.
func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	tx, err := m.txClient.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start migration lock tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err = lockTransaction(ctx, tx, migrationLockName); err != nil {
		return err
	}

	if _, err = m.txClient.ExecContext(ctx, migrationTableDDL); err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	for _, source := range sources {
		if err = m.performSourceMigrations(ctx, source); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (m *Migrator) performSourceMigrations(ctx context.Context, source MigrationSource) error {
	migrationIDs, err := m.getFileNames(source)
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}
	if len(migrationIDs) == 0 {
		return nil
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		migrationSQL, err := fs.ReadFile(source, migrationID)
		if err != nil {
			return fmt.Errorf("read migration sql: %w", err)
		}

		err = m.performMigration(ctx, migrationID, string(migrationSQL))
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) performMigration(ctx context.Context, migrationID, migrationSQL string) error {
	if migrationSQL == "" {
		return fmt.Errorf("migration %s is empty", migrationID)
	}

	tx, err := m.txClient.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start tx: %w", err)
	}

	err = m.processMigration(ctx, tx, migrationID, migrationSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", migrationID, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	return nil
}

func (m *Migrator) processMigration(ctx context.Context, client Client, migrationID, migrationSQL string) error {
	_, err := client.ExecContext(ctx, `INSERT INTO migration VALUES ($1)`, migrationID)
	if err != nil {
		return err
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}
		if _, err = client.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) getFileNames(source MigrationSource) ([]string, error) {
	entries, err := source.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		result = append(result, entry.Name())
	}
	if len(result) == 0 {
		return nil, errors.New("migration source is empty")
	}
	return result, nil
}

func (m *Migrator) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	var fileNames []string
	err := m.txClient.SelectContext(ctx, &fileNames, `SELECT id FROM migration`)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(fileNames))
	for _, id := range fileNames {
		result[id] = struct{}{}
	}
	return result, nil
}
