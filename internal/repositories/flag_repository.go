package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type flagRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewFlagRepository creates a MySQL backed flag repository
func NewFlagRepository(db *sql.DB, logger *zap.Logger) *flagRepository {
	return &flagRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the value of a flag. The boolean is false when the flag is not set.
func (r *flagRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT flag_value
		FROM user_flags
		WHERE flag_key = ?
		LIMIT 1
	`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Error("failed to get flag", zap.String("key", key), zap.Error(err))
		return "", false, fmt.Errorf("failed to get flag: %w", err)
	}

	return value, true, nil
}

// Set creates or replaces a flag
func (r *flagRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO user_flags (flag_key, flag_value)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE flag_value = VALUES(flag_value)
	`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		r.logger.Error("failed to set flag", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to set flag: %w", err)
	}

	return nil
}

// Delete removes a flag. Deleting a missing flag is not an error.
func (r *flagRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM user_flags WHERE flag_key = ?`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		r.logger.Error("failed to delete flag", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to delete flag: %w", err)
	}

	return nil
}
