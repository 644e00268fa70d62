package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jasperwreed/story-memory/internal/daterange"
	"github.com/jasperwreed/story-memory/internal/models"
	"github.com/jasperwreed/story-memory/internal/timefmt"
	_ "modernc.org/sqlite"
)

const timestampLayout = "2006-01-02 15:04:05"

var (
	// ErrNotFound is returned when a conversation does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTimestamp is returned for a createdAt tuple that is too short.
	ErrInvalidTimestamp = errors.New("createdAt needs 6 fields")
)

type SQLiteStore struct {
	writeDB *sql.DB // Single connection for writes
	readDB  *sql.DB // Pool of connections for reads
	dbPath  string
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	cfg := DefaultConfig()
	cfg.Path = dbPath
	return NewSQLiteStoreWithConfig(cfg)
}

func NewSQLiteStoreWithConfig(cfg *Config) (*SQLiteStore, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	dbPath := cfg.Path
	if dbPath == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		dbPath = defaultPath
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open write database: %w", err)
	}
	writeDB.SetMaxOpenConns(1) // Only one write connection

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("failed to open read database: %w", err)
	}
	readDB.SetMaxOpenConns(cfg.MaxOpenConns)
	readDB.SetMaxIdleConns(cfg.MaxIdleConns)
	readDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	store := &SQLiteStore{
		writeDB: writeDB,
		readDB:  readDB,
		dbPath:  dbPath,
	}

	if err := store.initializeDB(cfg); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := store.createTables(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

// Path is the database file in use.
func (s *SQLiteStore) Path() string {
	return s.dbPath
}

func (s *SQLiteStore) initializeDB(cfg *Config) error {
	for _, pragma := range cfg.pragmas() {
		if _, err := s.writeDB.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set %s: %w", pragma, err)
		}
	}
	return nil
}

func (s *SQLiteStore) createTables() error {
	queries := []string{
		queryCreateConversationsTable,
		queryCreateWeekAnalyticsTable,
		queryCreateDayAnalyticsTable,
		queryCreateIndexConversationsCreated,
	}

	for _, query := range queries {
		if _, err := s.writeDB.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// SaveConversation inserts or replaces a conversation. A zero
// ConversationSeq is assigned the user's next sequence number.
func (s *SQLiteStore) SaveConversation(ctx context.Context, rec *models.ConversationRecord) error {
	createdAt, ok := timefmt.Time(rec.CreatedAt)
	if !ok {
		return ErrInvalidTimestamp
	}
	if rec.UserSeq <= 0 {
		return fmt.Errorf("invalid user seq %d", rec.UserSeq)
	}

	tx, err := s.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if rec.ConversationSeq == 0 {
		if err := tx.QueryRowContext(ctx, queryNextConversationSeq, rec.UserSeq).Scan(&rec.ConversationSeq); err != nil {
			return fmt.Errorf("failed to assign conversation seq: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, queryUpsertConversation,
		rec.UserSeq, rec.ConversationSeq, rec.Title, createdAt.Format(timestampLayout),
	); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	return tx.Commit()
}

// ListConversationsByDate returns the user's conversations recorded on day,
// oldest first.
func (s *SQLiteStore) ListConversationsByDate(ctx context.Context, userSeq int64, day string) ([]models.ConversationRecord, error) {
	start, err := daterange.Parse(day)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 0, 1)

	rows, err := s.readDB.QueryContext(ctx, querySelectConversationsByDay,
		userSeq, start.Format(timestampLayout), end.Format(timestampLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.ConversationRecord{}
	for rows.Next() {
		rec := models.ConversationRecord{UserSeq: userSeq}
		var createdAt string
		if err := rows.Scan(&rec.ConversationSeq, &rec.Title, &createdAt); err != nil {
			return nil, err
		}
		t, err := time.ParseInLocation(timestampLayout, createdAt, timefmt.Location)
		if err != nil {
			return nil, fmt.Errorf("conversation %d: bad created_at %q: %w", rec.ConversationSeq, createdAt, err)
		}
		rec.CreatedAt = timefmt.FromTime(t)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// FetchConversationsByDate serves the day view straight from the store.
func (s *SQLiteStore) FetchConversationsByDate(ctx context.Context, userSeq int64, day string) (*models.ConversationList, error) {
	records, err := s.ListConversationsByDate(ctx, userSeq, day)
	if err != nil {
		return nil, err
	}
	return &models.ConversationList{ConversationList: records}, nil
}

func (s *SQLiteStore) DeleteConversation(ctx context.Context, userSeq, conversationSeq int64) error {
	result, err := s.writeDB.ExecContext(ctx, queryDeleteConversation, userSeq, conversationSeq)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveWeekAnalytics stores the summaries of a weekly window together with
// its per-day analytics.
func (s *SQLiteStore) SaveWeekAnalytics(ctx context.Context, userSeq int64, stats *models.WeeklyStats) error {
	if _, err := daterange.Window(stats.StartDay, stats.EndDay); err != nil {
		return err
	}

	tx, err := s.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, queryUpsertWeekAnalytics,
		userSeq, stats.StartDay, stats.EndDay,
		stats.EmotionSummary, stats.VocabularySummary, stats.WordCloudSummary,
	); err != nil {
		return fmt.Errorf("failed to save week analytics: %w", err)
	}

	for i := range stats.DayAnalytics {
		if err := saveDay(ctx, tx, userSeq, &stats.DayAnalytics[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveDayAnalytics stores the analytics of a single day.
func (s *SQLiteStore) SaveDayAnalytics(ctx context.Context, userSeq int64, day *models.DayStats) error {
	tx, err := s.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := saveDay(ctx, tx, userSeq, day); err != nil {
		return err
	}
	return tx.Commit()
}

func saveDay(ctx context.Context, tx *sql.Tx, userSeq int64, day *models.DayStats) error {
	if _, err := daterange.Parse(day.Day); err != nil {
		return err
	}

	wordsJSON, err := json.Marshal(day.Words)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, queryUpsertDayAnalytics,
		userSeq, day.Day, day.ConversationCount,
		day.Positive, day.Negative, day.Neutral, day.VocabularyScore,
		string(wordsJSON),
	); err != nil {
		return fmt.Errorf("failed to save day analytics for %s: %w", day.Day, err)
	}
	return nil
}

// GetWeeklyStats returns the statistics of the window, or nil when neither a
// weekly summary nor any day analytics exist for it.
func (s *SQLiteStore) GetWeeklyStats(ctx context.Context, userSeq int64, startDay, endDay string) (*models.WeeklyStats, error) {
	if _, err := daterange.Window(startDay, endDay); err != nil {
		return nil, err
	}

	stats := &models.WeeklyStats{StartDay: startDay, EndDay: endDay}
	found := true

	err := s.readDB.QueryRowContext(ctx, querySelectWeekAnalytics, userSeq, startDay, endDay).Scan(
		&stats.EmotionSummary, &stats.VocabularySummary, &stats.WordCloudSummary,
	)
	if errors.Is(err, sql.ErrNoRows) {
		found = false
	} else if err != nil {
		return nil, err
	}

	rows, err := s.readDB.QueryContext(ctx, querySelectDayAnalytics, userSeq, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day models.DayStats
		var wordsJSON sql.NullString
		if err := rows.Scan(&day.Day, &day.ConversationCount, &day.Positive, &day.Negative,
			&day.Neutral, &day.VocabularyScore, &wordsJSON); err != nil {
			return nil, err
		}
		if wordsJSON.Valid && wordsJSON.String != "" {
			if err := json.Unmarshal([]byte(wordsJSON.String), &day.Words); err != nil {
				return nil, fmt.Errorf("day %s: bad words column: %w", day.Day, err)
			}
		}
		stats.DayAnalytics = append(stats.DayAnalytics, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found && len(stats.DayAnalytics) == 0 {
		return nil, nil
	}
	return stats, nil
}

// FetchWeeklyStats serves the week view straight from the store.
func (s *SQLiteStore) FetchWeeklyStats(ctx context.Context, userSeq int64, startDay, endDay string) (*models.WeeklyStats, error) {
	return s.GetWeeklyStats(ctx, userSeq, startDay, endDay)
}

func (s *SQLiteStore) Close() error {
	var errs []error

	// Run PRAGMA optimize before closing for better long-term performance
	if _, err := s.writeDB.Exec("PRAGMA optimize"); err != nil {
		errs = append(errs, fmt.Errorf("failed to optimize: %w", err))
	}

	if err := s.readDB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close read db: %w", err))
	}

	if err := s.writeDB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close write db: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}

	return nil
}
