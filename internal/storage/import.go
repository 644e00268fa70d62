package storage

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jasperwreed/story-memory/internal/models"
)

// Seed is the document accepted by Import. YAML and JSON both decode.
type Seed struct {
	Conversations []models.ConversationRecord `yaml:"conversations"`
	Weeks         []SeedWeek                  `yaml:"weeks"`
	Days          []SeedDay                   `yaml:"days"`
}

// SeedWeek is a weekly summary owned by a user.
type SeedWeek struct {
	UserSeq            int64 `yaml:"userSeq"`
	models.WeeklyStats `yaml:",inline"`
}

// SeedDay is a single day's analytics owned by a user.
type SeedDay struct {
	UserSeq         int64 `yaml:"userSeq"`
	models.DayStats `yaml:",inline"`
}

// ImportResult counts what an import wrote.
type ImportResult struct {
	Conversations int
	Weeks         int
	Days          int
}

// Import decodes a seed document from r and writes it to the store.
func (s *SQLiteStore) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	var seed Seed
	var result ImportResult

	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		if err == io.EOF {
			return result, nil
		}
		return result, fmt.Errorf("failed to decode seed: %w", err)
	}

	for i := range seed.Conversations {
		if err := s.SaveConversation(ctx, &seed.Conversations[i]); err != nil {
			return result, fmt.Errorf("conversation %d: %w", i, err)
		}
		result.Conversations++
	}

	for i := range seed.Weeks {
		week := &seed.Weeks[i]
		if err := s.SaveWeekAnalytics(ctx, week.UserSeq, &week.WeeklyStats); err != nil {
			return result, fmt.Errorf("week %s: %w", week.StartDay, err)
		}
		result.Weeks++
		result.Days += len(week.DayAnalytics)
	}

	for i := range seed.Days {
		day := &seed.Days[i]
		if err := s.SaveDayAnalytics(ctx, day.UserSeq, &day.DayStats); err != nil {
			return result, fmt.Errorf("day %s: %w", day.Day, err)
		}
		result.Days++
	}

	return result, nil
}
