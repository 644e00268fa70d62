package models

import "sort"

// WeeklyStats is the weekly statistics payload. The views only care whether
// it is present; the per-tab slides read the fields below.
type WeeklyStats struct {
	StartDay          string     `json:"startDay" yaml:"startDay"`
	EndDay            string     `json:"endDay" yaml:"endDay"`
	EmotionSummary    string     `json:"emotionSummary" yaml:"emotionSummary"`
	VocabularySummary string     `json:"vocabularySummary" yaml:"vocabularySummary"`
	WordCloudSummary  string     `json:"wordCloudSummary" yaml:"wordCloudSummary"`
	DayAnalytics      []DayStats `json:"dayAnalytics" yaml:"dayAnalytics"`
}

// DayStats holds the analytics computed for a single day.
type DayStats struct {
	Day               string      `json:"day" yaml:"day"`
	ConversationCount int         `json:"conversationCount" yaml:"conversationCount"`
	Positive          int         `json:"positive" yaml:"positive"`
	Negative          int         `json:"negative" yaml:"negative"`
	Neutral           int         `json:"neutral" yaml:"neutral"`
	VocabularyScore   float64     `json:"vocabularyScore" yaml:"vocabularyScore"`
	Words             []WordCount `json:"words,omitempty" yaml:"words,omitempty"`
}

// WordCount is one word cloud entry.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// TotalConversations sums ConversationCount over the window.
func (s *WeeklyStats) TotalConversations() int {
	if s == nil {
		return 0
	}
	total := 0
	for _, d := range s.DayAnalytics {
		total += d.ConversationCount
	}
	return total
}

// TopWords merges the per-day word clouds and returns the n most frequent
// words, ties broken alphabetically.
func (s *WeeklyStats) TopWords(n int) []WordCount {
	if s == nil || n <= 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, d := range s.DayAnalytics {
		for _, w := range d.Words {
			counts[w.Word] += w.Count
		}
	}
	words := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		words = append(words, WordCount{Word: word, Count: count})
	}
	sortWords(words)
	if len(words) > n {
		words = words[:n]
	}
	return words
}

func sortWords(words []WordCount) {
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
}
