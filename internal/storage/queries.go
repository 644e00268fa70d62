package storage

// Database schema queries
const (
	queryCreateConversationsTable = `CREATE TABLE IF NOT EXISTS conversations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_seq INTEGER NOT NULL,
		conversation_seq INTEGER NOT NULL,
		title TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (user_seq, conversation_seq)
	)`

	queryCreateWeekAnalyticsTable = `CREATE TABLE IF NOT EXISTS week_analytics (
		user_seq INTEGER NOT NULL,
		start_day TEXT NOT NULL,
		end_day TEXT NOT NULL,
		emotion_summary TEXT NOT NULL DEFAULT '',
		vocabulary_summary TEXT NOT NULL DEFAULT '',
		word_cloud_summary TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (user_seq, start_day)
	)`

	queryCreateDayAnalyticsTable = `CREATE TABLE IF NOT EXISTS day_analytics (
		user_seq INTEGER NOT NULL,
		day TEXT NOT NULL,
		conversation_count INTEGER NOT NULL DEFAULT 0,
		positive INTEGER NOT NULL DEFAULT 0,
		negative INTEGER NOT NULL DEFAULT 0,
		neutral INTEGER NOT NULL DEFAULT 0,
		vocabulary_score REAL NOT NULL DEFAULT 0,
		words TEXT,
		PRIMARY KEY (user_seq, day)
	)`

	queryCreateIndexConversationsCreated = `CREATE INDEX IF NOT EXISTS idx_conversations_user_created ON conversations(user_seq, created_at)`

	queryNextConversationSeq = `SELECT COALESCE(MAX(conversation_seq), 0) + 1 FROM conversations WHERE user_seq = ?`

	queryUpsertConversation = `INSERT INTO conversations (user_seq, conversation_seq, title, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_seq, conversation_seq) DO UPDATE SET
			title = excluded.title,
			created_at = excluded.created_at`

	querySelectConversationsByDay = `SELECT conversation_seq, title, created_at
		FROM conversations
		WHERE user_seq = ? AND created_at >= ? AND created_at < ?
		ORDER BY created_at, conversation_seq`

	queryDeleteConversation = `DELETE FROM conversations WHERE user_seq = ? AND conversation_seq = ?`

	queryUpsertWeekAnalytics = `INSERT INTO week_analytics (user_seq, start_day, end_day, emotion_summary, vocabulary_summary, word_cloud_summary)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_seq, start_day) DO UPDATE SET
			end_day = excluded.end_day,
			emotion_summary = excluded.emotion_summary,
			vocabulary_summary = excluded.vocabulary_summary,
			word_cloud_summary = excluded.word_cloud_summary`

	querySelectWeekAnalytics = `SELECT emotion_summary, vocabulary_summary, word_cloud_summary
		FROM week_analytics
		WHERE user_seq = ? AND start_day = ? AND end_day = ?`

	queryUpsertDayAnalytics = `INSERT INTO day_analytics (user_seq, day, conversation_count, positive, negative, neutral, vocabulary_score, words)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_seq, day) DO UPDATE SET
			conversation_count = excluded.conversation_count,
			positive = excluded.positive,
			negative = excluded.negative,
			neutral = excluded.neutral,
			vocabulary_score = excluded.vocabulary_score,
			words = excluded.words`

	querySelectDayAnalytics = `SELECT day, conversation_count, positive, negative, neutral, vocabulary_score, words
		FROM day_analytics
		WHERE user_seq = ? AND day BETWEEN ? AND ?
		ORDER BY day`
)
