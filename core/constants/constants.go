package constants

import "time"

// Request handling
const (
	DefaultRequestTimeout = 10 * time.Second
	RequestIDHeader       = "X-Request-ID"
	ContextRequestID      = "request_id"
)

// Session document
const (
	// SessionRootKey is the well-known top-level key the whole session
	// tree lives under. Its absence means the document is uninitialized.
	SessionRootKey = "interview_sessions"

	// WorkingDayCount is the number of Mon-Fri dates generated per session.
	WorkingDayCount = 7

	DayKeyPrefix = "day_"

	// DefaultScheduleEndTime is the daily cutoff for slot generation,
	// overridable via SCHEDULE_END_TIME.
	DefaultScheduleEndTime = "16:00"
)

// Storage backends
const (
	StorageBackendFile     = "file"
	StorageBackendPostgres = "postgres"
	StorageBackendRedis    = "redis"
	StorageBackendS3       = "s3"
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 10
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Report languages
const (
	ReportLangEnglish = "ENG"
	ReportLangSerbian = "SR"
)

// Background tasks
const (
	TaskReportExport         = "report:export"
	DefaultWorkerConcurrency = 2
)
