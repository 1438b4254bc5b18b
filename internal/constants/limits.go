package constants

const (
	// MaxRecentOutputs caps the recent-outputs history
	MaxRecentOutputs = 20
	// PreviewLength is the number of characters kept in a recent-output preview
	PreviewLength = 100
	// HomeRecentCount is how many recent outputs the home overview shows
	HomeRecentCount = 5

	// LowAttendanceThreshold marks subjects below this percentage
	LowAttendanceThreshold = 75.0
	MinAttendance          = 0.0
	MaxAttendance          = 100.0

	// Summary generator
	SummaryMinLineLength = 10
	SummaryMaxLineLength = 100
	SummaryMaxLines      = 8

	// Key point extractor
	KeyPointMinLineLength = 15
	KeyPointMinLength     = 20
	KeyPointMaxLength     = 150
	KeyPointMinCount      = 5
	KeyPointMaxCount      = 10

	// MCQ generator
	MCQMaxTopics = 5
	MCQMinCount  = 3

	// Topic extraction bounds (exclusive)
	TopicMinLength = 3
	TopicMaxLength = 50

	// Question bank
	QuestionCount       = 15
	ImportantQuestions  = 5
	RuleWidth           = 50
	RevisionReviewEvery = 3

	// Sample revision exam, days from today
	SampleExamOffsetDays = 14
)
