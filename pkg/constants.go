package shared

const (
	ProjectID = "coach-athlete-hub" // Can be overridden by env var in main if needed

	TopicTriageRefresh    = "topic-triage-refresh"
	TopicTriageCompleted  = "topic-triage-completed"
	TopicCheckinRecorded  = "topic-checkin-recorded"
	TopicAnalyticsRefresh = "topic-analytics-refresh"

	CollectionAthletes       = "athletes"
	CollectionCheckins       = "checkins"
	CollectionWeightEntries  = "weight_entries"
	CollectionNutritionLogs  = "nutrition_logs"
	CollectionWorkouts       = "workouts"
	CollectionInjuries       = "injuries"
	CollectionNutritionPlans = "nutrition_plans"
	CollectionExecutions     = "executions"
)
