package pubsub

// CloudEvent type URNs. Versioned so consumers can evolve per type.
const (
	EventTypeTriageRefresh   = "com.coachathletehub.triage.refresh.v1"
	EventTypeTriageCompleted = "com.coachathletehub.triage.completed.v1"
	EventTypeCheckinSubmit   = "com.coachathletehub.checkin.submit.v1"
	EventTypeCheckinRecorded = "com.coachathletehub.checkin.recorded.v1"
)

// CloudEvent source URNs, one per producing service.
const (
	SourceAPICoach        = "//coach-athlete-hub/api-coach"
	SourceRosterTriage    = "//coach-athlete-hub/roster-triage"
	SourceCheckinRecorder = "//coach-athlete-hub/checkin-recorder"
)
