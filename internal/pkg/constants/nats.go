package constants

// NATS Subjects
const (
	// Detection engine advisory events
	SubjectPatternDetected = "trust.pattern.detected"

	// Handoff scoring advisory events
	SubjectHandoffScored = "trust.handoff.scored"
	SubjectHandoffEnded  = "trust.handoff.ended"
)
