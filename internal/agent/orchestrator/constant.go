package orchestrator

// Log prefixes
const (
	LogPrefixAnalyze = "internal.agent.orchestrator.Analyze"
)

// Log messages
const (
	LogMsgCacheHit       = "%s: cache hit for query (category=%s)"
	LogMsgRouted         = "%s: routed query to %s (confidence=%.2f)"
	LogMsgOverride       = "%s: category override to %s, cache bypassed"
	LogMsgPrimaryFailed  = "%s: %s agent failed, falling back to %s: %v"
	LogMsgRunnerCreated  = "%s: created %s agent"
	LogMsgResultRecorded = "%s: recorded result (category=%s, source=%s)"
)
