package orchestrator

// Log prefixes
const (
	LogPrefixProcess = "internal.agent.orchestrator.Process"
	LogPrefixInvoke  = "internal.agent.orchestrator.invoke"
	LogPrefixPhrase  = "internal.agent.orchestrator.phrase"
	LogPrefixHistory = "internal.agent.orchestrator.remember"
)

// GenericApology replaces any handler failure in the reply.
const GenericApology = "I'm sorry, I encountered an error while processing your request. Please try again later."

// Handler error types reported to the Recorder.
const (
	errorTypeNotFound     = "not_found"
	errorTypeAccessDenied = "access_denied"
	errorTypeInternal     = "internal"
)

// Defaults
const (
	DefaultTimezone        = "Asia/Colombo"
	DefaultMaxHistoryTurns = 5
	DateFormatISO          = "2006-01-02"
)

// Time context template
const (
	TimeContextTemplate = `

[SYSTEM CONTEXT - current date]
- Today: %s (%s)
- This week: %s to %s
- Tomorrow: %s
Dates are always written as YYYY-MM-DD.`
)

// System prompt
const (
	SystemPromptPhrasing = `You are a friendly HR assistant for the company's employees.
You receive the user's question and a draft answer produced by an internal HR specialist.
Rewrite the draft so it reads naturally and politely.

Rules:
- Keep every number, date, employee ID and name exactly as in the draft.
- Do not add facts, policies or figures that are not in the draft.
- Keep markdown emphasis and lists when they help readability.
- If the draft denies access or reports an error, keep that meaning.`

	PhrasingPromptTemplate = "Question:\n%s\n\nDraft answer:\n%s"
)
