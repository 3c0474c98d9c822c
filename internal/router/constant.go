package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are the intent classifier of a calendar assistant. Read the user's message and answer with EXACTLY three lines and nothing else:

category: <calendar|message|list>
subcategory: <add|remove|change|none>
description: <key=value pairs separated by commas>

Categories:
- calendar: the user wants to add, remove or change an event in their calendar.
- list: the user wants to see upcoming events.
- message: anything else (greetings, questions, chit-chat). Use subcategory "none".

Description keys per subcategory:
- add: name=<title>, start=<ISO-8601 date-time>, end=<ISO-8601 date-time, optional>, details=<notes, optional>
- remove: name=<title of the event> or id=<event id>, date=<YYYY-MM-DD, optional>
- change: target=<title or id of the event>, update=<changes as field:value separated by ";", fields are name, details, start, end>

Rules:
- Dates and times are ISO-8601 without a zone offset unless the user gives one, e.g. 2026-02-10T14:00.
- Resolve relative dates ("tomorrow", "on friday") against the current time below.
- Never put commas inside values.

Current time: %s

User message: "%s"`
)

// Router configuration
const (
	RouterTemperature = 0.1
	nowLayout         = "Monday, 2006-01-02T15:04:05Z07:00"
)

// Error messages
const (
	ErrMsgLLMCallFailed = "LLM call failed"
)
