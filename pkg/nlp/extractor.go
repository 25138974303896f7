package nlp

import (
	"regexp"
	"strings"
)

// Extractor pulls the task title or note body out of an explicit create
// command. Numbered patterns are tried first; when none capture anything
// the command words themselves are stripped and the remainder is used.
type Extractor struct {
	taskPatterns []*regexp.Regexp
	notePatterns []*regexp.Regexp
	taskFallback *regexp.Regexp
	noteFallback *regexp.Regexp
}

func NewExtractor() *Extractor {
	return &Extractor{
		taskPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)create task (.+)`),
			regexp.MustCompile(`(?i)add task (.+)`),
			regexp.MustCompile(`(?i)new task (.+)`),
			regexp.MustCompile(`(?i)task (.+)`),
		},
		notePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)create note (.+)`),
			regexp.MustCompile(`(?i)add note (.+)`),
			regexp.MustCompile(`(?i)new note (.+)`),
			regexp.MustCompile(`(?i)take note (.+)`),
			regexp.MustCompile(`(?i)note (.+)`),
		},
		taskFallback: regexp.MustCompile(`(?i)(create task|add task|new task|task)\s*`),
		noteFallback: regexp.MustCompile(`(?i)(create note|add note|new note|take note|note)\s*`),
	}
}

// TaskTitle may return an empty string, e.g. for the bare command
// "create task". Callers skip creation in that case.
func (e *Extractor) TaskTitle(command string) string {
	return extract(command, e.taskPatterns, e.taskFallback)
}

func (e *Extractor) NoteContent(command string) string {
	return extract(command, e.notePatterns, e.noteFallback)
}

func extract(command string, patterns []*regexp.Regexp, fallback *regexp.Regexp) string {
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(command)
		if len(match) > 1 && match[1] != "" {
			return strings.TrimSpace(match[1])
		}
	}

	return strings.TrimSpace(stripFirst(fallback, command))
}

// stripFirst removes only the first occurrence so content that itself
// mentions the command word survives.
func stripFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
