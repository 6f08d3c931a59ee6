package utils

import (
	"strings"
)

// FindingSeverity categorizes how serious the flag is.
type FindingSeverity string

const (
	SeverityCaution FindingSeverity = "caution"
	SeverityHigh    FindingSeverity = "high"
)

// CrisisFinding is a structured hit you can show in the API / UI.
type CrisisFinding struct {
	Keyword  string          `json:"keyword"`
	Severity FindingSeverity `json:"severity"`
}

// Fixed keyword lists, matched as lowercase substrings. High-severity terms
// route the conversation to the crisis flow regardless of anything else.
var highSeverityKeywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"want to die",
	"self harm",
	"self-harm",
	"hurt myself",
	"no reason to live",
	"better off dead",
	"overdose",
}

var cautionKeywords = []string{
	"hopeless",
	"worthless",
	"can't go on",
	"give up",
	"no way out",
}

// DetectCrisisKeywords scans user input against the fixed lists.
func DetectCrisisKeywords(text string) []CrisisFinding {
	lower := strings.ToLower(text)
	var findings []CrisisFinding
	for _, kw := range highSeverityKeywords {
		if strings.Contains(lower, kw) {
			findings = append(findings, CrisisFinding{Keyword: kw, Severity: SeverityHigh})
		}
	}
	for _, kw := range cautionKeywords {
		if strings.Contains(lower, kw) {
			findings = append(findings, CrisisFinding{Keyword: kw, Severity: SeverityCaution})
		}
	}
	return findings
}

// IsCrisis reports whether any high-severity keyword was found.
func IsCrisis(findings []CrisisFinding) bool {
	for _, f := range findings {
		if f.Severity == SeverityHigh {
			return true
		}
	}
	return false
}

// CrisisDisclaimer is delivered with every crisis-flagged reply.
const CrisisDisclaimer = "I'm really sorry you're going through this. I'm not a substitute for professional help. If you are in immediate danger, please contact a crisis line or emergency services right away."

// ChatDisclaimer is appended to ordinary supportive replies.
const ChatDisclaimer = "Remember: I'm a supportive companion, not a licensed therapist."
