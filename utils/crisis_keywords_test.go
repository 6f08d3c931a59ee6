package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectCrisisKeywords_High(t *testing.T) {
	findings := DetectCrisisKeywords("I just want to DIE, nothing helps")
	require.NotEmpty(t, findings)
	require.True(t, IsCrisis(findings))
}

func TestDetectCrisisKeywords_CautionOnly(t *testing.T) {
	findings := DetectCrisisKeywords("everything feels hopeless right now")
	require.Len(t, findings, 1)
	require.Equal(t, SeverityCaution, findings[0].Severity)
	require.False(t, IsCrisis(findings))
}

func TestDetectCrisisKeywords_Clean(t *testing.T) {
	findings := DetectCrisisKeywords("had a nice walk and a good dinner")
	require.Empty(t, findings)
	require.False(t, IsCrisis(findings))
}

func TestDetectCrisisKeywords_SubstringMatch(t *testing.T) {
	findings := DetectCrisisKeywords("lately I've thought about self-harm more than I'd like")
	require.True(t, IsCrisis(findings))
}
