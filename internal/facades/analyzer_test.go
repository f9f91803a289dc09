package facades

import (
	"context"
	"testing"

	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoAnalyzerFacade_Analyze(t *testing.T) {
	facade := NewVideoAnalyzerFacade()

	suggestions, metrics, err := facade.Analyze(context.Background(), "https://example.com/v/1", "tiktok", "my clip")
	require.NoError(t, err)

	assert.Len(t, suggestions, 5)
	assert.Equal(t, "Add trending hashtags like #viral #trending #explore", suggestions[0])
	assert.Equal(t, models.VideoMetrics{
		Engagement:   75,
		Retention:    68,
		Shareability: 82,
		Overall:      72,
	}, metrics)
}

func TestVideoAnalyzerFacade_ReturnsCopy(t *testing.T) {
	facade := NewVideoAnalyzerFacade()

	first, _, err := facade.Analyze(context.Background(), "https://example.com/v/1", "tiktok", "")
	require.NoError(t, err)

	first[0] = "mutated"

	second, _, err := facade.Analyze(context.Background(), "https://example.com/v/2", "youtube", "")
	require.NoError(t, err)
	assert.Equal(t, "Add trending hashtags like #viral #trending #explore", second[0])
}
