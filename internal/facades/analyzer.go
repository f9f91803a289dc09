package facades

import (
	"context"

	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
)

// Fixed analysis output. The analyzer is a stub: nothing is derived from the
// submitted URL, platform, or description.
var stubSuggestions = []string{
	"Add trending hashtags like #viral #trending #explore",
	"Shorten the intro to 3 seconds to improve retention",
	"Add text overlays to make it more engaging",
	"Use more vibrant color grading to stand out in feeds",
	"Add a hook in the first 5 seconds to capture attention",
}

var stubMetrics = models.VideoMetrics{
	Engagement:   75,
	Retention:    68,
	Shareability: 82,
	Overall:      72,
}

// VideoAnalyzerFacade fills the role a real scoring service would: it takes a
// submission and returns suggestions and metrics. The current implementation
// returns deterministic placeholder values.
type VideoAnalyzerFacade struct{}

// NewVideoAnalyzerFacade creates a new stub analyzer.
func NewVideoAnalyzerFacade() *VideoAnalyzerFacade {
	return &VideoAnalyzerFacade{}
}

// Analyze returns the fixed suggestion list and metric scores for a submission.
func (f *VideoAnalyzerFacade) Analyze(
	ctx context.Context,
	url, platform, description string,
) ([]string, models.VideoMetrics, error) {
	logger.Log.Infow("analyzing video submission", "url", url, "platform", platform)

	suggestions := make([]string, len(stubSuggestions))
	copy(suggestions, stubSuggestions)

	return suggestions, stubMetrics, nil
}
