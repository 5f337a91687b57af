package analytics

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/pfmo-ng/facility-api/schema"
)

func TestAnalyzeTextEmpty(t *testing.T) {
	analysis := AnalyzeText("", "")

	assert.Equal(t, schema.SentimentNeutral, analysis.Sentiment)
	assert.Equal(t, schema.PriorityLow, analysis.Priority)
	assert.Equal(t, []string{}, analysis.Topics)
	assert.Equal(t, []string{}, analysis.Insights)
	assert.Equal(t, "No issues or comments provided", analysis.Summary)
}

func TestAnalyzeTextNegativeHighPriority(t *testing.T) {
	analysis := AnalyzeText("The generator is broken and needs urgent repair", "Building in critical and poor shape")

	// broken, urgent, critical, poor: four negative keywords
	assert.Equal(t, schema.SentimentNegative, analysis.Sentiment)
	assert.Equal(t, schema.PriorityHigh, analysis.Priority)
}

func TestAnalyzeTextNegativeMediumPriority(t *testing.T) {
	analysis := AnalyzeText("There is a problem with the borehole", "")

	// one negative keyword is enough for negative sentiment but not high priority
	assert.Equal(t, schema.SentimentNegative, analysis.Sentiment)
	assert.Equal(t, schema.PriorityMedium, analysis.Priority)
}

func TestAnalyzeTextPositive(t *testing.T) {
	analysis := AnalyzeText("", "Everything is in excellent working condition, staff satisfied")

	assert.Equal(t, schema.SentimentPositive, analysis.Sentiment)
	assert.Equal(t, schema.PriorityLow, analysis.Priority)
}

func TestAnalyzeTextTopics(t *testing.T) {
	analysis := AnalyzeText("Power supply is unstable and we are short of nurses", "Need more funding for drug stock")

	assert.Equal(t, []string{"infrastructure", "staffing", "funding", "supplies"}, analysis.Topics)
}

func TestAnalyzeTextGeneralFallback(t *testing.T) {
	analysis := AnalyzeText("all fine here", "")

	assert.Equal(t, []string{"general"}, analysis.Topics)
	// the insight keeps the pre-fallback topic count
	assert.Equal(t, []string{"Detected neutral sentiment with 0 key topics"}, analysis.Insights)
}

func TestAnalyzeTextSummaryTruncation(t *testing.T) {
	long := strings.Repeat("a", 250)
	analysis := AnalyzeText(long, "")

	assert.Len(t, analysis.Summary, 203)
	assert.True(t, strings.HasSuffix(analysis.Summary, "..."))

	short := "short note"
	analysis = AnalyzeText(short, "")
	assert.Equal(t, short, analysis.Summary)
}

func TestAnalyzeTextSummaryTruncationMultibyte(t *testing.T) {
	// 100 characters of 3-byte runes: over 200 bytes but under the limit
	short := strings.Repeat("น", 100)
	analysis := AnalyzeText(short, "")
	assert.Equal(t, short, analysis.Summary)

	long := strings.Repeat("น", 250)
	analysis = AnalyzeText(long, "")
	assert.Equal(t, strings.Repeat("น", 200)+"...", analysis.Summary)
	assert.True(t, utf8.ValidString(analysis.Summary))
}

func TestAnalyzeSatisfactionEmpty(t *testing.T) {
	analysis := AnalyzeSatisfaction(nil)

	assert.Equal(t, 0.0, analysis.AverageScore)
	assert.Equal(t, 0, analysis.TotalResponses)
	assert.Empty(t, analysis.Insights)
	assert.Empty(t, analysis.Recommendations)
}

func TestAnalyzeSatisfactionBelowAverage(t *testing.T) {
	analysis := AnalyzeSatisfaction(schema.AttributeBlock{
		"overall":  2.0,
		"waiting":  "3",
		"staff":    2.5,
		"comments": "free text is skipped",
	})

	assert.Equal(t, 2.5, analysis.AverageScore)
	assert.Equal(t, 3, analysis.TotalResponses)
	assert.Contains(t, analysis.Insights, "Patient satisfaction is below average")
	assert.Contains(t, analysis.Recommendations, "Investigate service quality and patient experience")
}

func TestAnalyzeSatisfactionNoCoercibleScores(t *testing.T) {
	analysis := AnalyzeSatisfaction(schema.AttributeBlock{
		"comments": "friendly staff",
	})

	// no scores averages to 0, which still counts as below average
	assert.Equal(t, 0.0, analysis.AverageScore)
	assert.Equal(t, 0, analysis.TotalResponses)
	assert.Contains(t, analysis.Insights, "Patient satisfaction is below average")
	assert.Contains(t, analysis.Recommendations, "Investigate service quality and patient experience")
	assert.Equal(t, schema.ScoreDistribution{}, analysis.ScoreDistribution)
}

func TestAnalyzeSatisfactionAboveAverage(t *testing.T) {
	analysis := AnalyzeSatisfaction(schema.AttributeBlock{
		"overall": 4.5,
		"waiting": 4.0,
	})

	assert.Equal(t, 4.25, analysis.AverageScore)
	assert.Contains(t, analysis.Insights, "Patient satisfaction is above average")
	assert.Contains(t, analysis.Recommendations, "Maintain current service standards")
}

func TestAnalyzeSatisfactionDistribution(t *testing.T) {
	analysis := AnalyzeSatisfaction(schema.AttributeBlock{
		"q1": 4.5,
		"q2": 4.7,
		"q3": 3.5,
		"q4": 2.5,
		"q5": 1.0,
	})

	assert.Equal(t, schema.ScoreDistribution{
		Excellent: 2,
		Good:      1,
		Fair:      1,
		Poor:      1,
	}, analysis.ScoreDistribution)
}
