package analytics

import (
	"fmt"
	"strings"

	"github.com/pfmo-ng/facility-api/schema"
)

const summaryLimit = 200

// Keyword lists are process-wide constants; the analyzer holds no state and is
// safe to call from concurrent report requests.
var (
	negativeKeywords = []string{"problem", "issue", "broken", "missing", "urgent", "critical", "poor", "bad", "lack", "no"}
	positiveKeywords = []string{"good", "excellent", "working", "available", "complete", "satisfied"}
)

type topicCategory struct {
	Name     string
	Keywords []string
}

var topicCategories = []topicCategory{
	{"infrastructure", []string{"power", "water", "building", "facility", "structure"}},
	{"staffing", []string{"staff", "worker", "personnel", "doctor", "nurse"}},
	{"funding", []string{"money", "budget", "funding", "financial", "cost"}},
	{"equipment", []string{"equipment", "machine", "device", "tool"}},
	{"supplies", []string{"supply", "commodity", "medicine", "drug", "stock"}},
	{"services", []string{"service", "patient", "treatment", "care"}},
}

// AnalyzeText runs keyword sentiment and topic analysis over the issues and
// comments of a submission.
func AnalyzeText(issues, comments string) schema.TextAnalysis {
	if issues == "" && comments == "" {
		return schema.TextAnalysis{
			Sentiment: schema.SentimentNeutral,
			Topics:    []string{},
			Priority:  schema.PriorityLow,
			Insights:  []string{},
			Summary:   "No issues or comments provided",
		}
	}

	combined := strings.TrimSpace(issues + " " + comments)
	lower := strings.ToLower(combined)

	negativeCount := 0
	for _, word := range negativeKeywords {
		if strings.Contains(lower, word) {
			negativeCount++
		}
	}
	positiveCount := 0
	for _, word := range positiveKeywords {
		if strings.Contains(lower, word) {
			positiveCount++
		}
	}

	var sentiment schema.Sentiment
	var priority schema.PriorityLevel
	switch {
	case negativeCount > positiveCount:
		sentiment = schema.SentimentNegative
		if negativeCount > 3 {
			priority = schema.PriorityHigh
		} else {
			priority = schema.PriorityMedium
		}
	case positiveCount > negativeCount:
		sentiment = schema.SentimentPositive
		priority = schema.PriorityLow
	default:
		sentiment = schema.SentimentNeutral
		priority = schema.PriorityMedium
	}

	topics := []string{}
	for _, category := range topicCategories {
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				topics = append(topics, category.Name)
				break
			}
		}
	}

	// the insight reports the matched topic count, before the fallback
	insights := []string{fmt.Sprintf("Detected %s sentiment with %d key topics", sentiment, len(topics))}
	if len(topics) == 0 {
		topics = []string{"general"}
	}

	// the limit counts characters, not bytes
	summary := combined
	if runes := []rune(summary); len(runes) > summaryLimit {
		summary = string(runes[:summaryLimit]) + "..."
	}

	return schema.TextAnalysis{
		Sentiment: sentiment,
		Topics:    topics,
		Priority:  priority,
		Insights:  insights,
		Summary:   summary,
	}
}

// AnalyzeSatisfaction summarizes a satisfaction survey block: overall average,
// quality-band distribution and threshold-based insights. Values that cannot
// be coerced to a score are skipped.
func AnalyzeSatisfaction(block schema.AttributeBlock) schema.SatisfactionAnalysis {
	analysis := schema.SatisfactionAnalysis{
		Insights:        []string{},
		Recommendations: []string{},
	}
	if len(block) == 0 {
		return analysis
	}

	scores := []float64{}
	for _, key := range sortedKeys(block) {
		if score, ok := numericScore(block[key]); ok {
			scores = append(scores, score)
		}
	}

	sum := 0.0
	for _, score := range scores {
		sum += score

		switch {
		case score >= 4.5:
			analysis.ScoreDistribution.Excellent++
		case score >= 3.5:
			analysis.ScoreDistribution.Good++
		case score >= 2.5:
			analysis.ScoreDistribution.Fair++
		default:
			analysis.ScoreDistribution.Poor++
		}
	}

	// a block with no coercible score averages to 0 and still goes through
	// the threshold checks below
	average := 0.0
	if len(scores) > 0 {
		average = sum / float64(len(scores))
	}
	analysis.AverageScore = round2(average)
	analysis.TotalResponses = len(scores)

	if average < 3.0 {
		analysis.Insights = append(analysis.Insights, "Patient satisfaction is below average")
		analysis.Recommendations = append(analysis.Recommendations, "Investigate service quality and patient experience")
	} else if average >= 4.0 {
		analysis.Insights = append(analysis.Insights, "Patient satisfaction is above average")
		analysis.Recommendations = append(analysis.Recommendations, "Maintain current service standards")
	}

	return analysis
}
