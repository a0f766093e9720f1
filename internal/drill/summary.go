package drill

import "math"

// Summary is emitted when a session finishes.
type Summary struct {
	TotalItems      int
	CorrectCount    int
	AccuracyPercent int
	Outcomes        []Outcome
}

// Summary builds the end-of-session summary from the outcome log. For an
// aborted session it covers only the items that were actually resolved.
func (c *Controller) Summary() Summary {
	outcomes := c.Outcomes()
	correct := 0
	for _, o := range outcomes {
		if o.Correct {
			correct++
		}
	}
	return Summary{
		TotalItems:      len(outcomes),
		CorrectCount:    correct,
		AccuracyPercent: accuracyPercent(correct, len(outcomes)),
		Outcomes:        outcomes,
	}
}

// accuracyPercent is round(100 * correct / total), 0 when total is 0.
func accuracyPercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
