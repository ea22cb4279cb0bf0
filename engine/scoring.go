package engine

// ScoreRound computes each player's point delta for a finished round.
// An exact prediction earns 20 plus 10 per won trick; a missed one
// costs 10 per trick of error. Pure function; the state machine calls
// it exactly once per round.
func ScoreRound(predictions, wonTricks []uint8) []int16 {
	scores := make([]int16, len(predictions))
	for p := range predictions {
		pred, won := int16(predictions[p]), int16(wonTricks[p])
		if pred == won {
			scores[p] = 20 + 10*won
		} else {
			diff := pred - won
			if diff < 0 {
				diff = -diff
			}
			scores[p] = -10 * diff
		}
	}
	return scores
}
