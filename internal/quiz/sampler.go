package quiz

import "math/rand/v2"

// SampleDistractors picks three distinct pool values that differ from the
// answer. It reports false when the pool cannot supply three, in which case
// the fact cannot become a question.
func SampleDistractors(pool []string, answer string, r *rand.Rand) ([3]string, bool) {
	candidates := make([]string, 0, len(pool))
	for _, value := range pool {
		if value != answer {
			candidates = append(candidates, value)
		}
	}
	if len(candidates) < 3 {
		return [3]string{}, false
	}
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return [3]string{candidates[0], candidates[1], candidates[2]}, true
}
