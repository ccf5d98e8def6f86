package quiz

import (
	"math/rand/v2"

	"reelquiz/internal/dataset"
)

// Params configures question generation.
type Params struct {
	// Attributes to ask about. Empty means all of them.
	Attributes []Attribute
	// Count caps how many questions are produced. Zero means every fact.
	Count int
	// Seed drives all random choices. Equal inputs and an equal seed
	// reproduce the output byte for byte.
	Seed int64
}

// Stats reports what generation consumed and produced.
type Stats struct {
	Facts        int
	Generated    int
	SkippedFacts int
	ByAttribute  map[Attribute]int
}

// Generate builds multiple choice questions from dataset rows. Facts are
// shuffled under the seed, capped at Count, and paired with three sampled
// distractors each. Facts whose attribute pool cannot supply three
// distractors are skipped and counted.
func Generate(rows []dataset.Row, params Params) ([]Question, Stats) {
	attributes := params.Attributes
	if len(attributes) == 0 {
		attributes = All()
	}
	r := rand.New(rand.NewPCG(uint64(params.Seed), uint64(params.Seed)))

	facts := Facts(rows, attributes)
	pools := BuildPools(rows, attributes)

	stats := Stats{
		Facts:       len(facts),
		ByAttribute: make(map[Attribute]int, len(attributes)),
	}

	r.Shuffle(len(facts), func(i, j int) {
		facts[i], facts[j] = facts[j], facts[i]
	})

	questions := []Question{}
	for _, fact := range facts {
		if params.Count > 0 && len(questions) >= params.Count {
			break
		}
		distractors, ok := SampleDistractors(pools[fact.Attribute], fact.Answer, r)
		if !ok {
			stats.SkippedFacts++
			continue
		}
		questions = append(questions, buildQuestion(fact, distractors, r))
		stats.ByAttribute[fact.Attribute]++
	}
	stats.Generated = len(questions)
	return questions, stats
}

// buildQuestion shuffles the answer in among the distractors and records
// where it landed.
func buildQuestion(fact Fact, distractors [3]string, r *rand.Rand) Question {
	options := [4]string{fact.Answer, distractors[0], distractors[1], distractors[2]}
	r.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	correct := 0
	for i, option := range options {
		if option == fact.Answer {
			correct = i + 1
			break
		}
	}
	return Question{
		Attribute: fact.Attribute,
		Prompt:    Prompt(fact),
		Options:   options,
		Correct:   correct,
	}
}
