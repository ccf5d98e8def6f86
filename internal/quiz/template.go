package quiz

import "fmt"

// Prompt renders the question text for a fact.
func Prompt(fact Fact) string {
	switch fact.Attribute {
	case AttributeYear:
		return fmt.Sprintf("In which year was \"%s\" released?", fact.Title)
	case AttributeActor:
		return fmt.Sprintf("Who starred as the main actor in \"%s\"?", fact.Title)
	case AttributeGenre:
		return fmt.Sprintf("Which best describes the genre of \"%s\"?", fact.Title)
	case AttributeDirector:
		return fmt.Sprintf("Who directed \"%s\"?", fact.Title)
	}
	return ""
}
