package quiz

import "fmt"

// Attribute identifies which movie fact a question asks about.
type Attribute string

const (
	AttributeYear     Attribute = "year"
	AttributeActor    Attribute = "actor"
	AttributeGenre    Attribute = "genre"
	AttributeDirector Attribute = "director"
)

// All returns every attribute in generation order.
func All() []Attribute {
	return []Attribute{AttributeYear, AttributeActor, AttributeGenre, AttributeDirector}
}

// AttributeNames returns the attribute names in generation order.
func AttributeNames() []string {
	attributes := All()
	names := make([]string, 0, len(attributes))
	for _, attribute := range attributes {
		names = append(names, string(attribute))
	}
	return names
}

// ParseAttribute maps a config name to an Attribute.
func ParseAttribute(name string) (Attribute, error) {
	for _, attribute := range All() {
		if string(attribute) == name {
			return attribute, nil
		}
	}
	return "", fmt.Errorf("unknown attribute %q", name)
}

// ParseAttributes maps config names to Attributes, keeping their order.
func ParseAttributes(names []string) ([]Attribute, error) {
	attributes := make([]Attribute, 0, len(names))
	for _, name := range names {
		attribute, err := ParseAttribute(name)
		if err != nil {
			return nil, err
		}
		attributes = append(attributes, attribute)
	}
	return attributes, nil
}

// Fact pairs a movie title with one askable attribute value.
type Fact struct {
	Attribute Attribute
	Title     string
	Answer    string
}

// Question is a single four-option multiple choice question. Correct is the
// 1-based index of the right option.
type Question struct {
	// Attribute is set for generated questions. Questions read back from a
	// file do not carry it.
	Attribute Attribute
	Prompt    string
	Options   [4]string
	Correct   int
}
