package quiz

// OptionCount is the number of choices every question offers.
const OptionCount = 4

// Question is one multiple-choice quiz question.
type Question struct {
	Prompt       string
	Options      [OptionCount]string
	CorrectIndex int
}

// CorrectOption returns the text of the correct choice.
func (q Question) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}

var questions = []Question{
	{
		Prompt:       "What percentage of global medical isotopes are produced in research reactors?",
		Options:      [OptionCount]string{"25%", "40%", "60%", "75%"},
		CorrectIndex: 1,
	},
	{
		Prompt:       "Which sector uses the majority of industrial isotopes?",
		Options:      [OptionCount]string{"Agriculture", "Material Testing", "Sterilization", "Oil Exploration"},
		CorrectIndex: 1,
	},
	{
		Prompt:       "What's the projected CAGR for the isotopes market (2023-2030)?",
		Options:      [OptionCount]string{"3.2%", "5.0%", "6.8%", "8.5%"},
		CorrectIndex: 2,
	},
}

// Questions returns the fixed quiz in presentation order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
