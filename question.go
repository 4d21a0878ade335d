package unitrates

import "fmt"

// QuestionKind distinguishes the three shopping question forms.
type QuestionKind uint8

const (
	QuestionUnitRate QuestionKind = iota // cost of one unit
	QuestionCost                         // cost of N units
	QuestionQuantity                     // units for a given cost
)

// ShoppingQuestion is one question about a scene's rate. A correct guess
// emits Correct once; the scene turns that into a question marker at
// (Numerator, Denominator).
type ShoppingQuestion struct {
	Kind        QuestionKind
	Text        string
	Answer      float64
	Numerator   float64
	Denominator float64

	// Guess is the last submitted guess, or Null.
	Guess *Property[NullFloat]

	// Correct fires the first time a correct guess is submitted.
	Correct Emitter[*ShoppingQuestion]

	answerAxis Axis
	answered   bool
}

func newQuestion(kind QuestionKind, text string, answer, numerator, denominator float64, answerAxis Axis) *ShoppingQuestion {
	return &ShoppingQuestion{
		Kind:        kind,
		Text:        text,
		Answer:      answerAxis.Round(answer),
		Numerator:   numerator,
		Denominator: denominator,
		Guess:       NewProperty(Null),
		answerAxis:  answerAxis,
	}
}

// Submit records guess and reports whether it is correct at the answer
// axis's precision.
func (q *ShoppingQuestion) Submit(guess float64) bool {
	q.Guess.Set(Float(guess))
	if !q.IsCorrect() {
		return false
	}
	if !q.answered {
		q.answered = true
		q.Correct.Emit(q)
	}
	return true
}

// IsCorrect reports whether the current guess matches the answer.
func (q *ShoppingQuestion) IsCorrect() bool {
	g := q.Guess.Value()
	return g.Valid && q.answerAxis.Round(g.Float64) == q.Answer
}

// IsAnswered reports whether the question has been answered correctly.
func (q *ShoppingQuestion) IsAnswered() bool {
	return q.answered
}

// FormattedAnswer renders the answer on its axis.
func (q *ShoppingQuestion) FormattedAnswer() string {
	return q.answerAxis.Format(q.Answer)
}

// Reset clears the guess and the answered flag.
func (q *ShoppingQuestion) Reset() {
	q.Guess.Reset()
	q.answered = false
}

// QuestionFactory builds questions for one scene's rate.
type QuestionFactory struct {
	UnitRate    float64
	Singular    string
	Plural      string
	Numerator   Axis
	Denominator Axis
}

// UnitRateQuestion asks for the cost of one unit.
func (f QuestionFactory) UnitRateQuestion() *ShoppingQuestion {
	return newQuestion(QuestionUnitRate,
		fmt.Sprintf("Cost of 1 %s?", f.Singular),
		f.UnitRate, f.Numerator.Round(f.UnitRate), 1, f.Numerator)
}

// CostQuestion asks for the cost of quantity units.
func (f QuestionFactory) CostQuestion(quantity float64) *ShoppingQuestion {
	cost := f.Numerator.Round(quantity * f.UnitRate)
	return newQuestion(QuestionCost,
		fmt.Sprintf("Cost of %s %s?", f.Denominator.Format(quantity), f.units(quantity)),
		cost, cost, quantity, f.Numerator)
}

// QuantityQuestion asks how many units the cost of quantity buys.
func (f QuestionFactory) QuantityQuestion(quantity float64) *ShoppingQuestion {
	cost := f.Numerator.Round(quantity * f.UnitRate)
	return newQuestion(QuestionQuantity,
		fmt.Sprintf("%s for %s?", capitalize(f.Plural), f.Numerator.Format(cost)),
		quantity, cost, quantity, f.Denominator)
}

// QuestionSet builds cost questions for every quantity but the last, and a
// quantity question for the last.
func (f QuestionFactory) QuestionSet(quantities []float64) []*ShoppingQuestion {
	set := make([]*ShoppingQuestion, 0, len(quantities))
	for i, q := range quantities {
		if i == len(quantities)-1 {
			set = append(set, f.QuantityQuestion(q))
		} else {
			set = append(set, f.CostQuestion(q))
		}
	}
	return set
}

func (f QuestionFactory) units(quantity float64) string {
	if quantity == 1 {
		return f.Singular
	}
	return f.Plural
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
