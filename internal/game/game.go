package game

import "errors"

var ErrInvalidChoice = errors.New("this answer is not valid")

// Choice is one letter of the fixed answer alphabet. The zero value means the
// player has not answered (or explicitly skipped) the current question.
type Choice string

const (
	NoAnswer Choice = ""
	ChoiceA  Choice = "A"
	ChoiceB  Choice = "B"
	ChoiceC  Choice = "C"
	ChoiceD  Choice = "D"
)

// Choices lists the alphabet in the order tallies are reported.
var Choices = [...]Choice{ChoiceA, ChoiceB, ChoiceC, ChoiceD}

// ParseChoice validates an answer configured for a question. Only real
// alphabet letters are accepted here; use ParseAnswer for player submissions.
func ParseChoice(s string) (Choice, error) {
	for _, c := range Choices {
		if Choice(s) == c {
			return c, nil
		}
	}
	return NoAnswer, ErrInvalidChoice
}

// ParseAnswer maps a submitted answer onto the alphabet. Anything outside it
// counts as "no answer", which still scores as incorrect.
func ParseAnswer(s string) Choice {
	if c, err := ParseChoice(s); err == nil {
		return c
	}
	return NoAnswer
}

type Settings struct {
	Lives int `json:"lives"`
	Timer int `json:"timer"` // seconds; 0 until the first question is configured
}

// Player is one participant's state for the session. All mutation goes through
// the scoring functions so a round stays exactly reversible.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Score      int    `json:"points"`
	RoundDelta int    `json:"past-points"`
	Lives      int    `json:"hearts"`
	Answer     Choice `json:"answer"`
	LostLife   bool   `json:"-"`
}

func NewPlayer(id, name string, lives int) *Player {
	return &Player{ID: id, Name: name, Lives: lives}
}
