package game

// Outcome reports the result of scoring one submission.
type Outcome struct {
	Correct bool
	Answer  Choice // the round's correct answer
}

// Score applies a submitted answer to p given the round's correct answer.
// Resubmitting within the same round replaces the earlier outcome, so the
// latest answer before rollback or advancement is the one that counts.
// A skipped answer never matches, even while no correct answer is configured.
func Score(p *Player, answer, correct Choice) Outcome {
	CancelRound(p)
	p.Answer = answer

	if answer == NoAnswer || answer != correct {
		if p.Lives > 0 {
			p.Lives--
			p.LostLife = true
		}
		return Outcome{Correct: false, Answer: correct}
	}

	p.Score++
	p.RoundDelta = 1
	return Outcome{Correct: true, Answer: correct}
}

// CancelRound reverses whatever Score did to p this round. Calling it again
// before the next submission changes nothing: both markers reset after use.
func CancelRound(p *Player) {
	p.Score -= p.RoundDelta
	p.RoundDelta = 0
	if p.LostLife {
		p.Lives++
		p.LostLife = false
	}
}

// ResetRound clears the per-round markers without reversing their effect,
// marking the start of a fresh question.
func ResetRound(p *Player) {
	p.Answer = NoAnswer
	p.RoundDelta = 0
	p.LostLife = false
}
