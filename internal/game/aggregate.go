package game

// Buckets is one count per alphabet letter plus a trailing "no answer" slot,
// in the order of Choices.
type Buckets = [len(Choices) + 1]int

// Tally holds the per-choice answer counts for the current round, split by
// whether the answering player still has lives left.
type Tally struct {
	Players int     `json:"players"`
	Alive   Buckets `json:"alive"`
	Dead    Buckets `json:"dead"`
}

// Aggregate counts every player's current answer into the alive or eliminated
// vector. Pure read; identical input state yields identical tallies.
func Aggregate(players map[string]*Player) Tally {
	t := Tally{Players: len(players)}
	for _, p := range players {
		i := bucket(p.Answer)
		if p.Lives > 0 {
			t.Alive[i]++
		} else {
			t.Dead[i]++
		}
	}
	return t
}

func bucket(c Choice) int {
	for i, choice := range Choices {
		if c == choice {
			return i
		}
	}
	return len(Choices)
}
