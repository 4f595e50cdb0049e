package room

import "github.com/mvidal21/quizshow-backend/internal/game"

type Msg interface{ isRoomMsg() }

// Event is a named payload pushed to subscribed connections. The transport
// wraps it verbatim into an outbound server message.
type Event struct {
	Name string
	Data any
}

// Join adds a new player and subscribes its outbox to room broadcasts.
type Join struct {
	ID     string
	Name   string
	Outbox chan Event
	Reply  chan JoinReply
}

type JoinReply struct {
	Players []game.Player `json:"players"`
	Err     error         `json:"-"`
}

// Leave unsubscribes a connection from broadcasts. The player's state stays,
// so scores and lives survive a dropped connection.
type Leave struct{ ID string }

// Lock closes the room to new joins and opens round one.
type Lock struct {
	Reply chan int // the new round number
}

type GameInfo struct {
	Reply chan GameInfoReply
}

type GameInfoReply struct {
	Players  []game.Player `json:"players"`
	Settings game.Settings `json:"settings"`
	Round    int           `json:"question"`
}

type PlayerInfo struct {
	ID    string
	Reply chan PlayerInfoReply
}

type PlayerInfoReply struct {
	Hearts int   `json:"hearts"` // starting lives
	Left   int   `json:"left"`   // this player's remaining lives
	Timer  int   `json:"timer"`
	Round  int   `json:"question"`
	Err    error `json:"-"`
}

// SetQuestion configures the next question's timer and correct answer.
// Timer is a pointer so an absent value is distinguishable from zero.
type SetQuestion struct {
	Timer  *int
	Answer string
	Reply  chan error
}

type SubmitAnswer struct {
	ID     string
	Answer string
	Reply  chan SubmitReply
}

type SubmitReply struct {
	Correct bool        `json:"correct"`
	Answer  game.Choice `json:"answer"`
	Hearts  int         `json:"hearts"`
	Left    int         `json:"left"`
	Err     error       `json:"-"`
}

// GetTally is the pull twin of the tally pushed to the admin after each
// submission.
type GetTally struct {
	Reply chan game.Tally
}

type NextQuestion struct {
	Reply chan int // the new round number
}

// Invalidate reverses the current round's scoring for every player, then
// advances to the next round.
type Invalidate struct {
	Reply chan int // the new round number
}

type EndGame struct {
	Reply chan struct{}
}

type Players struct {
	Reply chan []game.Player
}

type ShowLeaderboard struct {
	Reply chan struct{}
}

// GetState reflects internal state without data races; test hook.
type GetState struct {
	Reply chan View
}

type View struct {
	AdminID  string
	Players  []game.Player
	Settings game.Settings
	Locked   bool
	Answer   game.Choice
	Round    int
	NumSubs  int
}

type Shutdown struct{}

func (Join) isRoomMsg()            {}
func (Leave) isRoomMsg()           {}
func (Lock) isRoomMsg()            {}
func (GameInfo) isRoomMsg()        {}
func (PlayerInfo) isRoomMsg()      {}
func (SetQuestion) isRoomMsg()     {}
func (SubmitAnswer) isRoomMsg()    {}
func (GetTally) isRoomMsg()        {}
func (NextQuestion) isRoomMsg()    {}
func (Invalidate) isRoomMsg()      {}
func (EndGame) isRoomMsg()         {}
func (Players) isRoomMsg()         {}
func (ShowLeaderboard) isRoomMsg() {}
func (GetState) isRoomMsg()        {}
func (Shutdown) isRoomMsg()        {}

// Payloads for room-wide broadcasts.

type PlayersPayload struct {
	Players []game.Player `json:"players"`
}

type RoundPayload struct {
	Question int `json:"question"`
}

type TimerPayload struct {
	Timer int `json:"timer"`
}
