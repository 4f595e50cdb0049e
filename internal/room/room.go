package room

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mvidal21/quizshow-backend/internal/game"
)

var (
	ErrMissingUsername = errors.New("unspecified username")
	ErrNameTaken       = errors.New("username is already taken")
	ErrRoomLocked      = errors.New("game has already started")
	ErrMissingTimer    = errors.New("unspecified timer value")
	ErrInvalidTimer    = errors.New("timer value must be a positive number")
	ErrMissingAnswer   = errors.New("unspecified answer")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrAdminCannotJoin = errors.New("admin cannot join as a player")
)

// Broadcast event names, matching the client protocol.
const (
	EvtUserJoined      = "user-joined"
	EvtBeReady         = "be-ready"
	EvtQuestionStart   = "question-start"
	EvtUpdateAnswers   = "update-answers"
	EvtNextQuestion    = "next-question"
	EvtEndGame         = "end-game-response"
	EvtShowLeaderboard = "show-leaderboard"
)

// Room is the single active game session. One goroutine owns all of its state
// and serializes every operation, so handlers never need locks.
type Room struct {
	inbox    chan Msg
	players  map[string]*game.Player
	order    []string // join order, for stable listings
	adminID  string
	adminOut chan Event
	subs     map[string]chan Event
	settings game.Settings
	locked   bool
	answer   game.Choice
	round    int
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewRoom(parent context.Context, adminID string, adminOut chan Event, lives int, log *zap.Logger) *Room {
	ctx, cancel := context.WithCancel(parent)

	r := &Room{
		inbox:    make(chan Msg, 64),
		players:  make(map[string]*game.Player),
		adminID:  adminID,
		adminOut: adminOut,
		subs:     make(map[string]chan Event),
		settings: game.Settings{Lives: lives},
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}

	go r.loop()
	return r
}

func (r *Room) Inbox() chan<- Msg { return r.inbox }

func (r *Room) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Join:
				msg.Reply <- r.join(msg)

			case Leave:
				if ch, ok := r.subs[msg.ID]; ok {
					close(ch)
					delete(r.subs, msg.ID)
				}

			case Lock:
				r.locked = true
				r.round++
				r.broadcast(Event{Name: EvtBeReady, Data: RoundPayload{Question: r.round}})
				msg.Reply <- r.round

			case GameInfo:
				msg.Reply <- GameInfoReply{
					Players:  r.snapshotPlayers(),
					Settings: r.settings,
					Round:    r.round,
				}

			case PlayerInfo:
				p, ok := r.players[msg.ID]
				if !ok {
					msg.Reply <- PlayerInfoReply{Err: ErrPlayerNotFound}
					break
				}
				msg.Reply <- PlayerInfoReply{
					Hearts: r.settings.Lives,
					Left:   p.Lives,
					Timer:  r.settings.Timer,
					Round:  r.round,
				}

			case SetQuestion:
				msg.Reply <- r.setQuestion(msg)

			case SubmitAnswer:
				msg.Reply <- r.submitAnswer(msg)

			case GetTally:
				msg.Reply <- game.Aggregate(r.players)

			case NextQuestion:
				r.advanceRound()
				msg.Reply <- r.round

			case Invalidate:
				for _, p := range r.players {
					game.CancelRound(p)
				}
				r.advanceRound()
				msg.Reply <- r.round

			case EndGame:
				r.broadcast(Event{Name: EvtEndGame})
				msg.Reply <- struct{}{}

			case Players:
				msg.Reply <- r.snapshotPlayers()

			case ShowLeaderboard:
				r.pushAdmin(Event{Name: EvtShowLeaderboard})
				r.broadcast(Event{Name: EvtShowLeaderboard})
				msg.Reply <- struct{}{}

			case GetState:
				msg.Reply <- View{
					AdminID:  r.adminID,
					Players:  r.snapshotPlayers(),
					Settings: r.settings,
					Locked:   r.locked,
					Answer:   r.answer,
					Round:    r.round,
					NumSubs:  len(r.subs),
				}

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Room) join(msg Join) JoinReply {
	if msg.ID == r.adminID {
		return JoinReply{Err: ErrAdminCannotJoin}
	}
	if msg.Name == "" {
		return JoinReply{Err: ErrMissingUsername}
	}
	if r.locked {
		return JoinReply{Err: ErrRoomLocked}
	}
	for _, p := range r.players {
		if p.Name == msg.Name {
			return JoinReply{Err: ErrNameTaken}
		}
	}

	r.players[msg.ID] = game.NewPlayer(msg.ID, msg.Name, r.settings.Lives)
	r.order = append(r.order, msg.ID)
	r.subs[msg.ID] = msg.Outbox

	players := r.snapshotPlayers()
	r.pushAdmin(Event{Name: EvtUserJoined, Data: PlayersPayload{Players: players}})
	r.broadcast(Event{Name: EvtUserJoined, Data: PlayersPayload{Players: players}})

	return JoinReply{Players: players}
}

func (r *Room) setQuestion(msg SetQuestion) error {
	if msg.Timer == nil {
		return ErrMissingTimer
	}
	if *msg.Timer <= 0 {
		return ErrInvalidTimer
	}
	answer, err := game.ParseChoice(msg.Answer)
	if err != nil {
		return err
	}

	r.settings.Timer = *msg.Timer
	r.answer = answer
	r.broadcast(Event{Name: EvtQuestionStart, Data: TimerPayload{Timer: r.settings.Timer}})
	return nil
}

func (r *Room) submitAnswer(msg SubmitAnswer) SubmitReply {
	p, ok := r.players[msg.ID]
	if !ok {
		return SubmitReply{Err: ErrPlayerNotFound}
	}
	if msg.Answer == "" {
		return SubmitReply{Err: ErrMissingAnswer}
	}

	outcome := game.Score(p, game.ParseAnswer(msg.Answer), r.answer)
	r.pushAdmin(Event{Name: EvtUpdateAnswers, Data: game.Aggregate(r.players)})

	return SubmitReply{
		Correct: outcome.Correct,
		Answer:  outcome.Answer,
		Hearts:  r.settings.Lives,
		Left:    p.Lives,
	}
}

// advanceRound clears every player's round markers and signals the room to
// wait for the next question.
func (r *Room) advanceRound() {
	for _, p := range r.players {
		game.ResetRound(p)
	}
	r.round++
	r.broadcast(Event{Name: EvtNextQuestion, Data: RoundPayload{Question: r.round}})
}

func (r *Room) snapshotPlayers() []game.Player {
	players := make([]game.Player, 0, len(r.players))
	for _, id := range r.order {
		if p, ok := r.players[id]; ok {
			players = append(players, *p)
		}
	}
	return players
}

func (r *Room) broadcast(ev Event) {
	for id, ch := range r.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber is slow/full - drop them.
			r.log.Warn("dropping slow subscriber", zap.String("conn", id))
			close(ch)
			delete(r.subs, id)
		}
	}
}

// pushAdmin delivers a dashboard event to the admin connection. Unlike a
// player subscriber the admin is structural, so a full outbox drops the event
// rather than the connection.
func (r *Room) pushAdmin(ev Event) {
	select {
	case r.adminOut <- ev:
	default:
		r.log.Warn("admin outbox full, dropping event", zap.String("event", ev.Name))
	}
}

func (r *Room) shutdown() {
	for id, ch := range r.subs {
		close(ch)
		delete(r.subs, id)
	}
	close(r.adminOut)
	r.cancel()
}
