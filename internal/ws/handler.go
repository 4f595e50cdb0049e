package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mvidal21/quizshow-backend/internal/game"
	"github.com/mvidal21/quizshow-backend/internal/room"
	"github.com/mvidal21/quizshow-backend/internal/session"
	"github.com/mvidal21/quizshow-backend/internal/types"
)

const writeTimeout = 3 * time.Second

// client is one websocket connection: its opaque handle, its outbox for room
// pushes, and the room it joined (if any) so we can unsubscribe on close.
type client struct {
	id     string
	out    chan room.Event
	conn   *websocket.Conn
	mgr    *session.Manager
	log    *zap.Logger
	joined *room.Room
}

func Handler(mgr *session.Manager, log *zap.Logger, origins []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: origins,
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		c := &client{
			id:   uuid.NewString(),
			out:  make(chan room.Event, 16),
			conn: conn,
			mgr:  mgr,
		}
		c.log = log.With(zap.String("conn", c.id))
		c.log.Info("connected")

		defer func() {
			if c.joined != nil {
				c.joined.Inbox() <- room.Leave{ID: c.id}
			}
			c.log.Info("disconnected")
		}()

		// Writer goroutine: drains room pushes until the room closes the
		// outbox or the connection dies. The ctx branch covers connections
		// whose outbox was never handed to a room.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for {
				select {
				case ev, ok := <-c.out:
					if !ok {
						return
					}
					c.send(writeCtx, ev.Name, ev.Data)
				case <-writeCtx.Done():
					return
				}
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var msg types.ClientMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				c.send(r.Context(), "error", types.Error("bad json"))
				continue
			}

			c.dispatch(r.Context(), msg)
		}
	}
}

func (c *client) dispatch(ctx context.Context, msg types.ClientMessage) {
	switch msg.Event {
	case "create-room":
		c.createRoom(ctx, msg)
		return
	case "join-room":
		c.joinRoom(ctx, msg)
		return
	}

	// Everything below operates on the active room.
	rm, err := c.getRoom()
	if err != nil {
		c.send(ctx, msg.Event, types.Error(err.Error()))
		return
	}

	switch msg.Event {
	case "get-game-info":
		reply := make(chan room.GameInfoReply, 1)
		rm.Inbox() <- room.GameInfo{Reply: reply}
		c.send(ctx, "get-game-info", <-reply)

	case "lock-room":
		reply := make(chan int, 1)
		rm.Inbox() <- room.Lock{Reply: reply}
		<-reply
		c.send(ctx, "lock-room-response", nil)

	case "get-player-info":
		reply := make(chan room.PlayerInfoReply, 1)
		rm.Inbox() <- room.PlayerInfo{ID: c.id, Reply: reply}
		res := <-reply
		if res.Err != nil {
			c.send(ctx, "get-player-info", types.Error(res.Err.Error()))
			return
		}
		c.send(ctx, "get-player-info", res)

	case "set-question-settings":
		reply := make(chan error, 1)
		rm.Inbox() <- room.SetQuestion{Timer: msg.Timer, Answer: msg.Answer, Reply: reply}
		if err := <-reply; err != nil {
			c.send(ctx, "set-question-settings-response", types.Error(err.Error()))
			return
		}
		c.send(ctx, "set-question-settings-response", types.Success("successfully set settings"))

	case "user-answer":
		reply := make(chan room.SubmitReply, 1)
		rm.Inbox() <- room.SubmitAnswer{ID: c.id, Answer: msg.Answer, Reply: reply}
		res := <-reply
		if res.Err != nil {
			c.send(ctx, "user-answer", types.Error(res.Err.Error()))
			return
		}
		c.send(ctx, "user-answer", res)

	case "get-user-answer":
		reply := make(chan game.Tally, 1)
		rm.Inbox() <- room.GetTally{Reply: reply}
		c.send(ctx, "get-update-answers-response", <-reply)

	case "next-question":
		reply := make(chan int, 1)
		rm.Inbox() <- room.NextQuestion{Reply: reply}
		<-reply

	case "invalidate":
		reply := make(chan int, 1)
		rm.Inbox() <- room.Invalidate{Reply: reply}
		<-reply
		c.send(ctx, "invalidate", nil)

	case "end-game":
		reply := make(chan struct{}, 1)
		rm.Inbox() <- room.EndGame{Reply: reply}
		<-reply

	case "get-players":
		reply := make(chan []game.Player, 1)
		rm.Inbox() <- room.Players{Reply: reply}
		c.send(ctx, "get-players-response", room.PlayersPayload{Players: <-reply})

	case "show-leaderboard":
		reply := make(chan struct{}, 1)
		rm.Inbox() <- room.ShowLeaderboard{Reply: reply}
		<-reply

	default:
		c.send(ctx, msg.Event, types.Error("unknown event"))
	}
}

func (c *client) createRoom(ctx context.Context, msg types.ClientMessage) {
	lives := 0
	if msg.Lifes != nil {
		lives = *msg.Lifes
	}

	reply := make(chan session.CreateReply, 1)
	c.mgr.Inbox() <- session.CreateRoom{
		AdminID:  c.id,
		AdminOut: c.out,
		Lives:    lives,
		Reply:    reply,
	}
	res := <-reply
	if res.Err != nil {
		c.send(ctx, "create-room", types.Error(res.Err.Error()))
		return
	}
	c.send(ctx, "create-room", types.Success("successfully created the room"))
}

func (c *client) joinRoom(ctx context.Context, msg types.ClientMessage) {
	rm, err := c.getRoom()
	if err != nil {
		c.send(ctx, "join-room", types.Error(err.Error()))
		return
	}

	reply := make(chan room.JoinReply, 1)
	rm.Inbox() <- room.Join{ID: c.id, Name: msg.Username, Outbox: c.out, Reply: reply}
	res := <-reply
	if res.Err != nil {
		c.send(ctx, "join-room", types.Error(res.Err.Error()))
		return
	}
	c.joined = rm
	c.send(ctx, "join-room", types.Success("successfully entered the lobby"))
}

func (c *client) getRoom() (*room.Room, error) {
	reply := make(chan session.GetReply, 1)
	c.mgr.Inbox() <- session.GetRoom{Reply: reply}
	res := <-reply
	return res.Room, res.Err
}

func (c *client) send(ctx context.Context, event string, data any) {
	payload, err := json.Marshal(types.ServerMessage{Event: event, Data: data})
	if err != nil {
		c.log.Error("marshal outbound message", zap.String("event", event), zap.Error(err))
		return
	}

	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := c.conn.Write(wctx, websocket.MessageText, payload); err != nil {
		c.log.Debug("write failed", zap.String("event", event), zap.Error(err))
	}
}
