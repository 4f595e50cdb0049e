package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mvidal21/quizshow-backend/internal/room"
)

var (
	ErrRoomExists      = errors.New("room is already taken")
	ErrNoRoom          = errors.New("no active room")
	ErrInvalidSettings = errors.New("lives must be a positive number")
)

type Msg interface{ isSessionMsg() }

// CreateRoom opens the session's single room with the requester as admin.
type CreateRoom struct {
	AdminID  string
	AdminOut chan room.Event
	Lives    int
	Reply    chan CreateReply
}

type CreateReply struct {
	Room *room.Room
	Err  error
}

type GetRoom struct {
	Reply chan GetReply
}

type GetReply struct {
	Room *room.Room
	Err  error
}

type RemoveRoom struct{}

type Shutdown struct{}

func (CreateRoom) isSessionMsg() {}
func (GetRoom) isSessionMsg()    {}
func (RemoveRoom) isSessionMsg() {}
func (Shutdown) isSessionMsg()   {}

// Manager owns the process-wide room slot. At most one room exists at a time;
// every per-room operation resolves it here first so a missing room surfaces
// as ErrNoRoom instead of a nil dereference.
type Manager struct {
	inbox  chan Msg
	active *room.Room
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewManager(parent context.Context, log *zap.Logger) *Manager {
	ctx, cancel := context.WithCancel(parent)
	m := &Manager{
		inbox:  make(chan Msg, 64),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go m.loop()
	return m
}

func (m *Manager) Inbox() chan<- Msg { return m.inbox }

func (m *Manager) loop() {
	for {
		select {
		case <-m.ctx.Done():
			m.shutdown()
			return

		case msg := <-m.inbox:
			switch msg := msg.(type) {
			case CreateRoom:
				if m.active != nil {
					msg.Reply <- CreateReply{Err: ErrRoomExists}
					break
				}
				if msg.Lives <= 0 {
					msg.Reply <- CreateReply{Err: ErrInvalidSettings}
					break
				}
				m.active = room.NewRoom(m.ctx, msg.AdminID, msg.AdminOut, msg.Lives, m.log)
				m.log.Info("room created",
					zap.String("admin", msg.AdminID),
					zap.Int("lives", msg.Lives))
				msg.Reply <- CreateReply{Room: m.active}

			case GetRoom:
				if m.active == nil {
					msg.Reply <- GetReply{Err: ErrNoRoom}
					break
				}
				msg.Reply <- GetReply{Room: m.active}

			case RemoveRoom:
				if m.active != nil {
					m.active.Inbox() <- room.Shutdown{}
					m.active = nil
				}

			case Shutdown:
				m.shutdown()
				return
			}
		}
	}
}

func (m *Manager) shutdown() {
	if m.active != nil {
		m.active.Inbox() <- room.Shutdown{}
		m.active = nil
	}
	m.cancel()
}
