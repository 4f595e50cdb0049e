package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mvidal21/quizshow-backend/internal/room"
	"github.com/mvidal21/quizshow-backend/internal/session"
)

// RoomStatus is a read-only peek at the active session for ops dashboards.
func RoomStatus(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan session.GetReply, 1)
		mgr.Inbox() <- session.GetRoom{Reply: reply}
		res := <-reply
		if res.Err != nil {
			if errors.Is(res.Err, session.ErrNoRoom) {
				http.Error(w, res.Err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, res.Err.Error(), http.StatusInternalServerError)
			return
		}

		view := make(chan room.View, 1)
		res.Room.Inbox() <- room.GetState{Reply: view}
		v := <-view

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			Players  int  `json:"players"`
			Locked   bool `json:"locked"`
			Question int  `json:"question"`
		}{Players: len(v.Players), Locked: v.Locked, Question: v.Round})
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
