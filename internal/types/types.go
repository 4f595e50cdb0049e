package types

// ClientMessage is the union of every inbound event payload. Optional ints
// are pointers so a missing field is distinguishable from zero.
type ClientMessage struct {
	Event    string `json:"event"`
	Lifes    *int   `json:"lifes,omitempty"`
	Username string `json:"username,omitempty"`
	Timer    *int   `json:"timer,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

type ServerMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Response is the status envelope for direct acks and failures.
type Response struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func Success(reason string) Response {
	return Response{Status: "success", Reason: reason}
}

func Error(reason string) Response {
	return Response{Status: "error", Reason: reason}
}
