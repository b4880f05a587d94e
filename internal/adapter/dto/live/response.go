package live

import (
	"time"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

// Message types pushed over the live WebSocket
const (
	MessageBlockAppended = "block.appended"
	MessageBlockUpdated  = "block.updated"
	MessageError         = "error"
)

// SessionResponse is returned when a live session is created
type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	SocketURL string    `json:"socketUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlocksResponse is the snapshot of a live session
type BlocksResponse struct {
	SessionID string           `json:"sessionId"`
	Blocks    []entities.Block `json:"blocks"`
}

// Message is one frame written to the live WebSocket
type Message struct {
	Type    string          `json:"type"`
	Index   *int            `json:"index,omitempty"`
	Block   *entities.Block `json:"block,omitempty"`
	Message string          `json:"message,omitempty"`
}
