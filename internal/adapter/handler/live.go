package handler

import (
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/errors"
	livedto "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/dto/live"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/live"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/transcript"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/middleware"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxFrameSize   = 64 * 1024
	sendBufferSize = 32
)

// Live handles live transcript sessions
type Live struct {
	registry *live.Registry
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewLiveHandler creates a new live handler. allowedOrigins of "*" accepts any origin.
func NewLiveHandler(registry *live.Registry, allowedOrigins []string, logger *zap.Logger) *Live {
	return &Live{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

// Create handles POST /api/live
// @Summary      Create live session
// @Description  Mints a live transcript session id and its WebSocket path
// @Tags         Live
// @Produce      json
// @Success      201  {object}  livedto.SessionResponse  "Live session created"
// @Router       /api/live [post]
func (h *Live) Create(c echo.Context) error {
	s := h.registry.Create()
	return HandleSuccess(h.logger, c, http.StatusCreated, livedto.SessionResponse{
		SessionID: s.ID,
		SocketURL: "/api/live/" + s.ID,
		CreatedAt: s.CreatedAt,
	})
}

// Blocks handles GET /api/live/:id/blocks
// @Summary      Get live blocks
// @Description  Returns the grouped transcript of a live session
// @Tags         Live
// @Produce      json
// @Param        id   path      string               true  "Live session ID"
// @Success      200  {object}  livedto.BlocksResponse  "Current blocks"
// @Failure      404  {object}  common.ErrorResponse "Live session not found"
// @Router       /api/live/{id}/blocks [get]
func (h *Live) Blocks(c echo.Context) error {
	s, ok := middleware.LiveSessionFrom(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrLiveSessionNotFound(c.Param("id")))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, livedto.BlocksResponse{
		SessionID: s.ID,
		Blocks:    s.Blocks(),
	})
}

// End handles DELETE /api/live/:id
// @Summary      End live session
// @Description  Closes the live session and any attached sockets
// @Tags         Live
// @Param        id   path  string  true  "Live session ID"
// @Success      204  "Session ended"
// @Failure      404  {object}  common.ErrorResponse  "Live session not found"
// @Router       /api/live/{id} [delete]
func (h *Live) End(c echo.Context) error {
	id := c.Param("id")
	if err := h.registry.Remove(id); err != nil {
		if stdErrors.Is(err, entities.ErrLiveSessionNotFound) {
			return HandleError(h.logger, c, errors.ErrLiveSessionNotFound(id))
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return c.NoContent(http.StatusNoContent)
}

// Stream handles GET /api/live/:id (WebSocket)
// Each text frame is a transcript record or a realtime API event. Every turn
// it yields is grouped and the resulting block change is written back.
// @Summary      Stream live transcript
// @Description  WebSocket; inbound frames are transcript records or realtime events, outbound frames are block changes
// @Tags         Live
// @Param        id   path  string  true  "Live session ID"
// @Success      101  "Switching protocols"
// @Failure      400  {object}  common.ErrorResponse  "Missing session id"
// @Router       /api/live/{id} [get]
func (h *Live) Stream(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("session id is required"))
	}
	s := h.registry.GetOrCreate(id)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already answered with an HTTP error
		h.logger.Warn("websocket upgrade failed", zap.String("session_id", id), zap.Error(err))
		return nil
	}

	client := &liveClient{
		conn:       conn,
		session:    s,
		send:       make(chan livedto.Message, sendBufferSize),
		writerDone: make(chan struct{}),
		logger:     h.logger.With(zap.String("session_id", id)),
	}
	client.logger.Info("live socket connected")

	go client.writePump()
	client.readPump()

	client.logger.Info("live socket disconnected")
	return nil
}

// liveClient is one WebSocket attached to a live session
type liveClient struct {
	conn       *websocket.Conn
	session    *live.Session
	send       chan livedto.Message
	writerDone chan struct{}
	logger     *zap.Logger
}

func (lc *liveClient) readPump() {
	defer close(lc.send)

	lc.conn.SetReadLimit(maxFrameSize)
	lc.conn.SetReadDeadline(time.Now().Add(pongWait))
	lc.conn.SetPongHandler(func(string) error {
		lc.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := lc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				lc.logger.Warn("live socket read failed", zap.Error(err))
			}
			return
		}
		lc.session.Touch()

		turn, ok, err := transcript.DecodeEvent(data)
		if err != nil {
			if !lc.enqueue(errorMessage(err.Error())) {
				return
			}
			continue
		}
		if !ok {
			continue
		}

		change, err := lc.session.Apply(turn)
		if stdErrors.Is(err, entities.ErrUnknownSpeaker) {
			if !lc.enqueue(errorMessage(err.Error())) {
				return
			}
			continue
		}
		if err != nil {
			lc.enqueue(errorMessage(err.Error()))
			return
		}
		if !lc.enqueue(changeMessage(change)) {
			return
		}
	}
}

// enqueue hands msg to the writer; false once the writer has stopped
func (lc *liveClient) enqueue(msg livedto.Message) bool {
	select {
	case lc.send <- msg:
		return true
	case <-lc.writerDone:
		return false
	}
}

func (lc *liveClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(lc.writerDone)
		lc.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-lc.send:
			lc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				lc.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := lc.conn.WriteJSON(msg); err != nil {
				lc.logger.Warn("live socket write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			lc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := lc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-lc.session.Done():
			lc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			lc.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"))
			return
		}
	}
}

func changeMessage(change transcript.Change) livedto.Message {
	msgType := livedto.MessageBlockAppended
	if change.Kind == transcript.ChangeMerged {
		msgType = livedto.MessageBlockUpdated
	}
	index := change.Index
	block := change.Block
	return livedto.Message{Type: msgType, Index: &index, Block: &block}
}

func errorMessage(message string) livedto.Message {
	return livedto.Message{Type: livedto.MessageError, Message: message}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
