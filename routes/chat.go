package routes

import (
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ryklith/photo-library-chat/controllers"
	"github.com/ryklith/photo-library-chat/types"
	"github.com/ryklith/photo-library-chat/utils/logging"
)

func ChatRoutes(ctrl *controllers.ChatController) chi.Router {
	r := chi.NewRouter()

	// POST /api/chat : send one message with optional history
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
			writeJSON(w, http.StatusBadRequest, types.DispatchResult{
				Success: false,
				Error:   "Message is required and must be a string",
			})
			return
		}
		dispatch(w, r, ctrl, req)
	})

	// GET /api/chat?message=...&chatHistory=<json> : query-param form
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		message := r.URL.Query().Get("message")
		if message == "" {
			writeJSON(w, http.StatusBadRequest, types.DispatchResult{
				Success: false,
				Error:   "Message parameter is required",
			})
			return
		}
		req := types.ChatRequest{Message: message}
		if param := r.URL.Query().Get("chatHistory"); param != "" {
			var history []types.HistoryMessage
			if err := json.Unmarshal([]byte(param), &history); err != nil {
				logging.AppLogger.Warn("ignoring unparseable chat history", zap.Error(err))
			} else {
				req.ChatHistory = history
			}
		}
		dispatch(w, r, ctrl, req)
	})

	// GET /api/chat/ws : one-shot websocket dispatch; read one request,
	// write one envelope, close
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "unsupported data")
			return
		}
		var req types.ChatRequest
		if err := json.Unmarshal(data, &req); err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"success":false,"error":"invalid json"}`))
			return
		}
		result := ctrl.Send(ctx, req)
		payload, err := json.Marshal(result)
		if err != nil {
			return
		}
		conn.Write(ctx, websocket.MessageText, payload)
		conn.Close(websocket.StatusNormalClosure, "")
	})

	return r
}

func dispatch(w http.ResponseWriter, r *http.Request, ctrl *controllers.ChatController, req types.ChatRequest) {
	result := ctrl.Send(r.Context(), req)
	if !result.Success {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
