package http

import (
	"time"

	"hr-agent-system/internal/chat"
	"hr-agent-system/internal/model"
)

// --- Request DTOs ---

type sendReq struct {
	Message string `json:"message"`
}

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{Message: r.Message}
}

type historyReq struct {
	Limit int `form:"limit"`
}

// --- Response DTOs ---

type sendResp struct {
	Response          string    `json:"response"`
	Category          string    `json:"category"`
	Handler           string    `json:"handler"`
	Authorized        bool      `json:"authorized"`
	Phrased           bool      `json:"phrased"`
	SessionID         string    `json:"session_id"`
	ConversationCount int       `json:"conversation_count"`
	Timestamp         time.Time `json:"timestamp"`
}

func (h *handler) newSendResp(out chat.SendOutput) sendResp {
	return sendResp{
		Response:          out.Response,
		Category:          string(out.Category),
		Handler:           out.Handler,
		Authorized:        out.Authorized,
		Phrased:           out.Phrased,
		SessionID:         out.SessionID,
		ConversationCount: out.ConversationCount,
		Timestamp:         out.Timestamp,
	}
}

type turnResp struct {
	Query      string    `json:"query"`
	Response   string    `json:"response"`
	Category   string    `json:"category"`
	Handler    string    `json:"handler"`
	Authorized bool      `json:"authorized"`
	Timestamp  time.Time `json:"timestamp"`
}

type historyResp struct {
	Turns []turnResp `json:"turns"`
	Count int        `json:"count"`
}

func (h *handler) newHistoryResp(turns []model.Turn) historyResp {
	items := make([]turnResp, len(turns))
	for i, t := range turns {
		items[i] = turnResp{
			Query:      t.Query,
			Response:   t.Response,
			Category:   string(t.Category),
			Handler:    t.Handler,
			Authorized: t.Authorized,
			Timestamp:  t.Timestamp,
		}
	}
	return historyResp{Turns: items, Count: len(items)}
}

type resetResp struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}
