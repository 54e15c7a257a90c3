package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/model"
	"hr-agent-system/internal/router"
	"hr-agent-system/pkg/llmprovider"
)

// ErrEmptyQuery is returned for blank input.
var ErrEmptyQuery = errors.New("query is empty")

// Process runs one chat turn: route, then either deny or invoke the target
// handler, optionally rephrase, and remember the turn.
func (o *Orchestrator) Process(ctx context.Context, sc model.Scope, query string) (Reply, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Reply{}, ErrEmptyQuery
	}

	decision := o.router.Route(query, sc.Role)
	reply := Reply{
		Decision: decision,
		Handler:  string(decision.TargetHandler),
	}
	o.l.Infof(ctx, "%s: user=%s role=%s category=%s handler=%s authorized=%t",
		LogPrefixProcess, sc.UserID, sc.Role, decision.Category, decision.TargetHandler, decision.Authorized)
	if o.recorder != nil {
		o.recorder.RecordDecision(string(decision.Category), reply.Handler, decision.Authorized)
	}

	if !decision.Authorized {
		reply.Text = decision.DenialReason
		o.remember(ctx, sc, query, reply)
		return reply, nil
	}

	body, denied := o.invoke(ctx, sc, query, decision)
	if o.Phrasing() && !denied {
		if phrased, ok := o.phrase(ctx, sc, query, body); ok {
			body = phrased
			reply.Phrased = true
		}
	}

	reply.Text = router.Explanation(decision.TargetHandler) + "\n\n" + body
	o.remember(ctx, sc, query, reply)
	return reply, nil
}

// invoke calls the target handler and always returns displayable text.
// The flag is set when the handler refused access to another user's record.
func (o *Orchestrator) invoke(ctx context.Context, sc model.Scope, query string, decision router.Decision) (string, bool) {
	name := string(decision.TargetHandler)
	h, ok := o.registry.Get(name)
	if !ok {
		o.l.Errorf(ctx, "%s: %s: %v", LogPrefixInvoke, name, agent.ErrHandlerNotFound)
		o.recordHandler(name, 0, errorTypeNotFound)
		return GenericApology, false
	}

	start := time.Now()
	text, err := h.Handle(ctx, agent.Request{
		Query:    query,
		CallerID: sc.UserID,
		Caller:   sc.Username,
		Role:     sc.Role,
		Category: decision.Category,
	})
	latency := time.Since(start)

	switch {
	case err == nil:
		o.recordHandler(name, latency, "")
		return text, false
	case errors.Is(err, agent.ErrAccessDenied):
		o.l.Warnf(ctx, "%s: %s denied user=%s", LogPrefixInvoke, name, sc.UserID)
		o.recordHandler(name, latency, errorTypeAccessDenied)
		return agent.AccessDeniedMessage, true
	default:
		o.l.Errorf(ctx, "%s: %s: %v", LogPrefixInvoke, name, err)
		o.recordHandler(name, latency, errorTypeInternal)
		return GenericApology, false
	}
}

// phrase asks the LLM to reword draft. ok is false when the draft should be kept.
func (o *Orchestrator) phrase(ctx context.Context, sc model.Scope, query, draft string) (string, bool) {
	req := &llmprovider.Request{
		SystemInstruction: SystemPromptPhrasing + buildTimeContext(o.now(), o.loc),
		Temperature:       0.3,
	}
	for _, t := range o.recent(ctx, sc.UserID) {
		req.Messages = append(req.Messages,
			llmprovider.Message{Role: llmprovider.RoleUser, Content: t.Query},
			llmprovider.Message{Role: llmprovider.RoleAssistant, Content: t.Response},
		)
	}
	req.Messages = append(req.Messages, llmprovider.Message{
		Role:    llmprovider.RoleUser,
		Content: fmt.Sprintf(PhrasingPromptTemplate, query, draft),
	})

	resp, err := o.llm.GenerateContent(ctx, req)
	if err != nil {
		o.l.Warnf(ctx, "%s: keeping draft: %v", LogPrefixPhrase, err)
		return "", false
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		o.l.Warnf(ctx, "%s: keeping draft: %v", LogPrefixPhrase, llmprovider.ErrInvalidResponse)
		return "", false
	}
	return text, true
}

func (o *Orchestrator) recent(ctx context.Context, userID string) []model.Turn {
	if o.history == nil {
		return nil
	}
	turns, err := o.history.Recent(ctx, userID, o.cfg.MaxHistoryTurns)
	if err != nil {
		o.l.Warnf(ctx, "%s: %v", LogPrefixHistory, err)
		return nil
	}
	return turns
}

func (o *Orchestrator) remember(ctx context.Context, sc model.Scope, query string, reply Reply) {
	if o.history == nil {
		return
	}
	turn := model.Turn{
		Query:      query,
		Response:   reply.Text,
		Category:   reply.Decision.Category,
		Handler:    reply.Handler,
		Authorized: reply.Decision.Authorized,
		Timestamp:  o.now(),
	}
	if err := o.history.Append(ctx, sc.UserID, turn); err != nil {
		o.l.Warnf(ctx, "%s: %v", LogPrefixHistory, err)
	}
}

func (o *Orchestrator) recordHandler(name string, latency time.Duration, errorType string) {
	if o.recorder != nil {
		o.recorder.RecordHandler(name, latency, errorType)
	}
}
