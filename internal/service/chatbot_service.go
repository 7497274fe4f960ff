package service

import (
	"context"
	"strings"

	"barplexity-be/internal/constant"
	"barplexity-be/internal/dto"
	"barplexity-be/internal/entity"
	"barplexity-be/internal/pkg/logger"
	"barplexity-be/internal/repository/specification"
	"barplexity-be/internal/repository/unitofwork"
	"barplexity-be/pkg/chatbot"

	"github.com/google/uuid"
)

type IChatbotService interface {
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateChatSessionResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error)
	GetSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ChatSessionDetailResponse, error)
	DeleteSession(ctx context.Context, userId, sessionId uuid.UUID) error
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatbotService struct {
	uowFactory unitofwork.RepositoryFactory
	generator  chatbot.Generator
	log        logger.ILogger
}

func NewChatbotService(uowFactory unitofwork.RepositoryFactory, generator chatbot.Generator, log logger.ILogger) IChatbotService {
	return &chatbotService{
		uowFactory: uowFactory,
		generator:  generator,
		log:        log,
	}
}

func (s *chatbotService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		UserId:  userId,
		Summary: constant.SessionSummaryNew,
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.CreateChatSessionResponse{
		Id:      session.Id,
		Summary: session.Summary,
	}, nil
}

// ListSessions returns the sidebar history, newest first. Sessions that never
// received a message are left out.
func (s *chatbotService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.WithTurns{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, &dto.ChatSessionResponse{
			Id:        session.Id,
			Summary:   session.Summary,
			CreatedAt: session.CreatedAt,
		})
	}
	return responses, nil
}

func (s *chatbotService) GetSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ChatSessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	turns, err := uow.ChatTurnRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	turnResponses := make([]dto.ChatTurnResponse, 0, len(turns))
	for _, turn := range turns {
		turnResponses = append(turnResponses, dto.ChatTurnResponse{
			Id:        turn.Id,
			Question:  turn.Question,
			Answer:    turn.Answer,
			CreatedAt: turn.CreatedAt,
		})
	}

	return &dto.ChatSessionDetailResponse{
		Id:        session.Id,
		Summary:   session.Summary,
		CreatedAt: session.CreatedAt,
		Turns:     turnResponses,
	}, nil
}

func (s *chatbotService) DeleteSession(ctx context.Context, userId, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatTurnRepository().DeleteAllBySessionId(ctx, session.Id); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, session.Id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *chatbotService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var session *entity.ChatSession
	var err error
	if req.SessionId == uuid.Nil {
		// No session supplied: open a fresh one, same as the chat view
		// being visited without an id.
		session = &entity.ChatSession{
			UserId:  userId,
			Summary: constant.SessionSummaryNew,
		}
		if err = uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}
	} else {
		session, err = s.findOwnedSession(ctx, uow, userId, req.SessionId)
		if err != nil {
			return nil, err
		}
	}

	turns, err := uow.ChatTurnRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(turns, req.Message)

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		// Provider failures become part of the conversation instead of
		// failing the request. The turn is stored either way.
		s.log.Error("chatbot", "generation failed", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
		answer = "Error: " + err.Error()
	}

	turn := &entity.ChatTurn{
		ChatSessionId: session.Id,
		Question:      req.Message,
		Answer:        answer,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatTurnRepository().Create(ctx, turn); err != nil {
		return nil, err
	}

	// The first message names the session. Later messages never rename it.
	if session.Summary == constant.SessionSummaryNew {
		session.Summary = summarize(req.Message)
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		SessionId: session.Id,
		Summary:   session.Summary,
		Question:  turn.Question,
		Answer:    turn.Answer,
	}, nil
}

func (s *chatbotService) findOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrChatSessionNotFound
	}
	if session.UserId != userId {
		return nil, ErrChatSessionForbidden
	}
	return session, nil
}

// buildPrompt replays the whole conversation oldest first, then leaves the
// trailing "Bot:" marker for the model to complete.
func buildPrompt(turns []*entity.ChatTurn, message string) string {
	var b strings.Builder
	for _, turn := range turns {
		b.WriteString("User: ")
		b.WriteString(turn.Question)
		b.WriteString("\n")
		b.WriteString("Bot: ")
		b.WriteString(turn.Answer)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(message)
	b.WriteString("\nBot:")
	return b.String()
}

func summarize(message string) string {
	runes := []rune(message)
	if len(runes) > constant.SessionSummaryMaxLen {
		runes = runes[:constant.SessionSummaryMaxLen]
	}
	return string(runes)
}
