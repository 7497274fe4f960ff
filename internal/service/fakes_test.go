package service

import (
	"context"
	"time"

	"barplexity-be/internal/entity"
	"barplexity-be/internal/repository/contract"
	"barplexity-be/internal/repository/specification"
	"barplexity-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore backs the in-memory repositories used by the service tests.
type fakeStore struct {
	users    []*entity.User
	banned   []*entity.BannedEmail
	sessions []*entity.ChatSession
	turns    []*entity.ChatTurn
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &fakeStore{}}
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                 { return nil }
func (u *fakeUnitOfWork) Rollback() error               { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepository{store: u.store}
}

func (u *fakeUnitOfWork) BannedEmailRepository() contract.BannedEmailRepository {
	return &fakeBannedEmailRepository{store: u.store}
}

func (u *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeChatSessionRepository{store: u.store}
}

func (u *fakeUnitOfWork) ChatTurnRepository() contract.ChatTurnRepository {
	return &fakeChatTurnRepository{store: u.store}
}

// Users

type fakeUserRepository struct {
	store *fakeStore
}

func (r *fakeUserRepository) matches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ByRole:
			if string(u.Role) != s.Role {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *entity.User) error {
	for i, u := range r.store.users {
		if u.Id == user.Id {
			r.store.users[i] = user
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.store.users[:0]
	for _, u := range r.store.users {
		if u.Id != id {
			kept = append(kept, u)
		}
	}
	r.store.users = kept
	return nil
}

func (r *fakeUserRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if r.matches(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		if r.matches(u, specs) {
			out = append(out, u)
		}
	}
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			if p.Offset >= len(out) {
				return nil, nil
			}
			out = out[p.Offset:]
			if p.Limit < len(out) {
				out = out[:p.Limit]
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, _ := r.FindAll(ctx, specs...)
	return int64(len(users)), nil
}

func (r *fakeUserRepository) SetBlocked(_ context.Context, id uuid.UUID, blocked bool) error {
	for _, u := range r.store.users {
		if u.Id == id {
			u.Blocked = blocked
		}
	}
	return nil
}

func (r *fakeUserRepository) SetBanned(_ context.Context, id uuid.UUID, banned bool) error {
	for _, u := range r.store.users {
		if u.Id == id {
			u.Banned = banned
		}
	}
	return nil
}

// Banned emails

type fakeBannedEmailRepository struct {
	store *fakeStore
}

func (r *fakeBannedEmailRepository) Create(_ context.Context, banned *entity.BannedEmail) error {
	for _, b := range r.store.banned {
		if b.Email == banned.Email {
			return nil
		}
	}
	if banned.Id == uuid.Nil {
		banned.Id = uuid.New()
	}
	banned.CreatedAt = time.Now()
	r.store.banned = append(r.store.banned, banned)
	return nil
}

func (r *fakeBannedEmailRepository) Exists(_ context.Context, email string) (bool, error) {
	for _, b := range r.store.banned {
		if b.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Chat sessions

type fakeChatSessionRepository struct {
	store *fakeStore
}

func (r *fakeChatSessionRepository) hasTurns(sessionId uuid.UUID) bool {
	for _, t := range r.store.turns {
		if t.ChatSessionId == sessionId {
			return true
		}
	}
	return false
}

func (r *fakeChatSessionRepository) matches(s *entity.ChatSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if s.UserId != sp.UserID {
				return false
			}
		case specification.WithTurns:
			if !r.hasTurns(s.Id) {
				return false
			}
		}
	}
	return true
}

func (r *fakeChatSessionRepository) Create(_ context.Context, session *entity.ChatSession) error {
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r *fakeChatSessionRepository) Update(_ context.Context, session *entity.ChatSession) error {
	for i, s := range r.store.sessions {
		if s.Id == session.Id {
			session.UpdatedAt = time.Now()
			r.store.sessions[i] = session
			return nil
		}
	}
	return nil
}

func (r *fakeChatSessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.store.sessions[:0]
	for _, s := range r.store.sessions {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.store.sessions = kept
	return nil
}

func (r *fakeChatSessionRepository) DeleteAllByUserId(_ context.Context, userId uuid.UUID) error {
	kept := r.store.sessions[:0]
	for _, s := range r.store.sessions {
		if s.UserId != userId {
			kept = append(kept, s)
		}
	}
	r.store.sessions = kept
	return nil
}

func (r *fakeChatSessionRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, s := range r.store.sessions {
		if r.matches(s, specs) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeChatSessionRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var out []*entity.ChatSession
	for _, s := range r.store.sessions {
		if r.matches(s, specs) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeChatSessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	sessions, _ := r.FindAll(ctx, specs...)
	return int64(len(sessions)), nil
}

// Chat turns

type fakeChatTurnRepository struct {
	store *fakeStore
}

func (r *fakeChatTurnRepository) matches(t *entity.ChatTurn, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByChatSessionID:
			if t.ChatSessionId != sp.ChatSessionID {
				return false
			}
		}
	}
	return true
}

func (r *fakeChatTurnRepository) Create(_ context.Context, turn *entity.ChatTurn) error {
	if turn.Id == uuid.Nil {
		turn.Id = uuid.New()
	}
	turn.CreatedAt = time.Now()
	r.store.turns = append(r.store.turns, turn)
	return nil
}

func (r *fakeChatTurnRepository) DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.DeleteAllBySessionIds(ctx, []uuid.UUID{sessionId})
}

func (r *fakeChatTurnRepository) DeleteAllBySessionIds(_ context.Context, sessionIds []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(sessionIds))
	for _, id := range sessionIds {
		drop[id] = true
	}
	kept := r.store.turns[:0]
	for _, t := range r.store.turns {
		if !drop[t.ChatSessionId] {
			kept = append(kept, t)
		}
	}
	r.store.turns = kept
	return nil
}

func (r *fakeChatTurnRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error) {
	var out []*entity.ChatTurn
	for _, t := range r.store.turns {
		if r.matches(t, specs) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeChatTurnRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	turns, _ := r.FindAll(ctx, specs...)
	return int64(len(turns)), nil
}

// Generator

type fakeGenerator struct {
	reply      string
	err        error
	lastPrompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
