package reputation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"sync"
)

var _ badgeRepo = &badgeRepoMock{}

type badgeRepoMock struct {
	GrantEligibleFunc func(ctx context.Context, userID uuid.UUID, points int64) ([]domain.Badge, error)
	ListFunc          func(ctx context.Context) ([]domain.Badge, error)
	ListForUserFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.UserBadge, error)
	UpsertFunc        func(ctx context.Context, b domain.Badge) (*domain.Badge, error)

	calls struct {
		GrantEligible []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Points int64
		}
		List          []struct {
			Ctx context.Context
		}
		ListForUser   []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert        []struct {
			Ctx context.Context
			B   domain.Badge
		}
	}
	lockGrantEligible sync.RWMutex
	lockList          sync.RWMutex
	lockListForUser   sync.RWMutex
	lockUpsert        sync.RWMutex
}

func (mock *badgeRepoMock) GrantEligible(ctx context.Context, userID uuid.UUID, points int64) ([]domain.Badge, error) {
	if mock.GrantEligibleFunc == nil {
		panic("badgeRepoMock.GrantEligibleFunc: method is nil but badgeRepo.GrantEligible was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Points int64
	}{
		Ctx:    ctx,
		UserID: userID,
		Points: points,
	}
	mock.lockGrantEligible.Lock()
	mock.calls.GrantEligible = append(mock.calls.GrantEligible, callInfo)
	mock.lockGrantEligible.Unlock()
	return mock.GrantEligibleFunc(ctx, userID, points)
}

func (mock *badgeRepoMock) GrantEligibleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Points int64
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Points int64
	}
	mock.lockGrantEligible.RLock()
	calls = mock.calls.GrantEligible
	mock.lockGrantEligible.RUnlock()
	return calls
}

func (mock *badgeRepoMock) List(ctx context.Context) ([]domain.Badge, error) {
	if mock.ListFunc == nil {
		panic("badgeRepoMock.ListFunc: method is nil but badgeRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *badgeRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *badgeRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserBadge, error) {
	if mock.ListForUserFunc == nil {
		panic("badgeRepoMock.ListForUserFunc: method is nil but badgeRepo.ListForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID)
}

func (mock *badgeRepoMock) ListForUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListForUser.RLock()
	calls = mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

func (mock *badgeRepoMock) Upsert(ctx context.Context, b domain.Badge) (*domain.Badge, error) {
	if mock.UpsertFunc == nil {
		panic("badgeRepoMock.UpsertFunc: method is nil but badgeRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   domain.Badge
	}{
		Ctx: ctx,
		B:   b,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, b)
}

func (mock *badgeRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	B   domain.Badge
} {
	var calls []struct {
		Ctx context.Context
		B   domain.Badge
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
