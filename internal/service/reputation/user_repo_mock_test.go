package reputation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AddPointsFunc   func(ctx context.Context, id uuid.UUID, delta int64) (int64, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	TopByPointsFunc func(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	calls struct {
		AddPoints   []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Delta int64
		}
		GetByID     []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		TopByPoints []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockAddPoints   sync.RWMutex
	lockGetByID     sync.RWMutex
	lockTopByPoints sync.RWMutex
}

func (mock *userRepoMock) AddPoints(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	if mock.AddPointsFunc == nil {
		panic("userRepoMock.AddPointsFunc: method is nil but userRepo.AddPoints was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Delta int64
	}{
		Ctx:   ctx,
		Id:    id,
		Delta: delta,
	}
	mock.lockAddPoints.Lock()
	mock.calls.AddPoints = append(mock.calls.AddPoints, callInfo)
	mock.lockAddPoints.Unlock()
	return mock.AddPointsFunc(ctx, id, delta)
}

func (mock *userRepoMock) AddPointsCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Delta int64
} {
	var calls []struct {
		Ctx   context.Context
		Id    uuid.UUID
		Delta int64
	}
	mock.lockAddPoints.RLock()
	calls = mock.calls.AddPoints
	mock.lockAddPoints.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) TopByPoints(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if mock.TopByPointsFunc == nil {
		panic("userRepoMock.TopByPointsFunc: method is nil but userRepo.TopByPoints was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockTopByPoints.Lock()
	mock.calls.TopByPoints = append(mock.calls.TopByPoints, callInfo)
	mock.lockTopByPoints.Unlock()
	return mock.TopByPointsFunc(ctx, limit)
}

func (mock *userRepoMock) TopByPointsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockTopByPoints.RLock()
	calls = mock.calls.TopByPoints
	mock.lockTopByPoints.RUnlock()
	return calls
}
