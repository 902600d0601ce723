package bookmark

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"sync"
)

var _ referenceRepo = &referenceRepoMock{}

type referenceRepoMock struct {
	ExistsFunc func(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx  context.Context
			Kind domain.ReferenceKind
			Id   uuid.UUID
		}
	}
	lockExists sync.RWMutex
}

func (mock *referenceRepoMock) Exists(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("referenceRepoMock.ExistsFunc: method is nil but referenceRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.ReferenceKind
		Id   uuid.UUID
	}{
		Ctx:  ctx,
		Kind: kind,
		Id:   id,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, kind, id)
}

func (mock *referenceRepoMock) ExistsCalls() []struct {
	Ctx  context.Context
	Kind domain.ReferenceKind
	Id   uuid.UUID
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.ReferenceKind
		Id   uuid.UUID
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}
