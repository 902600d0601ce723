package linkgraph

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"sync"
)

var _ referenceRepo = &referenceRepoMock{}

type referenceRepoMock struct {
	ExistsFunc func(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (bool, error)
	GetFunc    func(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (*domain.ReferenceItem, error)

	calls struct {
		Exists []struct {
			Ctx  context.Context
			Kind domain.ReferenceKind
			Id   uuid.UUID
		}
		Get    []struct {
			Ctx  context.Context
			Kind domain.ReferenceKind
			Id   uuid.UUID
		}
	}
	lockExists sync.RWMutex
	lockGet    sync.RWMutex
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

func (mock *referenceRepoMock) Get(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (*domain.ReferenceItem, error) {
	if mock.GetFunc == nil {
		panic("referenceRepoMock.GetFunc: method is nil but referenceRepo.Get was just called")
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
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, kind, id)
}

func (mock *referenceRepoMock) GetCalls() []struct {
	Ctx  context.Context
	Kind domain.ReferenceKind
	Id   uuid.UUID
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.ReferenceKind
		Id   uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
