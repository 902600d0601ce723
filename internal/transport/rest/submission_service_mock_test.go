package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/submission"
	"sync"
)

var _ submissionService = &submissionServiceMock{}

type submissionServiceMock struct {
	ApproveFunc     func(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.TransitionResult, error)
	CreateFunc      func(ctx context.Context, p domain.Principal, input submission.CreateInput) (*submission.CreateResult, error)
	DeleteFunc      func(ctx context.Context, p domain.Principal, itemID uuid.UUID) error
	EditFunc        func(ctx context.Context, p domain.Principal, input submission.EditInput) (*domain.ModeratedItem, error)
	GetFunc         func(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.ModeratedItem, error)
	HistoryFunc     func(ctx context.Context, p domain.Principal, itemID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	ListFunc        func(ctx context.Context, p domain.Principal, input submission.ListInput) ([]domain.ModeratedItem, int, error)
	ListPendingFunc func(ctx context.Context, p domain.Principal, kind *domain.ItemKind, limit int, offset int) ([]domain.ModeratedItem, int, error)
	RejectFunc      func(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.TransitionResult, error)

	calls struct {
		Approve     []struct {
			Ctx    context.Context
			P      domain.Principal
			ItemID uuid.UUID
		}
		Create      []struct {
			Ctx   context.Context
			P     domain.Principal
			Input submission.CreateInput
		}
		Delete      []struct {
			Ctx    context.Context
			P      domain.Principal
			ItemID uuid.UUID
		}
		Edit        []struct {
			Ctx   context.Context
			P     domain.Principal
			Input submission.EditInput
		}
		Get         []struct {
			Ctx    context.Context
			P      domain.Principal
			ItemID uuid.UUID
		}
		History     []struct {
			Ctx    context.Context
			P      domain.Principal
			ItemID uuid.UUID
			Limit  int
		}
		List        []struct {
			Ctx   context.Context
			P     domain.Principal
			Input submission.ListInput
		}
		ListPending []struct {
			Ctx    context.Context
			P      domain.Principal
			Kind   *domain.ItemKind
			Limit  int
			Offset int
		}
		Reject      []struct {
			Ctx    context.Context
			P      domain.Principal
			ItemID uuid.UUID
		}
	}
	lockApprove     sync.RWMutex
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockEdit        sync.RWMutex
	lockGet         sync.RWMutex
	lockHistory     sync.RWMutex
	lockList        sync.RWMutex
	lockListPending sync.RWMutex
	lockReject      sync.RWMutex
}

func (mock *submissionServiceMock) Approve(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.TransitionResult, error) {
	if mock.ApproveFunc == nil {
		panic("submissionServiceMock.ApproveFunc: method is nil but submissionService.Approve was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		P      domain.Principal
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		P:      p,
		ItemID: itemID,
	}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, p, itemID)
}

func (mock *submissionServiceMock) ApproveCalls() []struct {
	Ctx    context.Context
	P      domain.Principal
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		P      domain.Principal
		ItemID uuid.UUID
	}
	mock.lockApprove.RLock()
	calls = mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Create(ctx context.Context, p domain.Principal, input submission.CreateInput) (*submission.CreateResult, error) {
	if mock.CreateFunc == nil {
		panic("submissionServiceMock.CreateFunc: method is nil but submissionService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input submission.CreateInput
	}{
		Ctx:   ctx,
		P:     p,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p, input)
}

func (mock *submissionServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input submission.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		P     domain.Principal
		Input submission.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Delete(ctx context.Context, p domain.Principal, itemID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("submissionServiceMock.DeleteFunc: method is nil but submissionService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		P      domain.Principal
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		P:      p,
		ItemID: itemID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, p, itemID)
}

func (mock *submissionServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	P      domain.Principal
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		P      domain.Principal
		ItemID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Edit(ctx context.Context, p domain.Principal, input submission.EditInput) (*domain.ModeratedItem, error) {
	if mock.EditFunc == nil {
		panic("submissionServiceMock.EditFunc: method is nil but submissionService.Edit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input submission.EditInput
	}{
		Ctx:   ctx,
		P:     p,
		Input: input,
	}
	mock.lockEdit.Lock()
	mock.calls.Edit = append(mock.calls.Edit, callInfo)
	mock.lockEdit.Unlock()
	return mock.EditFunc(ctx, p, input)
}

func (mock *submissionServiceMock) EditCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input submission.EditInput
} {
	var calls []struct {
		Ctx   context.Context
		P     domain.Principal
		Input submission.EditInput
	}
	mock.lockEdit.RLock()
	calls = mock.calls.Edit
	mock.lockEdit.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Get(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.ModeratedItem, error) {
	if mock.GetFunc == nil {
		panic("submissionServiceMock.GetFunc: method is nil but submissionService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		P      domain.Principal
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		P:      p,
		ItemID: itemID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, p, itemID)
}

func (mock *submissionServiceMock) GetCalls() []struct {
	Ctx    context.Context
	P      domain.Principal
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		P      domain.Principal
		ItemID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *submissionServiceMock) History(ctx context.Context, p domain.Principal, itemID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("submissionServiceMock.HistoryFunc: method is nil but submissionService.History was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		P      domain.Principal
		ItemID uuid.UUID
		Limit  int
	}{
		Ctx:    ctx,
		P:      p,
		ItemID: itemID,
		Limit:  limit,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, p, itemID, limit)
}

func (mock *submissionServiceMock) HistoryCalls() []struct {
	Ctx    context.Context
	P      domain.Principal
	ItemID uuid.UUID
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		P      domain.Principal
		ItemID uuid.UUID
		Limit  int
	}
	mock.lockHistory.RLock()
	calls = mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *submissionServiceMock) List(ctx context.Context, p domain.Principal, input submission.ListInput) ([]domain.ModeratedItem, int, error) {
	if mock.ListFunc == nil {
		panic("submissionServiceMock.ListFunc: method is nil but submissionService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input submission.ListInput
	}{
		Ctx:   ctx,
		P:     p,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, p, input)
}

func (mock *submissionServiceMock) ListCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input submission.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		P     domain.Principal
		Input submission.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *submissionServiceMock) ListPending(ctx context.Context, p domain.Principal, kind *domain.ItemKind, limit int, offset int) ([]domain.ModeratedItem, int, error) {
	if mock.ListPendingFunc == nil {
		panic("submissionServiceMock.ListPendingFunc: method is nil but submissionService.ListPending was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		P      domain.Principal
		Kind   *domain.ItemKind
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		P:      p,
		Kind:   kind,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx, p, kind, limit, offset)
}

func (mock *submissionServiceMock) ListPendingCalls() []struct {
	Ctx    context.Context
	P      domain.Principal
	Kind   *domain.ItemKind
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		P      domain.Principal
		Kind   *domain.ItemKind
		Limit  int
		Offset int
	}
	mock.lockListPending.RLock()
	calls = mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Reject(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.TransitionResult, error) {
	if mock.RejectFunc == nil {
		panic("submissionServiceMock.RejectFunc: method is nil but submissionService.Reject was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		P      domain.Principal
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		P:      p,
		ItemID: itemID,
	}
	mock.lockReject.Lock()
	mock.calls.Reject = append(mock.calls.Reject, callInfo)
	mock.lockReject.Unlock()
	return mock.RejectFunc(ctx, p, itemID)
}

func (mock *submissionServiceMock) RejectCalls() []struct {
	Ctx    context.Context
	P      domain.Principal
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		P      domain.Principal
		ItemID uuid.UUID
	}
	mock.lockReject.RLock()
	calls = mock.calls.Reject
	mock.lockReject.RUnlock()
	return calls
}
