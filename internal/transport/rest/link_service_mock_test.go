package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/linkgraph"
	"sync"
)

var _ linkService = &linkServiceMock{}

type linkServiceMock struct {
	LinkFunc      func(ctx context.Context, p domain.Principal, input linkgraph.LinkInput) (*domain.LinkResult, error)
	ListLinksFunc func(ctx context.Context, p domain.Principal, eventID uuid.UUID) ([]domain.ContentLink, error)
	ReferenceFunc func(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (*domain.ReferenceItem, error)
	UnlinkFunc    func(ctx context.Context, p domain.Principal, linkID uuid.UUID) error

	calls struct {
		Link      []struct {
			Ctx   context.Context
			P     domain.Principal
			Input linkgraph.LinkInput
		}
		ListLinks []struct {
			Ctx     context.Context
			P       domain.Principal
			EventID uuid.UUID
		}
		Reference []struct {
			Ctx  context.Context
			Kind domain.ReferenceKind
			Id   uuid.UUID
		}
		Unlink    []struct {
			Ctx    context.Context
			P      domain.Principal
			LinkID uuid.UUID
		}
	}
	lockLink      sync.RWMutex
	lockListLinks sync.RWMutex
	lockReference sync.RWMutex
	lockUnlink    sync.RWMutex
}

func (mock *linkServiceMock) Link(ctx context.Context, p domain.Principal, input linkgraph.LinkInput) (*domain.LinkResult, error) {
	if mock.LinkFunc == nil {
		panic("linkServiceMock.LinkFunc: method is nil but linkService.Link was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input linkgraph.LinkInput
	}{
		Ctx:   ctx,
		P:     p,
		Input: input,
	}
	mock.lockLink.Lock()
	mock.calls.Link = append(mock.calls.Link, callInfo)
	mock.lockLink.Unlock()
	return mock.LinkFunc(ctx, p, input)
}

func (mock *linkServiceMock) LinkCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input linkgraph.LinkInput
} {
	var calls []struct {
		Ctx   context.Context
		P     domain.Principal
		Input linkgraph.LinkInput
	}
	mock.lockLink.RLock()
	calls = mock.calls.Link
	mock.lockLink.RUnlock()
	return calls
}

func (mock *linkServiceMock) ListLinks(ctx context.Context, p domain.Principal, eventID uuid.UUID) ([]domain.ContentLink, error) {
	if mock.ListLinksFunc == nil {
		panic("linkServiceMock.ListLinksFunc: method is nil but linkService.ListLinks was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		P       domain.Principal
		EventID uuid.UUID
	}{
		Ctx:     ctx,
		P:       p,
		EventID: eventID,
	}
	mock.lockListLinks.Lock()
	mock.calls.ListLinks = append(mock.calls.ListLinks, callInfo)
	mock.lockListLinks.Unlock()
	return mock.ListLinksFunc(ctx, p, eventID)
}

func (mock *linkServiceMock) ListLinksCalls() []struct {
	Ctx     context.Context
	P       domain.Principal
	EventID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		P       domain.Principal
		EventID uuid.UUID
	}
	mock.lockListLinks.RLock()
	calls = mock.calls.ListLinks
	mock.lockListLinks.RUnlock()
	return calls
}

func (mock *linkServiceMock) Reference(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (*domain.ReferenceItem, error) {
	if mock.ReferenceFunc == nil {
		panic("linkServiceMock.ReferenceFunc: method is nil but linkService.Reference was just called")
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
	mock.lockReference.Lock()
	mock.calls.Reference = append(mock.calls.Reference, callInfo)
	mock.lockReference.Unlock()
	return mock.ReferenceFunc(ctx, kind, id)
}

func (mock *linkServiceMock) ReferenceCalls() []struct {
	Ctx  context.Context
	Kind domain.ReferenceKind
	Id   uuid.UUID
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.ReferenceKind
		Id   uuid.UUID
	}
	mock.lockReference.RLock()
	calls = mock.calls.Reference
	mock.lockReference.RUnlock()
	return calls
}

func (mock *linkServiceMock) Unlink(ctx context.Context, p domain.Principal, linkID uuid.UUID) error {
	if mock.UnlinkFunc == nil {
		panic("linkServiceMock.UnlinkFunc: method is nil but linkService.Unlink was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		P      domain.Principal
		LinkID uuid.UUID
	}{
		Ctx:    ctx,
		P:      p,
		LinkID: linkID,
	}
	mock.lockUnlink.Lock()
	mock.calls.Unlink = append(mock.calls.Unlink, callInfo)
	mock.lockUnlink.Unlock()
	return mock.UnlinkFunc(ctx, p, linkID)
}

func (mock *linkServiceMock) UnlinkCalls() []struct {
	Ctx    context.Context
	P      domain.Principal
	LinkID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		P      domain.Principal
		LinkID uuid.UUID
	}
	mock.lockUnlink.RLock()
	calls = mock.calls.Unlink
	mock.lockUnlink.RUnlock()
	return calls
}
