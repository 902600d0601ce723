package submission

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"sync"
)

var _ bookmarkRepo = &bookmarkRepoMock{}

type bookmarkRepoMock struct {
	DeleteByItemFunc func(ctx context.Context, kind domain.ContentKind, itemID uuid.UUID) (int64, error)

	calls struct {
		DeleteByItem []struct {
			Ctx    context.Context
			Kind   domain.ContentKind
			ItemID uuid.UUID
		}
	}
	lockDeleteByItem sync.RWMutex
}

func (mock *bookmarkRepoMock) DeleteByItem(ctx context.Context, kind domain.ContentKind, itemID uuid.UUID) (int64, error) {
	if mock.DeleteByItemFunc == nil {
		panic("bookmarkRepoMock.DeleteByItemFunc: method is nil but bookmarkRepo.DeleteByItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Kind   domain.ContentKind
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		Kind:   kind,
		ItemID: itemID,
	}
	mock.lockDeleteByItem.Lock()
	mock.calls.DeleteByItem = append(mock.calls.DeleteByItem, callInfo)
	mock.lockDeleteByItem.Unlock()
	return mock.DeleteByItemFunc(ctx, kind, itemID)
}

func (mock *bookmarkRepoMock) DeleteByItemCalls() []struct {
	Ctx    context.Context
	Kind   domain.ContentKind
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		Kind   domain.ContentKind
		ItemID uuid.UUID
	}
	mock.lockDeleteByItem.RLock()
	calls = mock.calls.DeleteByItem
	mock.lockDeleteByItem.RUnlock()
	return calls
}
