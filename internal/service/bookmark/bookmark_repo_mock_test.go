package bookmark

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"sync"
)

var _ bookmarkRepo = &bookmarkRepoMock{}

type bookmarkRepoMock struct {
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteFunc      func(ctx context.Context, userID uuid.UUID, kind domain.ContentKind, itemID uuid.UUID) (bool, error)
	InsertFunc      func(ctx context.Context, b domain.Bookmark) (bool, error)
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID, kind *domain.ContentKind, limit int, offset int) ([]domain.Bookmark, error)

	calls struct {
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Delete      []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Kind   domain.ContentKind
			ItemID uuid.UUID
		}
		Insert      []struct {
			Ctx context.Context
			B   domain.Bookmark
		}
		ListByUser  []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Kind   *domain.ContentKind
			Limit  int
			Offset int
		}
	}
	lockCountByUser sync.RWMutex
	lockDelete      sync.RWMutex
	lockInsert      sync.RWMutex
	lockListByUser  sync.RWMutex
}

func (mock *bookmarkRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("bookmarkRepoMock.CountByUserFunc: method is nil but bookmarkRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *bookmarkRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockCountByUser.RLock()
	calls = mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) Delete(ctx context.Context, userID uuid.UUID, kind domain.ContentKind, itemID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("bookmarkRepoMock.DeleteFunc: method is nil but bookmarkRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Kind   domain.ContentKind
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		Kind:   kind,
		ItemID: itemID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, kind, itemID)
}

func (mock *bookmarkRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Kind   domain.ContentKind
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Kind   domain.ContentKind
		ItemID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) Insert(ctx context.Context, b domain.Bookmark) (bool, error) {
	if mock.InsertFunc == nil {
		panic("bookmarkRepoMock.InsertFunc: method is nil but bookmarkRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   domain.Bookmark
	}{
		Ctx: ctx,
		B:   b,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, b)
}

func (mock *bookmarkRepoMock) InsertCalls() []struct {
	Ctx context.Context
	B   domain.Bookmark
} {
	var calls []struct {
		Ctx context.Context
		B   domain.Bookmark
	}
	mock.lockInsert.RLock()
	calls = mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, kind *domain.ContentKind, limit int, offset int) ([]domain.Bookmark, error) {
	if mock.ListByUserFunc == nil {
		panic("bookmarkRepoMock.ListByUserFunc: method is nil but bookmarkRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Kind   *domain.ContentKind
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		UserID: userID,
		Kind:   kind,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, kind, limit, offset)
}

func (mock *bookmarkRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Kind   *domain.ContentKind
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Kind   *domain.ContentKind
		Limit  int
		Offset int
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
