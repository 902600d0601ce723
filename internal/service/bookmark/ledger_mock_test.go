package bookmark

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"sync"
)

var _ ledger = &ledgerMock{}

type ledgerMock struct {
	AwardFunc   func(ctx context.Context, userID uuid.UUID, delta int64, reason domain.AwardReason, subjectID uuid.UUID) (*domain.AwardOutcome, error)
	PublishFunc func(ctx context.Context, reason domain.AwardReason, outcome *domain.AwardOutcome)

	calls struct {
		Award   []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			Delta     int64
			Reason    domain.AwardReason
			SubjectID uuid.UUID
		}
		Publish []struct {
			Ctx     context.Context
			Reason  domain.AwardReason
			Outcome *domain.AwardOutcome
		}
	}
	lockAward   sync.RWMutex
	lockPublish sync.RWMutex
}

func (mock *ledgerMock) Award(ctx context.Context, userID uuid.UUID, delta int64, reason domain.AwardReason, subjectID uuid.UUID) (*domain.AwardOutcome, error) {
	if mock.AwardFunc == nil {
		panic("ledgerMock.AwardFunc: method is nil but ledger.Award was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Delta     int64
		Reason    domain.AwardReason
		SubjectID uuid.UUID
	}{
		Ctx:       ctx,
		UserID:    userID,
		Delta:     delta,
		Reason:    reason,
		SubjectID: subjectID,
	}
	mock.lockAward.Lock()
	mock.calls.Award = append(mock.calls.Award, callInfo)
	mock.lockAward.Unlock()
	return mock.AwardFunc(ctx, userID, delta, reason, subjectID)
}

func (mock *ledgerMock) AwardCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	Delta     int64
	Reason    domain.AwardReason
	SubjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Delta     int64
		Reason    domain.AwardReason
		SubjectID uuid.UUID
	}
	mock.lockAward.RLock()
	calls = mock.calls.Award
	mock.lockAward.RUnlock()
	return calls
}

func (mock *ledgerMock) Publish(ctx context.Context, reason domain.AwardReason, outcome *domain.AwardOutcome) {
	if mock.PublishFunc == nil {
		panic("ledgerMock.PublishFunc: method is nil but ledger.Publish was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Reason  domain.AwardReason
		Outcome *domain.AwardOutcome
	}{
		Ctx:     ctx,
		Reason:  reason,
		Outcome: outcome,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(ctx, reason, outcome)
}

func (mock *ledgerMock) PublishCalls() []struct {
	Ctx     context.Context
	Reason  domain.AwardReason
	Outcome *domain.AwardOutcome
} {
	var calls []struct {
		Ctx     context.Context
		Reason  domain.AwardReason
		Outcome *domain.AwardOutcome
	}
	mock.lockPublish.RLock()
	calls = mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
