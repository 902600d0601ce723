package account

import (
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"sync"
	"time"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	AccessTTLFunc           func() time.Duration
	GenerateAccessTokenFunc func(p domain.Principal) (string, error)
	ValidateAccessTokenFunc func(token string) (domain.Principal, error)

	calls struct {
		AccessTTL           []struct{}
		GenerateAccessToken []struct {
			P domain.Principal
		}
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockAccessTTL           sync.RWMutex
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *tokenManagerMock) AccessTTL() time.Duration {
	if mock.AccessTTLFunc == nil {
		panic("tokenManagerMock.AccessTTLFunc: method is nil but tokenManager.AccessTTL was just called")
	}
	mock.lockAccessTTL.Lock()
	mock.calls.AccessTTL = append(mock.calls.AccessTTL, struct{}{})
	mock.lockAccessTTL.Unlock()
	return mock.AccessTTLFunc()
}

func (mock *tokenManagerMock) AccessTTLCalls() []struct{} {
	var calls []struct{}
	mock.lockAccessTTL.RLock()
	calls = mock.calls.AccessTTL
	mock.lockAccessTTL.RUnlock()
	return calls
}

func (mock *tokenManagerMock) GenerateAccessToken(p domain.Principal) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenManagerMock.GenerateAccessTokenFunc: method is nil but tokenManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		P domain.Principal
	}{
		P: p,
	}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(p)
}

func (mock *tokenManagerMock) GenerateAccessTokenCalls() []struct {
	P domain.Principal
} {
	var calls []struct {
		P domain.Principal
	}
	mock.lockGenerateAccessToken.RLock()
	calls = mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *tokenManagerMock) ValidateAccessToken(token string) (domain.Principal, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenManagerMock.ValidateAccessTokenFunc: method is nil but tokenManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockValidateAccessToken.RLock()
	calls = mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}
