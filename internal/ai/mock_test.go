package ai

import (
	"context"
	"errors"
)

// implements Exchanger for testing
type mockExchanger struct {
	exchangeFunc   func(ctx context.Context, handle, directive, userText string, sel ModelSelector) (string, error)
	multimodalFunc func(ctx context.Context, handle, directive, userText string, sel ModelSelector, modalities []string) (string, []Attachment, error)
}

func (m *mockExchanger) Exchange(ctx context.Context, handle, directive, userText string, sel ModelSelector) (string, error) {
	if m.exchangeFunc != nil {
		return m.exchangeFunc(ctx, handle, directive, userText, sel)
	}
	return "", errors.New("no exchange configured")
}

func (m *mockExchanger) ExchangeMultimodal(ctx context.Context, handle, directive, userText string, sel ModelSelector, modalities []string) (string, []Attachment, error) {
	if m.multimodalFunc != nil {
		return m.multimodalFunc(ctx, handle, directive, userText, sel, modalities)
	}
	return "", nil, errors.New("no multimodal exchange configured")
}

// failingExchanger simulates a gateway whose every call fails.
func failingExchanger() *mockExchanger {
	return &mockExchanger{
		exchangeFunc: func(_ context.Context, _, _, _ string, sel ModelSelector) (string, error) {
			return "", &GatewayError{Provider: sel.Provider, Err: errors.New("provider unreachable")}
		},
		multimodalFunc: func(_ context.Context, _, _, _ string, sel ModelSelector, _ []string) (string, []Attachment, error) {
			return "", nil, &GatewayError{Provider: sel.Provider, Err: errors.New("provider unreachable")}
		},
	}
}
