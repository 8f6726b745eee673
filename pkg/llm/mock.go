package llm

import "context"

// MockClient is a configurable mock for testing without network calls.
// Set the function fields to control behavior in tests.
type MockClient struct {
	// GenerateResponseFunc is called when GenerateResponse is invoked.
	// If nil, returns "" and nil error.
	GenerateResponseFunc func(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// PingFunc is called when Ping is invoked. If nil, returns nil.
	PingFunc func(ctx context.Context) error

	// Model is returned by GetModel. Defaults to "mock-model".
	Model string

	// Call tracking for verification.
	GenerateResponseCalls int
	PingCalls             int

	// Prompts records every (systemMessage, prompt) pair seen, in order.
	Prompts [][2]string
}

// NewMockClient creates a mock with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{Model: "mock-model"}
}

// GenerateResponse implements Client.
func (m *MockClient) GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error) {
	m.GenerateResponseCalls++
	m.Prompts = append(m.Prompts, [2]string{systemMessage, prompt})
	if m.GenerateResponseFunc != nil {
		return m.GenerateResponseFunc(ctx, prompt, systemMessage, temperature)
	}
	return "", nil
}

// Ping implements Client.
func (m *MockClient) Ping(ctx context.Context) error {
	m.PingCalls++
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// GetModel implements Client.
func (m *MockClient) GetModel() string {
	if m.Model == "" {
		return "mock-model"
	}
	return m.Model
}
