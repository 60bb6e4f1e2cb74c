// Package mocks provides testify mocks for the chat interfaces.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/donaldgifford/estatebot/pkg/chat"
)

// NewMockLLMBackend creates a new instance of MockLLMBackend. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockLLMBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLLMBackend {
	m := &MockLLMBackend{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockLLMBackend is a mock type for the LLMBackend type
type MockLLMBackend struct {
	mock.Mock
}

type MockLLMBackend_Expecter struct {
	mock *mock.Mock
}

func (m *MockLLMBackend) EXPECT() *MockLLMBackend_Expecter {
	return &MockLLMBackend_Expecter{mock: &m.Mock}
}

// Generate provides a mock function for the type MockLLMBackend
func (m *MockLLMBackend) Generate(ctx context.Context, req chat.GenerateRequest) (chat.GenerateResponse, error) {
	ret := m.Called(ctx, req)
	if len(ret) == 0 {
		panic("no return value specified for Generate")
	}
	return ret.Get(0).(chat.GenerateResponse), ret.Error(1)
}

// MockLLMBackend_Generate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Generate'
type MockLLMBackend_Generate_Call struct {
	*mock.Call
}

// Generate is a helper method to define mock.On call
func (e *MockLLMBackend_Expecter) Generate(ctx interface{}, req interface{}) *MockLLMBackend_Generate_Call {
	return &MockLLMBackend_Generate_Call{Call: e.mock.On("Generate", ctx, req)}
}

func (c *MockLLMBackend_Generate_Call) Run(run func(ctx context.Context, req chat.GenerateRequest)) *MockLLMBackend_Generate_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(chat.GenerateRequest))
	})
	return c
}

func (c *MockLLMBackend_Generate_Call) Return(resp chat.GenerateResponse, err error) *MockLLMBackend_Generate_Call {
	c.Call.Return(resp, err)
	return c
}

// Name provides a mock function for the type MockLLMBackend
func (m *MockLLMBackend) Name() string {
	ret := m.Called()
	if len(ret) == 0 {
		panic("no return value specified for Name")
	}
	return ret.String(0)
}

// MockLLMBackend_Name_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Name'
type MockLLMBackend_Name_Call struct {
	*mock.Call
}

// Name is a helper method to define mock.On call
func (e *MockLLMBackend_Expecter) Name() *MockLLMBackend_Name_Call {
	return &MockLLMBackend_Name_Call{Call: e.mock.On("Name")}
}

func (c *MockLLMBackend_Name_Call) Return(name string) *MockLLMBackend_Name_Call {
	c.Call.Return(name)
	return c
}

// NewMockCompleter creates a new instance of MockCompleter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCompleter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCompleter {
	m := &MockCompleter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCompleter is a mock type for the Completer type
type MockCompleter struct {
	mock.Mock
}

type MockCompleter_Expecter struct {
	mock *mock.Mock
}

func (m *MockCompleter) EXPECT() *MockCompleter_Expecter {
	return &MockCompleter_Expecter{mock: &m.Mock}
}

// Complete provides a mock function for the type MockCompleter
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	ret := m.Called(ctx, prompt)
	if len(ret) == 0 {
		panic("no return value specified for Complete")
	}
	return ret.String(0), ret.Error(1)
}

// MockCompleter_Complete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Complete'
type MockCompleter_Complete_Call struct {
	*mock.Call
}

// Complete is a helper method to define mock.On call
func (e *MockCompleter_Expecter) Complete(ctx interface{}, prompt interface{}) *MockCompleter_Complete_Call {
	return &MockCompleter_Complete_Call{Call: e.mock.On("Complete", ctx, prompt)}
}

func (c *MockCompleter_Complete_Call) Return(text string, err error) *MockCompleter_Complete_Call {
	c.Call.Return(text, err)
	return c
}

var (
	_ chat.LLMBackend = (*MockLLMBackend)(nil)
	_ chat.Completer  = (*MockCompleter)(nil)
)
