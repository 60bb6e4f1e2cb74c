// Package mocks provides testify mocks for the onoffice interfaces.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/donaldgifford/estatebot/internal/onoffice"
)

// NewMockListingsClient creates a new instance of MockListingsClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockListingsClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListingsClient {
	m := &MockListingsClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockListingsClient is a testify mock for the ListingsClient type
type MockListingsClient struct {
	mock.Mock
}

type MockListingsClient_Expecter struct {
	mock *mock.Mock
}

func (m *MockListingsClient) EXPECT() *MockListingsClient_Expecter {
	return &MockListingsClient_Expecter{mock: &m.Mock}
}

// Call provides a mock function for the type MockListingsClient
func (m *MockListingsClient) Call(ctx context.Context, action string, resourceType string, params onoffice.QuerySpec) (onoffice.Response, error) {
	ret := m.Called(ctx, action, resourceType, params)
	return responseAndError(ret, "Call")
}

// MockListingsClient_Call_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Call'
type MockListingsClient_Call_Call struct {
	*mock.Call
}

// Call is a helper method to define mock.On call
func (e *MockListingsClient_Expecter) Call(ctx interface{}, action interface{}, resourceType interface{}, params interface{}) *MockListingsClient_Call_Call {
	return &MockListingsClient_Call_Call{Call: e.mock.On("Call", ctx, action, resourceType, params)}
}

func (c *MockListingsClient_Call_Call) Return(resp onoffice.Response, err error) *MockListingsClient_Call_Call {
	c.Call.Return(resp, err)
	return c
}

// FetchDefault provides a mock function for the type MockListingsClient
func (m *MockListingsClient) FetchDefault(ctx context.Context) (onoffice.Response, error) {
	ret := m.Called(ctx)
	return responseAndError(ret, "FetchDefault")
}

// MockListingsClient_FetchDefault_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FetchDefault'
type MockListingsClient_FetchDefault_Call struct {
	*mock.Call
}

// FetchDefault is a helper method to define mock.On call
func (e *MockListingsClient_Expecter) FetchDefault(ctx interface{}) *MockListingsClient_FetchDefault_Call {
	return &MockListingsClient_FetchDefault_Call{Call: e.mock.On("FetchDefault", ctx)}
}

func (c *MockListingsClient_FetchDefault_Call) Return(resp onoffice.Response, err error) *MockListingsClient_FetchDefault_Call {
	c.Call.Return(resp, err)
	return c
}

// FetchAll provides a mock function for the type MockListingsClient
func (m *MockListingsClient) FetchAll(ctx context.Context) (onoffice.Response, error) {
	ret := m.Called(ctx)
	return responseAndError(ret, "FetchAll")
}

// MockListingsClient_FetchAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FetchAll'
type MockListingsClient_FetchAll_Call struct {
	*mock.Call
}

// FetchAll is a helper method to define mock.On call
func (e *MockListingsClient_Expecter) FetchAll(ctx interface{}) *MockListingsClient_FetchAll_Call {
	return &MockListingsClient_FetchAll_Call{Call: e.mock.On("FetchAll", ctx)}
}

func (c *MockListingsClient_FetchAll_Call) Return(resp onoffice.Response, err error) *MockListingsClient_FetchAll_Call {
	c.Call.Return(resp, err)
	return c
}

// Search provides a mock function for the type MockListingsClient.
// Options are applied to a QuerySpec so expectations can match on the
// resulting limit and offset instead of on function values.
func (m *MockListingsClient) Search(ctx context.Context, filter onoffice.Filter, opts ...onoffice.SearchOption) (onoffice.Response, error) {
	ret := m.Called(ctx, onoffice.SearchQuery(filter, opts...))
	return responseAndError(ret, "Search")
}

// MockListingsClient_Search_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Search'
type MockListingsClient_Search_Call struct {
	*mock.Call
}

// Search is a helper method to define mock.On call. query is matched
// against the QuerySpec the call would send.
func (e *MockListingsClient_Expecter) Search(ctx interface{}, query interface{}) *MockListingsClient_Search_Call {
	return &MockListingsClient_Search_Call{Call: e.mock.On("Search", ctx, query)}
}

func (c *MockListingsClient_Search_Call) Return(resp onoffice.Response, err error) *MockListingsClient_Search_Call {
	c.Call.Return(resp, err)
	return c
}

func responseAndError(ret mock.Arguments, method string) (onoffice.Response, error) {
	if len(ret) == 0 {
		panic("no return value specified for " + method)
	}

	var r0 onoffice.Response
	if rf, ok := ret.Get(0).(func() onoffice.Response); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(onoffice.Response)
	}

	return r0, ret.Error(1)
}

// Compile-time check.
var _ onoffice.ListingsClient = (*MockListingsClient)(nil)
