package fixtures

import (
	"github.com/stretchr/testify/mock"
)

// APIResponse is the canned payload shape returned by MockAPIClient calls.
type APIResponse struct {
	Status string   `json:"status"`
	ID     string   `json:"id,omitempty"`
	Data   []string `json:"data,omitempty"`
}

// MockAPIClient is a stand-in for an HTTP API client. It records every call it
// receives and returns canned responses, one per method.
type MockAPIClient struct {
	mock.Mock
}

func (c *MockAPIClient) Get(path string) APIResponse {
	args := c.Called(path)
	return args.Get(0).(APIResponse)
}

func (c *MockAPIClient) Post(path string, body interface{}) APIResponse {
	args := c.Called(path, body)
	return args.Get(0).(APIResponse)
}

func (c *MockAPIClient) Put(path string, body interface{}) APIResponse {
	args := c.Called(path, body)
	return args.Get(0).(APIResponse)
}

func (c *MockAPIClient) Delete(path string) APIResponse {
	args := c.Called(path)
	return args.Get(0).(APIResponse)
}

// NewAPIClient returns a MockAPIClient preloaded with the standard canned
// responses: GET succeeds with empty data, POST reports a created entity with
// ID new_123, PUT reports updated, DELETE reports deleted.
func NewAPIClient() *MockAPIClient {
	client := &MockAPIClient{}
	client.On("Get", mock.Anything).Return(APIResponse{Status: "success", Data: []string{}})
	client.On("Post", mock.Anything, mock.Anything).Return(APIResponse{Status: "created", ID: "new_123"})
	client.On("Put", mock.Anything, mock.Anything).Return(APIResponse{Status: "updated"})
	client.On("Delete", mock.Anything).Return(APIResponse{Status: "deleted"})
	return client
}
