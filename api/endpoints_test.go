package api_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/hello-api/api"
)

var fixedTime = time.Date(2024, time.March, 5, 14, 30, 15, 123000000, time.Local)

func fixedClock() time.Time {
	return fixedTime
}

func TestEndpoints_Hello(t *testing.T) {
	e := api.New(fixedClock)

	res := e.Hello()

	assert.Equal(t, "Hello from Spring Boot!", res.Message)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, api.Timestamp(fixedTime), res.Timestamp)
}

func TestEndpoints_Root(t *testing.T) {
	e := api.New(fixedClock)

	res := e.Root()

	assert.Equal(t, "Welcome to Spring Boot API", res.Message)
	assert.Equal(t, "1.0.0", res.Version)
	assert.Equal(t, []string{
		"/api/hello - Get hello message",
		"/api/status - Get application status",
		"/api/greet/{name} - Get personalized greeting",
	}, res.Endpoints)
}

func TestEndpoints_Root_DoesNotShareEndpointSlice(t *testing.T) {
	e := api.New(fixedClock)

	res := e.Root()
	res.Endpoints[0] = "changed"

	assert.Equal(t, "/api/hello - Get hello message", e.Root().Endpoints[0])
}

func TestEndpoints_ConcurrentUse(t *testing.T) {
	e := api.New(fixedClock)

	for i := 0; i < 8; i++ {
		t.Run(fmt.Sprintf("worker-%d", i), func(t *testing.T) {
			t.Parallel()

			for j := 0; j < 100; j++ {
				root := e.Root()
				root.Endpoints[0] = fmt.Sprintf("changed-%d", j)
				root.Endpoints = append(root.Endpoints, "extra")

				name := fmt.Sprintf("user-%d-%d", i, j)
				assert.Equal(t, "Hello, "+name+"!", e.Greet(name).Message)

				body := map[string]any{"n": j}
				assert.Equal(t, body, e.Echo(body).Received)

				assert.Equal(t, "success", e.Hello().Status)
				assert.Equal(t, "running", e.Status().Status)
			}
		})
	}

	t.Cleanup(func() {
		assert.Equal(t, "/api/hello - Get hello message", e.Root().Endpoints[0])
		assert.Len(t, e.Root().Endpoints, 3)
		assert.Len(t, api.RouteDescriptions, 3)
	})
}

func TestEndpoints_Status(t *testing.T) {
	e := api.New(fixedClock)

	res := e.Status()

	assert.Equal(t, "running", res.Status)
	assert.Equal(t, "healthy", res.Uptime)
	assert.Equal(t, api.Timestamp(fixedTime), res.Timestamp)
}

func TestEndpoints_Greet(t *testing.T) {
	e := api.New(fixedClock)

	tests := []struct {
		name     string
		expected string
	}{
		{"John", "Hello, John!"},
		{"", "Hello, !"},
		{"<script>", "Hello, <script>!"},
		{"Jürgen Müller", "Hello, Jürgen Müller!"},
		{"a/b", "Hello, a/b!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Greet(tt.name)
			assert.Equal(t, tt.expected, res.Greeting)
			assert.Equal(t, "Welcome to our Spring Boot application", res.Message)
		})
	}
}

func TestEndpoints_Echo(t *testing.T) {
	e := api.New(fixedClock)

	body := map[string]any{"test": "data"}
	res := e.Echo(body)

	assert.Equal(t, body, res.Received)
	assert.Equal(t, "Echo successful", res.Message)
	assert.Equal(t, api.Timestamp(fixedTime), res.Timestamp)
}

func TestEndpoints_New_DefaultsToWallClock(t *testing.T) {
	e := api.New(nil)

	before := time.Now()
	res := e.Hello()
	after := time.Now()

	ts := time.Time(res.Timestamp)
	assert.False(t, ts.Before(before))
	assert.False(t, ts.After(after))
}

func TestResponses_KeyOrder(t *testing.T) {
	e := api.New(fixedClock)

	tests := []struct {
		name     string
		response any
		expected string
	}{
		{
			"hello",
			e.Hello(),
			`{"message":"Hello from Spring Boot!","timestamp":"2024-03-05T14:30:15.123","status":"success"}`,
		},
		{
			"root",
			e.Root(),
			`{"message":"Welcome to Spring Boot API","version":"1.0.0","endpoints":["/api/hello - Get hello message","/api/status - Get application status","/api/greet/{name} - Get personalized greeting"]}`,
		},
		{
			"status",
			e.Status(),
			`{"status":"running","uptime":"healthy","timestamp":"2024-03-05T14:30:15.123"}`,
		},
		{
			"greet",
			e.Greet("John"),
			`{"greeting":"Hello, John!","message":"Welcome to our Spring Boot application"}`,
		},
		{
			"echo",
			e.Echo(map[string]any{"test": "data"}),
			`{"received":{"test":"data"},"timestamp":"2024-03-05T14:30:15.123","message":"Echo successful"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := json.Marshal(tt.response)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(actual))
		})
	}
}
