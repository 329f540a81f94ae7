package api

import "time"

const (
	// Version is the version reported by the root endpoint.
	Version = "1.0.0"

	helloMessage   = "Hello from Spring Boot!"
	welcomeMessage = "Welcome to Spring Boot API"
	greetMessage   = "Welcome to our Spring Boot application"
	echoMessage    = "Echo successful"
)

// RouteDescriptions lists the routes advertised by the root endpoint.
var RouteDescriptions = []string{
	"/api/hello - Get hello message",
	"/api/status - Get application status",
	"/api/greet/{name} - Get personalized greeting",
}

// HelloResponse is returned by GET /api/hello.
type HelloResponse struct {
	Message   string    `json:"message"`
	Timestamp Timestamp `json:"timestamp"`
	Status    string    `json:"status"`
}

// RootResponse is returned by GET /api/.
type RootResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	Status    string    `json:"status"`
	Uptime    string    `json:"uptime"`
	Timestamp Timestamp `json:"timestamp"`
}

// GreetResponse is returned by GET /api/greet/{name}.
type GreetResponse struct {
	Greeting string `json:"greeting"`
	Message  string `json:"message"`
}

// EchoResponse is returned by POST /api/echo.
type EchoResponse struct {
	Received  map[string]any `json:"received"`
	Timestamp Timestamp      `json:"timestamp"`
	Message   string         `json:"message"`
}

// Endpoints builds the response payloads of the API. It holds no mutable
// state and is safe for concurrent use.
type Endpoints struct {
	now Clock
}

// New creates the endpoint set. A nil clock defaults to time.Now.
func New(clock Clock) *Endpoints {
	if clock == nil {
		clock = time.Now
	}

	return &Endpoints{now: clock}
}

func (e *Endpoints) Hello() HelloResponse {
	return HelloResponse{
		Message:   helloMessage,
		Timestamp: e.timestamp(),
		Status:    "success",
	}
}

func (e *Endpoints) Root() RootResponse {
	endpoints := make([]string, len(RouteDescriptions))
	copy(endpoints, RouteDescriptions)

	return RootResponse{
		Message:   welcomeMessage,
		Version:   Version,
		Endpoints: endpoints,
	}
}

func (e *Endpoints) Status() StatusResponse {
	return StatusResponse{
		Status: "running",
		// a fixed literal, not a measured duration
		Uptime:    "healthy",
		Timestamp: e.timestamp(),
	}
}

// Greet interpolates name as-is; it is neither validated nor escaped.
func (e *Endpoints) Greet(name string) GreetResponse {
	return GreetResponse{
		Greeting: "Hello, " + name + "!",
		Message:  greetMessage,
	}
}

func (e *Endpoints) Echo(body map[string]any) EchoResponse {
	return EchoResponse{
		Received:  body,
		Timestamp: e.timestamp(),
		Message:   echoMessage,
	}
}

func (e *Endpoints) timestamp() Timestamp {
	return Timestamp(e.now())
}
