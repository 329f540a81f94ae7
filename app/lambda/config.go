package lambda

import "fmt"

// ProxySource represents the source of a lambda request.
type ProxySource string

const (
	// ProxySourceApiGatewayV1 represents an API Gateway v1 request.
	ProxySourceApiGatewayV1 ProxySource = "API_GW_V1"

	// ProxySourceApiGatewayV2 represents an API Gateway v2 request.
	ProxySourceApiGatewayV2 ProxySource = "API_GW_V2"

	// ProxySourceAlb represents an Application Load Balancer request.
	ProxySourceAlb ProxySource = "ALB"
)

func (p ProxySource) String() string {
	return string(p)
}

// Validate returns an error if p is not a known proxy source.
func (p ProxySource) Validate() error {
	switch p {
	case ProxySourceApiGatewayV1, ProxySourceApiGatewayV2, ProxySourceAlb:
		return nil
	default:
		return fmt.Errorf("invalid proxy source: %s", p)
	}
}

type Config struct {
	// ProxySource is the source of the AWS Lambda event.
	ProxySource ProxySource `conf:"lambda_proxy_source"`
}

// DefaultConfig holds the defaults of Config, keyed by conf tag.
var DefaultConfig = map[string]any{
	"lambda_proxy_source": string(ProxySourceApiGatewayV2),
}
