// Package assistant registers the chat front end as a Google Cloud Function.
package assistant

import (
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/pep299/genai-finance-assistant/internal/transport/server"
)

// DefaultFunctionTarget is used when FUNCTION_TARGET is not set.
const DefaultFunctionTarget = "FinanceAssistant"

func init() {
	functions.HTTP(FunctionTarget(), server.HandleRequest)
}

// FunctionTarget returns the name the HTTP function is registered under.
func FunctionTarget() string {
	if target := os.Getenv("FUNCTION_TARGET"); target != "" {
		return target
	}
	return DefaultFunctionTarget
}
