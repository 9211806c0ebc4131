package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pep299/genai-finance-assistant/internal/application"
	"github.com/pep299/genai-finance-assistant/internal/config"
	"github.com/pep299/genai-finance-assistant/internal/logger"
	"github.com/pep299/genai-finance-assistant/internal/transport/response"
)

func main() {
	asJSON := flag.Bool("json", false, "Print the /ask JSON payload instead of the bare response")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-json] <question>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	query := strings.Join(flag.Args(), " ")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Console logs on stderr keep stdout for the answer.
	zl, err := logger.New(cfg.LogLevel, "console")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	app := application.New(cfg, zl)
	defer app.Close()

	answer := app.Assistant.Ask(context.Background(), query)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(response.Answer{Response: answer.Response}); err != nil {
			log.Fatalf("Encoding answer: %v", err)
		}
		return
	}
	fmt.Println(answer.Response)
}
