package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"data-analysis-agents/config"
	"data-analysis-agents/internal/artifact"
	"data-analysis-agents/internal/dataset"
	"data-analysis-agents/internal/session"
	"data-analysis-agents/pkg/llmprovider"
	"data-analysis-agents/pkg/log"
)

const transcriptFile = "analysis_session_output.txt"

// main runs an interactive analysis session against one dataset from
// the terminal. Usage: cli <dataset-path>, or `cli paste` to read
// delimited content from stdin.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <dataset-path> | cli paste")
		os.Exit(1)
	}
	path := strings.Trim(os.Args[1], `"'`)

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn", // keep the prompt loop readable
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		fmt.Println("Failed to initialize LLM providers: ", err)
		os.Exit(1)
	}

	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 90*time.Second),
	}, logger)

	artifacts, err := artifact.New(cfg.Artifact.OutputDir, cfg.Artifact.BaseURL)
	if err != nil {
		fmt.Println("Failed to initialize artifact store: ", err)
		os.Exit(1)
	}

	sessions, err := session.NewManager(session.Deps{
		LLM:         llm,
		Artifacts:   artifacts,
		Logger:      logger,
		MaxHistory:  cfg.Session.MaxHistory,
		MaxSteps:    cfg.Agent.MaxSteps,
		Temperature: cfg.Agent.Temperature,
	})
	if err != nil {
		fmt.Println("Failed to initialize session manager: ", err)
		os.Exit(1)
	}

	ds, err := loadDataset(path)
	if err != nil {
		fmt.Println("Failed to load data: ", err)
		os.Exit(1)
	}

	sess, err := sessions.Create(ds)
	if err != nil {
		fmt.Println("Failed to create session: ", err)
		os.Exit(1)
	}

	fmt.Printf("\nData loaded: %s (%d rows, %d columns)\n", ds.Name, ds.RowCount(), len(ds.Columns))
	fmt.Println("Columns:", strings.Join(ds.Columns, ", "))
	fmt.Println("\nAsk questions about your data, request charts or reports, or type 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nUser: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "exit", "quit", "bye":
			saveTranscript(sess)
			return
		}

		result, err := sess.Analyze(ctx, input, "")
		if err != nil {
			fmt.Println("An error occurred: ", err)
			continue
		}
		fmt.Printf("Agent [%s]: %s\n", result.Category, result.Response)
	}

	saveTranscript(sess)
}

// loadDataset reads the dataset from a file path, or from stdin when
// the argument is "paste" (delimited content, ended with a blank line).
func loadDataset(path string) (*dataset.Dataset, error) {
	if strings.ToLower(path) != "paste" {
		return dataset.Load(path)
	}

	fmt.Println("Paste your data below (end with an empty line):")
	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return dataset.LoadContent("pasted", []byte(strings.Join(lines, "\n")))
}

// saveTranscript writes the recorded turns to a local text file.
func saveTranscript(sess *session.Session) {
	entries := sess.History()
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString("User: " + e.Query + "\n")
		sb.WriteString("Agent: " + e.Response + "\n")
		sb.WriteString(strings.Repeat("-", 40) + "\n")
	}

	if err := os.WriteFile(transcriptFile, []byte(sb.String()), 0o644); err != nil {
		fmt.Println("Failed to save session: ", err)
		return
	}
	fmt.Println("Session saved to " + transcriptFile)
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
