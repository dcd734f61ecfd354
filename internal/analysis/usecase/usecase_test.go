package usecase_test

import (
	"context"
	"errors"
	"testing"

	"data-analysis-agents/internal/analysis"
	"data-analysis-agents/internal/analysis/usecase"
	"data-analysis-agents/internal/artifact"
	"data-analysis-agents/internal/session"
	"data-analysis-agents/pkg/llmprovider"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubLLM struct {
	response string
}

func (s *stubLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: s.response}},
		},
	}, nil
}

func newUseCase(t *testing.T, llmResponse string) analysis.UseCase {
	t.Helper()

	store, err := artifact.New(t.TempDir(), "")
	if err != nil {
		t.Fatalf("artifact store: %v", err)
	}

	sessions, err := session.NewManager(session.Deps{
		LLM:       &stubLLM{response: llmResponse},
		Artifacts: store,
		Logger:    &mockLogger{},
	})
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}

	uc, err := usecase.New(&mockLogger{}, sessions, store)
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	return uc
}

const uploadCSV = "region,sales\nNorth,10\nSouth,20\n"

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Upload Creates Session", func(t *testing.T) {
		uc := newUseCase(t, "the total is 30")

		out, err := uc.Analyze(ctx, analysis.AnalyzeInput{
			Prompt:      "what is the total?",
			FileName:    "sales.csv",
			FileContent: []byte(uploadCSV),
		})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if out.SessionID == "" {
			t.Error("expected session ID")
		}
		if out.Response != "the total is 30" {
			t.Errorf("unexpected response: %s", out.Response)
		}
	})

	t.Run("Existing Session Reused", func(t *testing.T) {
		uc := newUseCase(t, "answer")

		first, err := uc.Analyze(ctx, analysis.AnalyzeInput{
			Prompt:      "q1",
			FileName:    "sales.csv",
			FileContent: []byte(uploadCSV),
		})
		if err != nil {
			t.Fatalf("first Analyze: %v", err)
		}

		second, err := uc.Analyze(ctx, analysis.AnalyzeInput{
			Prompt:    "q2",
			SessionID: first.SessionID,
		})
		if err != nil {
			t.Fatalf("second Analyze: %v", err)
		}
		if second.SessionID != first.SessionID {
			t.Error("expected same session")
		}

		history, err := uc.History(ctx, first.SessionID)
		if err != nil {
			t.Fatalf("History: %v", err)
		}
		if len(history) != 2 {
			t.Errorf("expected 2 turns, got %d", len(history))
		}
	})

	t.Run("Prompt Required", func(t *testing.T) {
		uc := newUseCase(t, "x")
		_, err := uc.Analyze(ctx, analysis.AnalyzeInput{FileName: "a.csv", FileContent: []byte(uploadCSV)})
		if !errors.Is(err, analysis.ErrPromptRequired) {
			t.Errorf("expected ErrPromptRequired, got %v", err)
		}
	})

	t.Run("Dataset Required", func(t *testing.T) {
		uc := newUseCase(t, "x")
		_, err := uc.Analyze(ctx, analysis.AnalyzeInput{Prompt: "q"})
		if !errors.Is(err, analysis.ErrNoDataset) {
			t.Errorf("expected ErrNoDataset, got %v", err)
		}
	})

	t.Run("Unknown Session", func(t *testing.T) {
		uc := newUseCase(t, "x")
		_, err := uc.Analyze(ctx, analysis.AnalyzeInput{Prompt: "q", SessionID: "missing"})
		if !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Artifact URL Extraction", func(t *testing.T) {
		uc := newUseCase(t, "See /download/chart_abc.html and /download/report_def.html plus /download/chart_abc.html again.")

		out, err := uc.Analyze(ctx, analysis.AnalyzeInput{
			Prompt:      "chart and report please",
			FileName:    "sales.csv",
			FileContent: []byte(uploadCSV),
		})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if len(out.Artifacts.Images) != 1 || out.Artifacts.Images[0] != "/download/chart_abc.html" {
			t.Errorf("unexpected images: %v", out.Artifacts.Images)
		}
		if len(out.Artifacts.Reports) != 1 {
			t.Errorf("unexpected reports: %v", out.Artifacts.Reports)
		}
	})
}

func TestSessionOperations(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, "answer")

	out, err := uc.Analyze(ctx, analysis.AnalyzeInput{
		Prompt:      "q1",
		FileName:    "sales.csv",
		FileContent: []byte(uploadCSV),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	id := out.SessionID

	t.Run("AgentInfo", func(t *testing.T) {
		info, err := uc.AgentInfo(ctx, id)
		if err != nil {
			t.Fatalf("AgentInfo: %v", err)
		}
		if info.DatasetName != "sales.csv" {
			t.Errorf("unexpected dataset name: %s", info.DatasetName)
		}
		if len(info.Agents) != 4 {
			t.Fatalf("expected 4 agents, got %d", len(info.Agents))
		}
		if info.Agents[0].Category != "ppt" {
			t.Errorf("expected ppt first, got %s", info.Agents[0].Category)
		}
		if info.Conversation.HistoryCount != 1 {
			t.Errorf("expected 1 recorded turn, got %d", info.Conversation.HistoryCount)
		}
	})

	t.Run("ClearCache", func(t *testing.T) {
		if err := uc.ClearCache(ctx, id); err != nil {
			t.Fatalf("ClearCache: %v", err)
		}
		info, _ := uc.AgentInfo(ctx, id)
		if info.Conversation.CacheCount != 0 {
			t.Errorf("expected empty cache, got %d", info.Conversation.CacheCount)
		}
		if info.Conversation.HistoryCount == 0 {
			t.Error("history must survive ClearCache")
		}
	})

	t.Run("ClearHistory", func(t *testing.T) {
		if err := uc.ClearHistory(ctx, id); err != nil {
			t.Fatalf("ClearHistory: %v", err)
		}
		history, _ := uc.History(ctx, id)
		if len(history) != 0 {
			t.Errorf("expected empty history, got %d entries", len(history))
		}
	})

	t.Run("Unknown Session Errors", func(t *testing.T) {
		if err := uc.ClearCache(ctx, "missing"); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestResolveDownload(t *testing.T) {
	uc := newUseCase(t, "x")
	if _, err := uc.ResolveDownload("nope.html"); err == nil {
		t.Error("expected error for unknown filename")
	}
}
