// Package summary asks an LLM for a natural-language description of how the
// open documents differ. It is a thin collaborator: one request per
// user-initiated action, the newest result wins, and a failure is published
// as an empty summary indistinguishable from "no summary yet".
package summary

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"codediff/internal/config"
	"codediff/internal/domain"
	"codediff/internal/eventbus"
)

const requestTimeout = 60 * time.Second

const systemPrompt = "You compare text documents. The first document is the base; " +
	"describe briefly how each later document differs from it. Plain prose, no markdown."

// Client is the LLM call the service depends on. Production uses the OpenAI
// chat completions API; tests substitute a stub.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service produces difference summaries on request events
type Service struct {
	bus    eventbus.EventBus
	client Client

	mu         sync.Mutex
	generation int // newest request wins; stale completions are dropped
}

// NewService creates the summary service and subscribes it to request events
func NewService(bus eventbus.EventBus, cfg config.Summary) *Service {
	s := &Service{
		bus:    bus,
		client: newOpenAIClient(cfg),
	}

	bus.Subscribe(eventbus.EventSummaryRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SummaryRequestedEvent); ok {
			s.summarize(event.Docs)
		}
	})

	return s
}

// NewServiceWithClient is NewService with an injected LLM client, for tests.
func NewServiceWithClient(bus eventbus.EventBus, client Client) *Service {
	s := &Service{bus: bus, client: client}

	bus.Subscribe(eventbus.EventSummaryRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SummaryRequestedEvent); ok {
			s.summarize(event.Docs)
		}
	})

	return s
}

// summarize runs one request. The bus already delivers events off the UI
// goroutine, so the API call happens inline here.
func (s *Service) summarize(docs []domain.Document) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	text, err := s.client.Complete(ctx, BuildPrompt(docs))
	if err != nil {
		// Absorbed: the UI sees an empty summary, same as "no summary yet"
		log.Printf("Summary request failed: %v", err)
		text = ""
	}

	s.mu.Lock()
	stale := gen != s.generation
	s.mu.Unlock()
	if stale {
		log.Printf("Dropping stale summary result (generation %d)", gen)
		return
	}

	s.bus.Publish(eventbus.SummaryCompletedEvent{Summary: text})
}

// BuildPrompt flattens the documents into the user prompt, base first.
func BuildPrompt(docs []domain.Document) string {
	var sb strings.Builder
	for i, doc := range docs {
		if i == 0 {
			fmt.Fprintf(&sb, "Base document %q:\n", doc.Title)
		} else {
			fmt.Fprintf(&sb, "\nDocument %d, %q:\n", i+1, doc.Title)
		}
		sb.WriteString(doc.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// openaiClient is the production Client over the OpenAI chat completions API
type openaiClient struct {
	client openai.Client
	model  string
}

func newOpenAIClient(cfg config.Summary) Client {
	var opts []option.RequestOption
	if key := os.Getenv(cfg.APIKeyEnv); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	return &openaiClient{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (c *openaiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("summary: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summary: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
