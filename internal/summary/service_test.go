package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"codediff/internal/domain"
	"codediff/internal/eventbus"
)

type stubClient struct {
	reply string
	err   error
	calls chan string
}

func (c *stubClient) Complete(_ context.Context, prompt string) (string, error) {
	if c.calls != nil {
		c.calls <- prompt
	}
	return c.reply, c.err
}

func waitForSummary(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for SummaryCompletedEvent")
		return ""
	}
}

func subscribeSummaries(bus eventbus.EventBus) <-chan string {
	ch := make(chan string, 4)
	bus.Subscribe(eventbus.EventSummaryCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SummaryCompletedEvent); ok {
			ch <- event.Summary
		}
	})
	return ch
}

func TestSummaryRequestPublishesResult(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	NewServiceWithClient(bus, &stubClient{reply: "the variant adds a line"})
	summaries := subscribeSummaries(bus)

	bus.Publish(eventbus.SummaryRequestedEvent{Docs: []domain.Document{
		{Title: "base.txt", Text: "a"},
		{Title: "v.txt", Text: "a\nb"},
	}})

	require.Equal(t, "the variant adds a line", waitForSummary(t, summaries))
}

func TestSummaryFailureIsAbsorbed(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	NewServiceWithClient(bus, &stubClient{err: errors.New("boom")})
	summaries := subscribeSummaries(bus)

	bus.Publish(eventbus.SummaryRequestedEvent{Docs: []domain.Document{{Title: "a"}, {Title: "b"}}})

	require.Equal(t, "", waitForSummary(t, summaries), "failure looks like no summary")
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt([]domain.Document{
		{Title: "base.txt", Text: "one"},
		{Title: "left.txt", Text: "two"},
	})

	require.Contains(t, prompt, `Base document "base.txt"`)
	require.Contains(t, prompt, `Document 2, "left.txt"`)
	require.Contains(t, prompt, "one")
	require.Contains(t, prompt, "two")
}
