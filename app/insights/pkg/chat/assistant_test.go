package chat

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/config"
)

type fakeGenerator struct {
	calls    int
	messages []*schema.Message
	opts     *model.Options
	reply    string
	err      error
}

func (f *fakeGenerator) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.calls++
	f.messages = input
	f.opts = model.GetCommonOptions(nil, opts...)
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func newTestAssistant(t *testing.T, gen Generator) (*Assistant, string) {
	t.Helper()
	cfg := config.Default()
	cfg.Data.ResearchDir = t.TempDir()
	return NewAssistantWithGenerator(gen, cfg), cfg.Data.ResearchDir
}

func TestAsk_EmptyPrompt(t *testing.T) {
	gen := &fakeGenerator{}
	a, _ := newTestAssistant(t, gen)

	_, err := a.Ask(context.Background(), "  \n", AskOptions{})
	assert.True(t, errors.Is(err, ErrEmptyPrompt))
	assert.Zero(t, gen.calls)
}

func TestAsk_Completion(t *testing.T) {
	gen := &fakeGenerator{reply: "Lean into run clubs."}
	a, _ := newTestAssistant(t, gen)

	var steps []string
	ans, err := a.Ask(context.Background(), "What next?", AskOptions{
		Progress: func(status string, _ int) { steps = append(steps, status) },
	})
	require.NoError(t, err)

	assert.Equal(t, "Lean into run clubs.", ans.Body)
	assert.False(t, ans.Deep)
	assert.Empty(t, ans.Sources)
	assert.Equal(t, []string{"started", "model answered", "done"}, steps)

	require.Len(t, gen.messages, 2)
	assert.Equal(t, schema.System, gen.messages[0].Role)
	assert.Equal(t, config.DefaultSystemPrompt, gen.messages[0].Content)
	assert.Equal(t, "What next?", gen.messages[1].Content)

	require.NotNil(t, gen.opts.MaxTokens)
	assert.Equal(t, 800, *gen.opts.MaxTokens)
	require.NotNil(t, gen.opts.Temperature)
	assert.InDelta(t, 0.7, *gen.opts.Temperature, 1e-6)
	require.NotNil(t, gen.opts.Model)
	assert.Equal(t, "gpt-4o-mini", *gen.opts.Model)
}

func TestAsk_ZeroTemperature(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	cfg := config.Default()
	zero := float32(0)
	cfg.LLM.Temperature = &zero
	a := NewAssistantWithGenerator(gen, cfg)

	_, err := a.Ask(context.Background(), "q", AskOptions{})
	require.NoError(t, err)
	require.NotNil(t, gen.opts.Temperature, "explicit zero is still sent")
	assert.Zero(t, *gen.opts.Temperature)
}

func TestAsk_SystemContextOverride(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	a, _ := newTestAssistant(t, gen)

	_, err := a.Ask(context.Background(), "q", AskOptions{SystemContext: "You know Puma."})
	require.NoError(t, err)
	assert.Equal(t, "You know Puma.", gen.messages[0].Content)
}

func TestAsk_GeneratorError(t *testing.T) {
	boom := errors.New("boom")
	a, _ := newTestAssistant(t, &fakeGenerator{err: boom})

	_, err := a.Ask(context.Background(), "q", AskOptions{})
	assert.True(t, errors.Is(err, boom))
}

func TestAsk_DeepResearch(t *testing.T) {
	gen := &fakeGenerator{}
	a, dir := newTestAssistant(t, gen)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "puma.md"),
		[]byte("# Findings\nRun clubs rise.\n## Sources\n- [a](https://a.example)\n"), 0o644))

	ans, err := a.Ask(context.Background(), "q", AskOptions{Deep: true, ResearchFile: "puma.md"})
	require.NoError(t, err)
	assert.Zero(t, gen.calls, "deep research never calls the model")
	assert.True(t, ans.Deep)
	assert.Equal(t, "# Findings\nRun clubs rise.\n", ans.Body)
	assert.Equal(t, "## Sources\n- [a](https://a.example)\n", ans.Sources)
}

func TestAsk_DeepFallsBackWhenFileMissing(t *testing.T) {
	gen := &fakeGenerator{reply: "from model"}
	a, _ := newTestAssistant(t, gen)

	ans, err := a.Ask(context.Background(), "q", AskOptions{Deep: true, ResearchFile: "absent.md"})
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "from model", ans.Body)
	assert.False(t, ans.Deep)

	ans, err = a.Ask(context.Background(), "q", AskOptions{Deep: true})
	require.NoError(t, err)
	assert.Equal(t, 2, gen.calls)
	assert.False(t, ans.Deep)
}

func TestAsk_ResearchPathEscape(t *testing.T) {
	gen := &fakeGenerator{}
	a, dir := newTestAssistant(t, gen)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "secret.md"), []byte("x"), 0o644))

	for _, name := range []string{"../secret.md", "/etc/passwd", "a/../../secret.md"} {
		_, err := a.Ask(context.Background(), "q", AskOptions{Deep: true, ResearchFile: name})
		assert.True(t, errors.Is(err, ErrResearchUnavailable), name)
	}
	assert.Zero(t, gen.calls)
}

func TestAsk_CanceledContext(t *testing.T) {
	gen := &fakeGenerator{reply: "x"}
	a, _ := newTestAssistant(t, gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Ask(ctx, "q", AskOptions{})
	assert.Error(t, err)
	assert.Zero(t, gen.calls)
}

func TestSplitSources(t *testing.T) {
	body, sources := SplitSources("no sources here")
	assert.Equal(t, "no sources here", body)
	assert.Empty(t, sources)

	body, sources = SplitSources("a\n## Sources\nx\n## Sources\ny")
	assert.Equal(t, "a\n", body)
	assert.Equal(t, "## Sources\nx\n## Sources\ny", sources)
}

func TestNewAssistant_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg := config.Default()
	cfg.LLM.APIKey = ""

	_, err := NewAssistant(context.Background(), cfg)
	assert.True(t, errors.Is(err, config.ErrMissingAPIKey))
}
