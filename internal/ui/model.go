package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codediff/internal/config"
	"codediff/internal/docs"
	"codediff/internal/domain"
	"codediff/internal/eventbus"
	"codediff/internal/highlight"
	"codediff/internal/ui/coordinator"
	"codediff/internal/ui/input"
	inputtypes "codediff/internal/ui/input/types"
	"codediff/internal/ui/services/events"
	"codediff/internal/ui/viewmodels"
	"codediff/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	store     *docs.Store
	coord     *coordinator.Coordinator

	width  int
	height int

	activePane  int
	inPagerMode bool

	statusMessage string
	statusIsError bool

	summarizing    bool
	showSummary    bool
	summaryContent string

	// Handlers
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// One highlighter per document, rebuilt when a title changes
	highlighters map[string]*highlight.Highlighter

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService, store *docs.Store, scheduler *TeaScheduler) *Model {
	uiBus := events.NewBus()

	m := &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		store:        store,
		coord:        coordinator.NewCoordinator(bus, uiBus, store, scheduler, cfg.IndicatorDelayMs),
		renderer:     views.NewRenderer(cfg.UISettings.ShowLineNumbers),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		highlighters: make(map[string]*highlight.Highlighter),
	}

	m.coord.ScrollSync.SetEnabled(cfg.SyncScroll)
	m.rebuildHighlighters()

	return m
}

// SetProgram stores the program reference for pager handoff
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Coordinator exposes the service layer, used by tests
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coord
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.coord.Navigation.SetViewportHeight(m.renderer.PaneBodyHeight(msg.Height))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		return m.handleDomainEvent(msg.Event)

	case deferredFuncMsg:
		msg.fn()
		return m, nil

	case tickMsg:
		if m.summarizing {
			return m, m.tick()
		}
		return m, nil

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Help pager failed: %v", msg.err), true)
		}
		return m, nil

	case quitMsg:
		if msg.saveConfig {
			m.saveConfig()
		}
		return m, tea.Quit

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.inputContext()
	modeBefore := m.inputHandler.CurrentMode()

	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	for _, action := range actions {
		if actionCmd := m.processAction(action, modeBefore); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action, modeBefore inputtypes.Mode) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.FocusPaneAction:
		n := m.store.Len()
		m.activePane = ((m.activePane+a.Delta)%n + n) % n

	case inputtypes.UpdateTextAction:
		// Search is incremental, the match list follows every keystroke
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.coord.Search.SetQuery(a.Text)
		}

	case inputtypes.SubmitTextAction:
		m.submitText(a)

	case inputtypes.CancelTextAction:
		if modeBefore == inputtypes.ModeSearch {
			m.coord.Search.Clear()
		}

	case inputtypes.SearchNavigateAction:
		if a.Direction == "next" {
			m.coord.Search.NavigateNext()
		} else {
			m.coord.Search.NavigatePrevious()
		}

	case inputtypes.ClearSearchAction:
		m.coord.Search.Clear()
		m.setStatus("", false)

	case inputtypes.ToggleCaseAction:
		opts := m.coord.Search.Options()
		opts.CaseSensitive = !opts.CaseSensitive
		m.coord.Search.SetOptions(opts)
		m.setStatus(fmt.Sprintf("Case sensitive: %v", opts.CaseSensitive), false)

	case inputtypes.ToggleRegexAction:
		opts := m.coord.Search.Options()
		opts.Regex = !opts.Regex
		m.coord.Search.SetOptions(opts)
		m.setStatus(fmt.Sprintf("Regex mode: %v", opts.Regex), false)

	case inputtypes.AddPaneAction:
		if err := m.coord.AddPane(); err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.rebuildHighlighters()
			m.activePane = m.store.Len() - 1
		}

	case inputtypes.RemovePaneAction:
		if err := m.coord.RemovePane(); err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.rebuildHighlighters()
			if m.activePane >= m.store.Len() {
				m.activePane = m.store.Len() - 1
			}
		}

	case inputtypes.ToggleSyncAction:
		enabled := !m.coord.ScrollSync.Enabled()
		m.coord.ScrollSync.SetEnabled(enabled)
		m.config.SyncScroll = enabled
		if enabled {
			m.setStatus("Synchronized scrolling on", false)
		} else {
			m.setStatus("Synchronized scrolling off", false)
		}

	case inputtypes.RequestSummaryAction:
		if !m.summarizing {
			m.summarizing = true
			m.coord.RequestSummary()
			return m.tick()
		}

	case inputtypes.CloseOverlayAction:
		m.showSummary = false

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager()

	case inputtypes.QuitAction:
		if a.Force {
			return tea.Quit
		}
		return func() tea.Msg { return quitMsg{saveConfig: true} }
	}

	return nil
}

func (m *Model) submitText(a inputtypes.SubmitTextAction) {
	switch a.Mode {
	case inputtypes.ModeSearch:
		m.coord.Search.SetQuery(a.Text)

	case inputtypes.ModeReplaceOne:
		m.coord.ApplyReplaceOne(a.Text)

	case inputtypes.ModeReplaceAll:
		m.coord.ApplyReplaceAll(a.Text)

	case inputtypes.ModeRename:
		if a.Text == "" {
			return
		}
		doc := m.activeDoc()
		if err := m.coord.RenameDocument(doc.ID, a.Text); err != nil {
			m.setStatus(err.Error(), true)
			return
		}
		m.rebuildHighlighters()
	}
}

func (m *Model) navigate(direction string) {
	paneID := m.activeDoc().ID
	height := m.coord.Navigation.ViewportHeight()

	switch direction {
	case "up":
		m.coord.Navigation.ScrollBy(paneID, -1, 0)
	case "down":
		m.coord.Navigation.ScrollBy(paneID, 1, 0)
	case "left":
		m.coord.Navigation.ScrollBy(paneID, 0, -4)
	case "right":
		m.coord.Navigation.ScrollBy(paneID, 0, 4)
	case "pageup":
		m.coord.Navigation.ScrollBy(paneID, -height, 0)
	case "pagedown":
		m.coord.Navigation.ScrollBy(paneID, height, 0)
	case "home":
		m.coord.Navigation.ScrollToTop(paneID)
	case "end":
		m.coord.Navigation.ScrollToBottom(paneID)
	}
}

// handleDomainEvent reacts to events forwarded from the domain bus
func (m *Model) handleDomainEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.SummaryCompletedEvent:
		m.summarizing = false
		if e.Summary == "" {
			m.setStatus("Summary unavailable", true)
		} else {
			m.summaryContent = e.Summary
			m.showSummary = true
		}

	case eventbus.ReplaceAppliedEvent:
		m.setStatus(fmt.Sprintf("Replaced '%s' in %d document(s)", e.Query, e.DocsChanged), false)

	case eventbus.ErrorEvent:
		m.setStatus(e.Message, true)

	default:
		// Other events only matter for logging
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	documents := m.store.All()
	matches := m.coord.Search.Matches()
	active := m.coord.Search.ActiveIndex()

	panes := make([]viewmodels.Pane, 0, len(documents))
	for i, doc := range documents {
		p := viewmodels.BuildPane(viewmodels.PaneInput{
			Doc:     doc,
			IsBase:  i == 0,
			Script:  m.coord.Diff(doc.ID),
			Matches: matches,
			Active:  active,
		})
		p.Top, p.Left = m.coord.Navigation.Offset(doc.ID)
		p.Synced = m.coord.ScrollSync.IsSynced(doc.ID)
		panes = append(panes, p)
	}

	confirmPrompt := ""
	if m.inputHandler.CurrentMode() == inputtypes.ModeRemoveConfirm {
		tail := documents[len(documents)-1]
		confirmPrompt = fmt.Sprintf("Remove pane '%s'? (y/n): ", tail.Title)
	}

	return views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Panes:          panes,
		ActivePane:     m.activePane,
		Highlighter:    m.paneHighlighter(documents),
		Query:          m.coord.Search.Query(),
		MatchCount:     m.coord.Search.MatchCount(),
		ActiveMatch:    active,
		SyncEnabled:    m.coord.ScrollSync.Enabled(),
		Summarizing:    m.summarizing,
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		TextInput:      m.inputHandler.InputView(),
		InputMode:      m.inputHandler.ModeName(),
		ConfirmPrompt:  confirmPrompt,
		ShowSummary:    m.showSummary,
		SummaryContent: m.summaryContent,
	}
}

// paneHighlighter returns per-pane line highlighting, nil when disabled
func (m *Model) paneHighlighter(documents []domain.Document) func(int) views.HighlightFunc {
	if !m.config.UISettings.Highlight {
		return nil
	}
	return func(i int) views.HighlightFunc {
		if i < 0 || i >= len(documents) {
			return nil
		}
		h := m.highlighters[documents[i].ID]
		if h == nil {
			return nil
		}
		return h.Line
	}
}

func (m *Model) rebuildHighlighters() {
	fresh := make(map[string]*highlight.Highlighter)
	for _, doc := range m.store.All() {
		if lang := highlight.LanguageFromTitle(doc.Title); lang != "" {
			fresh[doc.ID] = highlight.New(lang)
		}
	}
	m.highlighters = fresh
}

func (m *Model) activeDoc() domain.Document {
	documents := m.store.All()
	if m.activePane >= len(documents) {
		return documents[0]
	}
	return documents[m.activePane]
}

func (m *Model) setStatus(message string, isError bool) {
	m.statusMessage = message
	m.statusIsError = isError
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) fetchHelpPager() tea.Cmd {
	if m.helpOps == nil {
		return nil
	}
	content := m.helpRenderer.RenderHelpContent()
	m.inPagerMode = true
	return func() tea.Msg {
		err := m.helpOps.ShowHelpInPager(content)
		return helpPagerMsg{err: err}
	}
}

func (m *Model) saveConfig() {
	if err := m.configSvc.Save(m.config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}

// inputContext builds the read-only view of model state the input handler
// consults before emitting actions
func (m *Model) inputContext() inputtypes.Context {
	return modelContext{m: m}
}

type modelContext struct {
	m *Model
}

func (c modelContext) ActivePaneTitle() string { return c.m.activeDoc().Title }
func (c modelContext) PaneCount() int          { return c.m.store.Len() }
func (c modelContext) HasQuery() bool          { return c.m.coord.Search.Query() != "" }
func (c modelContext) HasActiveMatch() bool {
	_, ok := c.m.coord.Search.ActiveMatch()
	return ok
}
func (c modelContext) CanAddPane() bool    { return c.m.store.Len() < domain.MaxDocuments }
func (c modelContext) CanRemovePane() bool { return c.m.store.Len() > domain.MinDocuments }
func (c modelContext) ShowingSummary() bool { return c.m.showSummary }
