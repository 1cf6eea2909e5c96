package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/config"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/sentiment"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/session"
)

type mode int

const (
	modeBrowse mode = iota
	modeInclude
	modeExclude
	modeLocate
)

// input slots, one per editing mode
const (
	inputInclude = iota
	inputExclude
	inputLocate
)

// Options wires the TUI to its dataset.
type Options struct {
	Config config.Config
	Logger *zap.Logger
	// Load reads the dataset. It runs once, off the update loop.
	Load func() (*dataset.Store, error)
}

type Model struct {
	// layout
	width, height int
	mode          mode

	log  *zap.Logger
	load func() (*dataset.Store, error)

	// dataset
	loading bool
	loadErr error
	source  string
	sess    *session.Session
	res     session.Result

	// view state
	tab      sentiment.Subset
	pageSize int
	inputs   [3]textinput.Model
	pager    paginator.Model
	status   string

	keys  keyMap
	help  help.Model
	theme Theme
}

func NewModel(o Options) Model {
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}

	placeholders := [3]string{
		"only tweets containing…",
		"e.g. KUA",
		"word to find without filtering…",
	}
	var inputs [3]textinput.Model
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 64
		in.Width = 30
		inputs[i] = in
	}

	pageSize := o.Config.View.PageSize
	if !session.ValidPageSize(pageSize) {
		pageSize = session.DefaultPageSize
	}

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = "●"
	pager.InactiveDot = "○"

	return Model{
		width:    100,
		height:   30,
		log:      log,
		load:     o.Load,
		loading:  true,
		tab:      sentiment.SubsetNegative,
		pageSize: pageSize,
		inputs:   inputs,
		pager:    pager,
		keys:     defaultKeyMap(),
		help:     help.New(),
		theme:    ThemeByName(o.Config.Theme),
	}
}

// Run starts the interactive viewer and blocks until it exits.
func Run(o Options) error {
	p := tea.NewProgram(NewModel(o), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.loadDatasetCmd()
}

// ---------- messages & commands ----------

type datasetLoadedMsg struct {
	store *dataset.Store
	err   error
}

func (m Model) loadDatasetCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		if load == nil {
			return datasetLoadedMsg{err: dataset.ErrUnavailable}
		}
		store, err := load()
		return datasetLoadedMsg{store: store, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case datasetLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			m.log.Error("dataset unavailable", zap.Error(msg.err))
			return m, nil
		}
		m.source = msg.store.Source()
		m.sess = session.New(msg.store, m.log)
		m.apply()
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// nothing else works until a dataset is loaded
	if m.sess == nil {
		return m, nil
	}

	m.status = ""
	switch k := msg.String(); {
	case k >= "1" && k <= "4" && len(k) == 1:
		m.tab = sentiment.Subsets[k[0]-'1']
	case key.Matches(msg, m.keys.NextTab):
		m.tab = sentiment.Subsets[(int(m.tab)+1)%len(sentiment.Subsets)]
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = sentiment.Subsets[(int(m.tab)+len(sentiment.Subsets)-1)%len(sentiment.Subsets)]
	case key.Matches(msg, m.keys.NextPage):
		m.res = m.sess.Advance(m.tab)
	case key.Matches(msg, m.keys.PrevPage):
		m.res = m.sess.Retreat(m.tab)
	case key.Matches(msg, m.keys.FirstPage):
		m.res = m.sess.Jump(m.tab, 1)
	case key.Matches(msg, m.keys.LastPage):
		if last := m.res.Page(m.tab).TotalPages; last > 0 {
			m.res = m.sess.Jump(m.tab, last)
		}
	case key.Matches(msg, m.keys.Include):
		return m.focusInput(modeInclude)
	case key.Matches(msg, m.keys.Exclude):
		return m.focusInput(modeExclude)
	case key.Matches(msg, m.keys.Locate):
		return m.focusInput(modeLocate)
	case key.Matches(msg, m.keys.GoToMatch):
		m.goToMatch()
	case key.Matches(msg, m.keys.PageSize):
		m.pageSize = session.NextPageSize(m.pageSize)
		m.apply()
		m.status = fmt.Sprintf("%d rows per page", m.pageSize)
	case key.Matches(msg, m.keys.Clear):
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.apply()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.syncPager()
	return m, nil
}

// updateInput edits the focused keyword. The query is re-evaluated on every
// change; enter keeps the keyword, esc clears it.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := &m.inputs[m.mode-1]
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter, tea.KeyTab:
		in.Blur()
		m.mode = modeBrowse
		return m, nil
	case tea.KeyEsc:
		in.SetValue("")
		in.Blur()
		m.mode = modeBrowse
		m.apply()
		return m, nil
	}

	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() != before {
		m.apply()
	}
	return m, cmd
}

func (m Model) focusInput(md mode) (tea.Model, tea.Cmd) {
	m.mode = md
	return m, m.inputs[md-1].Focus()
}

func (m *Model) query() session.Query {
	return session.Query{
		Include:  m.inputs[inputInclude].Value(),
		Exclude:  m.inputs[inputExclude].Value(),
		Locate:   m.inputs[inputLocate].Value(),
		PageSize: m.pageSize,
	}
}

func (m *Model) apply() {
	if m.sess == nil {
		return
	}
	m.res = m.sess.Apply(m.query())
	m.syncPager()
}

// goToMatch moves the All tab to the locator's page and shows it.
func (m *Model) goToMatch() {
	res, ok := m.sess.JumpToMatch()
	m.res = res
	if !ok {
		if res.Locating {
			m.status = fmt.Sprintf("%q is not in the data shown", res.Query.Locate)
		}
		return
	}
	m.tab = sentiment.SubsetAll
	m.status = fmt.Sprintf("moved to page %d", res.Page(sentiment.SubsetAll).Current)
}

// syncPager mirrors the active tab's paging into the dots widget.
func (m *Model) syncPager() {
	page := m.res.Page(m.tab)
	m.pager.PerPage = m.pageSize
	m.pager.SetTotalPages(page.TotalRows)
	m.pager.Page = max(page.Current-1, 0)
	if page.TotalPages > 10 {
		m.pager.Type = paginator.Arabic
	} else {
		m.pager.Type = paginator.Dots
	}
}
