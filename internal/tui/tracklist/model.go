// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-binaural/internal/data"
	"github.com/hazadus/go-binaural/internal/track"
	"github.com/hazadus/go-binaural/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// TrackSelectedMsg отправляется при выборе трека для сессии
type TrackSelectedMsg struct {
	Track data.Track
}

// ShowProfileMsg отправляется при переходе к профилю
type ShowProfileMsg struct{}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	track data.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s %s", i.track.Name, i.track.Frequency, i.track.Category, i.track.SubCategory)
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	fmt.Fprint(w, renderItem(i.track, index == m.Index()))
}

// renderItem форматирует строку: ID | Название | Частота | Категория | Избранное
func renderItem(t data.Track, selected bool) string {
	favorite := " "
	if t.IsFavorite {
		favorite = "★"
	}
	str := fmt.Sprintf("%-4s %-22s %-8s %-30s %s",
		utils.TruncateString(t.ID, 4),
		utils.TruncateString(t.Name, 22),
		t.Frequency,
		utils.TruncateString(fmt.Sprintf("%s / %s", t.Category, t.SubCategory), 30),
		favorite)

	if selected {
		return selectedItemStyle.Render("> " + str)
	}
	return itemStyle.Render(str)
}

// Model представляет модель экрана списка треков
type Model struct {
	list         list.Model
	appState     *data.AppState
	trackManager *track.Manager
	quitting     bool
	status       string
}

// NewModel создает новую модель списка треков
func NewModel(appState *data.AppState) *Model {
	trackManager := track.NewManager(appState)

	// Создаем список
	l := list.New(toItems(trackManager.ListTracks()), trackItemDelegate{}, 0, 0)
	l.Title = "Бинауральные ритмы"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:         l,
		appState:     appState,
		trackManager: trackManager,
	}
}

func toItems(tracks []data.Track) []list.Item {
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}
	return items
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет данные модели без пересоздания
func (m *Model) RefreshData() {
	m.list.SetItems(toItems(m.trackManager.ListTracks()))
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для заголовка и справки
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра клавиши принадлежат списку
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				return m, func() tea.Msg {
					return TrackSelectedMsg{Track: item.track}
				}
			}

		case "f":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				favorite, err := m.appState.ToggleFavorite(item.track.ID)
				if err != nil {
					m.status = err.Error()
					return m, nil
				}
				if favorite {
					m.status = fmt.Sprintf("★ %s добавлен в избранное", item.track.Name)
				} else {
					m.status = fmt.Sprintf("%s убран из избранного", item.track.Name)
				}
				index := m.list.Index()
				m.RefreshData()
				m.list.Select(index)
			}
			return m, nil

		case "p":
			return m, func() tea.Msg {
				return ShowProfileMsg{}
			}
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	view := m.list.View()
	if m.status != "" {
		view += "\n" + helpStyle.Render(m.status)
	}
	extraHelp := helpStyle.Render("Enter: начать сессию • f: избранное • p: профиль • q: выход")
	return view + "\n" + extraHelp
}
