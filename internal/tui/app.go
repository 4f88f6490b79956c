package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jfmyers9/storefront/internal/favorites"
	"github.com/jfmyers9/storefront/internal/pager"
	"github.com/jfmyers9/storefront/internal/ranking"
	"github.com/jfmyers9/storefront/internal/rows"
	"github.com/jfmyers9/storefront/pkg/itunes"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

const (
	pageOverview = "overview"
	pageDetail   = "detail"

	fetchTimeout = 30 * time.Second

	overviewHelp = "[gray]enter:see all  tab:switch  l:like  r:reload  q:quit[-]"
	detailHelp   = "[gray]l:like  r:retry  esc:back  q:quit[-]"
)

// Config holds TUI configuration options
type Config struct {
	Lookahead   int // Rows before the end of a detail list that trigger the next page
	ArtworkSize int // Square size of artwork links in the info pane
}

// DefaultConfig returns the default TUI configuration
func DefaultConfig() Config {
	return Config{
		Lookahead:   pager.DefaultLookahead,
		ArtworkSize: 600,
	}
}

// App is the interactive ranking browser.
//
// Fields below queue are only touched on the event loop. Fetches and
// toggles run in their own goroutines and hand results back through queue.
type App struct {
	app            *tview.Application
	pages          *tview.Pages
	songs          *tview.List
	albums         *tview.List
	detail         *tview.List
	info           *tview.TextView
	overviewStatus *tview.TextView
	detailStatus   *tview.TextView

	config     Config
	aggregator *ranking.Aggregator
	likes      *favorites.Store
	logger     zerolog.Logger

	// queue runs fn on the event loop
	queue func(fn func())

	songRows     []rows.Row
	albumRows    []rows.Row
	current      detailList // nil while the overview is shown
	detailRows   []rows.Row
	detailCancel func()
	rendering    bool

	unsubscribe []func()
	ctx         context.Context
	cancelFunc  context.CancelFunc
}

// New creates the browser. The likes store is shared with the caller.
func New(aggregator *ranking.Aggregator, likes *favorites.Store, cfg Config, logger zerolog.Logger) *App {
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = pager.DefaultLookahead
	}
	if cfg.ArtworkSize <= 0 {
		cfg.ArtworkSize = DefaultConfig().ArtworkSize
	}

	a := &App{
		app:        tview.NewApplication(),
		config:     cfg,
		aggregator: aggregator,
		likes:      likes,
		logger:     logger.With().Str("component", "tui").Logger(),
	}
	a.queue = func(fn func()) { a.app.QueueUpdateDraw(fn) }
	a.ctx, a.cancelFunc = context.WithCancel(context.Background())
	a.setupUI()

	a.unsubscribe = append(a.unsubscribe,
		aggregator.Subscribe(func(snap ranking.Snapshot) {
			a.queue(func() { a.renderOverview(snap) })
		}),
		likes.Subscribe(func(favorites.Change) {
			a.queue(a.refreshLikes)
		}),
	)
	return a
}

// setupUI creates the UI layout
func (a *App) setupUI() {
	a.songs = newList(" Songs ")
	a.albums = newList(" Albums ")
	a.detail = newList("")

	a.info = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.info.SetBorder(true).
		SetTitle(" Info ").
		SetTitleAlign(tview.AlignLeft)

	a.overviewStatus = newStatus(overviewHelp)
	a.detailStatus = newStatus(detailHelp)

	a.songs.SetSelectedFunc(func(int, string, string, rune) { a.openDetail(rows.TrackRow) })
	a.albums.SetSelectedFunc(func(int, string, string, rune) { a.openDetail(rows.CollectionRow) })
	a.songs.SetChangedFunc(func(i int, _ string, _ string, _ rune) { a.highlight(a.songRows, i) })
	a.albums.SetChangedFunc(func(i int, _ string, _ string, _ rune) { a.highlight(a.albumRows, i) })
	a.detail.SetChangedFunc(func(i int, _ string, _ string, _ rune) {
		a.highlight(a.detailRows, i)
		a.maybeLoadMore(i)
	})

	// Songs | Albums over the info pane
	columns := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.songs, 0, 1, true).
		AddItem(a.albums, 0, 1, false)

	overview := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(columns, 0, 1, true).
		AddItem(a.info, 5, 1, false).
		AddItem(a.overviewStatus, 1, 1, false)

	detail := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.detail, 0, 1, true).
		AddItem(a.info, 5, 1, false).
		AddItem(a.detailStatus, 1, 1, false)

	a.pages = tview.NewPages().
		AddPage(pageOverview, overview, true, true).
		AddPage(pageDetail, detail, true, false)

	a.app.SetInputCapture(a.handleKeyEvent)
	a.app.SetRoot(a.pages, true)
}

func newList(title string) *tview.List {
	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true).
		SetWrapAround(false)
	list.SetBorder(true).
		SetTitle(title).
		SetTitleAlign(tview.AlignLeft)
	return list
}

func newStatus(text string) *tview.TextView {
	return tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText(text)
}

// handleKeyEvent processes keyboard input
func (a *App) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if a.current != nil {
			a.closeDetail()
			return nil
		}
	case tcell.KeyTab, tcell.KeyBacktab:
		if a.current == nil {
			if a.songs.HasFocus() {
				a.app.SetFocus(a.albums)
			} else {
				a.app.SetFocus(a.songs)
			}
			return nil
		}
	}

	switch event.Rune() {
	case 'q', 'Q':
		a.Stop()
		return nil
	case 'l', 'L':
		a.toggleHighlighted()
		return nil
	case 'r', 'R':
		if a.current != nil {
			a.loadMore(a.current)
		} else {
			go a.fetchOverview()
		}
		return nil
	}
	return event
}

// Run fetches the overview and blocks until the browser is closed.
func (a *App) Run() error {
	go a.fetchOverview()

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// Stop closes the browser and releases its subscriptions.
func (a *App) Stop() {
	a.cancelFunc()
	if a.detailCancel != nil {
		a.detailCancel()
		a.detailCancel = nil
	}
	for _, cancel := range a.unsubscribe {
		cancel()
	}
	a.unsubscribe = nil
	a.app.Stop()
}

func (a *App) fetchOverview() {
	ctx, cancel := context.WithTimeout(a.ctx, fetchTimeout)
	defer cancel()

	// The error is rendered from the aggregator's snapshot
	_ = a.aggregator.FetchInitial(ctx)
}

// renderOverview rebuilds both overview lists from snap.
func (a *App) renderOverview(snap ranking.Snapshot) {
	sections := rows.Overview(snap.Tracks, snap.Collections, a.likes)
	a.songRows, a.albumRows = sections[0].Rows, sections[1].Rows

	a.fillList(a.songs, a.songRows)
	a.fillList(a.albums, a.albumRows)
	a.songs.SetTitle(fmt.Sprintf(" %s (%d) ", sections[0].Title, len(a.songRows)))
	a.albums.SetTitle(fmt.Sprintf(" %s (%d) ", sections[1].Title, len(a.albumRows)))

	switch {
	case snap.Loading:
		a.overviewStatus.SetText(fmt.Sprintf("[yellow]Loading %q...[-]", tview.Escape(a.aggregator.Term())))
	case snap.Err != nil:
		a.overviewStatus.SetText(fmt.Sprintf("[red]%s[-]  [gray]r:reload  q:quit[-]", tview.Escape(snap.Err.Error())))
	default:
		a.overviewStatus.SetText(overviewHelp)
	}
	a.refreshInfo()
}

// openDetail shows the full list of kind, continuing from the overview.
func (a *App) openDetail(kind rows.Kind) {
	a.closeDetail()

	var d detailList
	if kind == rows.TrackRow {
		d = newDetail(kind, a.aggregator.NewTrackList(a.logger), rows.FromTracks)
	} else {
		d = newDetail(kind, a.aggregator.NewCollectionList(a.logger),
			func(cs []itunes.Collection, _ rows.Likes) []rows.Row { return rows.FromCollections(cs) })
	}

	a.current = d
	a.detailCancel = d.Subscribe(func() {
		a.queue(func() {
			if a.current == d {
				a.renderDetail()
			}
		})
	})

	a.detail.Clear()
	a.renderDetail()
	a.pages.SwitchToPage(pageDetail)
	a.app.SetFocus(a.detail)
	a.maybeLoadMore(a.detail.GetCurrentItem())
}

// closeDetail drops the detail list and returns to the overview. An
// in-flight page for the dropped list is discarded.
func (a *App) closeDetail() {
	if a.detailCancel != nil {
		a.detailCancel()
		a.detailCancel = nil
	}
	if a.current == nil {
		return
	}
	a.current = nil
	a.detailRows = nil
	a.pages.SwitchToPage(pageOverview)
	a.app.SetFocus(a.songs)
}

func (a *App) renderDetail() {
	rs, st, err := a.current.Rows(a.likes)
	a.detailRows = rs
	a.fillList(a.detail, rs)

	title := "Songs"
	if a.current.Kind() == rows.CollectionRow {
		title = "Albums"
	}
	a.detail.SetTitle(fmt.Sprintf(" %s: %s (%d) ", title, tview.Escape(a.aggregator.Term()), len(rs)))

	switch {
	case st.InFlight:
		a.detailStatus.SetText("[yellow]Loading more...[-]")
	case err != nil:
		a.detailStatus.SetText(fmt.Sprintf("[red]%s[-]  [gray]r:retry  esc:back[-]", tview.Escape(err.Error())))
	case st.Exhausted:
		a.detailStatus.SetText("[gray]End of list  l:like  esc:back  q:quit[-]")
	default:
		a.detailStatus.SetText(detailHelp)
	}
	a.refreshInfo()
}

// maybeLoadMore requests the next page when index is close to the end.
func (a *App) maybeLoadMore(index int) {
	if a.current == nil || a.rendering {
		return
	}
	if pager.ShouldLoadMore(index, len(a.detailRows), a.config.Lookahead, a.current.State()) {
		a.loadMore(a.current)
	}
}

func (a *App) loadMore(d detailList) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, fetchTimeout)
		defer cancel()

		if err := d.LoadMore(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("Failed to load more results")
		}
	}()
}

// toggleHighlighted likes or unlikes the highlighted song.
func (a *App) toggleHighlighted() {
	r, ok := a.highlighted()
	if !ok {
		return
	}
	if !r.Likeable() {
		a.statusView().SetText("[yellow]Only songs can be liked[-]")
		return
	}

	go func() {
		if _, err := a.likes.Toggle(a.ctx, r.Track.ID); err != nil {
			a.logger.Error().Err(err).Int64("id", r.Track.ID).Msg("Failed to toggle like")
			a.queue(func() {
				a.statusView().SetText(fmt.Sprintf("[red]%s[-]", tview.Escape(err.Error())))
			})
		}
	}()
}

// refreshLikes re-reads like state into every visible row.
func (a *App) refreshLikes() {
	rows.Refresh(a.songRows, a.likes)
	rows.Refresh(a.detailRows, a.likes)
	a.updateLikeMarkers(a.songs, a.songRows)
	a.updateLikeMarkers(a.detail, a.detailRows)
}

// focused returns the list the cursor is in and the rows behind it.
func (a *App) focused() (*tview.List, []rows.Row) {
	switch {
	case a.current != nil:
		return a.detail, a.detailRows
	case a.albums.HasFocus():
		return a.albums, a.albumRows
	default:
		return a.songs, a.songRows
	}
}

func (a *App) highlighted() (rows.Row, bool) {
	list, rs := a.focused()
	i := list.GetCurrentItem()
	if i < 0 || i >= len(rs) {
		return rows.Row{}, false
	}
	return rs[i], true
}

// refreshInfo shows the highlighted row in the info pane.
func (a *App) refreshInfo() {
	list, rs := a.focused()
	a.highlight(rs, list.GetCurrentItem())
}

func (a *App) highlight(rs []rows.Row, i int) {
	if a.rendering || i < 0 || i >= len(rs) {
		return
	}
	r := rs[i]
	a.info.SetText(fmt.Sprintf("[white::b]%s[-:-:-]\n[yellow]%s[-]\n[gray]%s[-]",
		tview.Escape(r.Title()),
		tview.Escape(r.Subtitle()),
		tview.Escape(r.Artwork(a.config.ArtworkSize)),
	))
}

func (a *App) statusView() *tview.TextView {
	if a.current != nil {
		return a.detailStatus
	}
	return a.overviewStatus
}

// fillList replaces the items of list with rs, keeping the cursor.
func (a *App) fillList(list *tview.List, rs []rows.Row) {
	a.rendering = true
	defer func() { a.rendering = false }()

	cur := list.GetCurrentItem()
	list.Clear()
	for _, r := range rs {
		list.AddItem(mainText(r), tview.Escape(r.Subtitle()), 0, nil)
	}
	if cur > 0 && cur < len(rs) {
		list.SetCurrentItem(cur)
	}
}

func (a *App) updateLikeMarkers(list *tview.List, rs []rows.Row) {
	for i, r := range rs {
		if i >= list.GetItemCount() {
			return
		}
		list.SetItemText(i, mainText(r), tview.Escape(r.Subtitle()))
	}
}

// mainText renders a row's rank and title with its like marker.
func mainText(r rows.Row) string {
	title := fmt.Sprintf("%d. %s", r.Rank, tview.Escape(r.Title()))
	switch {
	case !r.Likeable():
		return title
	case r.Liked:
		return "[red]♥[-] " + title
	default:
		return "[gray]·[-] " + title
	}
}
