// Package scrollapp wires the scroller, its fyne display view and the
// configuration layer together into the SmoothScroll desktop window.
package scrollapp

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	config "github.com/edward-ap/smoothscroll/internal/config"
	"github.com/edward-ap/smoothscroll/internal/platform/windowpos"
	ui "github.com/edward-ap/smoothscroll/internal/ui"
	"github.com/edward-ap/smoothscroll/label"
	"github.com/edward-ap/smoothscroll/scroller"
)

const (
	minSpeed       = 0
	maxSpeed       = 400
	speedStep      = 5
	shortcutStep   = 10
	barHeight      = 32
	saveDebounce   = 400 * time.Millisecond
	indicatorWidth = 14
)

// directionChoices is the order shown in the direction select.
var directionChoices = []string{"left", "right", "up", "down"}

// App owns the fyne application, the main window, the scroller view and the
// control bar.
type App struct {
	fa      fyne.App
	w       fyne.Window
	config  *config.Config
	persist bool // save config on close; false when loaded from an explicit file

	clock *ui.PausableClock
	view  *ui.ScrollerView

	// control bar
	playBtn     *widget.Button
	textEntry   *widget.Entry
	dirSelect   *widget.Select
	speedSlider *ui.MiniThumbSlider
	speedLbl    *widget.Label
	resetBtn    *widget.Button
	ind         *ui.ActivityIndicator

	shortcutCatcher *shortcutCatcher
	saveTimer       *time.Timer
	silentUpdating  bool
}

// NewApp builds the window around cfg. When persist is true the config is
// written back to the user config directory on close.
func NewApp(cfg *config.Config, persist bool) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	fa := app.NewWithID(config.AppID)
	fa.Settings().SetTheme(theme.DarkTheme())
	ui.UseCompactTheme()
	if AppIcon != nil {
		fa.SetIcon(AppIcon)
	}
	w := fa.NewWindow("SmoothScroll")
	w.SetMaster()
	w.SetPadded(false)
	w.SetFixedSize(true)
	if AppIcon != nil {
		w.SetIcon(AppIcon)
	}

	a := &App{
		fa:      fa,
		w:       w,
		config:  cfg,
		persist: persist,
		clock:   ui.NewPausableClock(),
	}

	sc, err := a.newScroller(cfg.Text, cfg.Direction)
	if err != nil {
		return nil, err
	}
	bg, err := label.ParseHex(cfg.Background)
	if err != nil {
		bg = label.RGB(0x000000)
	}
	a.view = ui.NewScrollerView(sc, a.clock, cfg.Display(), bg, cfg.PixelScale)
	a.buildUI()
	a.updateTitle()

	w.SetCloseIntercept(func() {
		a.shutdown()
		w.Close()
		fa.Quit()
	})
	w.Canvas().SetOnTypedKey(func(ke *fyne.KeyEvent) {
		a.handleShortcutKey(ke)
	})

	if !cfg.Paused {
		a.view.Start()
	}
	a.refreshPlayIcon(a.view.Running())
	return a, nil
}

// Run shows the window at its saved position and enters the fyne event loop.
func (a *App) Run() {
	a.w.Show()
	if p := a.config.WindowPos; p != nil {
		windowpos.Restore(a.w, windowpos.Point{X: p[0], Y: p[1]})
	}
	a.fa.Run()
}

// newScroller builds a scroller from the config with the given text and
// direction, sharing the view's pausable clock.
func (a *App) newScroller(text, dir string) (*scroller.Scroller, error) {
	opts, err := a.config.ScrollerOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		scroller.WithDirection(dir),
		scroller.WithClock(a.clock),
		scroller.WithLogger(traceLogger()),
	)
	sc, err := scroller.New(text, a.config.Display(), opts...)
	if err != nil {
		return nil, fmt.Errorf("create scroller: %w", err)
	}
	return sc, nil
}

// buildUI lays out the control bar above the display view.
func (a *App) buildUI() {
	bar := a.buildControlBar()
	display := container.NewCenter(a.view.CanvasObject())
	root := container.NewBorder(bar, nil, nil, nil, display)
	a.w.SetContent(root)
	a.ensureShortcutFocus()
}

// buildControlBar constructs the strip holding play/pause, text, direction,
// speed and reset controls.
func (a *App) buildControlBar() fyne.CanvasObject {
	if a.shortcutCatcher == nil {
		a.shortcutCatcher = newShortcutCatcher(a.handleShortcutKey)
	}
	darkBg := color.NRGBA{0x1a, 0x1a, 0x1a, 0xFF}

	// --- PLAY ---------------------------------------------------------

	a.playBtn = widget.NewButtonWithIcon("", theme.MediaPauseIcon(), func() { a.togglePlay() })
	a.playBtn.Importance = widget.LowImportance

	textColor, err := label.ParseHex(a.config.Color)
	if err != nil {
		textColor = label.RGB(0xFFFFFF)
	}
	a.ind = ui.NewActivityIndicator(indicatorWidth, textColor)
	a.view.SetOnRunningChanged(func(on bool) {
		a.ind.SetActive(on)
		a.refreshPlayIcon(on)
	})

	leftBlock := container.NewHBox(a.playBtn, a.ind.CanvasObject(), widget.NewSeparator())

	// --- CENTER: text entry --------------------------------------------

	a.textEntry = widget.NewEntry()
	a.textEntry.SetPlaceHolder("Text to scroll, Enter to apply")
	a.textEntry.SetText(a.config.Text)
	a.textEntry.OnSubmitted = func(s string) { a.applyText(s) }

	// --- RIGHT: direction, speed, reset --------------------------------

	a.dirSelect = widget.NewSelect(directionChoices, func(s string) {
		if a.silentUpdating {
			return
		}
		a.changeDirection(s)
	})
	a.silentUpdating = true
	a.dirSelect.SetSelected(canonicalDirection(a.config.Direction))
	a.silentUpdating = false

	a.speedLbl = widget.NewLabel("")
	a.speedSlider = newSpeedSlider(a.config.Speed, a.applySpeed)
	if v := a.speedSlider.Value; v != a.config.Speed {
		a.view.SetSpeed(v)
		a.config.Speed = v
	}
	a.refreshSpeedLabel(a.speedSlider.Value)

	a.resetBtn = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), func() { a.view.Reset() })
	a.resetBtn.Importance = widget.LowImportance

	rightPanel := container.NewHBox(
		a.dirSelect,
		widget.NewSeparator(),
		a.speedSlider,
		a.speedLbl,
		a.resetBtn,
	)

	rightBg := canvas.NewRectangle(darkBg)
	rightBg.SetMinSize(fyne.NewSize(1, barHeight))
	rightBlock := container.NewStack(rightBg, rightPanel)

	topContent := container.NewBorder(nil, nil, leftBlock, rightBlock, a.textEntry)

	// shortcut overlay
	a.shortcutCatcher.Resize(fyne.NewSize(1, 1))
	a.shortcutCatcher.Move(fyne.NewPos(-5, -5))
	return container.NewStack(topContent, container.NewPadded(a.shortcutCatcher))
}

// ensureShortcutFocus keeps focus on the invisible shortcut catcher so global
// keys work until the user clicks into the text entry.
func (a *App) ensureShortcutFocus() {
	if a == nil || a.w == nil || a.shortcutCatcher == nil {
		return
	}
	ui.RunOnMain(func() {
		if a.w != nil && a.shortcutCatcher != nil {
			a.w.Canvas().Focus(a.shortcutCatcher)
		}
	})
}

// handleShortcutKey centralizes keyboard shortcuts regardless of which widget
// currently owns focus.
func (a *App) handleShortcutKey(ke *fyne.KeyEvent) {
	if ke == nil {
		return
	}
	switch ke.Name {
	case fyne.KeySpace:
		a.togglePlay()
	case fyne.KeyR:
		a.view.Reset()
	case fyne.KeyLeft, fyne.KeyRight, fyne.KeyUp, fyne.KeyDown:
		a.dirSelect.SetSelected(keyToDirection(ke.Name))
	case fyne.KeyPlus, fyne.KeyEqual:
		a.nudgeSpeed(+shortcutStep)
	case fyne.KeyMinus:
		a.nudgeSpeed(-shortcutStep)
	}
}

// newSpeedSlider builds the speed control over [0, maxSpeed]; the scroller
// wraps only in its direction of travel, so the desktop host keeps rates
// non-negative.
func newSpeedSlider(initial float64, onChanged func(float64)) *ui.MiniThumbSlider {
	s := ui.NewMiniThumbSlider(minSpeed, maxSpeed)
	s.Step = speedStep
	s.SyncValue(initial)
	s.OnChanged = onChanged
	return s
}

func keyToDirection(key fyne.KeyName) string {
	switch key {
	case fyne.KeyLeft:
		return "left"
	case fyne.KeyRight:
		return "right"
	case fyne.KeyUp:
		return "up"
	case fyne.KeyDown:
		return "down"
	}
	return ""
}

// canonicalDirection maps any accepted spelling onto a select option.
func canonicalDirection(s string) string {
	d, err := scroller.ParseDirection(s)
	if err != nil {
		return config.DefaultDirection
	}
	return d.String()
}

func (a *App) togglePlay() {
	on := a.view.Toggle()
	a.config.Paused = !on
	a.scheduleSave()
}

func (a *App) refreshPlayIcon(running bool) {
	if a.playBtn == nil {
		return
	}
	if running {
		a.playBtn.SetIcon(theme.MediaPauseIcon())
	} else {
		a.playBtn.SetIcon(theme.MediaPlayIcon())
	}
}

func (a *App) applyText(s string) {
	text := strings.TrimSpace(s)
	if text == "" {
		text = config.DefaultText
	}
	a.view.SetText(text)
	a.config.Text = text
	a.scheduleSave()
	a.ensureShortcutFocus()
}

func (a *App) applySpeed(v float64) {
	a.view.SetSpeed(v)
	a.config.Speed = v
	a.refreshSpeedLabel(v)
	a.scheduleSave()
}

func (a *App) nudgeSpeed(delta float64) {
	_, speed, _ := a.view.Snapshot()
	a.speedSlider.SyncValue(speed + delta)
	a.applySpeed(a.speedSlider.Value)
}

func (a *App) refreshSpeedLabel(v float64) {
	if a.speedLbl != nil {
		a.speedLbl.SetText(fmt.Sprintf("%4.0f px/s", v))
	}
}

// changeDirection rebuilds the scroller: direction is fixed per scroller.
func (a *App) changeDirection(dir string) {
	if dir == "" {
		return
	}
	text, speed, current := a.view.Snapshot()
	if current.String() == dir {
		return
	}
	a.config.SetDirection(dir)
	a.config.Speed = speed
	sc, err := a.newScroller(text, dir)
	if err != nil {
		log.Println("direction change error:", err)
		return
	}
	a.view.Replace(sc)
	a.updateTitle()
	a.scheduleSave()
}

func (a *App) updateTitle() {
	_, _, dir := a.view.Snapshot()
	a.w.SetTitle(fmt.Sprintf("SmoothScroll - %dx%d %s", a.config.DisplayW, a.config.DisplayH, dir))
}

// scheduleSave debounces config writes from rapid slider changes.
func (a *App) scheduleSave() {
	if !a.persist {
		return
	}
	if a.saveTimer != nil {
		a.saveTimer.Stop()
	}
	a.saveTimer = time.AfterFunc(saveDebounce, func() {
		if err := a.config.Save(); err != nil {
			log.Println("config save error:", err)
		}
	})
}

// shutdown stops animations and persists the final state.
func (a *App) shutdown() {
	if a.saveTimer != nil {
		a.saveTimer.Stop()
	}
	text, speed, dir := a.view.Snapshot()
	a.config.Text = text
	a.config.Speed = speed
	a.config.Direction = dir.String()
	a.config.Paused = !a.view.Running()
	if p, ok := windowpos.Capture(a.w); ok {
		a.config.WindowPos = &[2]int{p.X, p.Y}
	}
	a.view.Close()
	a.ind.SetActive(false)
	if a.persist {
		if err := a.config.Save(); err != nil {
			log.Println("config save error:", err)
		}
	}
}

type shortcutCatcher struct {
	widget.BaseWidget
	onKey func(*fyne.KeyEvent)
}

func newShortcutCatcher(handler func(*fyne.KeyEvent)) *shortcutCatcher {
	c := &shortcutCatcher{onKey: handler}
	c.ExtendBaseWidget(c)
	return c
}

func (s *shortcutCatcher) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(color.NRGBA{0, 0, 0, 0})
	rect.SetMinSize(fyne.NewSize(1, 1))
	return widget.NewSimpleRenderer(rect)
}

func (s *shortcutCatcher) MinSize() fyne.Size { return fyne.NewSize(1, 1) }

func (s *shortcutCatcher) Resize(fyne.Size) { s.BaseWidget.Resize(fyne.NewSize(1, 1)) }

func (s *shortcutCatcher) FocusGained() {}

func (s *shortcutCatcher) FocusLost() {}

func (s *shortcutCatcher) TypedKey(ev *fyne.KeyEvent) {
	if s.onKey != nil {
		s.onKey(ev)
	}
}

func (s *shortcutCatcher) TypedRune(rune) {}
