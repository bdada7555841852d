package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"golang.design/x/clipboard"

	"github.com/soundbrush/soundbrush/internal/paint"
	"github.com/soundbrush/soundbrush/internal/render"
	"github.com/soundbrush/soundbrush/internal/session"
	"github.com/soundbrush/soundbrush/internal/spectral"
)

const (
	windowWidth  = 1000
	windowHeight = 800

	wheelZoomScale = 5000
	dragZoomScale  = 100
	wheelNotch     = 120

	// Print export: 300 dpi at 7 inches wide.
	printWidth = 2100

	statusDuration = 4 * time.Second
)

type app struct {
	list     *paint.RenderList
	brush    *paint.Brush
	sess     *session.Session
	renderer *render.Renderer

	loadedFile string
	algorithm  int

	dragging     bool
	lastMouseX   int
	lastMouseY   int
	clipboardOK  bool
	status       string
	statusExpiry time.Time
	shownErr     error
}

func newApp() *app {
	list := paint.NewRenderList()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	brush := paint.NewBrush(list, rng)
	return &app{
		list:        list,
		brush:       brush,
		sess:        session.New(brush),
		renderer:    render.NewRenderer(windowWidth, windowHeight),
		algorithm:   1,
		clipboardOK: clipboard.Init() == nil,
	}
}

func (a *app) setStatus(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
	a.statusExpiry = time.Now().Add(statusDuration)
}

func (a *app) Update() error {
	a.handleMouse()
	if err := a.handleKeys(); err != nil {
		return err
	}
	if err := a.sess.Err(); err != nil && err != a.shownErr {
		a.shownErr = err
		a.setStatus("%v", err)
	}
	return nil
}

func (a *app) handleMouse() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		a.renderer.View.ZoomBy(wy*wheelNotch, wheelZoomScale)
		a.renderer.Invalidate()
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		a.dragging = true
	case !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		a.dragging = false
	case a.dragging:
		dx, dy := x-a.lastMouseX, y-a.lastMouseY
		if dx != 0 || dy != 0 {
			if ebiten.IsKeyPressed(ebiten.KeyControl) {
				a.renderer.View.ZoomBy(float64(dx+dy), dragZoomScale)
			} else {
				a.renderer.View.Pan(float64(dx), float64(dy))
			}
			a.renderer.Invalidate()
		}
	}
	a.lastMouseX, a.lastMouseY = x, y
}

func (a *app) handleKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		a.openFile()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		a.startFile(a.sess.Play, "playing")
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.startFile(a.sess.Render, "rendering")
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.sess.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		a.clearCanvas()
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		a.cycleAlgorithm(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		a.cycleAlgorithm(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		a.cycleChunk(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		a.cycleChunk(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		a.saveImage(false)
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		a.saveImage(true)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		a.copyToClipboard()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		a.toggleCapture()
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		a.saveRecording()
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		a.pickBackground()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		a.renderer.View.ResetCenter()
		a.renderer.Invalidate()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		a.renderer.View.ResetZoom()
		a.renderer.Invalidate()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.renderer.View.Reset()
		a.renderer.Invalidate()
	}
	return nil
}

func (a *app) openFile() {
	path, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{Name: "Wav Files", Patterns: []string{"*.wav"}}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			a.setStatus("open: %v", err)
		}
		return
	}
	a.loadedFile = path
	a.setStatus("loaded %s", filepath.Base(path))
}

func (a *app) startFile(start func(string) error, verb string) {
	if a.loadedFile == "" {
		a.setStatus("no file loaded")
		return
	}
	if a.sess.Running() {
		return
	}
	if err := start(a.loadedFile); err != nil {
		a.setStatus("%v", err)
		return
	}
	a.setStatus("%s %s", verb, filepath.Base(a.loadedFile))
}

func (a *app) clearCanvas() {
	if a.sess.Running() {
		return
	}
	a.list.Clear()
	a.brush.Reset()
	a.renderer.Invalidate()
}

func (a *app) cycleAlgorithm(step int) {
	if a.sess.Running() {
		return
	}
	a.algorithm += step
	if a.algorithm < 1 {
		a.algorithm = paint.AlgorithmCount
	}
	if a.algorithm > paint.AlgorithmCount {
		a.algorithm = 1
	}
	a.brush.Select(a.algorithm)

	// Some brushes only allow long analysis windows.
	if restricted := paint.RestrictedChunkSizes(a.algorithm); restricted != nil {
		if !contains(restricted, a.sess.ChunkSize()) {
			a.sess.SetChunkSize(restricted[0])
		}
	}
	a.setStatus("algorithm %d: %s", a.algorithm, paint.AlgorithmName(a.algorithm))
}

func (a *app) cycleChunk(step int) {
	if a.sess.Running() {
		return
	}
	sizes := paint.RestrictedChunkSizes(a.algorithm)
	if sizes == nil {
		sizes = spectral.ChunkSizes()
	}
	cur := a.sess.ChunkSize()
	idx := 0
	for i, n := range sizes {
		if n == cur {
			idx = i
			break
		}
	}
	idx = (idx + step + len(sizes)) % len(sizes)
	a.sess.SetChunkSize(sizes[idx])
	a.setStatus("chunk size %d", sizes[idx])
}

func (a *app) saveImage(print bool) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Image"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "Images", Patterns: []string{"*.png", "*.jpg", "*.bmp"}}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			a.setStatus("save: %v", err)
		}
		return
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}

	img := a.renderer.Image()
	if print {
		w := printWidth
		h := w * a.renderer.View.Height / a.renderer.View.Width
		img = render.Snapshot(a.list, a.renderer.View, w, h)
	}
	if err := render.SaveImage(path, img); err != nil {
		a.setStatus("%v", err)
		return
	}
	a.setStatus("saved %s", filepath.Base(path))
}

func (a *app) copyToClipboard() {
	if !a.clipboardOK {
		a.setStatus("clipboard unavailable")
		return
	}
	data, err := render.PNGBytes(a.renderer.Image())
	if err != nil {
		a.setStatus("copy: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtImage, data)
	a.setStatus("copied image to clipboard")
}

func (a *app) toggleCapture() {
	if a.sess.Running() {
		a.sess.Stop()
		a.setStatus("stopping")
		return
	}
	src, err := session.OpenCaptureSource()
	if err != nil {
		a.setStatus("capture: %v", err)
		return
	}
	if err := a.sess.Capture(src); err != nil {
		src.Close()
		a.setStatus("capture: %v", err)
		return
	}
	a.setStatus("capturing from microphone (M to stop)")
}

func (a *app) saveRecording() {
	if !a.sess.HasRecording() {
		a.setStatus("no recording to save")
		return
	}
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Recording"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "Wav Files", Patterns: []string{"*.wav"}}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			a.setStatus("save: %v", err)
		}
		return
	}
	if filepath.Ext(path) == "" {
		path += ".wav"
	}
	if err := a.sess.SaveRecording(path); err != nil {
		a.setStatus("%v", err)
		return
	}
	a.setStatus("saved recording %s", filepath.Base(path))
}

func (a *app) pickBackground() {
	col, err := zenity.SelectColor()
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			a.setStatus("color: %v", err)
		}
		return
	}
	r, g, b, _ := col.RGBA()
	a.renderer.Background = paint.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8), 255)
	a.renderer.Invalidate()
}

func (a *app) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	a.renderer.Resize(w, h)
	a.renderer.Paint(a.list)
	screen.WritePixels(a.renderer.Image().Pix)

	if time.Now().Before(a.statusExpiry) {
		ebitenutil.DebugPrintAt(screen, a.status, 8, 8)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func main() {
	a := newApp()
	if len(os.Args) > 1 {
		a.loadedFile = os.Args[1]
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Soundbrush")

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
