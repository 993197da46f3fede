// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ik5/waveloop/formats"
	"github.com/ik5/waveloop/internal/cli"
	"github.com/ik5/waveloop/transport"
	"github.com/ik5/waveloop/transport/ebitenaudio"
	"github.com/ik5/waveloop/waveview"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	windowW      = 1000
	windowH      = 260
	minWindowW   = 320
	minWindowH   = 120
	statusH      = 18
	uiSampleRate = 48000
	refreshEvery = 30 * time.Millisecond
)

var statusColor = color.RGBA{40, 40, 40, 255}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func newViewCommand(opts *cli.Options) *cobra.Command {
	var noAudio bool

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Open the waveform window and loop-play the selection",
		Long: `Opens FILE in a window. Drag the markers to set the loop, scroll to zoom.

Keys:
  space      play / pause
  [ ]        set loop start / end at the playback cursor
  z          zoom to the loop
  0          reset zoom
  left right pan
  up down    vertical zoom
  1-9        rewind that many seconds`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			g, err := newGame(cmd.Context(), opts, path, !noAudio)
			if err != nil {
				return err
			}
			defer g.Close()

			ebiten.SetWindowSize(windowW, windowH)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetWindowSizeLimits(minWindowW, minWindowH, -1, -1)
			ebiten.SetWindowTitle(fmt.Sprintf("waveloop - %s", filepath.Base(path)))

			return ebiten.RunGame(g)
		},
	}

	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "Show the waveform without opening an audio device")

	return cmd
}

type game struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    logrus.FieldLogger

	view   *waveview.View
	player *ebitenaudio.Player
	ticks  <-chan struct{}
	fresh  *transport.Refresher

	canvas *ebiten.Image
	dirty  bool
	status string
}

func newGame(parent context.Context, opts *cli.Options, path string, withAudio bool) (*game, error) {
	ctx, cancel := context.WithCancel(parent)

	cfg := waveview.DefaultConfig()
	cfg.Logger = opts.Log

	g := &game{
		ctx:    ctx,
		cancel: cancel,
		log:    opts.Log,
		view:   waveview.New(cfg, opts.Extractor()),
		fresh:  transport.NewRefresher(refreshEvery, opts.Log),
		dirty:  true,
		status: "Loading " + filepath.Base(path),
	}
	g.ticks = g.fresh.Run(ctx)
	g.view.Load(ctx, path)

	if withAudio {
		actx, err := ebitenaudio.Context(uiSampleRate)
		if err != nil {
			cancel()
			return nil, err
		}
		g.player, err = ebitenaudio.Open(actx, formats.NewRegistry(), path)
		if err != nil {
			cancel()
			return nil, err
		}
	}

	return g, nil
}

func (g *game) Close() {
	g.cancel()
	g.view.Close()
	if g.player != nil {
		_ = g.player.Close()
	}
}

// transport hides a missing player behind a nil interface.
func (g *game) transport() transport.Transport {
	if g.player == nil {
		return nil
	}
	return g.player
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	g.fresh.SetVisible(!ebiten.IsWindowMinimized())
	g.pollLoad()
	g.pollTicks()
	g.handleMouse()
	g.handleKeys()

	return nil
}

func (g *game) pollLoad() {
	done, err := g.view.Poll()
	if !done {
		return
	}
	g.dirty = true

	if err != nil {
		g.status = "Cannot display waveform: " + err.Error()
		return
	}
	if g.player != nil {
		if d, ok := g.player.Duration(); ok {
			g.view.SetDuration(d)
		}
	}
	g.status = fmt.Sprintf("%s, %d pairs", g.view.Envelope().Duration().Round(time.Millisecond), g.view.Envelope().Len())
}

func (g *game) pollTicks() {
	select {
	case _, ok := <-g.ticks:
		if !ok {
			return
		}
	default:
		return
	}
	g.dirty = true

	if g.player == nil || !g.player.IsPlaying() {
		return
	}

	sel := g.view.Selection()
	if sel.Duration() <= 0 {
		return
	}

	state, err := transport.KeepInLoop(g.player, transport.Seconds(sel.Start()), transport.Seconds(sel.End()))
	switch {
	case err != nil:
		g.player.Pause()
		g.status = err.Error()
	case state == transport.LoopRestarted:
		g.log.WithFields(logrus.Fields{
			"function": "pollTicks",
			"start":    sel.Start(),
		}).Debug("Loop restarted")
	}
}

func (g *game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	_, h := g.view.Size()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && my < h {
		g.view.Press(float64(mx))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.view.Motion(float64(mx)) {
			g.dirty = true
		}
	} else if g.view.DragState() != waveview.DragNone {
		g.view.Release()
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.view.Scroll(float64(mx), wy)
		g.dirty = true
	}
}

func (g *game) handleKeys() {
	pos := g.position()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.togglePlayPause()
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.view.SetSelectionStart(pos.Seconds())
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.view.SetSelectionEnd(pos.Seconds())
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.view.ZoomToSelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit0):
		g.view.ResetZoom()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.view.Pan(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.view.Pan(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.view.SetVerticalZoom(g.view.VerticalZoom() * 1.25)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.view.SetVerticalZoom(g.view.VerticalZoom() * 0.8)
	default:
		for i, k := range digitKeys {
			if inpututil.IsKeyJustPressed(k) {
				g.rewind(time.Duration(i+1) * time.Second)
			}
		}
		return
	}
	g.dirty = true
}

func (g *game) position() time.Duration {
	if g.player == nil {
		return 0
	}
	pos, _ := g.player.Position()
	return pos
}

func (g *game) togglePlayPause() {
	if g.player == nil {
		return
	}
	if g.player.IsPlaying() {
		g.player.Pause()
		g.status = "Paused"
		return
	}

	// Start from the loop when the cursor sits outside it.
	sel := g.view.Selection()
	if sel.Duration() > 0 {
		if _, err := transport.KeepInLoop(g.player, transport.Seconds(sel.Start()), transport.Seconds(sel.End())); err != nil {
			g.status = err.Error()
			return
		}
	}
	g.player.Play()
	g.status = "Playing"
}

func (g *game) rewind(by time.Duration) {
	if g.player == nil {
		return
	}
	if err := g.player.Seek(g.position() - by); err != nil {
		g.status = err.Error()
		return
	}
	g.dirty = true
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.blit()
		g.dirty = false
	}
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	status := screen.SubImage(image.Rect(0, h-statusH, w, h)).(*ebiten.Image)
	status.Fill(statusColor)
	ebitenutil.DebugPrintAt(screen, g.status, 4, h-statusH+1)
}

// blit renders a new frame and copies it to the GPU image.
func (g *game) blit() {
	frame, err := g.view.Render(g.transport())
	if err != nil {
		g.status = err.Error()
	}
	if frame == nil {
		return
	}

	b := frame.Bounds()
	if g.canvas == nil || g.canvas.Bounds().Size() != b.Size() {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.canvas.WritePixels(frame.Pix)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	outsideW = max(outsideW, minWindowW)
	outsideH = max(outsideH, minWindowH)

	if w, h := g.view.Size(); w != outsideW || h != outsideH-statusH {
		g.view.Resize(outsideW, outsideH-statusH)
		g.dirty = true
	}

	return outsideW, outsideH
}
