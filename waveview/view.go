// SPDX-License-Identifier: EPL-2.0

package waveview

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/ik5/waveloop/envelope"
	"github.com/ik5/waveloop/render"
	"github.com/ik5/waveloop/transport"
	"github.com/sirupsen/logrus"
)

// View owns the interactive state of one waveform widget: the envelope, the
// viewport, the selection and the marker drag. It is not safe for concurrent
// use; the host calls it from its UI goroutine only.
type View struct {
	cfg       Config
	log       logrus.FieldLogger
	extractor *envelope.Extractor

	env      *envelope.Envelope
	viewport Viewport
	sel      Selection
	markers  Markers
	vzoom    float64

	width, height int

	pending *pendingLoad

	frame, back *image.RGBA
	draw        func(draw.Image, render.Input, render.Theme)
}

type pendingLoad struct {
	path    string
	results <-chan envelope.Result
	cancel  context.CancelFunc
}

func New(cfg Config, x *envelope.Extractor) *View {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if x == nil {
		x = envelope.NewExtractor(envelope.WithLogger(cfg.Logger))
	}

	return &View{
		cfg:       cfg,
		log:       cfg.Logger,
		extractor: x,
		viewport:  FullViewport(),
		sel:       NewSelection(0, cfg.MinGap),
		markers:   Markers{HitSlop: cfg.HitSlop},
		vzoom:     1,
		draw:      render.Draw,
	}
}

// Load starts decoding path in the background. The current envelope and
// selection are dropped at once, so nothing is drawn or draggable until Poll
// picks up the result. A load still in flight is cancelled and its result
// never delivered.
func (v *View) Load(ctx context.Context, path string) {
	v.cancelPending()

	lctx, cancel := context.WithCancel(ctx)
	v.pending = &pendingLoad{
		path:    path,
		results: v.extractor.ExtractAsync(lctx, path),
		cancel:  cancel,
	}

	v.env = nil
	v.viewport.Reset()
	v.markers.Release()
	v.sel = NewSelection(0, v.cfg.MinGap)

	v.log.WithFields(logrus.Fields{
		"function": "Load",
		"path":     path,
	}).Info("Loading waveform")
}

// Loading reports whether a Load is still in flight.
func (v *View) Loading() bool { return v.pending != nil }

// Poll checks, without blocking, whether the pending load finished. It
// returns true when the load completed, together with its error if it
// failed. A failed load leaves the view without an envelope.
func (v *View) Poll() (bool, error) {
	if v.pending == nil {
		return false, nil
	}

	var res envelope.Result
	select {
	case r, ok := <-v.pending.results:
		if !ok {
			r = envelope.Result{Path: v.pending.path, Err: context.Canceled}
		}
		res = r
	default:
		return false, nil
	}

	v.pending.cancel()
	v.pending = nil

	if res.Err != nil {
		v.log.WithFields(logrus.Fields{
			"function": "Poll",
			"path":     res.Path,
			"error":    res.Err.Error(),
		}).Error("Waveform load failed, display disabled")
		return true, res.Err
	}

	v.SetEnvelope(res.Envelope)
	return true, nil
}

// Close cancels any pending load.
func (v *View) Close() { v.cancelPending() }

func (v *View) cancelPending() {
	if v.pending != nil {
		v.pending.cancel()
		v.pending = nil
	}
}

// SetEnvelope installs env and resets the viewport, the drag and the
// selection to span the whole track.
func (v *View) SetEnvelope(env *envelope.Envelope) {
	v.env = env
	v.viewport.Reset()
	v.markers.Release()
	v.sel = NewSelection(env.Duration().Seconds(), v.cfg.MinGap)

	v.log.WithFields(logrus.Fields{
		"function": "SetEnvelope",
		"pairs":    env.Len(),
		"duration": env.Duration().String(),
	}).Info("Waveform ready")
}

func (v *View) Envelope() *envelope.Envelope { return v.env }

func (v *View) Resize(width, height int) {
	v.width, v.height = max(0, width), max(0, height)
}

func (v *View) Size() (int, int) { return v.width, v.height }

func (v *View) Viewport() Viewport { return v.viewport }

func (v *View) Selection() Selection { return v.sel }

func (v *View) DragState() DragState { return v.markers.State() }

func (v *View) Mapper() Mapper {
	return Mapper{View: v.viewport, Width: float64(v.width), Duration: v.sel.Duration()}
}

// SetDuration adopts the track length once the transport knows it.
func (v *View) SetDuration(d time.Duration) {
	if d <= 0 || d.Seconds() == v.sel.Duration() {
		return
	}
	v.sel.SetDuration(d.Seconds())
}

// SetSelection replaces the loop range, in seconds.
func (v *View) SetSelection(start, end float64) { v.sel.SetRange(start, end) }

// SetSelectionStart moves the start marker to t seconds and recentres the
// view on the selection.
func (v *View) SetSelectionStart(t float64) {
	v.sel.SetStart(t)
	v.ZoomToSelection()
}

// SetSelectionEnd moves the end marker to t seconds and recentres the view
// on the selection.
func (v *View) SetSelectionEnd(t float64) {
	v.sel.SetEnd(t)
	v.ZoomToSelection()
}

// Press handles a pointer press at widget column x.
func (v *View) Press(x float64) DragState {
	state := v.markers.Press(x, v.Mapper(), v.sel)
	if state != DragNone {
		v.log.WithFields(logrus.Fields{
			"function": "Press",
			"x":        x,
			"marker":   state.String(),
		}).Debug("Marker drag started")
	}
	return state
}

// Motion handles pointer movement at column x and reports whether the
// selection moved.
func (v *View) Motion(x float64) bool {
	return v.markers.Motion(x, v.Mapper(), &v.sel, &v.viewport)
}

func (v *View) Release() {
	if v.markers.State() != DragNone {
		v.log.WithFields(logrus.Fields{
			"function": "Release",
			"start":    v.sel.Start(),
			"end":      v.sel.End(),
		}).Debug("Marker drag finished")
	}
	v.markers.Release()
}

// Scroll zooms around column x. Positive dy is a wheel notch up, which
// zooms in.
func (v *View) Scroll(x, dy float64) {
	if dy == 0 {
		return
	}

	cursor := 0.5
	if v.width > 0 {
		cursor = min(1, max(0, x/float64(v.width)))
	}

	factor := v.cfg.ZoomOut
	if dy > 0 {
		factor = v.cfg.ZoomIn
	}
	v.viewport.ZoomAt(cursor, factor)

	v.log.WithFields(logrus.Fields{
		"function": "Scroll",
		"factor":   factor,
		"start":    v.viewport.Start,
		"end":      v.viewport.End,
	}).Debug("Zoomed")
}

// ZoomToSelection frames the loop range. It does nothing while the track
// duration is unknown.
func (v *View) ZoomToSelection() {
	if start, end, ok := v.sel.Fractions(); ok {
		v.viewport.ZoomToSelection(start, end)
	}
}

func (v *View) ResetZoom() { v.viewport.Reset() }

// Pan moves the view by steps of Config.PanStep widths.
func (v *View) Pan(steps float64) { v.viewport.Pan(steps * v.cfg.PanStep) }

func (v *View) VerticalZoom() float64 { return v.vzoom }

func (v *View) SetVerticalZoom(z float64) {
	v.vzoom = min(v.cfg.MaxVerticalZoom, max(v.cfg.MinVerticalZoom, z))
}

// Input assembles the render input for the current state and the transport
// position.
func (v *View) Input(t transport.Transport) render.Input {
	in := render.Input{
		Values:       v.env.Values(),
		ViewStart:    v.viewport.Start,
		ViewEnd:      v.viewport.End,
		Cursor:       transport.PlaybackFraction(t, transport.Seconds(v.sel.Duration())),
		VerticalZoom: v.vzoom,
	}
	in.SelStart, in.SelEnd, in.HasSelection = v.sel.Fractions()

	return in
}

// Render draws a new frame for the current size. When drawing fails the
// error is logged and returned together with the previous frame, which is
// left untouched. A zero-sized view returns the previous frame.
func (v *View) Render(t transport.Transport) (frame *image.RGBA, err error) {
	if v.width <= 0 || v.height <= 0 {
		return v.frame, nil
	}

	bounds := image.Rect(0, 0, v.width, v.height)
	if v.back == nil || v.back.Bounds() != bounds {
		v.back = image.NewRGBA(bounds)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRender, r)
			frame = v.frame
			v.log.WithFields(logrus.Fields{
				"function": "Render",
				"error":    err.Error(),
			}).Error("Frame render failed, keeping previous frame")
		}
	}()

	v.draw(v.back, v.Input(t), v.cfg.Theme)
	v.frame, v.back = v.back, v.frame

	return v.frame, nil
}
