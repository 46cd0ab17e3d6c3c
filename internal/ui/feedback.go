// Package ui implements the chess game UI using Ebitengine.
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nullmove/chessmcts/internal/board"
)

// InvalidMoveReason represents why a move was rejected.
type InvalidMoveReason int

const (
	ReasonUnknown InvalidMoveReason = iota
	ReasonWouldLeaveKingInCheck
	ReasonBlockedByOwnPiece
	ReasonInvalidPieceMovement
	ReasonNotYourTurn
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// timedEffect is the StartTime/Duration pair shared by every transient
// visual effect (toasts, shakes, flashes); progress and liveness are
// computed the same way for all of them.
type timedEffect struct {
	StartTime time.Time
	Duration  time.Duration
}

// progress returns how far through the effect's lifetime "now" falls,
// unclamped (>=1.0 once expired).
func (te timedEffect) progress() float64 {
	return time.Since(te.StartTime).Seconds() / te.Duration.Seconds()
}

func (te timedEffect) alive() bool {
	return time.Since(te.StartTime) < te.Duration
}

// Toast represents a notification message.
type Toast struct {
	timedEffect
	Message string
	Type    ToastType
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		timedEffect: timedEffect{StartTime: time.Now(), Duration: duration},
		Message:     message,
		Type:        toastType,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	active := tm.toasts[:0:0]
	for _, t := range tm.toasts {
		if t.alive() {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

var toastColors = map[ToastType]struct{ bg, text color.RGBA }{
	ToastWarning: {color.RGBA{180, 140, 20, 220}, color.RGBA{40, 30, 0, 255}},
	ToastError:   {color.RGBA{180, 50, 50, 220}, color.RGBA{255, 255, 255, 255}},
	ToastSuccess: {color.RGBA{50, 150, 50, 220}, color.RGBA{255, 255, 255, 255}},
	ToastInfo:    {color.RGBA{50, 100, 150, 220}, color.RGBA{255, 255, 255, 255}},
}

func fadeEdges(progress, fadeTime float64) float64 {
	switch {
	case progress < fadeTime:
		return progress / fadeTime
	case progress > 1-fadeTime:
		return (1 - progress) / fadeTime
	default:
		return 1.0
	}
}

// Draw renders all active toasts.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	y := 50.0
	for _, t := range tm.toasts {
		alpha := fadeEdges(t.progress(), 0.2/t.Duration.Seconds())
		palette := toastColors[t.Type]
		bgColor := color.RGBA{palette.bg.R, palette.bg.G, palette.bg.B, uint8(float64(palette.bg.A) * alpha)}
		textColor := color.RGBA{palette.text.R, palette.text.G, palette.text.B, uint8(float64(palette.text.A) * alpha)}

		w, h := MeasureText(t.Message, face)
		padding := 12.0
		boxW, boxH := w+padding*2, h+padding*2
		x := float64(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}

// ShakeAnimation represents a piece shake effect.
type ShakeAnimation struct {
	timedEffect
	Square    board.Square
	Intensity float64
}

// FlashAnimation represents a square flash effect.
type FlashAnimation struct {
	timedEffect
	Square board.Square
	Color  color.RGBA
}

// AnimationManager manages visual animations.
type AnimationManager struct {
	shakes  []*ShakeAnimation
	flashes []*FlashAnimation
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake begins a shake animation on a square.
func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, &ShakeAnimation{
		timedEffect: timedEffect{StartTime: time.Now(), Duration: 300 * time.Millisecond},
		Square:      sq,
		Intensity:   8.0,
	})
}

// StartFlash begins a flash animation on a square.
func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA) {
	am.flashes = append(am.flashes, &FlashAnimation{
		timedEffect: timedEffect{StartTime: time.Now(), Duration: 400 * time.Millisecond},
		Square:      sq,
		Color:       c,
	})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	activeShakes := am.shakes[:0:0]
	for _, s := range am.shakes {
		if s.alive() {
			activeShakes = append(activeShakes, s)
		}
	}
	am.shakes = activeShakes

	activeFlashes := am.flashes[:0:0]
	for _, f := range am.flashes {
		if f.alive() {
			activeFlashes = append(activeFlashes, f)
		}
	}
	am.flashes = activeFlashes
}

// GetShakeOffset returns the current shake offset for a square.
func (am *AnimationManager) GetShakeOffset(sq board.Square) (float64, float64) {
	for _, s := range am.shakes {
		if s.Square != sq {
			continue
		}
		progress := s.progress()
		if progress >= 1.0 {
			return 0, 0
		}
		const decay, freq = 5.0, 40.0
		amplitude := s.Intensity * math.Exp(-decay*progress)
		return amplitude * math.Sin(freq*progress), 0
	}
	return 0, 0
}

// GetFlashForSquare returns the active flash for a square, if any.
func (am *AnimationManager) GetFlashForSquare(sq board.Square) *FlashAnimation {
	for _, f := range am.flashes {
		if f.Square == sq {
			return f
		}
	}
	return nil
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, renderer *Renderer) {
	for _, f := range am.flashes {
		progress := f.progress()
		if progress >= 1.0 {
			continue
		}

		alpha := 1.0 - progress
		c := color.RGBA{f.Color.R, f.Color.G, f.Color.B, uint8(float64(f.Color.A) * alpha)}

		x, y := renderer.SquareToScreen(f.Square)
		size := float32(renderer.SquareSize())
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
	}
}

// FeedbackManager coordinates all feedback systems.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, renderer *Renderer) {
	fm.animations.DrawFlashes(screen, renderer)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// OnInvalidMove handles an invalid move attempt.
func (fm *FeedbackManager) OnInvalidMove(from, to board.Square, reason InvalidMoveReason) {
	var message string
	switch reason {
	case ReasonWouldLeaveKingInCheck:
		message = "Illegal move - King would be in check"
	case ReasonBlockedByOwnPiece:
		message = "Square occupied by your piece"
	case ReasonInvalidPieceMovement:
		message = "Invalid move for this piece"
	case ReasonNotYourTurn:
		message = "Not your turn"
	default:
		message = "Invalid move"
	}

	fm.toasts.Show(message, ToastWarning, 2*time.Second)
	fm.animations.StartShake(from)
	fm.animations.StartFlash(to, color.RGBA{255, 80, 80, 150})
	fm.audio.Play(SoundInvalid)
}

// OnCheck handles a check event.
func (fm *FeedbackManager) OnCheck() {
	fm.toasts.Show("Check!", ToastWarning, 2*time.Second)
	fm.audio.Play(SoundCheck)
}

// OnCheckmate handles a checkmate event.
func (fm *FeedbackManager) OnCheckmate(winner board.Color) {
	message := "Checkmate! Black wins!"
	if winner == board.White {
		message = "Checkmate! White wins!"
	}
	fm.toasts.Show(message, ToastSuccess, 5*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// OnStalemate handles a stalemate event.
func (fm *FeedbackManager) OnStalemate() {
	fm.toasts.Show("Stalemate - Draw", ToastInfo, 5*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// OnDraw handles a draw event.
func (fm *FeedbackManager) OnDraw(reason string) {
	fm.toasts.Show("Draw - "+reason, ToastInfo, 5*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// OnMoveMade handles a successful move.
func (fm *FeedbackManager) OnMoveMade(isCapture, isCastling bool) {
	switch {
	case isCastling:
		fm.audio.Play(SoundCastle)
	case isCapture:
		fm.audio.Play(SoundCapture)
	default:
		fm.audio.Play(SoundMove)
	}
}

// Audio returns the audio manager for settings access.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}
