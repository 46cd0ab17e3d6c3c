package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Shared widget palette; panel.go owns buttonBg/buttonHoverBg/accentColor/
// textPrimary/textSecondary/textMuted/dividerColor.
var (
	widgetBg          = color.RGBA{48, 52, 58, 255}
	widgetBorder      = color.RGBA{68, 72, 78, 255}
	widgetFocusBorder = color.RGBA{76, 175, 120, 255}
	widgetHoverBg     = color.RGBA{65, 70, 78, 255}
	radioActive       = color.RGBA{76, 175, 120, 255}
	radioInactive     = color.RGBA{70, 75, 82, 255}
	checkboxCheck     = color.RGBA{76, 175, 120, 255}
	inputTextColor    = color.RGBA{240, 240, 245, 255}
	inputPlaceholder  = color.RGBA{120, 125, 135, 255}
)

func hitTest(x, y, w, h, mx, my int) bool {
	return mx >= x && mx < x+w && my >= y && my < y+h
}

// drawLabel draws s left-anchored at (x, centerY), vertically centered.
func drawLabel(screen *ebiten.Image, s string, x, centerY int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	_, h := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(centerY)-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawLabelCentered draws s centered within the (x, y, w, h) box.
func drawLabelCentered(screen *ebiten.Image, s string, x, y, w, h int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	tw, th := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+float64(w)/2-tw/2, float64(y)+float64(h)/2-th/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// TextInput is an editable single-line text field.
type TextInput struct {
	X, Y, W, H  int
	Value       string
	Placeholder string
	MaxLength   int
	focused     bool
	hovered     bool
	cursorBlink int
}

// NewTextInput returns an unfocused, empty TextInput.
func NewTextInput(x, y, w, h int, placeholder string, maxLen int) *TextInput {
	return &TextInput{X: x, Y: y, W: w, H: h, Placeholder: placeholder, MaxLength: maxLen}
}

// Update reads typed characters and focus/blur clicks for this frame.
func (ti *TextInput) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	ti.hovered = hitTest(ti.X, ti.Y, ti.W, ti.H, mx, my)

	if input.IsLeftJustPressed() {
		ti.focused = ti.hovered
	}
	if !ti.focused {
		return false
	}

	ti.cursorBlink = (ti.cursorBlink + 1) % 61

	for _, c := range ebiten.AppendInputChars(nil) {
		if ti.MaxLength == 0 || utf8.RuneCountInString(ti.Value) < ti.MaxLength {
			ti.Value += string(c)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ti.Value) > 0 {
		_, size := utf8.DecodeLastRuneInString(ti.Value)
		ti.Value = ti.Value[:len(ti.Value)-size]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.focused = false
	}
	return true
}

// Draw renders the field, its placeholder or value, and a blinking cursor.
func (ti *TextInput) Draw(screen *ebiten.Image) {
	bg := widgetBg
	if ti.hovered && !ti.focused {
		bg = color.RGBA{52, 56, 62, 255}
	}
	vector.DrawFilledRect(screen, float32(ti.X), float32(ti.Y), float32(ti.W), float32(ti.H), bg, false)

	border := widgetBorder
	switch {
	case ti.focused:
		border = widgetFocusBorder
	case ti.hovered:
		border = accentColor
	}
	vector.StrokeRect(screen, float32(ti.X), float32(ti.Y), float32(ti.W), float32(ti.H), 2, border, false)

	textX := ti.X + 10
	shown, color := ti.Value, inputTextColor
	if shown == "" {
		shown, color = ti.Placeholder, inputPlaceholder
	}
	if shown != "" {
		drawLabel(screen, shown, textX, ti.Y+ti.H/2, color)
	}

	if ti.focused && ti.cursorBlink < 30 {
		face := GetRegularFace()
		cursorX := float32(textX)
		if ti.Value != "" && face != nil {
			w, _ := MeasureText(ti.Value, face)
			cursorX += float32(w) + 2
		}
		vector.DrawFilledRect(screen, cursorX, float32(ti.Y+8), 2, float32(ti.H-16), inputTextColor, false)
	}
}

// IsFocused reports whether the field currently has keyboard focus.
func (ti *TextInput) IsFocused() bool {
	return ti.focused
}

// SetFocused sets the field's focus state.
func (ti *TextInput) SetFocused(focused bool) {
	ti.focused = focused
}

// RadioOption is one entry in a RadioGroup.
type RadioOption struct {
	Label string
	Value int
}

// RadioGroup is a vertical list of mutually exclusive options.
type RadioGroup struct {
	X, Y     int
	Options  []RadioOption
	Selected int
	ItemH    int
	hovered  int
}

const radioGroupWidth = 200

// NewRadioGroup returns a RadioGroup with the given option already selected.
func NewRadioGroup(x, y int, options []RadioOption, selected int) *RadioGroup {
	return &RadioGroup{X: x, Y: y, Options: options, Selected: selected, ItemH: 30, hovered: -1}
}

// Update reads hover/click state, updating Selected on click.
func (rg *RadioGroup) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	rg.hovered = -1

	for i := range rg.Options {
		itemY := rg.Y + i*rg.ItemH
		if !hitTest(rg.X, itemY, radioGroupWidth, rg.ItemH, mx, my) {
			continue
		}
		rg.hovered = i
		if input.IsLeftJustPressed() {
			rg.Selected = i
			return true
		}
	}
	return false
}

// Draw renders each option's radio circle and label.
func (rg *RadioGroup) Draw(screen *ebiten.Image) {
	for i, opt := range rg.Options {
		itemY := rg.Y + i*rg.ItemH
		isSelected := i == rg.Selected
		isHovered := i == rg.hovered

		if isHovered && !isSelected {
			vector.DrawFilledRect(screen, float32(rg.X-4), float32(itemY), radioGroupWidth, float32(rg.ItemH), color.RGBA{55, 60, 68, 255}, false)
		}

		cx, cy, radius := float32(rg.X+10), float32(itemY+rg.ItemH/2), float32(8)
		circleColor := radioInactive
		switch {
		case isSelected:
			circleColor = radioActive
		case isHovered:
			circleColor = accentColor
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, circleColor, false)
		if isSelected {
			vector.DrawFilledCircle(screen, cx, cy, radius-4, inputTextColor, false)
		}

		textColor := textSecondary
		switch {
		case isSelected:
			textColor = textPrimary
		case isHovered:
			textColor = inputTextColor
		}
		drawLabel(screen, opt.Label, rg.X+30, itemY+rg.ItemH/2, textColor)
	}
}

// Checkbox is a toggleable boolean switch with a label.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

const checkboxHitW, checkboxHitH = 200, 24

// NewCheckbox returns a Checkbox with the given initial state.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{X: x, Y: y, Label: label, Checked: checked}
}

// Update toggles Checked on click within the checkbox's row.
func (cb *Checkbox) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	cb.hovered = hitTest(cb.X, cb.Y, checkboxHitW, checkboxHitH, mx, my)

	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the box, checkmark, and label.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	boxX, boxY, boxSize := float32(cb.X), float32(cb.Y), float32(20)

	bg := widgetBg
	if cb.hovered {
		bg = widgetHoverBg
	}
	vector.DrawFilledRect(screen, boxX, boxY, boxSize, boxSize, bg, false)

	border := widgetBorder
	switch {
	case cb.hovered:
		border = accentColor
	case cb.Checked:
		border = checkboxCheck
	}
	vector.StrokeRect(screen, boxX, boxY, boxSize, boxSize, 2, border, false)

	if cb.Checked {
		vector.StrokeLine(screen, boxX+4, boxY+10, boxX+8, boxY+14, 2, checkboxCheck, false)
		vector.StrokeLine(screen, boxX+8, boxY+14, boxX+16, boxY+6, 2, checkboxCheck, false)
	}

	textColor := textSecondary
	switch {
	case cb.Checked:
		textColor = textPrimary
	case cb.hovered:
		textColor = inputTextColor
	}
	drawLabel(screen, cb.Label, cb.X+30, cb.Y+10, textColor)
}

// ButtonGroup is a horizontal row of mutually exclusive tab-style buttons.
type ButtonGroup struct {
	X, Y     int
	Options  []string
	Selected int
	ButtonW  int
	ButtonH  int
	hovered  int
	pressed  int
}

// NewButtonGroup returns a ButtonGroup with the given option selected.
func NewButtonGroup(x, y int, options []string, selected int, buttonW, buttonH int) *ButtonGroup {
	return &ButtonGroup{X: x, Y: y, Options: options, Selected: selected, ButtonW: buttonW, ButtonH: buttonH, hovered: -1, pressed: -1}
}

// Update reads hover/press/click state across the row, updating Selected.
func (bg *ButtonGroup) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	bg.hovered, bg.pressed = -1, -1

	for i := range bg.Options {
		btnX := bg.X + i*bg.ButtonW
		if !hitTest(btnX, bg.Y, bg.ButtonW, bg.ButtonH, mx, my) {
			continue
		}
		bg.hovered = i
		if input.IsLeftPressed() {
			bg.pressed = i
		}
		if input.IsLeftJustPressed() {
			bg.Selected = i
			return true
		}
	}
	return false
}

var tabColors = struct{ active, inactive, hover, pressed, border color.RGBA }{
	active:   color.RGBA{76, 132, 96, 255},
	inactive: color.RGBA{50, 54, 60, 255},
	hover:    color.RGBA{65, 70, 78, 255},
	pressed:  color.RGBA{40, 44, 50, 255},
	border:   color.RGBA{70, 75, 82, 255},
}

// Draw renders each tab's background, border, and label.
func (bg *ButtonGroup) Draw(screen *ebiten.Image) {
	for i, label := range bg.Options {
		btnX := bg.X + i*bg.ButtonW
		isSelected, isHovered, isPressed := i == bg.Selected, i == bg.hovered, i == bg.pressed

		fill := tabColors.inactive
		switch {
		case isSelected:
			fill = tabColors.active
		case isPressed:
			fill = tabColors.pressed
		case isHovered:
			fill = tabColors.hover
		}
		vector.DrawFilledRect(screen, float32(btnX), float32(bg.Y), float32(bg.ButtonW), float32(bg.ButtonH), fill, false)

		border := tabColors.border
		switch {
		case isSelected:
			border = tabColors.active
		case isHovered:
			border = accentColor
		}
		vector.StrokeRect(screen, float32(btnX), float32(bg.Y), float32(bg.ButtonW), float32(bg.ButtonH), 1, border, false)

		textColor := textSecondary
		if isSelected {
			textColor = textPrimary
		}
		drawLabelCentered(screen, label, btnX, bg.Y, bg.ButtonW, bg.ButtonH, textColor)
	}
}

// ModalButton is a single call-to-action button inside a modal dialog.
type ModalButton struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// IsHovered reports whether the pointer is over the button this frame.
func (mb *ModalButton) IsHovered() bool {
	return mb.hovered
}

// NewModalButton returns a ModalButton wired to onClick.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{X: x, Y: y, W: w, H: h, Label: label, Primary: primary, OnClick: onClick}
}

// Update reads hover/press state and fires OnClick on a completed click.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	mb.hovered = hitTest(mb.X, mb.Y, mb.W, mb.H, mx, my)
	mb.pressed = input.IsLeftPressed() && mb.hovered

	if input.IsLeftJustPressed() && mb.hovered && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the button with primary/secondary styling and hover/press
// feedback.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	var bg, border color.RGBA
	if mb.Primary {
		bg, border = accentColor, color.RGBA{56, 155, 100, 255}
		switch {
		case mb.pressed:
			bg = color.RGBA{56, 155, 100, 255}
		case mb.hovered:
			bg, border = color.RGBA{96, 195, 140, 255}, color.RGBA{116, 215, 160, 255}
		}
	} else {
		bg, border = buttonBg, widgetBorder
		switch {
		case mb.pressed:
			bg = color.RGBA{40, 44, 50, 255}
		case mb.hovered:
			bg, border = buttonHoverBg, accentColor
		}
	}

	vector.DrawFilledRect(screen, float32(mb.X), float32(mb.Y), float32(mb.W), float32(mb.H), bg, false)
	vector.StrokeRect(screen, float32(mb.X), float32(mb.Y), float32(mb.W), float32(mb.H), 1, border, false)
	drawLabelCentered(screen, mb.Label, mb.X, mb.Y, mb.W, mb.H, textPrimary)
}

// DrawDivider draws a thin horizontal rule.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, dividerColor, false)
}

// DrawSectionHeader draws a muted section label.
func DrawSectionHeader(screen *ebiten.Image, label string, x, y int) {
	drawLabel(screen, label, x, y, textMuted)
}
