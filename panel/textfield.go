package panel

// TextField holds the editable text of a channel value field
type TextField struct {
	Text   []rune
	Cursor int // Position before which the cursor sits (0 = before first char)
}

// NewTextField creates a field holding initial with the cursor at the end
func NewTextField(initial string) *TextField {
	runes := []rune(initial)
	return &TextField{Text: runes, Cursor: len(runes)}
}

// Value returns the current text
func (t *TextField) Value() string {
	return string(t.Text)
}

// SetValue replaces the text and moves the cursor to the end
func (t *TextField) SetValue(s string) {
	t.Text = []rune(s)
	t.Cursor = len(t.Text)
}

// Insert adds a rune at the cursor
func (t *TextField) Insert(r rune) {
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
}

// DeleteBackward removes the rune before the cursor
func (t *TextField) DeleteBackward() bool {
	if t.Cursor > 0 {
		t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
		t.Cursor--
		return true
	}
	return false
}

// DeleteForward removes the rune at the cursor
func (t *TextField) DeleteForward() bool {
	if t.Cursor < len(t.Text) {
		t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
		return true
	}
	return false
}

// Clear empties the field
func (t *TextField) Clear() {
	t.Text = nil
	t.Cursor = 0
}

// MoveLeft moves the cursor one rune left
func (t *TextField) MoveLeft() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

// MoveRight moves the cursor one rune right
func (t *TextField) MoveRight() {
	if t.Cursor < len(t.Text) {
		t.Cursor++
	}
}

// Home moves the cursor to the start
func (t *TextField) Home() {
	t.Cursor = 0
}

// End moves the cursor past the last rune
func (t *TextField) End() {
	t.Cursor = len(t.Text)
}
