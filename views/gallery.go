package views

// Lightbox key names, matching the browser key event values the UI layer
// forwards.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEscape     = "Escape"
)

// Lightbox is the full-screen image viewer state: a current index over an
// ordered image set, keyboard navigable.
type Lightbox struct {
	images []string
	index  int
	open   bool
}

func NewLightbox(images []string) *Lightbox {
	return &Lightbox{images: images}
}

// Open shows the viewer at image i; out-of-range indexes are ignored.
func (l *Lightbox) Open(i int) {
	if i < 0 || i >= len(l.images) {
		return
	}
	l.index = i
	l.open = true
}

func (l *Lightbox) Close()       { l.open = false }
func (l *Lightbox) IsOpen() bool { return l.open }

// Current returns the shown image, or false when the viewer is closed.
func (l *Lightbox) Current() (string, bool) {
	if !l.open || l.index >= len(l.images) {
		return "", false
	}
	return l.images[l.index], true
}

func (l *Lightbox) Index() int { return l.index }

// HandleKey moves between images with the arrow keys, clamped at both ends,
// and closes on escape. Other keys are ignored.
func (l *Lightbox) HandleKey(key string) {
	if !l.open {
		return
	}
	switch key {
	case KeyArrowLeft:
		if l.index > 0 {
			l.index--
		}
	case KeyArrowRight:
		if l.index < len(l.images)-1 {
			l.index++
		}
	case KeyEscape:
		l.open = false
	}
}
