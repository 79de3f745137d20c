package game

import (
	"fmt"

	"stationdrive/internal/content"
	"stationdrive/internal/proximity"
	"stationdrive/internal/sim"
)

// PromptText is the interaction hint for the current station, empty for none.
func PromptText(s *proximity.Station) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("Press E to open %s", s.Title)
}

// Modal tracks the open content surface. At most one is open.
type Modal struct {
	Catalogue *content.Catalogue

	open  bool
	id    string
	entry content.Entry
}

// Open shows the entry for req.Modal. Unknown ids fall back to the station title.
func (m *Modal) Open(req sim.ContentRequest) {
	entry, ok := content.Entry{}, false
	if m.Catalogue != nil {
		entry, ok = m.Catalogue.Lookup(req.Modal)
	}
	if !ok {
		entry = content.Entry{Title: req.Title}
	}
	m.open = true
	m.id = req.Modal
	m.entry = entry
}

func (m *Modal) Close() {
	m.open = false
	m.id = ""
	m.entry = content.Entry{}
}

func (m *Modal) IsOpen() bool { return m.open }

func (m *Modal) ID() string { return m.id }

func (m *Modal) Entry() content.Entry { return m.entry }

// Instructions is the start-up help overlay, hidden after a timeout.
type Instructions struct {
	Timeout float32
	elapsed float32
}

func (i *Instructions) Update(dt float32) {
	i.elapsed += dt
}

func (i *Instructions) Visible() bool {
	return i.elapsed < i.Timeout
}

// Alpha fades the overlay out over its last second.
func (i *Instructions) Alpha() float32 {
	left := i.Timeout - i.elapsed
	switch {
	case left <= 0:
		return 0
	case left >= 1:
		return 1
	default:
		return left
	}
}
