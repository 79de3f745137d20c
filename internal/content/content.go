// Package content maps modal ids to the text a station surface shows.
package content

import (
	"encoding/json"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

type Section struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}

type Entry struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Catalogue is an ordered modal id -> Entry registry.
type Catalogue struct {
	entries *orderedmap.OrderedMap[string, Entry]
}

func NewCatalogue() *Catalogue {
	return &Catalogue{entries: orderedmap.NewOrderedMap[string, Entry]()}
}

// Register adds or replaces the entry for modal.
func (c *Catalogue) Register(modal string, e Entry) {
	c.entries.Set(modal, e)
}

// Lookup is a pass-through: unknown modal ids report false.
func (c *Catalogue) Lookup(modal string) (Entry, bool) {
	return c.entries.Get(modal)
}

// Modals returns the registered ids in registration order.
func (c *Catalogue) Modals() []string {
	out := make([]string, 0, c.entries.Len())
	for el := c.entries.Front(); el != nil; el = el.Next() {
		out = append(out, el.Key)
	}
	return out
}

func (c *Catalogue) Len() int {
	return c.entries.Len()
}

type catalogueFile struct {
	Modals []struct {
		ID string `json:"id"`
		Entry
	} `json:"modals"`
}

// Decode reads {"modals": [{"id": ..., "title": ..., "sections": [...]}]}.
// Later ids override earlier ones.
func Decode(data []byte) (*Catalogue, error) {
	var f catalogueFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	c := NewCatalogue()
	for _, m := range f.Modals {
		if m.ID == "" {
			return nil, fmt.Errorf("parse content: modal without id")
		}
		c.Register(m.ID, m.Entry)
	}
	return c, nil
}

// Merge registers every entry of other on top of c.
func (c *Catalogue) Merge(other *Catalogue) {
	for el := other.entries.Front(); el != nil; el = el.Next() {
		c.Register(el.Key, el.Value)
	}
}

// Default returns the stock text for the four stock stations.
func Default() *Catalogue {
	c := NewCatalogue()
	c.Register("experience-modal", Entry{
		Title: "Experience",
		Sections: []Section{
			{Heading: "Industry", Lines: []string{
				"Engineering roles across logistics and manufacturing.",
				"Drive around the complex to see the rest of the map.",
			}},
		},
	})
	c.Register("skills-modal", Entry{
		Title: "Skills",
		Sections: []Section{
			{Heading: "Languages", Lines: []string{"Go", "TypeScript", "SQL"}},
			{Heading: "Tools", Lines: []string{"Linux", "Docker", "Git"}},
		},
	})
	c.Register("projects-modal", Entry{
		Title: "Projects",
		Sections: []Section{
			{Heading: "Selected", Lines: []string{
				"stationdrive: this driving demo.",
			}},
		},
	})
	c.Register("about-modal", Entry{
		Title: "About",
		Sections: []Section{
			{Heading: "Controls", Lines: []string{
				"W / Up: accelerate",
				"S / Down: brake and reverse",
				"A D / Left Right: steer",
				"E: open a station, Escape: close",
			}},
		},
	})
	return c
}
