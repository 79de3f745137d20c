package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"stationdrive/internal/proximity"
)

// DefaultStations returns the four stations of the stock map in scan order.
// The experience complex is the large one.
func DefaultStations() []Station {
	return []Station{
		{
			Station: proximity.Station{
				ID:              "experience",
				Title:           "Experience",
				Modal:           "experience-modal",
				Position:        mgl32.Vec3{40, 0, 40},
				ProximityRadius: 30,
			},
			Color: 0xff6b6b,
			Large: true,
		},
		{
			Station: proximity.Station{
				ID:       "skills",
				Title:    "Skills",
				Modal:    "skills-modal",
				Position: mgl32.Vec3{-40, 0, 40},
			},
			Color: 0x4ecdc4,
		},
		{
			Station: proximity.Station{
				ID:       "projects",
				Title:    "Projects",
				Modal:    "projects-modal",
				Position: mgl32.Vec3{40, 0, -40},
			},
			Color: 0x45b7d1,
		},
		{
			Station: proximity.Station{
				ID:       "about",
				Title:    "About",
				Modal:    "about-modal",
				Position: mgl32.Vec3{-40, 0, -40},
			},
			Color: 0x96ceb4,
		},
	}
}
