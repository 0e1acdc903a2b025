package court

import "math"

// AspectRatio is the width/height ratio of a badminton court seen from above.
const AspectRatio = 1.935

// Layout fractions of the court size.
const (
	leftX  = 0.25
	rightX = 0.75
	frontY = 0.3
	backY  = 0.7
	midX   = 0.5
	midY   = 0.5
)

// DefaultLayout returns the starting snapshot for a mode and court size.
// Team 1 starts on the left, team 2 on the right; in doubles the partners
// split front and back. Every ghost equals its own marker, so trails start
// collapsed.
func DefaultLayout(doubles bool, dims Dimensions) Snapshot {
	left := dims.Width * leftX
	right := dims.Width * rightX
	front := dims.Height * frontY
	back := dims.Height * backY

	var players Teams
	if doubles {
		players = Teams{
			Team1: []Coordinate{{X: left, Y: front}, {X: left, Y: back}},
			Team2: []Coordinate{{X: right, Y: back}, {X: right, Y: front}},
		}
	} else {
		players = Teams{
			Team1: []Coordinate{{X: left, Y: front}},
			Team2: []Coordinate{{X: right, Y: back}},
		}
	}
	shuttle := Coordinate{X: dims.Width * midX, Y: dims.Height * midY}

	return Snapshot{
		Players: players,
		Shuttle: shuttle,
		Ghost: Ghost{
			Team1:   append([]Coordinate(nil), players.Team1...),
			Team2:   append([]Coordinate(nil), players.Team2...),
			Shuttle: shuttle,
		},
	}
}

// FitDimensions sizes the court to 90% of the screen while keeping the
// court's aspect ratio.
func FitDimensions(screenWidth, screenHeight float64) Dimensions {
	w := math.Min(screenWidth*0.9, screenHeight*AspectRatio*0.9)
	return Dimensions{Width: w, Height: w / AspectRatio}
}
