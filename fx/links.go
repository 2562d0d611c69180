package fx

import "image"

// Link is a clickable navigation box
type Link struct {
	Label  string
	URL    string
	Icon   string // asset name, may be empty
	Bounds image.Rectangle
}

// LayoutLinks places links in a row of equal boxes centred on centerX,
// with the row's top edge at y. Existing Bounds are overwritten.
func LayoutLinks(links []Link, centerX, y, width, height, gap int) {
	if len(links) == 0 {
		return
	}
	total := len(links)*width + (len(links)-1)*gap
	x := centerX - total/2
	for i := range links {
		links[i].Bounds = image.Rect(x, y, x+width, y+height)
		x += width + gap
	}
}

// HitTest returns the index of the link containing (x, y), or -1
func HitTest(links []Link, x, y int) int {
	p := image.Pt(x, y)
	for i, l := range links {
		if p.In(l.Bounds) {
			return i
		}
	}
	return -1
}
