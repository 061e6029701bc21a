package main

type point struct {
	X, Y int
}

// Item is a shape together with the id the surface assigned it.
type Item struct {
	ID    int
	Shape Shape
}

type snapshot struct {
	width  int
	height int
	items  []Item
}

// drawing is a decoded save file, validated but not yet applied.
type drawing struct {
	width  int
	height int
	shapes []Shape
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = Item{ID: it.ID, Shape: it.Shape.Clone()}
	}
	return out
}
