package scene

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Layout is the desk arrangement file: one floor, one desk slab, and a
// slot per interactive item.
type Layout struct {
	Floor FloorDef  `json:"floor"`
	Desk  DeskDef   `json:"desk"`
	Items []ItemDef `json:"items"`
}

type FloorDef struct {
	Size  float32 `json:"size"`
	Color string  `json:"color"`
}

type DeskDef struct {
	Position [3]float32 `json:"position"`
	Size     [3]float32 `json:"size"`
	Color    string     `json:"color"`
}

type ItemDef struct {
	Kind     string     `json:"kind"`
	Position [3]float32 `json:"position"`
	Color    string     `json:"color,omitempty"`
	Model    string     `json:"model,omitempty"`
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// LoadLayout reads a desk layout from a JSON file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return &layout, nil
}

// DefaultLayout is the built-in desk used when no layout file is found.
func DefaultLayout() *Layout {
	return &Layout{
		Floor: FloorDef{Size: 30, Color: "DarkGray"},
		Desk: DeskDef{
			Position: [3]float32{0, 0, 0},
			Size:     [3]float32{8, 0.2, 4},
			Color:    "Brown",
		},
		Items: []ItemDef{
			{Kind: "laptop", Position: [3]float32{-2.2, 0.35, -0.6}, Color: "DarkGray", Model: "assets/models/laptop.glb"},
			{Kind: "phone", Position: [3]float32{0.9, 0.18, 0.8}, Color: "Black", Model: "assets/models/phone.glb"},
			{Kind: "notebook", Position: [3]float32{-0.5, 0.2, 0.9}, Color: "Maroon", Model: "assets/models/notebook.glb"},
			{Kind: "businessCard", Position: [3]float32{1.8, 0.12, -0.2}, Color: "White", Model: "assets/models/card.glb"},
			{Kind: "folder", Position: [3]float32{0.3, 0.16, -1.0}, Color: "Gold", Model: "assets/models/folder.glb"},
			{Kind: "resume", Position: [3]float32{2.4, 0.12, 0.9}, Color: "Beige", Model: "assets/models/resume.glb"},
			{Kind: "tablet", Position: [3]float32{-2.0, 0.14, 1.1}, Color: "SkyBlue", Model: "assets/models/tablet.glb"},
		},
	}
}
