package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Path is the location of the preferences file, relative to the process
// working directory.
const Path = "config/shapegen.json"

// Prefs holds export preferences persisted across runs. Shape parameters are
// not stored here; they live with each shape (defaults plus optional YAML
// override file passed on the command line).
type Prefs struct {
	// DraftDir receives generated meshes. Not tracked in version control
	// except for a placeholder marker.
	DraftDir string `json:"draft_dir"`
	// FinalDir receives promoted, validated meshes and is tracked.
	FinalDir string `json:"final_dir"`
	// MeshCells is the resolution passed to the renderer: the number of
	// evaluation cells along the longest axis of the solid's bounding box.
	MeshCells int `json:"mesh_cells"`
	// Renderer selects the meshing algorithm: "marching-cubes" or
	// "dual-contouring".
	Renderer string `json:"renderer"`
}

// Default returns the preferences used when no config file exists.
// 200 cells keeps a 150 mm part below a second of render time while staying
// well under typical FDM printer resolution.
func Default() Prefs {
	return Prefs{
		DraftDir:  "stl-draft",
		FinalDir:  "stl-final",
		MeshCells: 200,
		Renderer:  "marching-cubes",
	}
}

// Load reads preferences from config/shapegen.json. If the file is missing
// or invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.DraftDir == "" {
		p.DraftDir = Default().DraftDir
	}
	if p.FinalDir == "" {
		p.FinalDir = Default().FinalDir
	}
	if p.MeshCells <= 0 {
		p.MeshCells = Default().MeshCells
	}
	if p.Renderer == "" {
		p.Renderer = Default().Renderer
	}
	return p, nil
}

// Save writes preferences to config/shapegen.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
