package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/render/dc"
	"github.com/deadsy/sdfx/sdf"

	"shapegen/internal/logger"
	"shapegen/internal/solid"
)

// Options controls STL rendering and placement.
type Options struct {
	// Dir receives the output file; created if missing.
	Dir string
	// Cells is the meshing resolution along the longest bounding box axis.
	Cells int
	// Renderer is "marching-cubes" (default) or "dual-contouring".
	Renderer string
	// Force overwrites an existing output. Without it an existing file is
	// kept untouched so repeated runs are idempotent.
	Force bool
}

// dcRenderer adapts dc.DualContouringV2, whose Render still emits triangles
// on a channel, to the sdf.Triangle3Writer-based render.Render3 interface.
type dcRenderer struct {
	*dc.DualContouringV2
}

func (r dcRenderer) Render(sdf3 sdf.SDF3, output sdf.Triangle3Writer) {
	ch := make(chan []*sdf.Triangle3)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ts := range ch {
			output.Write(ts) //nolint:errcheck // matches render.Render3 contract
		}
	}()
	r.DualContouringV2.Render(sdf3, ch)
	close(ch)
	wg.Wait()
}

// Renderer returns the meshing renderer for the given name, meshing cells
// cells along the longest bounding box axis.
func Renderer(name string, cells int) (render.Render3, error) {
	switch name {
	case "", "marching-cubes":
		return render.NewMarchingCubesOctree(cells), nil
	case "dual-contouring":
		return dcRenderer{dc.NewDualContouringDefault(cells)}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want marching-cubes or dual-contouring)", name)
	}
}

// Filename returns the output file name for a part name. Names that already
// carry the .stl suffix pass through unchanged.
func Filename(name string) string {
	if strings.HasSuffix(name, ".stl") {
		return name
	}
	return name + ".stl"
}

// Write renders the solid and writes <dir>/<name>.stl. It refuses empty or
// degenerate solids before rendering. Returns the output path and whether a
// file was actually written (false when skipped as already present).
func Write(log *logger.Logger, name string, s solid.Solid, opts Options) (string, bool, error) {
	if s.IsEmpty() {
		return "", false, fmt.Errorf("solid %q is empty or degenerate", name)
	}
	cells := opts.Cells
	if cells <= 0 {
		cells = 200
	}
	r, err := Renderer(opts.Renderer, cells)
	if err != nil {
		return "", false, err
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return "", false, fmt.Errorf("create output dir %s: %w", opts.Dir, err)
	}
	path := filepath.Join(opts.Dir, Filename(name))
	if _, err := os.Stat(path); err == nil {
		if !opts.Force {
			log.Info("skipping existing file", "path", path)
			return path, false, nil
		}
		// Remove the stale file first so a failed render cannot leave the
		// old bytes masquerading as fresh output.
		if err := os.Remove(path); err != nil {
			return "", false, fmt.Errorf("remove stale output %s: %w", path, err)
		}
	}

	render.ToSTL(s.SDF(), path, r)

	info, err := os.Stat(path)
	if err != nil {
		return "", false, fmt.Errorf("render produced no output for %q: %w", name, err)
	}
	if info.Size() == 0 {
		return "", false, fmt.Errorf("render produced an empty mesh for %q", name)
	}
	log.Info("exported", "path", path, "bytes", info.Size())
	return path, true, nil
}

// Promote moves a draft mesh into the final directory. The file is renamed,
// never rewritten, so its bytes are unchanged by promotion.
func Promote(draftDir, finalDir, name string) (string, error) {
	src := filepath.Join(draftDir, Filename(name))
	if _, err := os.Stat(src); err != nil {
		return "", fmt.Errorf("no draft mesh %s: %w", src, err)
	}
	if err := os.MkdirAll(finalDir, 0755); err != nil {
		return "", fmt.Errorf("create final dir %s: %w", finalDir, err)
	}
	dst := filepath.Join(finalDir, Filename(name))
	if _, err := os.Stat(dst); err == nil {
		return "", fmt.Errorf("final mesh %s already exists", dst)
	}
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("promote %s: %w", src, err)
	}
	return dst, nil
}
