package sand

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
)

const (
	terrainAlpha   = 2
	terrainBeta    = 2
	terrainOctaves = 3

	terrainSurface   = 0.62
	terrainRelief    = 0.18
	terrainSandDepth = 6
	terrainPocketCut = 0.28
)

func buildScene(g *Grid, name string, seed int64) {
	switch name {
	case SceneBox:
		buildBox(g)
	case SceneTerrain:
		buildTerrain(g, seed)
	}
}

// buildBox lays out a walled basin with a sand heap, a water pool, a wooden
// shelf and an oil slick.
func buildBox(g *Grid) {
	w, h := g.Width(), g.Height()
	g.Fill(Wall, 0, h-1, w, h)
	g.Fill(Wall, 0, 0, 1, h)
	g.Fill(Wall, w-1, 0, w, h)

	g.Place(Sand, w/4, h/3, max(h/8, 1))
	g.Fill(Water, w/2, h*3/4, w-1, h-1)
	g.Fill(Wood, w/8, h/2, w/2, h/2+max(h/60, 1))
	g.Fill(Oil, w*5/8, h/2, w*7/8, h/2+max(h/40, 1))
}

// buildTerrain carves a noise-driven landscape: stone bedrock under a sand
// crust, with water and oil pockets trapped in the rock.
func buildTerrain(g *Grid, seed int64) {
	w, h := g.Width(), g.Height()
	p := perlin.NewPerlin(terrainAlpha, terrainBeta, terrainOctaves, seed)
	for x := 0; x < w; x++ {
		n := p.Noise1D(float64(x) / float64(w) * 4)
		surface := int(math.Round(float64(h) * (terrainSurface + terrainRelief*n)))
		surface = min(max(surface, 1), h-1)
		for y := surface; y < h; y++ {
			depth := y - surface
			if depth < terrainSandDepth {
				g.Set(x, y, Sand)
				continue
			}
			v := p.Noise2D(float64(x)/24, float64(y)/24)
			switch {
			case v > terrainPocketCut:
				g.Set(x, y, Water)
			case v < -terrainPocketCut-0.1:
				g.Set(x, y, Oil)
			default:
				g.Set(x, y, Stone)
			}
		}
	}
	g.Fill(Wall, 0, h-1, w, h)
}
