package scene

// TerrainHeightScale normalises the fractal terrain amplitude.
//
// The terrain shader sums noise octaves with amplitudes 0.5, 0.25, ... and
// stops once the next amplitude is at or below zoom × terrainResolution.
// This returns 1 over the sum of the amplitudes actually used. The first
// octave is always included, so the result never exceeds 2. A negative
// threshold ends once the amplitude underflows to zero, a NaN one after the
// first octave.
func TerrainHeightScale(zoom, terrainResolution float32) float32 {
	threshold := zoom * terrainResolution

	var scale float32
	height := float32(0.5)
	for {
		scale += height
		height *= 0.5
		if !(height > threshold) || height == 0 {
			break
		}
	}
	return 1.0 / scale
}

// TerrainOctaves is the number of octaves TerrainHeightScale accounted for.
func TerrainOctaves(zoom, terrainResolution float32) int {
	threshold := zoom * terrainResolution

	n := 0
	height := float32(0.5)
	for {
		n++
		height *= 0.5
		if !(height > threshold) || height == 0 {
			break
		}
	}
	return n
}
