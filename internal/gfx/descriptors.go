package gfx

// ProgramInfo holds a linked program and the locations resolved for it.
type ProgramInfo struct {
	Program          uint32
	UniformLocations map[string]int32
	AttribLocations  map[string]uint32
}

// Uniform returns the location of name, or -1 when the program has none.
// Uploads to -1 are ignored by the driver.
func (p ProgramInfo) Uniform(name string) int32 {
	if loc, ok := p.UniformLocations[name]; ok {
		return loc
	}
	return -1
}

// Buffer describes an uploaded vertex buffer and how to read it.
type Buffer struct {
	Data          uint32
	VertexCount   int32
	NumComponents int32
	Type          uint32
	Normalize     bool
	Stride        int32
	Offset        int
}
