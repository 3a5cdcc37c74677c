package cubesim

// The rotation engine models every sticker as a facelet with a fixed lattice
// position (coordinates in {-1,0,1}) and an outward unit normal. Turning a
// layer rotates position and normal of each facelet in the layer by quarter
// turns around the layer's axis and relocates the color to wherever the
// rotated (position, normal) pair lands. The (position, normal) pair is
// unique per facelet, so the relocation is a pure permutation of the 54
// color slots.

// axis identifies a rotation axis of the cube lattice.
type axis int

const (
	axisX axis = 0
	axisY axis = 1
	axisZ axis = 2
)

// vec3 is a lattice vector with coordinates in {-1,0,1}.
type vec3 struct {
	x, y, z int8
}

// coord returns the vector's coordinate along the given axis.
func (v vec3) coord(a axis) int8 {
	switch a {
	case axisX:
		return v.x
	case axisY:
		return v.y
	default:
		return v.z
	}
}

// rotX rotates v by turns quarter turns around X (right-hand rule).
func rotX(v vec3, turns int) vec3 {
	switch turns % 4 {
	case 1:
		return vec3{v.x, -v.z, v.y}
	case 2:
		return vec3{v.x, -v.y, -v.z}
	case 3:
		return vec3{v.x, v.z, -v.y}
	default:
		return v
	}
}

// rotY rotates v by turns quarter turns around Y (right-hand rule).
func rotY(v vec3, turns int) vec3 {
	switch turns % 4 {
	case 1:
		return vec3{v.z, v.y, -v.x}
	case 2:
		return vec3{-v.x, v.y, -v.z}
	case 3:
		return vec3{-v.z, v.y, v.x}
	default:
		return v
	}
}

// rotZ rotates v by turns quarter turns around Z (right-hand rule).
func rotZ(v vec3, turns int) vec3 {
	switch turns % 4 {
	case 1:
		return vec3{v.y, -v.x, v.z}
	case 2:
		return vec3{-v.x, -v.y, v.z}
	case 3:
		return vec3{-v.y, v.x, v.z}
	default:
		return v
	}
}

// rotate rotates v around the given axis by turns quarter turns.
func rotate(a axis, v vec3, turns int) vec3 {
	switch a {
	case axisX:
		return rotX(v, turns)
	case axisY:
		return rotY(v, turns)
	default:
		return rotZ(v, turns)
	}
}

// faceNormals holds the outward unit normal of each face, indexed by CubeFace.
var faceNormals = [6]vec3{
	CubeFaceU: {0, 1, 0},
	CubeFaceD: {0, -1, 0},
	CubeFaceF: {0, 0, 1},
	CubeFaceB: {0, 0, -1},
	CubeFaceR: {1, 0, 0},
	CubeFaceL: {-1, 0, 0},
}

// placement is a facelet's geometric identity: lattice position plus
// outward normal.
type placement struct {
	pos    vec3
	normal vec3
}

// faceletRef addresses one of the 54 color slots.
type faceletRef struct {
	face  CubeFace
	index int
}

// faceletPlacements maps (face, index) to (position, normal) and
// placementIndex is its inverse. Both are built once at package init and
// never mutated afterwards.
var (
	faceletPlacements [6][9]placement
	placementIndex    map[placement]faceletRef
)

// faceletPosition returns the lattice position of sticker index i (row-major
// 0..8) on the given face. The per-face layouts fix how row/column indices
// map onto the lattice; each face reads left-to-right, top-to-bottom when
// viewed from outside the cube.
func faceletPosition(f CubeFace, i int) vec3 {
	r, c := int8(i/3), int8(i%3)
	switch f {
	case CubeFaceF:
		return vec3{c - 1, 1 - r, 1}
	case CubeFaceB:
		return vec3{1 - c, 1 - r, -1} // flip X
	case CubeFaceR:
		return vec3{1, 1 - r, c - 1}
	case CubeFaceL:
		return vec3{-1, 1 - r, 1 - c} // flip Z
	case CubeFaceU:
		return vec3{c - 1, 1, r - 1}
	default: // CubeFaceD
		return vec3{c - 1, -1, 1 - r} // flip Z
	}
}

func init() {
	placementIndex = make(map[placement]faceletRef, 54)
	for f := CubeFace(0); f < 6; f++ {
		n := faceNormals[f]
		for i := 0; i < 9; i++ {
			p := placement{pos: faceletPosition(f, i), normal: n}
			faceletPlacements[f][i] = p
			placementIndex[p] = faceletRef{face: f, index: i}
		}
	}
}

// layerTurn describes the canonical 90-degree clockwise operation of one
// base letter: which axis, which layer along that axis, and the signed
// quarter-turn direction. "Clockwise" is as seen looking at the turned
// face from outside the cube. Slices share the direction of the outer face
// they follow: M turns like L, E like D, S like F.
type layerTurn struct {
	axis  axis
	layer int8
	dir   int
}

// baseTurn returns the canonical clockwise operation for a base letter.
// This table is the single source of truth the inverse and round-trip
// guarantees depend on.
func baseTurn(f Face) layerTurn {
	switch f {
	case FaceU:
		return layerTurn{axisY, 1, 1}
	case FaceD:
		return layerTurn{axisY, -1, -1}
	case FaceR:
		return layerTurn{axisX, 1, -1}
	case FaceL:
		return layerTurn{axisX, -1, 1}
	case FaceF:
		return layerTurn{axisZ, 1, -1}
	case FaceB:
		return layerTurn{axisZ, -1, 1}
	case FaceM:
		return layerTurn{axisX, 0, 1} // turns like L
	case FaceE:
		return layerTurn{axisY, 0, -1} // turns like D
	default: // FaceS
		return layerTurn{axisZ, 0, -1} // turns like F
	}
}

// rotateLayer rotates one layer of the cube by turns quarter turns around
// the given axis. Facelets outside the layer are copied through unchanged.
// A fresh next-state buffer is written so that reads never see partially
// moved colors.
func (c *Cube) rotateLayer(a axis, layer int8, turns int) {
	t := (turns%4 + 4) % 4
	if t == 0 {
		return
	}

	next := c.Facelets
	for f := CubeFace(0); f < 6; f++ {
		for i := 0; i < 9; i++ {
			p := faceletPlacements[f][i]
			if p.pos.coord(a) != layer {
				continue
			}
			dst := placementIndex[placement{
				pos:    rotate(a, p.pos, t),
				normal: rotate(a, p.normal, t),
			}]
			next[dst.face][dst.index] = c.Facelets[f][i]
		}
	}
	c.Facelets = next
}

// applyBaseMove applies the canonical clockwise operation of a base letter
// once.
func (c *Cube) applyBaseMove(f Face) {
	lt := baseTurn(f)
	c.rotateLayer(lt.axis, lt.layer, lt.dir)
}
