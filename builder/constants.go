// Package builder defines shared constants used by the operator builders,
// ensuring consistent error prefixes and size limits across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSDiag is the canonical name for the SDiag constructor.
	MethodSDiag = "SDiag"
	// MethodSDInv is the canonical name for the SDInv constructor.
	MethodSDInv = "SDInv"
	// MethodSpEye is the canonical name for the SpEye constructor.
	MethodSpEye = "SpEye"
	// MethodSpZeros is the canonical name for the SpZeros constructor.
	MethodSpZeros = "SpZeros"
	// MethodKron3 is the canonical name for the Kron3 constructor.
	MethodKron3 = "Kron3"
	// MethodDDx is the canonical name for the DDx constructor.
	MethodDDx = "DDx"
	// MethodAv is the canonical name for the Av constructor.
	MethodAv = "Av"
	// MethodAvExtrap is the canonical name for the AvExtrap constructor.
	MethodAvExtrap = "AvExtrap"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCells is the smallest number of cells a 1-D stencil operator accepts.
// DDx(1) is the 1×2 operator [-1 1]; n = 0 would describe an empty mesh.
const MinCells = 1

// MinExtent is the smallest matrix extent accepted by SpEye and SpZeros.
// Empty (0×k) operators are valid and occur on degenerate tensor meshes.
const MinExtent = 0

//-----------------------------------------------------------------------------
// Stencil Weights
//-----------------------------------------------------------------------------

// halfWeight is the averaging weight of each neighbor in Av and AvExtrap.
const halfWeight = 0.5
