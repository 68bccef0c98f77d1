// Package geometry sizes subtitle background boxes and renders them as ASS
// vector drawings.
//
// Boxes are centred on their own origin: a box with half extents (hw, hh)
// spans [-hw, hw] horizontally and [-hh, hh] vertically in ASS drawing
// coordinates, where y grows downward.
package geometry
