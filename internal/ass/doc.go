// Package ass writes Advanced SubStation Alpha documents in which every cue
// is drawn as a text event over a vector background box.
//
// The output always carries exactly two styles: Default for dialogue text
// and Box-BG for the drawn boxes. Each cue contributes a layer 0 box event
// followed by its layer 1 text event, both positioned at the horizontal
// centre of the canvas and MarginBottom pixels above its bottom edge.
package ass
