// Package pattern composes step/accent sequences for a clocked trigger
// sequencer and walks them under clock, reset and direction control.
//
// An [Engine] derives a base sequence of Length steps with Fill onsets using
// one of four styles, picks which onsets carry an accent, then rotates the
// result into a Length+Padding step array. Base sequences are rebuilt only
// when Length, Fill, Accents or Style change; the composite is rebuilt on any
// parameter change. A [Sequencer] advances through the composite on clock
// edges and reports the current step, and a [Gate] shapes the step stream
// into trigger, gate or shift-register levels.
//
// Sequencer and Gate run inside a per-sample callback. Processing with
// unchanged parameters does not allocate; a base rebuild (Length, Fill,
// Accents or Style change) allocates through Bjorklund, and Steps/Accents
// return copies. Parameters are clamped rather than rejected.
package pattern
