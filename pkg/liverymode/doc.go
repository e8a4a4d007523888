// Package liverymode switches the game between its normal settings and a
// "livery mode" tuned for painting: DDS generation, a windowed resolution
// and lowered volumes.
//
// Livery mode is a two-state machine over appstate.State. Entering stores the
// menu settings it overwrites as the backup; exiting writes the backup back
// and clears it. A failed transition leaves the state where it was, so it
// can be retried.
//
// Enter and Exit work on an already loaded state and settings view. Toggle
// wires them to the files of an install tree and persists the state.
package liverymode
