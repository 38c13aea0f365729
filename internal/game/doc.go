// Package game implements the mini-game interaction engine.
//
// Session drives the round lifecycle shared by every question based game:
//
//	presenting -> evaluating -> correct | incorrect -> presenting | finished
//
// Matching, Sorter, Jumble and Discovery specialize that lifecycle for card
// matching, ordering, letter tiles and flashcards.
//
// All state is owned by one game instance and guarded by its mutex. Timed
// transitions (auto-advance, auto-retry, mismatch clear) run on a Scheduler
// and are tagged with a generation so a callback scheduled before Reset or
// Close never touches the new state.
package game
