// Package ui contains the Bubble Tea program for budgr.
//
// The screens themselves live in internal/ui/screen: a dispatcher owns the
// active screen, runs its handler once per key press and applies the
// transition table. This package only adapts that engine to Bubble Tea.
//
//   - Normalize turns tea.KeyMsg values into screen inputs using a bubbles/key
//     binding table. ctrl+c never reaches the screens; it quits directly.
//   - Model.Update routes messages through a typed handler registry, ticks the
//     dispatcher for key presses and returns tea.Quit once the screens reach
//     Terminated.
//   - The dispatcher draws through a renderer that stores the last layout on
//     the model. View turns that layout into text with the shared theme.
//
// Saving happens after the program exits, in internal/app.
package ui
