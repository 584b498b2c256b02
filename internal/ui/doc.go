// Package ui contains the Bubble Tea program that renders the browser.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each message type
//     is routed through a typed handler registry so key presses, resizes, bus
//     wake-ups and frame ticks each have a focused handler.
//   - Key presses go to the focused widget first. Keys it does not consume are
//     looked up in the binding table and the bound command is posted.
//   - Every Update ends in finishUpdate, which drains the command bus through
//     the widget chain (focused widget, then the rest in a fixed order, then
//     the application) and schedules the next frame while tickers are
//     registered.
//
// Widgets:
//   - addressBar shows the current URL and edits a new one.
//   - documentView renders gemtext in a viewport and follows numbered links.
//   - promptBar reads ":" commands and answers input requests.
//   - historyPanel, bindingsPanel and prefsPanel are overlays that replace the
//     document while open.
//
// The model never talks to the fetcher or the history codec directly; it only
// reads state from the Engine and posts commands.
package ui
