// Package motion is a frame-driven animation engine for scroll-heavy pages.
//
// An Engine owns the clock, the scroll position and the easing registry. Hosts call
// Engine.Scroll and Engine.Resize from their input handling and Engine.Tick once per frame.
// Tweens animate properties of a Target; Timelines place tweens and other timelines on a shared
// time axis; ScrollLinks bind either to a range of document scroll. RevealRegistry,
// Transitioner and PointerFollower are built on top of those three.
//
// Nothing in this package is safe for concurrent use.
package motion
