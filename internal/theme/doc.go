// Package theme manages the single active theme of a web application:
// discovering installed themes, activating one per process, merging its
// configuration and publishing its static assets.
package theme
