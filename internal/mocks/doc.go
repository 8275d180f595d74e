// Package mocks provides hand-written test doubles for the application's
// external capability interfaces. Each mock exposes function fields so
// tests can script behavior per call.
package mocks
