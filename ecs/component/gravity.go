package component

import "github.com/milk9111/grapple/gravity"

// GravityTracker is the per-body tracker. Apply is the configured setting;
// the gravity systems suspend it while the body is grappling.
type GravityTracker struct {
	Tracker *gravity.Tracker
	Apply   bool
}

var GravityTrackerComponent = NewComponent[GravityTracker]()

// GravitySource is one source registered with the level's manager.
type GravitySource struct {
	Source gravity.Source
}

var GravitySourceComponent = NewComponent[GravitySource]()
