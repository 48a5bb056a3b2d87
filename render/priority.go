package render

// Priority determines compositor phase order. Lower values render first;
// each phase commits to the canvas before the next begins
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityGround
	PriorityYSorted
	PriorityParticles
	PriorityLabels
	PriorityPlacement
	PriorityNightMask
	PriorityIndicators
	PriorityLights
	PriorityMinimap
)
