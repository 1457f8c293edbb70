package renderer

import "time"

// FrameStats contains statistics about one rendered frame
type FrameStats struct {
	TotalPixels   int           // Pixels written
	PrimaryHits   int           // Primary rays that hit a primitive
	ShadowRays    int           // Shadow rays cast
	OccludedRays  int           // Shadow rays that found an occluder
	LightsSampled int           // Light evaluations across all hits
	Duration      time.Duration // Wall time of the render
}

// HitRatio returns the fraction of primary rays that hit something
func (s FrameStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.PrimaryHits) / float64(s.TotalPixels)
}

// OcclusionRatio returns the fraction of shadow rays that were blocked
func (s FrameStats) OcclusionRatio() float64 {
	if s.ShadowRays == 0 {
		return 0
	}
	return float64(s.OccludedRays) / float64(s.ShadowRays)
}
