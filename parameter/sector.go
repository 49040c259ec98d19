package parameter

import "time"

// Sector geometry
const (
	// SectorAngleDefault is the full sector angle in degrees (half angle 22.5)
	SectorAngleDefault = 45.0

	// SectorAngleMin is the smallest accepted full sector angle in degrees
	SectorAngleMin = 1.0

	// SectorAngleMax is the largest accepted full sector angle in degrees, exclusive of 180
	SectorAngleMax = 179.0

	// DetectionRadiusDefault is the detection radius in scene units
	DetectionRadiusDefault = 15.0

	// DetectionRadiusMin is the smallest accepted detection radius
	DetectionRadiusMin = 0.5

	// DetectionRadiusMax is the largest accepted detection radius
	DetectionRadiusMax = 500.0
)

// Scan bounds, local yaw in degrees
const (
	// ScanMinDefault is the default lower scan bound
	ScanMinDefault = -90.0

	// ScanMaxDefault is the default upper scan bound
	ScanMaxDefault = 90.0

	// ScanBoundLimit bounds both scan limits to [-ScanBoundLimit, ScanBoundLimit]
	ScanBoundLimit = 180.0

	// ScanMinSpan is the minimum span between scan bounds
	ScanMinSpan = 10.0

	// EffectiveScanMinSpan is the minimum span of the sector-narrowed scan bounds
	EffectiveScanMinSpan = 5.0
)

// Detection cadence
const (
	// DetectionPollInterval is the wall-clock interval between precise sector filter passes
	DetectionPollInterval = 100 * time.Millisecond

	// DetectionPollIntervalMin bounds the poll interval from below
	DetectionPollIntervalMin = 10 * time.Millisecond

	// DetectionPollIntervalMax bounds the poll interval from above
	DetectionPollIntervalMax = 2 * time.Second
)
