package system

import (
	"log/slog"
	"math"

	"github.com/lixenwraith/sentry/event"
	"github.com/lixenwraith/sentry/parameter"
	"github.com/lixenwraith/sentry/vmath"
)

// sectorValues is the mutable geometry of a sector, copied as a candidate on every setter
type sectorValues struct {
	sectorAngle float64
	radius      float64
	scanMin     float64
	scanMax     float64
}

func (v sectorValues) halfAngle() float64        { return v.sectorAngle / 2 }
func (v sectorValues) effectiveScanMin() float64 { return v.scanMin + v.halfAngle() }
func (v sectorValues) effectiveScanMax() float64 { return v.scanMax - v.halfAngle() }

// spanEpsilon absorbs rounding in spans produced by correctScanBounds
const spanEpsilon = 1e-9

func (v sectorValues) valid() bool {
	return v.sectorAngle > 0 &&
		v.radius > 0 &&
		v.effectiveScanMax()-v.effectiveScanMin() >= parameter.EffectiveScanMinSpan-spanEpsilon
}

// SectorConfig holds the shared sector geometry: angle, radius and scan bounds
// Every setter clamps its input and scan bounds are widened to fit the sector; a sector
// angle that leaves no usable sweep on the current bounds is rejected and the previous
// values are kept. Dependents are notified synchronously via EventSettingsChanged
type SectorConfig struct {
	bus    *event.Bus
	logger *slog.Logger

	values sectorValues
}

// NewSectorConfig creates a configuration from raw values
// Out-of-range values are clamped and scan bounds widened to leave a usable sweep
func NewSectorConfig(bus *event.Bus, logger *slog.Logger, sectorAngle, radius, scanMin, scanMax float64) *SectorConfig {
	if bus == nil {
		bus = event.NewBus()
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &SectorConfig{
		bus:    bus,
		logger: logger.With("component", "sector_config"),
	}

	v := sectorValues{
		sectorAngle: clampSectorAngle(sectorAngle),
		radius:      clampDetectionRadius(radius),
	}
	v.scanMin, v.scanMax = correctScanBounds(scanMin, scanMax, v.sectorAngle)
	if v.scanMin != scanMin || v.scanMax != scanMax {
		c.logger.Warn("scan bounds corrected",
			"requested_min", scanMin, "requested_max", scanMax,
			"applied_min", v.scanMin, "applied_max", v.scanMax)
	}
	c.values = v
	return c
}

// SetSectorAngle sets the full sector angle in degrees
// Returns false if the resulting effective sweep would be unusable
func (c *SectorConfig) SetSectorAngle(degrees float64) bool {
	candidate := c.values
	candidate.sectorAngle = clampSectorAngle(degrees)
	if candidate.sectorAngle != degrees {
		c.logger.Warn("sector angle clamped", "requested", degrees, "applied", candidate.sectorAngle)
	}
	return c.apply(candidate)
}

// SetDetectionRadius sets the detection radius in scene units
func (c *SectorConfig) SetDetectionRadius(radius float64) bool {
	candidate := c.values
	candidate.radius = clampDetectionRadius(radius)
	if candidate.radius != radius {
		c.logger.Warn("detection radius clamped", "requested", radius, "applied", candidate.radius)
	}
	return c.apply(candidate)
}

// SetScanBounds sets the nominal scan bounds in local yaw degrees
// An inverted or too narrow pair is corrected by pulling min below max
func (c *SectorConfig) SetScanBounds(scanMin, scanMax float64) bool {
	candidate := c.values
	candidate.scanMin, candidate.scanMax = correctScanBounds(scanMin, scanMax, candidate.sectorAngle)
	if candidate.scanMin != scanMin || candidate.scanMax != scanMax {
		c.logger.Warn("scan bounds corrected",
			"requested_min", scanMin, "requested_max", scanMax,
			"applied_min", candidate.scanMin, "applied_max", candidate.scanMax)
	}
	return c.apply(candidate)
}

func (c *SectorConfig) apply(candidate sectorValues) bool {
	if !candidate.valid() {
		c.logger.Warn("sector configuration rejected, keeping previous values",
			"sector_angle", candidate.sectorAngle,
			"radius", candidate.radius,
			"effective_span", candidate.effectiveScanMax()-candidate.effectiveScanMin())
		return false
	}
	if candidate == c.values {
		return true
	}
	c.values = candidate
	settings := c.Settings()
	c.bus.Publish(event.Event{Type: event.EventSettingsChanged, Payload: &settings})
	return true
}

// Validate reports whether the current configuration is usable
func (c *SectorConfig) Validate() bool {
	return c.values.valid()
}

func (c *SectorConfig) SectorAngle() float64      { return c.values.sectorAngle }
func (c *SectorConfig) HalfAngle() float64        { return c.values.halfAngle() }
func (c *SectorConfig) DetectionRadius() float64  { return c.values.radius }
func (c *SectorConfig) ScanMin() float64          { return c.values.scanMin }
func (c *SectorConfig) ScanMax() float64          { return c.values.scanMax }
func (c *SectorConfig) EffectiveScanMin() float64 { return c.values.effectiveScanMin() }
func (c *SectorConfig) EffectiveScanMax() float64 { return c.values.effectiveScanMax() }

// Settings returns a snapshot of the configuration
func (c *SectorConfig) Settings() event.SettingsPayload {
	return event.SettingsPayload{
		SectorAngle:      c.values.sectorAngle,
		HalfAngle:        c.values.halfAngle(),
		DetectionRadius:  c.values.radius,
		ScanMin:          c.values.scanMin,
		ScanMax:          c.values.scanMax,
		EffectiveScanMin: c.values.effectiveScanMin(),
		EffectiveScanMax: c.values.effectiveScanMax(),
	}
}

func clampSectorAngle(degrees float64) float64 {
	if math.IsNaN(degrees) {
		return parameter.SectorAngleDefault
	}
	return vmath.Clamp(degrees, parameter.SectorAngleMin, parameter.SectorAngleMax)
}

func clampDetectionRadius(radius float64) float64 {
	if math.IsNaN(radius) {
		return parameter.DetectionRadiusDefault
	}
	return vmath.Clamp(radius, parameter.DetectionRadiusMin, parameter.DetectionRadiusMax)
}

// correctScanBounds clamps both bounds and enforces the minimum span for sectorAngle
// The span must reach ScanMinSpan and leave EffectiveScanMinSpan once the sector is
// subtracted. A short or inverted pair keeps max and pulls min down to fit,
// shifting both up when that would cross the lower limit
func correctScanBounds(scanMin, scanMax, sectorAngle float64) (float64, float64) {
	if math.IsNaN(scanMin) {
		scanMin = parameter.ScanMinDefault
	}
	if math.IsNaN(scanMax) {
		scanMax = parameter.ScanMaxDefault
	}
	limit := parameter.ScanBoundLimit
	scanMin = vmath.Clamp(scanMin, -limit, limit)
	scanMax = vmath.Clamp(scanMax, -limit, limit)

	span := max(parameter.ScanMinSpan, sectorAngle+parameter.EffectiveScanMinSpan)
	if scanMax-scanMin < span {
		scanMin = scanMax - span
		if scanMin < -limit {
			scanMin = -limit
			scanMax = scanMin + span
		}
	}
	return scanMin, scanMax
}
