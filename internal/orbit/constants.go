package orbit

// Reference values for Earth.
const (
	// GeocentricGM is the standard gravitational parameter of Earth (m³/s²).
	GeocentricGM = 3.9860044e14
	// NominalEarthRadius is the nominal equatorial radius (m).
	NominalEarthRadius = 6.378145e6
	// SurfacePotentialEnergy approximates -GM/R at the surface (J/kg).
	SurfacePotentialEnergy = -6.25e7
)

// Constants holds the physical parameters a Calculator works with.
type Constants struct {
	GM               float64 // m³/s²
	EarthRadius      float64 // m
	SurfacePotential float64 // J/kg
}

// DefaultConstants returns the Earth reference constants.
func DefaultConstants() Constants {
	return Constants{
		GM:               GeocentricGM,
		EarthRadius:      NominalEarthRadius,
		SurfacePotential: SurfacePotentialEnergy,
	}
}
