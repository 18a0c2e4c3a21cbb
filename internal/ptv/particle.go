package ptv

// Particle describes the physical properties of the seeded particles in a
// scene. It carries no behaviour; downstream estimators use the values for
// force and response-time calculations.
type Particle struct {
	Diameter float64 // meters
	Density  float64 // kg/m^3
}
