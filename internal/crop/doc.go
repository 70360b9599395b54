// Package crop provides the biological response functions for potato growth.
//
// Every function is pure and stateless: instantaneous conditions in,
// dimensionless modifier or flux out. The simulation engine composes them
// once per simulated day:
//
//   - [DLIFromPPFD]: photon flux + photoperiod to daily light integral
//   - [MolPARToMJ]: moles of PAR photons to megajoules
//   - [TempModifier]: triangular temperature response over the cardinal temps
//   - [CO2Modifier]: saturating CO2 response in [0, 1]
//   - [GrowthParams.CanopyInterception]: Beer-Lambert light interception
//   - [GrowthParams.TuberPartition]: fraction of new biomass sent to tubers
//
// # Parameter ordering
//
// The cardinal temperatures (base < optimum < max) and CO2 reference points
// (ref < sat) must be supplied in strictly increasing order. Nothing guards
// this; out-of-order values produce undefined modifier shapes rather than an
// error.
package crop
