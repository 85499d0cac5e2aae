// Package geo provides geographic coordinates and great-circle distances.
//
// Distances computed here are straight-line distances over the Earth's surface.
// They are used for line curvature statistics only; routing weights always come
// from the road distances stored in the catalogue.
package geo
