// Package geom defines the coordinate model of the wireframe engine.
// Points carry one coordinate per spatial dimension, lines are undirected
// pairs of points, and the Store holds the authoritative line list.
package geom
