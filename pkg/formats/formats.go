// Package formats provides parsers for the asset file formats the scenes load.
//
// Wavefront OBJ meshes are parsed in obj.go into flat, interleaved vertex
// buffers; obj_tangent.go holds the per-face tangent space math.
package formats
