// objtool is a CLI utility for inspecting Wavefront OBJ meshes as the
// renderer will see them.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/webgl-scenes/internal/logger"
	"github.com/Faultbox/webgl-scenes/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "dump":
		cmdDump(args)
	case "verify":
		cmdVerify(args)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stdout)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `objtool - Wavefront OBJ mesh utility

Usage:
  objtool <command> [options] <file.obj>

Commands:
  info   [-tangents] [-v] <file.obj>        Show counts, stride and bounds
  dump   [-tangents] [-n N] [-v] <file.obj> Print the interleaved vertex buffer
  verify [-v] <file.obj>                    Strict tangent-space parse, exit 1 on error

Examples:
  objtool info models/spaceship.obj
  objtool dump -tangents -n 6 models/cube.obj
  objtool verify models/planet.obj`)
}

// meshFlags are the options shared by all commands.
type meshFlags struct {
	tangents *bool
	verbose  *bool
}

func newFlagSet(name string) (*flag.FlagSet, meshFlags) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs, meshFlags{
		tangents: fs.Bool("tangents", false, "Emit tangent/bitangent layout (stride 14)"),
		verbose:  fs.Bool("v", false, "Verbose logging"),
	}
}

func (f meshFlags) options(strict bool) formats.OBJOptions {
	opts := formats.OBJOptions{Strict: strict}
	if *f.tangents {
		opts.Layout = formats.LayoutTangent
	}
	return opts
}

func initLogger(verbose bool) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
}

func parseMesh(path string, opts formats.OBJOptions) *formats.OBJMesh {
	log := logger.Named("obj")

	mesh, err := formats.ParseOBJFile(path, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, w := range mesh.Warnings {
		log.Warn(w, zap.String("file", path))
	}
	log.Debug("parsed mesh",
		zap.String("file", path),
		zap.Stringer("layout", mesh.Layout),
		zap.Int("triangles", mesh.Triangles),
		zap.Int("floats", len(mesh.Vertices)))
	return mesh
}

func cmdInfo(args []string) {
	fs, mf := newFlagSet("info")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info [-tangents] <file.obj>")
		os.Exit(1)
	}
	initLogger(*mf.verbose)
	defer logger.Sync()

	mesh := parseMesh(fs.Arg(0), mf.options(false))
	printInfo(os.Stdout, fs.Arg(0), mesh)
}

func cmdDump(args []string) {
	fs, mf := newFlagSet("dump")
	limit := fs.Int("n", 0, "Limit output to N vertices (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool dump [-tangents] [-n N] <file.obj>")
		os.Exit(1)
	}
	initLogger(*mf.verbose)
	defer logger.Sync()

	mesh := parseMesh(fs.Arg(0), mf.options(false))
	printVertices(os.Stdout, mesh, *limit)
}

func cmdVerify(args []string) {
	fs, mf := newFlagSet("verify")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool verify <file.obj>")
		os.Exit(1)
	}
	initLogger(*mf.verbose)
	defer logger.Sync()

	*mf.tangents = true
	mesh := parseMesh(fs.Arg(0), mf.options(true))
	fmt.Printf("OK: %s (%d triangles)\n", fs.Arg(0), mesh.Triangles)
}

func printInfo(w io.Writer, path string, mesh *formats.OBJMesh) {
	min, max := mesh.Bounds()

	fmt.Fprintf(w, "File:      %s\n", path)
	fmt.Fprintf(w, "Layout:    %s (stride %d)\n", mesh.Layout, mesh.Stride())
	fmt.Fprintf(w, "Positions: %d\n", len(mesh.Positions))
	fmt.Fprintf(w, "UVs:       %d\n", len(mesh.UVs))
	fmt.Fprintf(w, "Normals:   %d\n", len(mesh.Normals))
	fmt.Fprintf(w, "Triangles: %d\n", mesh.Triangles)
	fmt.Fprintf(w, "Vertices:  %d (%d floats, %.1f KB)\n",
		mesh.VertexCount(), len(mesh.Vertices), float64(len(mesh.Vertices)*4)/1024)
	fmt.Fprintf(w, "Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)

	if len(mesh.Warnings) > 0 {
		fmt.Fprintf(w, "Warnings:  %d\n", len(mesh.Warnings))
	}
}

func printVertices(w io.Writer, mesh *formats.OBJMesh, limit int) {
	n := mesh.VertexCount()
	if limit > 0 && limit < n {
		n = limit
	}

	for i := 0; i < n; i++ {
		v := mesh.Vertex(i)
		parts := make([]string, len(v))
		for j, f := range v {
			parts[j] = fmt.Sprintf("%g", f)
		}
		fmt.Fprintf(w, "%6d: %s\n", i, strings.Join(parts, " "))
	}
}
