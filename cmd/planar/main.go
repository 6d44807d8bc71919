package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/avhofmann/planar"
	"github.com/avhofmann/planar/draw"
	"github.com/avhofmann/planar/geometry"
)

// Demo of the hull and intersection algorithms. Input on stdin is one
// element per line: "x y" for points, "x1 y1 x2 y2" for segments, depending
// on the chosen algorithm. With --random N a generated instance is used
// instead.
var (
	algorithm = kingpin.Flag("algorithm", "One of naive, graham, wrapping, chans, brute, sweep.").
			Short('a').Default("graham").Enum("naive", "graham", "wrapping", "chans", "brute", "sweep")
	random = kingpin.Flag("random", "Generate a random instance of this size instead of reading stdin.").
		Short('r').Default("0").Int()
	seed  = kingpin.Flag("seed", "Seed for --random.").Default("1").Int64()
	png   = kingpin.Flag("png", "Render the result to this PNG file.").String()
	show  = kingpin.Flag("show", "Cat the PNG to the terminal (iTerm only).").Bool()
	scale = kingpin.Flag("scale", "Pixels per coordinate unit in the PNG.").Default("2").Float64()
)

func main() {
	kingpin.Parse()

	switch *algorithm {
	case "brute", "sweep":
		runIntersections()
	default:
		runHull()
	}
}

func runHull() {
	var points []planar.Point
	if *random > 0 {
		points = geometry.RandomPoints(rand.New(rand.NewSource(*seed)), *random, 400, 400)
	} else {
		points = readPoints(os.Stdin)
	}
	fmt.Printf("Read %d points\n", len(points))

	var (
		hull *planar.Polygon
		err  error
	)
	switch *algorithm {
	case "naive":
		hull, err = planar.NaiveHull(points)
	case "graham":
		hull, err = planar.GrahamScan(points)
	case "wrapping":
		hull, err = planar.GiftWrapping(points)
	case "chans":
		hull, err = planar.ChansHull(points)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	fmt.Printf("Hull has %s vertices:\n", aurora.Green(strconv.Itoa(hull.Len())))
	for _, p := range hull.Points() {
		fmt.Println(p)
	}
	render(func(path string) error { return draw.Hull(points, hull, path, *scale) })
}

func runIntersections() {
	var segments []planar.LineSegment
	if *random > 0 {
		segments = geometry.RandomSegments(rand.New(rand.NewSource(*seed)), *random, 400, 400)
	} else {
		segments = readSegments(os.Stdin)
	}
	fmt.Printf("Read %d segments:\n", len(segments))
	for _, s := range segments {
		fmt.Println(" ", s.DbgName(), s)
	}

	var (
		result *planar.Intersections
		err    error
	)
	switch *algorithm {
	case "brute":
		result, err = planar.BruteForceIntersections(segments)
	case "sweep":
		result, err = planar.PlaneSweepIntersections(segments)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	fmt.Printf("Found %s intersection points:\n", aurora.Green(strconv.Itoa(result.Len())))
	fmt.Println(result)
	render(func(path string) error { return draw.SegmentIntersections(segments, result, path, *scale) })
}

func render(save func(path string) error) {
	if *png == "" {
		return
	}
	if err := save(*png); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	if *show {
		draw.Show(*png)
	}
}

func readPoints(in *os.File) []planar.Point {
	var points []planar.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := parseFloats(scanner.Text(), 2)
		if fields == nil {
			continue
		}
		points = append(points, planar.Point{X: fields[0], Y: fields[1]})
	}
	return points
}

func readSegments(in *os.File) []planar.LineSegment {
	var segments []planar.LineSegment
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := parseFloats(scanner.Text(), 4)
		if fields == nil {
			continue
		}
		segment, err := planar.NewSegment(
			planar.Point{X: fields[0], Y: fields[1]},
			planar.Point{X: fields[2], Y: fields[3]},
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err))
			os.Exit(1)
		}
		segments = append(segments, segment)
	}
	return segments
}

func parseFloats(line string, n int) []float64 {
	parts := strings.Fields(line)
	if len(parts) != n {
		return nil
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil
		}
		out[i] = v
	}
	return out
}
