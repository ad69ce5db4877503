// Package geometry converts shapefiles and GeoJSON into the WKT polygons used in catalogue filters.
package geometry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/geojson"
	"github.com/jonas-p/go-shp"
)

var (
	ErrNoGeometry   = errors.New("no geometry")
	ErrNotPolygon   = errors.New("geometry is not a polygon")
	ErrMultiFeature = errors.New("feature collection must contain exactly one feature")
)

// RingToWKT returns POLYGON((x y, x y, ...)) from the coordinates of a ring
func RingToWKT(ring [][2]float64) string {
	points := make([]string, len(ring))
	for i, p := range ring {
		points[i] = strconv.FormatFloat(p[0], 'f', -1, 64) + " " + strconv.FormatFloat(p[1], 'f', -1, 64)
	}
	return "POLYGON((" + strings.Join(points, ", ") + "))"
}

// ShapeFileToWKT returns the exterior ring of the first shape of the shapefile as a WKT polygon
func ShapeFileToWKT(path string) (string, error) {
	r, err := shp.Open(path)
	if err != nil {
		return "", fmt.Errorf("ShapeFileToWKT.Open: %w", err)
	}
	defer r.Close()

	if !r.Next() {
		return "", fmt.Errorf("ShapeFileToWKT[%s]: %w", path, ErrNoGeometry)
	}
	_, shape := r.Shape()
	var points []shp.Point
	var parts []int32
	switch s := shape.(type) {
	case *shp.Polygon:
		points, parts = s.Points, s.Parts
	case *shp.PolygonZ:
		points, parts = s.Points, s.Parts
	case *shp.PolygonM:
		points, parts = s.Points, s.Parts
	default:
		return "", fmt.Errorf("ShapeFileToWKT[%s]: %w (%T)", path, ErrNotPolygon, shape)
	}

	end := len(points)
	if len(parts) > 1 {
		end = int(parts[1])
	}
	if len(parts) == 0 || end <= int(parts[0]) {
		return "", fmt.Errorf("ShapeFileToWKT[%s]: %w", path, ErrNoGeometry)
	}
	ring := make([][2]float64, 0, end-int(parts[0]))
	for _, p := range points[parts[0]:end] {
		ring = append(ring, [2]float64{p.X, p.Y})
	}
	return RingToWKT(ring), nil
}

// GeoJSONToWKT returns the exterior ring of a GeoJSON polygon as a WKT polygon.
// The input is a Polygon, a Feature or a FeatureCollection of exactly one Feature.
// For a MultiPolygon, the first polygon is used.
func GeoJSONToWKT(data []byte) (string, error) {
	envelope := struct {
		Type     string          `json:"type"`
		Geometry json.RawMessage `json:"geometry"`
		Features []struct {
			Geometry json.RawMessage `json:"geometry"`
		} `json:"features"`
	}{}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", fmt.Errorf("GeoJSONToWKT.Unmarshal: %w", err)
	}
	switch envelope.Type {
	case "Feature":
		data = envelope.Geometry
	case "FeatureCollection":
		if len(envelope.Features) != 1 {
			return "", fmt.Errorf("GeoJSONToWKT: %w (found %d)", ErrMultiFeature, len(envelope.Features))
		}
		data = envelope.Features[0].Geometry
	}
	if len(data) == 0 || string(data) == "null" {
		return "", fmt.Errorf("GeoJSONToWKT: %w", ErrNoGeometry)
	}

	var g geojson.Geometry
	if err := g.UnmarshalJSON(data); err != nil {
		return "", fmt.Errorf("GeoJSONToWKT.UnmarshalJSON: %w", err)
	}
	ring, err := exteriorRing(g.Geometry)
	if err != nil {
		return "", fmt.Errorf("GeoJSONToWKT: %w", err)
	}
	return RingToWKT(ring), nil
}

// GeoJSONObjectToWKT is GeoJSONToWKT for a GeoJSON string, raw bytes or a decoded object (map...)
func GeoJSONObjectToWKT(v interface{}) (string, error) {
	switch v := v.(type) {
	case string:
		return GeoJSONToWKT([]byte(v))
	case []byte:
		return GeoJSONToWKT(v)
	case json.RawMessage:
		return GeoJSONToWKT(v)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("GeoJSONObjectToWKT.Marshal: %w", err)
	}
	return GeoJSONToWKT(data)
}

func exteriorRing(g geom.Geometry) ([][2]float64, error) {
	var rings [][][2]float64
	switch g := g.(type) {
	case geom.Polygon:
		rings = g.LinearRings()
	case *geom.Polygon:
		rings = g.LinearRings()
	case geom.MultiPolygon:
		if polygons := g.Polygons(); len(polygons) > 0 {
			rings = polygons[0]
		}
	case *geom.MultiPolygon:
		if polygons := g.Polygons(); len(polygons) > 0 {
			rings = polygons[0]
		}
	default:
		return nil, fmt.Errorf("%w (%T)", ErrNotPolygon, g)
	}
	if len(rings) == 0 || len(rings[0]) == 0 {
		return nil, ErrNoGeometry
	}
	return rings[0], nil
}
