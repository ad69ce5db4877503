package geometry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/wkt"
	"github.com/jonas-p/go-shp"
)

const expectedWKT = "POLYGON((10.172406299744779 55.48259118004532, 10.172406299744779 55.38234270718456, 10.42371976928382 55.38234270718456, 10.42371976928382 55.48259118004532, 10.172406299744779 55.48259118004532))"

const polygon = `{ "type": "Polygon", "coordinates": [ [ [ 10.172406299744779, 55.482591180045318 ], [ 10.172406299744779, 55.382342707184563 ], [ 10.423719769283821, 55.382342707184563 ], [ 10.423719769283821, 55.482591180045318 ], [ 10.172406299744779, 55.482591180045318 ] ] ] }`

func TestGeoJSONToWKT(t *testing.T) {
	inputs := []string{
		polygon,
		`{ "type": "Feature", "properties": { }, "geometry": ` + polygon + ` }`,
		`{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":` + polygon + `}]}`,
		`{"type":"MultiPolygon","coordinates":[[[[10.172406299744779,55.482591180045318],[10.172406299744779,55.382342707184563],[10.423719769283821,55.382342707184563],[10.423719769283821,55.482591180045318],[10.172406299744779,55.482591180045318]]],[[[0,0],[1,0],[1,1],[0,0]]]]}`,
	}
	for _, in := range inputs {
		s, err := GeoJSONToWKT([]byte(in))
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if s != expectedWKT {
			t.Errorf("expected %s, got %s", expectedWKT, s)
		}
	}

	s, err := GeoJSONToWKT([]byte(`{"type":"FeatureCollection","features":[{"type":"Feature","properties":{ },"geometry":{"coordinates":[[[17.58127378553624,59.88489715357605],[17.58127378553624,59.80687027682205],[17.73996723627809,59.80687027682205],[17.73996723627809,59.88489715357605],[17.58127378553624,59.88489715357605]]],"type":"Polygon" } } ] }`))
	expected := "POLYGON((17.58127378553624 59.88489715357605, 17.58127378553624 59.80687027682205, 17.73996723627809 59.80687027682205, 17.73996723627809 59.88489715357605, 17.58127378553624 59.88489715357605))"
	if err != nil || s != expected {
		t.Errorf("expected %s, got %s (%v)", expected, s, err)
	}

	// The output must be valid WKT
	g, err := wkt.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	var rings [][][2]float64
	switch p := g.(type) {
	case geom.Polygon:
		rings = p.LinearRings()
	case *geom.Polygon:
		rings = p.LinearRings()
	}
	if len(rings) != 1 || len(rings[0]) < 4 {
		t.Errorf("expected a polygon, got %v", g)
	}
}

func TestGeoJSONToWKTErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`{"type":"Point","coordinates":[1,2]}`, ErrNotPolygon},
		{`{"type":"FeatureCollection","features":[]}`, ErrMultiFeature},
		{`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":` + polygon + `},{"type":"Feature","geometry":` + polygon + `}]}`, ErrMultiFeature},
		{`{"type":"Feature","properties":{}}`, ErrNoGeometry},
		{`{"type":"Feature","geometry":null}`, ErrNoGeometry},
	}
	for _, tt := range tests {
		if _, err := GeoJSONToWKT([]byte(tt.in)); !errors.Is(err, tt.err) {
			t.Errorf("%s: expected %v, got %v", tt.in, tt.err, err)
		}
	}
	if _, err := GeoJSONToWKT([]byte(`not json`)); err == nil {
		t.Error("error expected")
	}
}

func TestGeoJSONObjectToWKT(t *testing.T) {
	ring := []interface{}{
		[]interface{}{10.172406299744779, 55.482591180045318},
		[]interface{}{10.172406299744779, 55.382342707184563},
		[]interface{}{10.423719769283821, 55.382342707184563},
		[]interface{}{10.423719769283821, 55.482591180045318},
		[]interface{}{10.172406299744779, 55.482591180045318},
	}
	feature := map[string]interface{}{
		"type":       "Feature",
		"properties": map[string]interface{}{},
		"geometry":   map[string]interface{}{"type": "Polygon", "coordinates": []interface{}{ring}},
	}
	for _, in := range []interface{}{feature, polygon, []byte(polygon)} {
		if s, err := GeoJSONObjectToWKT(in); err != nil || s != expectedWKT {
			t.Errorf("expected %s, got %s (%v)", expectedWKT, s, err)
		}
	}
}

func TestShapeFileToWKT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "POLYGON.shp")
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		t.Fatal(err)
	}
	points := [][]shp.Point{{
		{X: 10.172406299744779, Y: 55.48259118004532},
		{X: 10.172406299744779, Y: 55.38234270718456},
		{X: 10.42371976928382, Y: 55.38234270718456},
		{X: 10.42371976928382, Y: 55.48259118004532},
		{X: 10.172406299744779, Y: 55.48259118004532},
	}, {
		{X: 10.2, Y: 55.4}, {X: 10.3, Y: 55.4}, {X: 10.3, Y: 55.45}, {X: 10.2, Y: 55.4},
	}}
	p := shp.Polygon(*shp.NewPolyLine(points))
	w.Write(&p)
	w.Close()

	s, err := ShapeFileToWKT(path)
	if err != nil {
		t.Fatal(err)
	}
	if s != expectedWKT {
		t.Errorf("expected %s, got %s", expectedWKT, s)
	}

	if _, err := ShapeFileToWKT(filepath.Join(t.TempDir(), "missing.shp")); err == nil {
		t.Error("error expected")
	}
}
