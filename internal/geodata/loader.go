package geodata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"provincemap/internal/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// Sources describes where the two datasets live and how their features are named.
type Sources struct {
	DataDir           string
	Archive           string
	BoundariesFile    string
	POIFile           string
	BoundaryNameField string
	POINameField      string
	S3                *S3Source
}

// Dataset holds both loaded collections in one CRS, the boundary dataset's.
type Dataset struct {
	CRS           CRS
	Provinces     []models.Province
	Points        []models.PointOfInterest
	SkippedPoints int
}

// Loader loads the datasets once at startup. Any failure is meant to be fatal to the caller.
type Loader struct {
	src     Sources
	catalog Catalog
	objects ObjectGetter
}

func NewLoader(src Sources, catalog Catalog) *Loader {
	return &Loader{src: src, catalog: catalog}
}

// WithObjectGetter overrides the S3 client used to fetch a missing archive.
func (l *Loader) WithObjectGetter(g ObjectGetter) *Loader {
	l.objects = g
	return l
}

func (l *Loader) boundariesPath() string {
	return filepath.Join(l.src.DataDir, l.src.BoundariesFile)
}

// poiPath resolves the point file. Bare names live in the data dir; absolute
// paths and paths starting with ./ or ../ are taken as given.
func (l *Loader) poiPath() string {
	p := l.src.POIFile
	if filepath.IsAbs(p) || strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") {
		return p
	}
	return filepath.Join(l.src.DataDir, p)
}

// Load makes sure the boundary file is on disk, then parses both datasets.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	return l.load(ctx, true)
}

// LoadBoundaries is Load without the point dataset, for when the match table comes from elsewhere.
func (l *Loader) LoadBoundaries(ctx context.Context) (*Dataset, error) {
	return l.load(ctx, false)
}

func (l *Loader) load(ctx context.Context, withPoints bool) (*Dataset, error) {
	start := time.Now()

	if err := l.ensureBoundaries(ctx); err != nil {
		return nil, err
	}

	provinces, crs, err := LoadProvinces(l.boundariesPath(), l.src.BoundaryNameField, l.catalog)
	if err != nil {
		return nil, err
	}

	var points []models.PointOfInterest
	skipped := 0
	if withPoints {
		points, skipped, err = LoadPoints(l.poiPath(), l.src.POINameField, crs)
		if err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("crs", string(crs)).
		Int("provinces", len(provinces)).
		Int("points", len(points)).
		Int("skipped_points", skipped).
		Dur("took", time.Since(start)).
		Msg("loaded geo datasets")

	return &Dataset{CRS: crs, Provinces: provinces, Points: points, SkippedPoints: skipped}, nil
}

func (l *Loader) ensureBoundaries(ctx context.Context) error {
	if _, err := os.Stat(l.boundariesPath()); err == nil {
		return nil
	}
	if l.src.Archive == "" {
		return fmt.Errorf("geodata: boundaries file %s not found and no archive configured", l.boundariesPath())
	}

	if _, err := os.Stat(l.src.Archive); errors.Is(err, fs.ErrNotExist) && l.src.S3 != nil {
		getter := l.objects
		if getter == nil {
			client, err := NewS3Client(ctx, *l.src.S3)
			if err != nil {
				return err
			}
			getter = client
		}
		if err := FetchArchive(ctx, getter, *l.src.S3, l.src.Archive); err != nil {
			return err
		}
	}

	return EnsureExtracted(l.src.Archive, l.src.DataDir, l.src.BoundariesFile)
}

func readCollection(path string) (*geojson.FeatureCollection, CRS, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("geodata: failed to read %s: %w", path, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, "", fmt.Errorf("geodata: failed to parse %s: %w", path, err)
	}
	crs, err := crsOf(fc)
	if err != nil {
		return nil, "", fmt.Errorf("geodata: %s: %w", path, err)
	}
	return fc, crs, nil
}

// LoadProvinces reads the boundary collection. Features sharing a name are merged into one MultiPolygon.
// The returned CRS is the collection's own and becomes the common CRS for the points.
func LoadProvinces(path, nameField string, catalog Catalog) ([]models.Province, CRS, error) {
	fc, crs, err := readCollection(path)
	if err != nil {
		return nil, "", err
	}
	if len(fc.Features) == 0 {
		return nil, "", fmt.Errorf("geodata: %s has no features", path)
	}

	index := make(map[string]int)
	var provinces []models.Province
	for i, f := range fc.Features {
		name, _ := f.Properties[nameField].(string)
		if name == "" {
			return nil, "", fmt.Errorf("geodata: %s: feature %d has no %q property", path, i, nameField)
		}

		var polys orb.MultiPolygon
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			polys = orb.MultiPolygon{g}
		case orb.MultiPolygon:
			polys = g
		default:
			return nil, "", fmt.Errorf("geodata: %s: feature %q has geometry %T, want polygon", path, name, f.Geometry)
		}
		if err := checkPolygons(polys); err != nil {
			return nil, "", fmt.Errorf("geodata: %s: feature %q: %w", path, name, err)
		}

		if at, ok := index[name]; ok {
			provinces[at].Boundary = append(provinces[at].Boundary, polys...)
			continue
		}
		index[name] = len(provinces)
		provinces = append(provinces, models.Province{Name: name, Boundary: polys})
	}

	for i := range provinces {
		p := &provinces[i]
		p.NotablePlaces = catalog.PlacesFor(p.Name)
		if p.NotablePlaces == nil {
			log.Warn().Str("province", p.Name).Msg("province has no notable places")
		}

		display := geojson.NewFeature(Reproject(orb.Clone(p.Boundary), crs, WGS84))
		display.ID = p.Name
		display.Properties["name"] = p.Name
		display.Properties["notable_places"] = p.NotablePlacesLabel()
		p.Display = display
	}

	return provinces, crs, nil
}

func checkPolygons(polys orb.MultiPolygon) error {
	if len(polys) == 0 {
		return errors.New("empty geometry")
	}
	for i, p := range polys {
		if len(p) == 0 || len(p[0]) == 0 {
			return fmt.Errorf("polygon %d has no outer ring", i)
		}
	}
	return nil
}

// LoadPoints reads the point collection and reprojects it into target.
// Features without point geometry are skipped and counted. A missing or non-string name becomes "".
func LoadPoints(path, nameField string, target CRS) ([]models.PointOfInterest, int, error) {
	fc, crs, err := readCollection(path)
	if err != nil {
		return nil, 0, err
	}

	points := make([]models.PointOfInterest, 0, len(fc.Features))
	skipped := 0
	for _, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			skipped++
			continue
		}
		name, _ := f.Properties[nameField].(string)
		points = append(points, models.PointOfInterest{
			Name:     name,
			Position: Reproject(pt, crs, target).(orb.Point),
		})
	}
	return points, skipped, nil
}
