package source

import (
	"cmp"
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"

	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/domain/entity"
	"storelocator/internal/domain/repository"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// seedFile is the document layout of a YAML seed file.
type seedFile struct {
	Locations []*entity.Location `yaml:"locations"`
}

// fileSource serves locations from a YAML seed file. The file is read on every
// call so edits show up on the next refresh.
type fileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a LocationSource over the YAML file at path.
func NewFileSource(path string, logger *slog.Logger) (repository.LocationSource, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("file source path is required")
	}

	return &fileSource{path: path, logger: logger}, nil
}

func (s *fileSource) FetchPage(ctx context.Context, req repository.PageRequest) (*repository.Page, error) {
	locations, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Location, 0, len(locations))
	for _, location := range locations {
		if matchesSourceFilter(location, req.Filter) {
			matched = append(matched, location)
		}
	}
	sortLocations(matched, req.Sort)

	page, pageSize := req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = len(matched)
	}

	start := min((page-1)*pageSize, len(matched))
	end := min(start+pageSize, len(matched))

	return &repository.Page{Items: matched[start:end], Total: len(matched)}, nil
}

func (s *fileSource) FetchByID(ctx context.Context, id string) (*entity.Location, error) {
	locations, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, location := range locations {
		if location.ID == id {
			return location, nil
		}
	}

	return nil, errors.Wrapf(domainerrors.ErrLocationNotFound, "location %s", id)
}

func (s *fileSource) load(ctx context.Context) ([]*entity.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, domainerrors.ErrSourceUnavailable.WrapMessage(err.Error())
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, domainerrors.ErrSourceUnavailable.WrapMessage("parse " + s.path + ": " + err.Error())
	}

	locations := make([]*entity.Location, 0, len(seed.Locations))
	for _, location := range seed.Locations {
		if location == nil || location.ID == "" {
			s.logger.Warn("skipping seed entry without id", slog.String("path", s.path))
			continue
		}
		locations = append(locations, location)
	}

	return locations, nil
}

func matchesSourceFilter(location *entity.Location, filter repository.SourceFilter) bool {
	if filter.City != "" && !strings.EqualFold(location.Address.City, filter.City) {
		return false
	}
	if filter.Region != "" && !strings.EqualFold(location.Address.Region, filter.Region) {
		return false
	}
	if filter.Text == "" {
		return true
	}

	text := strings.ToLower(filter.Text)
	for _, field := range []string{location.Name, location.ShortName, location.Address.StreetLine()} {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}

	return false
}

// sortLocations gives pages a stable order. Locale-aware ordering is left to the query engine.
func sortLocations(locations []*entity.Location, field repository.SortField) {
	slices.SortStableFunc(locations, func(a, b *entity.Location) int {
		if field == repository.SortByCity {
			if c := cmp.Compare(a.Address.City, b.Address.City); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})
}
