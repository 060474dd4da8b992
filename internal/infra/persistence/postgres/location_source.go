// Package postgres contains the read-only location source backed by GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"storelocator/internal/domain/entity"
	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/domain/repository"
	"storelocator/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationSource implements repository.LocationSource over the locations tables.
type locationSource struct {
	db *gorm.DB
}

// NewLocationSource is the constructor for locationSource.
func NewLocationSource(db *gorm.DB) repository.LocationSource {
	return &locationSource{db: db}
}

// FetchPage retrieves one page of published locations with their schedules.
func (repo *locationSource) FetchPage(ctx context.Context, req repository.PageRequest) (*repository.Page, error) {
	page, pageSize := req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 100
	}

	// Count and Find each get their own statement.
	filtered := func() *gorm.DB {
		return applySourceFilter(repo.db.WithContext(ctx).Model(&model.LocationModel{}), req.Filter)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, unavailable(err, "failed to count locations")
	}

	var locationModels []*model.LocationModel
	err := filtered().
		Preload("WeeklyHours").
		Preload("ExceptionDays").
		Order(orderClause(req.Sort)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&locationModels).Error
	if err != nil {
		return nil, unavailable(err, "failed to list locations")
	}

	items := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		items = append(items, toLocationDomain(locationM))
	}

	return &repository.Page{Items: items, Total: int(total)}, nil
}

// FetchByID retrieves a published location by its ID.
func (repo *locationSource) FetchByID(ctx context.Context, id string) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Preload("WeeklyHours").
		Preload("ExceptionDays").
		Where("id = ? AND is_published = ?", id, true).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrLocationNotFound, "location %s", id)
		}

		return nil, unavailable(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

func applySourceFilter(query *gorm.DB, filter repository.SourceFilter) *gorm.DB {
	query = query.Where("is_published = ?", true)

	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}
	if region := strings.TrimSpace(filter.Region); region != "" {
		query = query.Where("LOWER(region) = LOWER(?)", region)
	}
	if text := strings.TrimSpace(filter.Text); text != "" {
		pattern := "%" + escapeLike(strings.ToLower(text)) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(short_name) LIKE ? OR LOWER(street || ' ' || house) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	return query
}

func orderClause(field repository.SortField) string {
	if field == repository.SortByCity {
		return "city, name, id"
	}

	return "name, id"
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func unavailable(err error, message string) error {
	return errors.Wrap(domainerrors.ErrSourceUnavailable.WrapMessage(err.Error()), message)
}

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	location := &entity.Location{
		ID:        data.ID,
		Name:      data.Name,
		ShortName: data.ShortName,
		Kind:      entity.LocationKind(data.Kind),
		Phone:     data.Phone,
		Address: entity.Address{
			City:      data.City,
			Region:    data.Region,
			Street:    data.Street,
			House:     data.House,
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
	}

	for _, hours := range data.WeeklyHours {
		location.Schedule.Weekly = append(location.Schedule.Weekly, entity.WeeklyHours{
			Day:       time.Weekday(hours.DayOfWeek),
			OpenTime:  hours.OpenTime,
			CloseTime: hours.CloseTime,
		})
	}

	for _, day := range data.ExceptionDays {
		location.Schedule.Exceptions = append(location.Schedule.Exceptions, entity.ExceptionDay{
			// DATE columns carry no zone; read the calendar fields as stored.
			Date:      civil.DateOf(day.Date),
			IsClosed:  day.IsClosed,
			OpenTime:  day.OpenTime,
			CloseTime: day.CloseTime,
		})
	}

	return location
}
