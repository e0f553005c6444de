package service

import (
	"context"
	"fmt"
	"slices"

	"saapadu/infras/otel"
	"saapadu/internal/domains/analytics/derive"
	hotelModel "saapadu/internal/domains/hotel/model"
	hotelRepo "saapadu/internal/domains/hotel/repository"
	"saapadu/internal/domains/menu/model"
	"saapadu/internal/domains/menu/model/dto"
	"saapadu/internal/events"
	"saapadu/shared/constant"
	"saapadu/shared/failure"

	"github.com/rs/zerolog/log"
)

// Menu edits the entries embedded in hotel menus. The flattened items are never stored
// on their own.
type Menu interface {
	GetAll(ctx context.Context, filter dto.MenuFilter) (dto.GetMenuItemsResponse, error)
	Get(ctx context.Context, id string) (dto.MenuItemResponse, error)
	Create(ctx context.Context, req dto.CreateMenuItemRequest) (dto.MenuItemResponse, error)
	Update(ctx context.Context, req dto.UpdateMenuItemRequest, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type serviceImpl struct {
	hotels hotelRepo.Hotel
	otel   otel.Otel
	bus    events.Bus
}

func New(hotels hotelRepo.Hotel, otel otel.Otel, bus events.Bus) Menu {
	return &serviceImpl{
		hotels: hotels,
		otel:   otel,
		bus:    bus,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.MenuFilter) (res dto.GetMenuItemsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	items := derive.MenuItems(s.hotels.All())

	res.FromModels(slices.DeleteFunc(items, func(item model.MenuItem) bool {
		return !filter.Match(item)
	}))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MenuItemResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotelID, category, index, ok := model.ParseID(id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	hotel, found := s.hotels.FindByID(hotelID)
	entries := hotel.Menu.Category(category)

	if !found || index >= len(entries) {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.MenuItem = model.FromEntry(hotel, category, index, entries[index])

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMenuItemRequest) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entry := req.ToEntry()

	_, err = s.hotels.Mutate(ctx, func(hotels []hotelModel.Hotel) ([]hotelModel.Hotel, bool, error) {
		position := hotelModel.IndexOf(hotels, req.HotelID)
		if position == -1 {
			return nil, false, failure.BadRequestFromString(fmt.Sprintf("hotel %d does not exist", req.HotelID))
		}

		hotel := hotels[position].Clone()
		entries := append(hotel.Menu.Category(req.Category), entry)
		hotel.Menu = hotel.Menu.WithCategory(req.Category, entries)
		hotels[position] = hotel

		res.MenuItem = model.FromEntry(hotel, req.Category, len(entries)-1, entry)

		return hotels, true, nil
	})
	if err != nil {
		log.Error().Err(err).Int("hotel_id", req.HotelID).Msg("failed to create menu item")

		return res, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.bus.Publish(ctx, events.TopicHotelsChanged)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMenuItemRequest, id string) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotelID, category, index, ok := model.ParseID(id)
	if !ok {
		return false, nil
	}

	applied, err = s.hotels.Mutate(ctx, func(hotels []hotelModel.Hotel) ([]hotelModel.Hotel, bool, error) {
		source := hotelModel.IndexOf(hotels, hotelID)
		if source == -1 || index >= len(hotels[source].Menu.Category(category)) {
			return hotels, false, nil
		}

		entry := req.Apply(hotels[source].Menu.Category(category)[index])

		target := hotelModel.IndexOf(hotels, req.HotelID)
		if target == -1 {
			return nil, false, failure.BadRequestFromString(fmt.Sprintf("hotel %d does not exist", req.HotelID))
		}

		if source == target && category == req.Category {
			hotel := hotels[source].Clone()
			entries := hotel.Menu.Category(category)
			entries[index] = entry
			hotels[source] = hotel

			return hotels, true, nil
		}

		hotels[source] = removeEntry(hotels[source], category, index)

		hotel := hotels[target].Clone()
		hotel.Menu = hotel.Menu.WithCategory(req.Category, append(hotel.Menu.Category(req.Category), entry))
		hotels[target] = hotel

		return hotels, true, nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update menu item")

		return false, fmt.Errorf("failed to update menu item: %w", err)
	}

	if applied {
		s.bus.Publish(ctx, events.TopicHotelsChanged)
	}

	return applied, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotelID, category, index, ok := model.ParseID(id)
	if !ok {
		return false, nil
	}

	applied, err = s.hotels.Mutate(ctx, func(hotels []hotelModel.Hotel) ([]hotelModel.Hotel, bool, error) {
		position := hotelModel.IndexOf(hotels, hotelID)
		if position == -1 || index >= len(hotels[position].Menu.Category(category)) {
			return hotels, false, nil
		}

		hotels[position] = removeEntry(hotels[position], category, index)

		return hotels, true, nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete menu item")

		return false, fmt.Errorf("failed to delete menu item: %w", err)
	}

	if applied {
		s.bus.Publish(ctx, events.TopicHotelsChanged)
	}

	return applied, nil
}

func removeEntry(hotel hotelModel.Hotel, category string, index int) hotelModel.Hotel {
	hotel = hotel.Clone()
	hotel.Menu = hotel.Menu.WithCategory(category, slices.Delete(hotel.Menu.Category(category), index, index+1))

	return hotel
}
