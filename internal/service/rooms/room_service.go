package rooms

import (
	"github.com/zvrva/hoteldesk/config"
	"github.com/zvrva/hoteldesk/internal/domain"
	"github.com/zvrva/hoteldesk/internal/repository"
)

type RoomUseCase interface {
	ListAvailable(filter string) []domain.Room
}

type RoomService struct {
	repo repository.RoomRepository
}

func NewRoomService(repo repository.RoomRepository) *RoomService {
	return &RoomService{repo: repo}
}

// ListAvailable returns the available rooms matching the category filter
// in inventory order. The filter may be a category name or the All
// wildcard, matched case-insensitively; an unknown name matches nothing,
// which is a normal empty result rather than an error.
func (s *RoomService) ListAvailable(filter string) []domain.Room {
	return s.repo.AvailableByCategory(domain.Category(filter))
}

// SeedCatalog builds the default inventory from the configured ranges,
// all rooms available. Invoked only when no persisted inventory loads.
func SeedCatalog(ranges []config.CatalogRange) []domain.Room {
	var seeded []domain.Room
	for _, r := range ranges {
		for number := r.From; number <= r.To; number++ {
			seeded = append(seeded, domain.Room{
				Number:    number,
				Category:  domain.Category(r.Category),
				Available: true,
			})
		}
	}
	return seeded
}

var _ RoomUseCase = (*RoomService)(nil)
