package notifications

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// Dedup множество уже отправленных ключей "<vehicle_id>-<rule_name>".
// Хранится в памяти процесса: после перезапуска алерты отправляются повторно.
type Dedup struct {
	store *cache.Cache
}

// NewDedup создает множество; ttl <= 0 означает бессрочное хранение
func NewDedup(ttl time.Duration) *Dedup {
	if ttl <= 0 {
		return &Dedup{store: cache.New(cache.NoExpiration, 0)}
	}
	return &Dedup{store: cache.New(ttl, ttl)}
}

// Seen возвращает true, если ключ уже отправлялся
func (d *Dedup) Seen(key string) bool {
	_, found := d.store.Get(key)
	return found
}

// Mark запоминает ключ
func (d *Dedup) Mark(key string) {
	d.store.SetDefault(key, struct{}{})
}

// ForgetVehicle удаляет ключ правила автомобиля, а при пустом ruleName все ключи автомобиля
func (d *Dedup) ForgetVehicle(vehicleID uuid.UUID, ruleName string) {
	if ruleName != "" {
		d.store.Delete(domain.DedupKey(vehicleID, ruleName))
		return
	}

	prefix := vehicleID.String() + "-"
	for key := range d.store.Items() {
		if strings.HasPrefix(key, prefix) {
			d.store.Delete(key)
		}
	}
}

// Len количество запомненных ключей
func (d *Dedup) Len() int {
	return d.store.ItemCount()
}
