package storage

import (
	"fmt"
	"time"

	"stayhaven-server/models"

	"github.com/karlseguin/ccache/v3"
)

// PropertyCache holds recently-read property rows keyed by id. Entries
// are short-lived and dropped on any mutation of the property, so reads
// through the cache stay close to the store.
var PropertyCache *ccache.Cache[*models.Property]

const propertyCacheTTL = 5 * time.Minute

func InitializeCache() {
	PropertyCache = ccache.New(ccache.Configure[*models.Property]().MaxSize(1000))
}

func propertyCacheKey(id uint) string {
	return fmt.Sprintf("property:%d", id)
}

// GetCachedProperty returns a property through the cache, reading the
// store on a miss. The bool result reports whether the row exists.
func GetCachedProperty(id uint) (*models.Property, bool) {
	if PropertyCache != nil {
		if item := PropertyCache.Get(propertyCacheKey(id)); item != nil && !item.Expired() {
			return item.Value(), true
		}
	}

	var property models.Property
	result := DB.Where("id = ?", id).Limit(1).Find(&property)
	if result.Error != nil || result.RowsAffected == 0 {
		return nil, false
	}

	if PropertyCache != nil {
		PropertyCache.Set(propertyCacheKey(id), &property, propertyCacheTTL)
	}
	return &property, true
}

func InvalidateProperty(id uint) {
	if PropertyCache != nil {
		PropertyCache.Delete(propertyCacheKey(id))
	}
}
