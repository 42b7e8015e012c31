package productcontroller

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/catalog"
	"github.com/Jrgn63/keyking/config"
	"github.com/Jrgn63/keyking/models"
	"github.com/Jrgn63/keyking/pkg/errs"
)

// resolveSlug computes the slug for a (possibly renamed) product and applies
// the collision policy: reject fails the write, suffix appends "-2", "-3", ...
// until the slug is free. excludeID skips the product's own row on rename.
func resolveSlug(db *gorm.DB, name string, policy config.SlugPolicy, excludeID string) (string, error) {
	base := catalog.Slugify(name)
	candidate := base
	for n := 2; ; n++ {
		var count int64
		q := db.Model(&models.Product{}).Where("slug = ?", candidate)
		if excludeID != "" {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", fmt.Errorf("%w: %v", errs.ErrStore, err)
		}
		if count == 0 {
			return candidate, nil
		}
		if policy == config.SlugPolicyReject {
			return "", fmt.Errorf("%w: %q", errs.ErrSlugTaken, candidate)
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
