package contract

import "github.com/annaddsgr/Portfolio/pkg/preferences"

// PreferenceRepository is the storage behind the visitor settings service.
type PreferenceRepository interface {
	preferences.Store
}
