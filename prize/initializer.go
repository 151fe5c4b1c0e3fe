package prize

import (
	"github.com/rs/zerolog"

	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/storage"
)

// Initializer runs the boot sequence: load persisted prizes, validate
// them, and seed the service. Corrupted or unreadable state resets to an
// empty collection; boot never fails because of bad persisted data.
type Initializer struct {
	store storage.Store
	svc   *Service
	log   zerolog.Logger
}

func NewInitializer(store storage.Store, svc *Service, logger zerolog.Logger) *Initializer {
	return &Initializer{store: store, svc: svc, log: logger}
}

// Initialize seeds the canonical collection from the store. Absent data
// seeds empty; records failing the integrity check clear the persisted
// state entirely (recovery by reset, not partial repair).
func (i *Initializer) Initialize() {
	var saved []Prize
	found, err := i.store.Get(storageKey, &saved)
	if err != nil {
		i.log.Warn().Err(err).Msg("reading persisted prizes failed; starting empty")
		i.svc.Replace(nil)
		return
	}
	if !found {
		i.svc.Replace(nil)
		return
	}
	if !CheckDataIntegrity(saved) {
		i.log.Error().Int("records", len(saved)).Msg("prize data failed integrity check; resetting")
		i.ClearData()
		return
	}
	i.svc.Replace(saved)
}

// CheckDataIntegrity reports whether every record is structurally valid:
// non-empty id and name, non-negative stock. An empty collection is valid.
func CheckDataIntegrity(prizes []Prize) bool {
	for _, p := range prizes {
		if p.ID == "" {
			return false
		}
		if p.Name == "" {
			return false
		}
		if p.Stock < 0 {
			return false
		}
	}
	return true
}

// ClearData removes the persisted collection and empties the in-memory
// one. Best-effort: a failing store is logged, never propagated.
func (i *Initializer) ClearData() {
	if err := i.store.Remove(storageKey); err != nil {
		i.log.Warn().Err(err).Msg("clearing persisted prizes failed")
	}
	i.svc.Replace(nil)
}
