package state

import (
	"strconv"

	"github.com/rs/zerolog"
)

// Mirror writes the count to slot now and after every count change. History
// and step changes never reach the slot. Write failures are logged and
// otherwise ignored. The returned func stops mirroring.
func Mirror(s *Store, slot Slot, log zerolog.Logger) (stop func()) {
	write := func(count int) {
		value := strconv.Itoa(count)
		if err := slot.Set(SlotKey, value); err != nil {
			log.Warn().Err(err).Str("key", SlotKey).Str("value", value).Msg("persist count failed")
			return
		}
		log.Debug().Str("key", SlotKey).Str("value", value).Msg("count persisted")
	}

	write(s.Count())
	return s.OnCountChange(write)
}
