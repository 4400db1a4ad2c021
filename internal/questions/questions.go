// Package questions holds the enumerated answer sets for the registration
// form. The sets are data, not code: they are loaded from a yml file and
// hot-reloaded on change, so the questions can vary year over year without
// touching the validation logic.
package questions

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Other is the literal answer value that unlocks a free-text companion
// field (e.g. picking "Other" for dietary restriction requires
// otherDietaryRestriction to be filled in).
const Other = "Other"

// Set is one year's worth of allowed answers, one slice per closed question.
type Set struct {
	Gender             []string `mapstructure:"gender"`
	Year               []string `mapstructure:"year"`
	Availability       []string `mapstructure:"availability"`
	ShirtSize          []string `mapstructure:"shirtSize"`
	TeamPlan           []string `mapstructure:"teamPlan"`
	JobType            []string `mapstructure:"jobType"`
	DietaryRestriction []string `mapstructure:"dietaryRestriction"`
	PreWorkshops       []string `mapstructure:"preWorkshops"`
	HearAboutUs        []string `mapstructure:"hearAboutUs"`
	ProjectInterest    []string `mapstructure:"projectInterest"`
	MainGoals          []string `mapstructure:"mainGoals"`
}

// Contains reports whether value is an allowed answer in the given list.
func Contains(allowed []string, value string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}

	return false
}

// Store hands out the currently loaded Set. Reads vastly outnumber the
// rare reload, hence the RWMutex.
type Store struct {
	mu  sync.RWMutex
	set *Set
}

func NewStore(set *Set) *Store {
	return &Store{set: set}
}

func (s *Store) Current() *Set {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.set
}

func (s *Store) replace(set *Set) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = set
}

// Load reads the answer sets at path and watches the file for edits.
// A broken edit keeps the previous sets in place.
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	set, err := unmarshalSet(v)
	if err != nil {
		return nil, err
	}

	store := NewStore(set)

	v.OnConfigChange(func(e fsnotify.Event) {
		reloaded, err := unmarshalSet(v)
		if err != nil {
			zap.L().Error("failed to reload question sets, keeping previous",
				zap.String("file", e.Name), zap.Error(err))
			return
		}

		store.replace(reloaded)
		zap.L().Info("question sets reloaded", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return store, nil
}

func unmarshalSet(v *viper.Viper) (*Set, error) {
	var set Set
	if err := v.UnmarshalKey("questions", &set); err != nil {
		return nil, fmt.Errorf("v.UnmarshalKey -> %w", err)
	}

	return &set, nil
}
