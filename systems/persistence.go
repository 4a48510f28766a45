package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// Preferences represents the viewer preferences stored on disk
type Preferences struct {
	ReducedMotion bool   `json:"reducedMotion"`
	LastPage      string `json:"lastPage"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "scrollfx",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadPreferences loads preferences from disk. A nil result means nothing was saved yet.
func LoadPreferences() (*Preferences, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("preferences")
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}
	return decodePreferences(data)
}

// SavePreferences saves preferences to disk
func SavePreferences(p *Preferences) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("preferences", data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
		return err
	}
	return nil
}

func decodePreferences(data []byte) (*Preferences, error) {
	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return nil, err
	}
	return &p, nil
}
