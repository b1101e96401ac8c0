// Package catalog loads head definitions from a JSON file and serves them
// through the catalog contract. The file is read once at startup; entries
// are immutable afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/xreatlabs/headsteal/internal/domain/head"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
	"github.com/xreatlabs/headsteal/internal/interfaces"
)

var (
	_ interfaces.HeadCatalog     = (*FileCatalog)(nil)
	_ interfaces.TextureResolver = (*FileCatalog)(nil)
)

type abilityEntry struct {
	Type       string         `json:"type"`
	Activation string         `json:"activation"`
	Params     map[string]any `json:"params,omitempty"`
}

type bossAbilityEntry struct {
	Type    string         `json:"type"`
	Name    string         `json:"name"`
	Trigger string         `json:"trigger"`
	Params  map[string]any `json:"params,omitempty"`
}

type headEntry struct {
	DisplayName   string             `json:"display_name"`
	ItemTag       string             `json:"item_tag"`
	Texture       string             `json:"texture,omitempty"`
	Boss          bool               `json:"boss,omitempty"`
	Ability       *abilityEntry      `json:"ability,omitempty"`
	BossAbilities []bossAbilityEntry `json:"boss_abilities,omitempty"`
}

// FileCatalog is a HeadCatalog backed by a JSON definition file
type FileCatalog struct {
	heads    map[string]*head.HeadData
	byItem   map[string]string
	textures map[string]string
}

// LoadFile reads and validates a head definition file
func LoadFile(path string) (*FileCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read head catalog: %w", err)
	}
	return Parse(raw)
}

// Parse builds a catalog from raw JSON. Malformed entries are logged and
// skipped; only an unreadable document fails the load.
func Parse(raw []byte) (*FileCatalog, error) {
	var entries map[string]headEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse head catalog: %w", err)
	}

	c := &FileCatalog{
		heads:    make(map[string]*head.HeadData, len(entries)),
		byItem:   make(map[string]string, len(entries)),
		textures: make(map[string]string),
	}

	for key, entry := range entries {
		data, err := buildHead(key, entry)
		if err != nil {
			log.Printf("Skipping head %s: %v", key, err)
			continue
		}
		c.heads[key] = data
		if entry.ItemTag != "" {
			if existing, taken := c.byItem[entry.ItemTag]; taken {
				log.Printf("Skipping item tag for head %s: '%s' is already bound to '%s'", key, entry.ItemTag, existing)
			} else {
				c.byItem[entry.ItemTag] = key
			}
		}
		if entry.Texture != "" {
			c.textures[key] = entry.Texture
		}
	}
	return c, nil
}

// Head returns the metadata for a head key
func (c *FileCatalog) Head(key string) (*head.HeadData, bool) {
	data, exists := c.heads[key]
	return data, exists
}

// HeadKeyForItem maps an item tag to its head key
func (c *FileCatalog) HeadKeyForItem(itemTag string) (string, bool) {
	key, exists := c.byItem[itemTag]
	return key, exists
}

// Resolve returns the texture reference for a head key
func (c *FileCatalog) Resolve(headKey string) (string, error) {
	texture, exists := c.textures[headKey]
	if !exists {
		return "", apperrors.NotFoundf("no texture for head '%s'", headKey)
	}
	return texture, nil
}

// Len returns the number of loaded heads
func (c *FileCatalog) Len() int {
	return len(c.heads)
}

// Keys returns every loaded head key
func (c *FileCatalog) Keys() []string {
	keys := make([]string, 0, len(c.heads))
	for key := range c.heads {
		keys = append(keys, key)
	}
	return keys
}

func buildHead(key string, entry headEntry) (*head.HeadData, error) {
	data := &head.HeadData{
		Key:         key,
		DisplayName: entry.DisplayName,
		Boss:        entry.Boss,
	}
	if data.DisplayName == "" {
		data.DisplayName = key
	}

	if entry.Ability != nil {
		if entry.Ability.Type == "" {
			return nil, apperrors.InvalidArgumentf("head '%s': ability type is required", key)
		}
		activation, err := parseTrigger(entry.Ability.Activation)
		if err != nil {
			return nil, apperrors.Wrapf(err, "head '%s'", key)
		}
		data.Ability = &head.AbilityRef{
			Type:       entry.Ability.Type,
			Activation: activation,
			Params:     entry.Ability.Params,
		}
	}

	for _, ba := range entry.BossAbilities {
		if ba.Type == "" {
			return nil, apperrors.InvalidArgumentf("head '%s': boss ability type is required", key)
		}
		trigger, err := parseTrigger(ba.Trigger)
		if err != nil {
			return nil, apperrors.Wrapf(err, "head '%s'", key)
		}
		if trigger == shared.TriggerPassive {
			return nil, apperrors.InvalidArgumentf("head '%s': boss abilities cannot be passive", key)
		}
		data.BossAbilities = append(data.BossAbilities, head.BossAbility{
			Type:    ba.Type,
			Name:    ba.Name,
			Trigger: trigger,
			Params:  ba.Params,
		})
	}
	if len(data.BossAbilities) > 0 && !data.Boss {
		return nil, apperrors.InvalidArgumentf("head '%s' has boss abilities but is not marked boss", key)
	}

	return data, nil
}

func parseTrigger(s string) (shared.TriggerKind, error) {
	switch shared.TriggerKind(s) {
	case shared.TriggerLeftClick, shared.TriggerRightClick,
		shared.TriggerShiftLeftClick, shared.TriggerShiftRightClick,
		shared.TriggerPassive:
		return shared.TriggerKind(s), nil
	}
	return "", apperrors.InvalidArgumentf("unknown trigger '%s'", s)
}
