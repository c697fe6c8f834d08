package game

import (
	"fmt"
	"path"

	"github.com/decker502/solarsystem/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
type ResourceGroup struct {
	Images []ResourceEntry `yaml:"images"` // Texture resources in this group
	Sounds []ResourceEntry `yaml:"sounds"` // Music/sound resources in this group
}

// ResourceEntry maps a resource ID to a path relative to base_path.
//
// Example:
//
//	- id: TEX_EARTH
//	  path: textures/2k_earth_daymap.jpg
type ResourceEntry struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// ParseResourceConfig parses resources.yaml content and builds the ID -> path map.
// Duplicate IDs across groups are rejected.
func ParseResourceConfig(data []byte) (*ResourceConfig, map[string]string, error) {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	resourceMap := make(map[string]string)
	add := func(group string, entries []ResourceEntry, defaultExt string) error {
		for _, e := range entries {
			if e.ID == "" || e.Path == "" {
				return fmt.Errorf("group %s: resource entries need both id and path", group)
			}
			if _, dup := resourceMap[e.ID]; dup {
				return fmt.Errorf("group %s: duplicate resource ID %s", group, e.ID)
			}
			fullPath := buildFullPath(config.BasePath, e.Path)
			if path.Ext(fullPath) == "" {
				fullPath += defaultExt
			}
			resourceMap[e.ID] = fullPath
		}
		return nil
	}

	for name, group := range config.Groups {
		if err := add(name, group.Images, ".png"); err != nil {
			return nil, nil, err
		}
		if err := add(name, group.Sounds, ".ogg"); err != nil {
			return nil, nil, err
		}
	}

	return &config, resourceMap, nil
}

// LoadResourceConfigFile reads and parses a resources.yaml through the embedded FS.
func LoadResourceConfigFile(configPath string) (*ResourceConfig, map[string]string, error) {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	return ParseResourceConfig(data)
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "textures/2k_sun.jpg")
//
// Returns:
//   - The full file path (e.g., "assets/textures/2k_sun.jpg")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	return path.Join(basePath, relativePath)
}
