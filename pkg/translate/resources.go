package translate

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Namespace is the required prefix for every translation key.
const Namespace = "i18n."

// rtlField is the reserved pack field marking a right-to-left language.
const rtlField = "rtl"

// validateKeys checks that every key in a resource set carries the
// namespace prefix. The first offending key is reported.
func validateKeys(resources map[string]string) error {
	for key := range resources {
		if !strings.HasPrefix(key, Namespace) {
			return fmt.Errorf("%w: %q must start with %q", ErrInvalidKeyFormat, key, Namespace)
		}
	}
	return nil
}

// ParseResources parses raw translation pack data: a flat JSON object
// from string key to string value, optionally carrying a boolean "rtl"
// field. Anything else fails with ErrResourceFormat.
//
//	{
//	    "i18n.menu.file.save": "保存",
//	    "i18n.menu.file.save_as": "另存为…",
//	    "rtl": false
//	}
func ParseResources(data []byte) (map[string]string, bool, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrResourceFormat, err)
	}
	return collectResources(raw)
}

// ParseResourcesYAML is ParseResources for YAML pack data.
func ParseResourcesYAML(data []byte) (map[string]string, bool, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrResourceFormat, err)
	}
	return collectResources(raw)
}

func collectResources(raw map[string]any) (map[string]string, bool, error) {
	resources := make(map[string]string, len(raw))
	var rtl bool

	for key, value := range raw {
		if key == rtlField {
			b, ok := value.(bool)
			if !ok {
				return nil, false, fmt.Errorf("%w: field %q must be a boolean", ErrResourceFormat, rtlField)
			}
			rtl = b
			continue
		}

		text, ok := value.(string)
		if !ok {
			return nil, false, fmt.Errorf("%w: value for %q must be a string", ErrResourceFormat, key)
		}
		resources[key] = text
	}

	return resources, rtl, nil
}
