package langcode

// Metadata describes one installed or available language pack.
// The settings/registry collaborator owns these records; the core only
// reads them, e.g. to resolve a backing package to a canonical code.
type Metadata struct {
	// ID is the canonical language code (e.g. "zh-cn").
	ID string `json:"id" yaml:"id"`

	// Name is the English language name (e.g. "Chinese Simplified").
	Name string `json:"name" yaml:"name"`

	// DisplayName is the localized name shown in selection UI (e.g. "简体中文").
	DisplayName string `json:"display_name" yaml:"display_name"`

	// PackageID is the identifier of the backing language pack, when the
	// language was installed from one.
	PackageID string `json:"package_id,omitempty" yaml:"package_id,omitempty"`

	// RTL marks right-to-left languages.
	RTL bool `json:"rtl,omitempty" yaml:"rtl,omitempty"`
}
