// SPDX-License-Identifier: MPL-2.0

package config

const (
	// PickerBuiltin uses the text-mode boot picker.
	PickerBuiltin PickerMode = "builtin"
	// PickerExternal defers to an external graphical picker.
	PickerExternal PickerMode = "external"
	// PickerApple uses the firmware-native picker where available.
	PickerApple PickerMode = "apple"
)

type (
	// PickerMode selects the boot picker implementation.
	PickerMode string

	// Config is the loader configuration tree. It is produced by Load after
	// structural (schema) validation; semantic validation is the validate
	// package's job.
	Config struct {
		Bootloader Bootloader                   `mapstructure:"bootloader" yaml:"bootloader"`
		Scan       Scan                         `mapstructure:"scan" yaml:"scan"`
		Entries    []CustomEntry                `mapstructure:"entries" yaml:"entries"`
		Tools      []CustomEntry                `mapstructure:"tools" yaml:"tools"`
		Drivers    []string                     `mapstructure:"drivers" yaml:"drivers"`
		NVRAM      map[string]map[string]string `mapstructure:"nvram" yaml:"nvram"`
	}

	// Bootloader holds picker and timeout settings.
	Bootloader struct {
		// Timeout is the picker timeout in seconds; zero waits forever.
		Timeout int `mapstructure:"timeout" yaml:"timeout"`
		// Picker selects the boot picker implementation.
		Picker PickerMode `mapstructure:"picker" yaml:"picker"`
		// HideAuxiliary hides auxiliary entries until requested.
		HideAuxiliary bool `mapstructure:"hide_auxiliary" yaml:"hide_auxiliary"`
	}

	// Scan controls which filesystems the discovery pass visits.
	Scan struct {
		// Apple enables scanning Apple filesystems (APFS, HFS+). Off by
		// default: plugins discovering non-Apple systems skip them anyway.
		Apple bool `mapstructure:"apple" yaml:"apple"`
	}

	// CustomEntry describes a user-defined boot entry or tool.
	CustomEntry struct {
		// Name is the display name shown in the picker.
		Name string `mapstructure:"name" yaml:"name"`
		// Path locates the boot target on its volume.
		Path string `mapstructure:"path" yaml:"path"`
		// Arguments is the load-option string passed to the target.
		Arguments string `mapstructure:"arguments" yaml:"arguments"`
		// Flavour hints at the icon/category for graphical pickers.
		Flavour string `mapstructure:"flavour" yaml:"flavour"`
		// Auxiliary marks the entry as hidden behind HideAuxiliary.
		Auxiliary bool `mapstructure:"auxiliary" yaml:"auxiliary"`
		// Enabled gates the entry without deleting its definition.
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
		// Comment is free-form operator documentation.
		Comment string `mapstructure:"comment" yaml:"comment"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Bootloader: Bootloader{
			Timeout: 5,
			Picker:  PickerBuiltin,
		},
	}
}
