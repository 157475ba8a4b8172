package bumpytrack

// Templates matching the current_version declaration inside the config file itself.
const (
	yamlSelfTemplate = "current_version: {version}"
	tomlSelfTemplate = `current_version = "{version}"`
)

// SelfTemplate returns the search template that locates the current_version
// declaration in a config file of the given format.
func SelfTemplate(format ConfigFormat) string {
	if format == FormatTOML {
		return tomlSelfTemplate
	}
	return yamlSelfTemplate
}

// PlanReplacements lists the files to rewrite, in order: the config file itself
// first, then every file_replaces entry as declared.
func PlanReplacements(configPath string, cfg *Config) []ReplaceSpec {
	specs := make([]ReplaceSpec, 0, len(cfg.FileReplaces)+1)
	specs = append(specs, ReplaceSpec{
		Path:           configPath,
		SearchTemplate: SelfTemplate(FormatForPath(configPath)),
	})
	return append(specs, cfg.FileReplaces...)
}
