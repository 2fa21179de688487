package config

// Plugin is one entry of a resolved plugin registry.
type Plugin struct {
	Name    string
	Enabled bool
	Options Config
}

// Plugins returns the plugin registry of c in name order. Disabled plugins
// are included with Enabled false and nil Options.
func (c Config) Plugins() []Plugin {
	registry := c[PluginKey].Mapping()
	if len(registry) == 0 {
		return nil
	}

	plugins := make([]Plugin, 0, len(registry))
	for _, name := range registry.Keys() {
		entry := registry[name]
		if entry.disables() {
			plugins = append(plugins, Plugin{Name: name})
			continue
		}
		options := entry.Mapping()
		if options == nil {
			options = Config{}
		}
		plugins = append(plugins, Plugin{Name: name, Enabled: true, Options: options})
	}
	return plugins
}

// EnabledPlugins returns the names of enabled plugins in name order.
func (c Config) EnabledPlugins() []string {
	var names []string
	for _, p := range c.Plugins() {
		if p.Enabled {
			names = append(names, p.Name)
		}
	}
	return names
}
