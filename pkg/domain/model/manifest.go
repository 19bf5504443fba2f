package model

// Manifest is the script registry extracted from the root package.json.
// Scripts is never nil; a manifest without a scripts block yields an
// empty registry.
type Manifest struct {
	Name    string
	Scripts map[string]string
}

// HasScript reports whether the registry declares the given script name.
func (m *Manifest) HasScript(name string) bool {
	_, ok := m.Scripts[name]
	return ok
}

// ScriptNames returns the registered script names in unspecified order.
func (m *Manifest) ScriptNames() []string {
	names := make([]string, 0, len(m.Scripts))
	for name := range m.Scripts {
		names = append(names, name)
	}
	return names
}
