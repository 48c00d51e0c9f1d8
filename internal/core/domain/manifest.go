package domain

import "strings"

// Section names a dependency group of the manifest. The snapshot and
// installation subsystems read all three groups.
type Section string

const (
	// SectionDepends holds packages that must be attached, not just installed.
	SectionDepends Section = "Depends"

	// SectionImports holds regular runtime dependencies. New declarations go here.
	SectionImports Section = "Imports"

	// SectionSuggests holds optional development and test dependencies.
	SectionSuggests Section = "Suggests"
)

// Sections lists the dependency groups in conventional manifest order.
func Sections() []Section {
	return []Section{SectionDepends, SectionImports, SectionSuggests}
}

// remotesField holds source locators for packages that do not come from a
// configured repository.
const remotesField = "Remotes"

// packageField holds the package identifier.
const packageField = "Package"

// Field is a single name/value pair of the manifest. Values keep their raw
// text so fields this tool does not interpret survive a load/save cycle.
type Field struct {
	Key   string
	Value string
}

// Manifest is the project manifest, a DESCRIPTION file. It keeps the full
// ordered field list; dependency and remote accessors parse and rewrite only
// the fields they own, everything else rides along untouched.
type Manifest struct {
	Fields []Field
}

// NewManifest returns a minimal manifest carrying only the package identifier.
func NewManifest(name string) *Manifest {
	return &Manifest{Fields: []Field{{Key: packageField, Value: name}}}
}

// Name returns the package identifier.
func (m *Manifest) Name() string {
	value, _ := m.lookup(packageField)
	return strings.TrimSpace(value)
}

// Clone returns a deep copy. Mutating commands capture one before touching
// the manifest so a failed install can put the original state back.
func (m *Manifest) Clone() *Manifest {
	fields := make([]Field, len(m.Fields))
	copy(fields, m.Fields)
	return &Manifest{Fields: fields}
}

// Dependencies returns all declared dependencies in section order.
func (m *Manifest) Dependencies() []Dependency {
	var deps []Dependency
	for _, section := range Sections() {
		value, ok := m.lookup(string(section))
		if !ok {
			continue
		}
		for _, d := range parseDependencyList(value) {
			d.Section = section
			deps = append(deps, d)
		}
	}
	return deps
}

// Dependency returns the declaration for name, searching all sections.
func (m *Manifest) Dependency(name string) (Dependency, bool) {
	for _, d := range m.Dependencies() {
		if d.Name == name {
			return d, true
		}
	}
	return Dependency{}, false
}

// HasDependency reports whether name is declared in any section.
func (m *Manifest) HasDependency(name string) bool {
	_, ok := m.Dependency(name)
	return ok
}

// SetDependency adds or replaces a declaration. An existing declaration keeps
// its section and position; new dependencies go to Imports unless the record
// names another section.
func (m *Manifest) SetDependency(dep Dependency) {
	section := SectionImports
	if existing, ok := m.Dependency(dep.Name); ok {
		section = existing.Section
	} else if dep.Section != "" {
		section = dep.Section
	}
	dep.Section = section

	value, _ := m.lookup(string(section))
	deps := parseDependencyList(value)
	replaced := false
	for i := range deps {
		if deps[i].Name == dep.Name {
			deps[i].Constraint = dep.Constraint
			replaced = true
			break
		}
	}
	if !replaced {
		deps = append(deps, dep)
	}
	m.set(string(section), renderDependencyList(deps))
}

// RemoveDependency deletes name from whichever section declares it and
// reports whether it was present. An emptied section field is dropped.
func (m *Manifest) RemoveDependency(name string) bool {
	for _, section := range Sections() {
		value, ok := m.lookup(string(section))
		if !ok {
			continue
		}
		deps := parseDependencyList(value)
		kept := make([]Dependency, 0, len(deps))
		for _, d := range deps {
			if d.Name != name {
				kept = append(kept, d)
			}
		}
		if len(kept) == len(deps) {
			continue
		}
		if len(kept) == 0 {
			m.delete(string(section))
		} else {
			m.set(string(section), renderDependencyList(kept))
		}
		return true
	}
	return false
}

// Remotes returns the declared source locators.
func (m *Manifest) Remotes() []string {
	value, ok := m.lookup(remotesField)
	if !ok {
		return nil
	}
	return parseListEntries(value)
}

// AddRemotes declares source locators, skipping any already present.
func (m *Manifest) AddRemotes(remotes ...string) {
	current := m.Remotes()
	present := make(map[string]bool, len(current))
	for _, r := range current {
		present[r] = true
	}
	added := false
	for _, r := range remotes {
		if r == "" || present[r] {
			continue
		}
		current = append(current, r)
		present[r] = true
		added = true
	}
	if !added {
		return
	}
	m.set(remotesField, renderListEntries(current))
}

// RemoveRemotes deletes source locators. The field is dropped once empty.
func (m *Manifest) RemoveRemotes(remotes ...string) {
	drop := make(map[string]bool, len(remotes))
	for _, r := range remotes {
		drop[r] = true
	}
	current := m.Remotes()
	kept := make([]string, 0, len(current))
	for _, r := range current {
		if !drop[r] {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(current) {
		return
	}
	if len(kept) == 0 {
		m.delete(remotesField)
	} else {
		m.set(remotesField, renderListEntries(kept))
	}
}

func (m *Manifest) lookup(key string) (string, bool) {
	for _, f := range m.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

func (m *Manifest) set(key, value string) {
	for i := range m.Fields {
		if m.Fields[i].Key == key {
			m.Fields[i].Value = value
			return
		}
	}
	m.Fields = append(m.Fields, Field{Key: key, Value: value})
}

func (m *Manifest) delete(key string) {
	for i := range m.Fields {
		if m.Fields[i].Key == key {
			m.Fields = append(m.Fields[:i], m.Fields[i+1:]...)
			return
		}
	}
}

// Dependency is one declared package requirement.
type Dependency struct {
	Name       string
	Constraint Constraint
	Section    Section
}

// String renders the dependency as it appears in a manifest section,
// "name" or "name (== 1.2.3)".
func (d Dependency) String() string {
	if d.Constraint.Any() {
		return d.Name
	}
	return d.Name + " (" + d.Constraint.String() + ")"
}

// Constraint restricts which versions of a dependency satisfy the manifest.
// The zero value accepts any version. The raw text keeps operators this tool
// does not produce itself, such as >=, intact.
type Constraint struct {
	Raw string
}

// Pin returns the constraint that accepts exactly the given version.
func Pin(version string) Constraint {
	return Constraint{Raw: "== " + version}
}

// Any reports whether the constraint places no restriction.
func (c Constraint) Any() bool {
	return strings.TrimSpace(c.Raw) == ""
}

// Pinned reports whether the constraint requires one exact version.
func (c Constraint) Pinned() bool {
	return strings.HasPrefix(strings.TrimSpace(c.Raw), "==")
}

// PinnedVersion returns the exact version a pinned constraint requires,
// or "" when the constraint is not a pin.
func (c Constraint) PinnedVersion() string {
	raw := strings.TrimSpace(c.Raw)
	if !strings.HasPrefix(raw, "==") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(raw, "=="))
}

func (c Constraint) String() string {
	return strings.TrimSpace(c.Raw)
}

// parseDependencyList splits a section value into dependency records. Entries
// are comma separated; a parenthesized suffix is the version constraint.
func parseDependencyList(value string) []Dependency {
	var deps []Dependency
	for _, entry := range parseListEntries(value) {
		name, raw := splitConstraint(entry)
		if name == "" {
			continue
		}
		deps = append(deps, Dependency{Name: name, Constraint: Constraint{Raw: raw}})
	}
	return deps
}

func splitConstraint(entry string) (name, raw string) {
	open := strings.Index(entry, "(")
	if open < 0 {
		return strings.TrimSpace(entry), ""
	}
	name = strings.TrimSpace(entry[:open])
	raw = strings.TrimSpace(entry[open+1:])
	raw = strings.TrimSuffix(raw, ")")
	return name, strings.TrimSpace(raw)
}

func parseListEntries(value string) []string {
	var entries []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}

func renderDependencyList(deps []Dependency) string {
	entries := make([]string, len(deps))
	for i, d := range deps {
		entries[i] = d.String()
	}
	return renderListEntries(entries)
}

// renderListEntries writes one entry per line with a four space indent, the
// layout R tooling conventionally writes for list valued fields.
func renderListEntries(entries []string) string {
	return "\n    " + strings.Join(entries, ",\n    ")
}
