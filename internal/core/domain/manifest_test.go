package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.rpack.dev/rpack/internal/core/domain"
)

func TestManifest_SetDependency(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*domain.Manifest)
		dep         domain.Dependency
		wantSection domain.Section
		wantRaw     string
	}{
		{
			name:        "New Dependency Defaults To Imports",
			dep:         domain.Dependency{Name: "dplyr"},
			wantSection: domain.SectionImports,
		},
		{
			name:        "New Pinned Dependency",
			dep:         domain.Dependency{Name: "rlang", Constraint: domain.Pin("1.1.0")},
			wantSection: domain.SectionImports,
			wantRaw:     "== 1.1.0",
		},
		{
			name:        "Explicit Section Honored",
			dep:         domain.Dependency{Name: "testthat", Section: domain.SectionSuggests},
			wantSection: domain.SectionSuggests,
		},
		{
			name: "Upsert Keeps Existing Section",
			setup: func(m *domain.Manifest) {
				m.SetDependency(domain.Dependency{Name: "jsonlite", Section: domain.SectionSuggests})
			},
			dep:         domain.Dependency{Name: "jsonlite", Constraint: domain.Pin("1.8.8")},
			wantSection: domain.SectionSuggests,
			wantRaw:     "== 1.8.8",
		},
		{
			name: "Upsert Replaces Constraint",
			setup: func(m *domain.Manifest) {
				m.SetDependency(domain.Dependency{Name: "dplyr", Constraint: domain.Pin("1.0.0")})
			},
			dep:         domain.Dependency{Name: "dplyr"},
			wantSection: domain.SectionImports,
			wantRaw:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.NewManifest("app")
			if tt.setup != nil {
				tt.setup(m)
			}
			m.SetDependency(tt.dep)

			got, ok := m.Dependency(tt.dep.Name)
			require.True(t, ok)
			assert.Equal(t, tt.wantSection, got.Section)
			assert.Equal(t, tt.wantRaw, got.Constraint.String())
		})
	}
}

func TestManifest_SetDependency_KeepsOrder(t *testing.T) {
	m := domain.NewManifest("app")
	m.SetDependency(domain.Dependency{Name: "a"})
	m.SetDependency(domain.Dependency{Name: "b"})
	m.SetDependency(domain.Dependency{Name: "c"})

	m.SetDependency(domain.Dependency{Name: "b", Constraint: domain.Pin("2.0.0")})

	var names []string
	for _, d := range m.Dependencies() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestManifest_RemoveDependency(t *testing.T) {
	t.Run("Removes Declared Package", func(t *testing.T) {
		m := domain.NewManifest("app")
		m.SetDependency(domain.Dependency{Name: "dplyr"})
		m.SetDependency(domain.Dependency{Name: "rlang"})

		require.True(t, m.RemoveDependency("dplyr"))
		assert.False(t, m.HasDependency("dplyr"))
		assert.True(t, m.HasDependency("rlang"))
	})

	t.Run("Unknown Package Reports False", func(t *testing.T) {
		m := domain.NewManifest("app")
		assert.False(t, m.RemoveDependency("dplyr"))
	})

	t.Run("Empty Section Field Is Dropped", func(t *testing.T) {
		m := domain.NewManifest("app")
		m.SetDependency(domain.Dependency{Name: "dplyr"})

		require.True(t, m.RemoveDependency("dplyr"))
		for _, f := range m.Fields {
			assert.NotEqual(t, string(domain.SectionImports), f.Key)
		}
	})

	t.Run("Searches All Sections", func(t *testing.T) {
		m := domain.NewManifest("app")
		m.SetDependency(domain.Dependency{Name: "testthat", Section: domain.SectionSuggests})

		require.True(t, m.RemoveDependency("testthat"))
		assert.Empty(t, m.Dependencies())
	})
}

func TestManifest_AddRemoveRoundTrip(t *testing.T) {
	m := domain.NewManifest("app")
	m.SetDependency(domain.Dependency{Name: "dplyr"})
	before := m.Clone()

	m.SetDependency(domain.Dependency{Name: "rlang", Constraint: domain.Pin("1.1.0")})
	m.AddRemotes("user/rlang")
	m.RemoveDependency("rlang")
	m.RemoveRemotes("user/rlang")

	assert.Equal(t, before.Fields, m.Fields)
}

func TestManifest_Remotes(t *testing.T) {
	t.Run("Add Deduplicates", func(t *testing.T) {
		m := domain.NewManifest("app")
		m.AddRemotes("user/repo", "user/repo", "github::other/pkg")
		assert.Equal(t, []string{"user/repo", "github::other/pkg"}, m.Remotes())
	})

	t.Run("Remove Drops Field When Empty", func(t *testing.T) {
		m := domain.NewManifest("app")
		m.AddRemotes("user/repo")
		m.RemoveRemotes("user/repo")

		assert.Empty(t, m.Remotes())
		assert.Len(t, m.Fields, 1)
	})

	t.Run("Remove Keeps Others", func(t *testing.T) {
		m := domain.NewManifest("app")
		m.AddRemotes("user/repo", "github::other/pkg")
		m.RemoveRemotes("user/repo")
		assert.Equal(t, []string{"github::other/pkg"}, m.Remotes())
	})
}

func TestManifest_Clone(t *testing.T) {
	m := domain.NewManifest("app")
	m.SetDependency(domain.Dependency{Name: "dplyr"})

	clone := m.Clone()
	clone.SetDependency(domain.Dependency{Name: "rlang"})
	clone.RemoveDependency("dplyr")

	assert.True(t, m.HasDependency("dplyr"))
	assert.False(t, m.HasDependency("rlang"))
}

func TestManifest_ForeignConstraintSurvives(t *testing.T) {
	// A Depends entry like "R (>= 3.5)" is not written by this tool but must
	// ride through edits unparsed semantics intact.
	m := &domain.Manifest{Fields: []domain.Field{
		{Key: "Package", Value: "app"},
		{Key: "Depends", Value: "R (>= 3.5)"},
	}}

	m.SetDependency(domain.Dependency{Name: "dplyr"})

	dep, ok := m.Dependency("R")
	require.True(t, ok)
	assert.Equal(t, domain.SectionDepends, dep.Section)
	assert.False(t, dep.Constraint.Pinned())
	assert.False(t, dep.Constraint.Any())
	assert.Equal(t, ">= 3.5", dep.Constraint.String())
}

func TestConstraint(t *testing.T) {
	tests := []struct {
		name          string
		constraint    domain.Constraint
		wantAny       bool
		wantPinned    bool
		wantPinnedVer string
		wantString    string
	}{
		{
			name:       "Zero Value Accepts Anything",
			constraint: domain.Constraint{},
			wantAny:    true,
		},
		{
			name:          "Pin",
			constraint:    domain.Pin("1.2.3"),
			wantPinned:    true,
			wantPinnedVer: "1.2.3",
			wantString:    "== 1.2.3",
		},
		{
			name:       "Foreign Operator",
			constraint: domain.Constraint{Raw: ">= 2.0"},
			wantString: ">= 2.0",
		},
		{
			name:          "Pin Without Spaces",
			constraint:    domain.Constraint{Raw: "==1.0"},
			wantPinned:    true,
			wantPinnedVer: "1.0",
			wantString:    "==1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAny, tt.constraint.Any())
			assert.Equal(t, tt.wantPinned, tt.constraint.Pinned())
			assert.Equal(t, tt.wantPinnedVer, tt.constraint.PinnedVersion())
			assert.Equal(t, tt.wantString, tt.constraint.String())
		})
	}
}

func TestDependency_String(t *testing.T) {
	assert.Equal(t, "dplyr", domain.Dependency{Name: "dplyr"}.String())
	assert.Equal(t, "rlang (== 1.1.0)", domain.Dependency{Name: "rlang", Constraint: domain.Pin("1.1.0")}.String())
}
