package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveStatusDefaultsToPending(t *testing.T) {
	assert.Equal(t, StatusPending, Item{}.EffectiveStatus())
	assert.Equal(t, StatusApproved, Item{Status: StatusApproved}.EffectiveStatus())
	assert.Equal(t, StatusRejected, Item{Status: StatusRejected}.EffectiveStatus())
}

func TestSectionCoversEveryCategory(t *testing.T) {
	p := Portfolio{
		ResearchPublications: []Item{{ID: "1"}},
		Conferences:          []Item{{ID: "2"}},
		Seminars:             []Item{{ID: "3"}},
		Workshops:            []Item{{ID: "4"}},
		Projects:             []Item{{ID: "5"}},
		Internships:          []Item{{ID: "6"}},
		Certifications:       []Item{{ID: "7"}},
		Achievements:         []Item{{ID: "8"}},
		Extracurricular:      []Item{{ID: "9"}},
		CommunityService:     []Item{{ID: "10"}},
		Reflections:          []Item{{ID: "11"}},
		CareerObjectives:     []Item{{ID: "12"}},
	}

	for _, cat := range Categories {
		assert.Len(t, p.Section(cat.Key), 1, "section %s", cat.Key)
	}
	assert.Nil(t, p.Section("unknown"))
}

func TestCategoriesSchemaIsConsistent(t *testing.T) {
	require.Len(t, Categories, 12)

	seen := map[string]bool{}
	for _, cat := range Categories {
		assert.False(t, seen[cat.Key], "duplicate key %s", cat.Key)
		seen[cat.Key] = true
		assert.NotEmpty(t, cat.Label)
		assert.NotEmpty(t, cat.Path)
		assert.NotEmpty(t, cat.Required)

		// Column widths must fill the printable width of an A4 page.
		var width float64
		for _, col := range cat.Columns {
			width += col.Width
		}
		assert.InDelta(t, 190.0, width, 0.01, "column widths of %s", cat.Key)

		// Required fields must be resolvable through the column layout fields.
		for _, name := range cat.Required {
			assert.NotEmpty(t, name)
			assert.Equal(t, "x", Item{
				Title: "x", Organization: "x", Date: "x",
				StartDate: "x", EndDate: "x", Description: "x",
			}.Field(name), "required field %s of %s is not a known item field", name, cat.Key)
		}
	}
}

func TestCategoryByKey(t *testing.T) {
	cat, ok := CategoryByKey("internships")
	require.True(t, ok)
	assert.Equal(t, "Internships", cat.Label)

	_, ok = CategoryByKey("blogPosts")
	assert.False(t, ok)
}
