package service

import (
	"testing"

	"provincemap/internal/models"

	"github.com/stretchr/testify/assert"
)

func clickOn(customData any) *models.ClickData {
	return &models.ClickData{Points: []models.ClickPoint{{CustomData: customData}}}
}

func TestApplyMarkerClick(t *testing.T) {
	tests := []struct {
		name     string
		state    []string
		click    *models.ClickData
		expected []string
	}{
		{
			name:     "first click appends",
			state:    []string{},
			click:    clickOn("A"),
			expected: []string{"A"},
		},
		{
			name:     "new id goes last",
			state:    []string{"B"},
			click:    clickOn("A"),
			expected: []string{"B", "A"},
		},
		{
			name:     "repeat click is a no-op",
			state:    []string{"A", "B"},
			click:    clickOn("A"),
			expected: []string{"A", "B"},
		},
		{
			name:     "nil click data",
			state:    []string{"A"},
			click:    nil,
			expected: []string{"A"},
		},
		{
			name:     "no points",
			state:    []string{"A"},
			click:    &models.ClickData{},
			expected: []string{"A"},
		},
		{
			name:     "point without customdata",
			state:    []string{"A"},
			click:    clickOn(nil),
			expected: []string{"A"},
		},
		{
			name:     "non-string customdata",
			state:    []string{"A"},
			click:    clickOn(42.0),
			expected: []string{"A"},
		},
		{
			name:     "empty customdata",
			state:    []string{"A"},
			click:    clickOn(""),
			expected: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyMarkerClick(tt.state, tt.click))
		})
	}
}

func TestApplyMarkerClick_Idempotent(t *testing.T) {
	once := ApplyMarkerClick(nil, clickOn("A"))
	twice := ApplyMarkerClick(once, clickOn("A"))
	assert.Equal(t, once, twice)
}

func TestApplyMarkerClick_ClickOrder(t *testing.T) {
	ab := ApplyMarkerClick(ApplyMarkerClick(nil, clickOn("A")), clickOn("B"))
	ba := ApplyMarkerClick(ApplyMarkerClick(nil, clickOn("B")), clickOn("A"))

	assert.Equal(t, []string{"A", "B"}, ab)
	assert.Equal(t, []string{"B", "A"}, ba)
}

func TestApplyMarkerClick_DoesNotMutateInput(t *testing.T) {
	state := make([]string, 1, 4)
	state[0] = "A"

	next := ApplyMarkerClick(state, clickOn("B"))
	next[0] = "changed"

	assert.Equal(t, []string{"A"}, state)
	assert.Equal(t, "", state[:2][1], "backing array must not be shared")
}

func TestApplyProvinceSelection(t *testing.T) {
	assert.Equal(t, []string{}, ApplyProvinceSelection(nil))
	assert.Equal(t, []string{"Ontario", "Quebec"}, ApplyProvinceSelection([]string{"Ontario", "", "Quebec", "Ontario"}))
}
