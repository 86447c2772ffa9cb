package orgchart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestShortName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{"both parts", "Иван", "Петров", "И.Петров"},
		{"latin", "John", "Smith", "J.Smith"},
		{"no first name", "", "Петров", "Петров"},
		{"no last name", "Иван", "", "И."},
		{"both empty", "", "", ""},
		{"whitespace trimmed", "  Иван ", " Петров ", "И.Петров"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortName(tt.first, tt.last))
		})
	}
}

func TestNormalizeImageURL(t *testing.T) {
	assert.Equal(t, DefaultAvatar, NormalizeImageURL(nil))
	assert.Equal(t, DefaultAvatar, NormalizeImageURL(strPtr("  ")))
	assert.Equal(t, "/img/1.png", NormalizeImageURL(strPtr("/img/1.png")))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"dev", "backend"}, SplitTags("dev, backend"))
	assert.Equal(t, []string{"dev"}, SplitTags("dev,, ,"))
	assert.Equal(t, []string{}, SplitTags(""))
}

func TestEmployeeToNode(t *testing.T) {
	chief := int64(7)
	e := Employee{
		ID:        3,
		FirstName: "Иван",
		LastName:  "Петров",
		Position:  strPtr("Разработчик"),
		Tags:      "dev, backend",
		Project:   strPtr("Портал"),
		Duties:    []string{"код", "ревью"},
		ChiefID:   &chief,
	}

	node := e.ToNode()

	assert.Equal(t, int64(3), node.ID)
	assert.Equal(t, "И.Петров", node.Name)
	assert.Equal(t, "Разработчик", *node.Title)
	assert.Equal(t, DefaultAvatar, node.Img)
	assert.Equal(t, []string{"dev", "backend"}, node.Tags)
	assert.Equal(t, []string{"Портал"}, node.Projects)
	assert.Equal(t, []string{"код", "ревью"}, node.Responsibilities)
	assert.Equal(t, int64(7), *node.PID)
}

func TestEmployeeToNodeDefaults(t *testing.T) {
	node := Employee{ID: 1, FirstName: "Анна", LastName: "Иванова"}.ToNode()

	assert.Nil(t, node.PID)
	assert.Nil(t, node.Title)
	assert.NotNil(t, node.Projects)
	assert.Empty(t, node.Projects)
	assert.NotNil(t, node.Responsibilities)
	assert.Empty(t, node.Responsibilities)
}

func TestProjectToNode(t *testing.T) {
	node := Project{ID: 5, Name: "Портал"}.ToNode()

	assert.Equal(t, int64(5), node.ID)
	assert.Equal(t, "Портал", node.Name)
	assert.Nil(t, node.Title)
	assert.Equal(t, []string{"project"}, node.Tags)
	assert.Equal(t, []string{"Портал"}, node.Projects)
	assert.Equal(t, DefaultAvatar, node.Img)
}

func TestEmptyGraph(t *testing.T) {
	g := EmptyGraph()
	assert.JSONEq(t, "[]", string(g.Nodes))
	assert.JSONEq(t, "[]", string(g.Edges))
}
