package orgchartsrv

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgstruct/bff/pkg/orgchart"
)

type fakeEmployeeRepo struct {
	employees []orgchart.Employee
	err       error
}

func (f *fakeEmployeeRepo) FindAllPublished(_ context.Context, _ int) ([]orgchart.Employee, error) {
	return f.employees, f.err
}

type fakeProjectRepo struct {
	projects []orgchart.Project
	err      error
}

func (f *fakeProjectRepo) FindAllPublished(_ context.Context, _ int) ([]orgchart.Project, error) {
	return f.projects, f.err
}

type fakeConfigRepo struct {
	cfg     *orgchart.GlobalConfig
	findErr error

	savedPeoples  *orgchart.Graph
	savedProjects *orgchart.Graph
}

func (f *fakeConfigRepo) FindPublished(_ context.Context) (*orgchart.GlobalConfig, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.cfg, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, peoples, projects orgchart.Graph) (*orgchart.GlobalConfig, error) {
	f.savedPeoples = &peoples
	f.savedProjects = &projects
	return &orgchart.GlobalConfig{Peoples: peoples, Projects: projects}, nil
}

func newService(employees *fakeEmployeeRepo, projects *fakeProjectRepo, configs *fakeConfigRepo) *ChartService {
	if employees == nil {
		employees = &fakeEmployeeRepo{}
	}
	if projects == nil {
		projects = &fakeProjectRepo{}
	}
	if configs == nil {
		configs = &fakeConfigRepo{}
	}
	return NewChartService(employees, projects, configs)
}

func TestGetEmployees(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: []orgchart.Employee{
		{ID: 1, FirstName: "Иван", LastName: "Петров"},
		{ID: 2, FirstName: "Анна", LastName: "Иванова"},
	}}
	svc := newService(repo, nil, nil)

	nodes, err := svc.GetEmployees(context.Background())
	require.NoError(t, err)

	require.Len(t, nodes, 2)
	assert.Equal(t, "И.Петров", nodes[0].Name)
	assert.Equal(t, "А.Иванова", nodes[1].Name)
}

func TestGetProjectsStructure(t *testing.T) {
	leader := orgchart.Employee{ID: 10, FirstName: "Олег", LastName: "Смирнов"}
	repo := &fakeProjectRepo{projects: []orgchart.Project{
		{
			ID:   5,
			Name: "Портал",
			LeaderGroups: []orgchart.LeaderGroup{
				{
					Leader: &leader,
					Employees: []orgchart.Employee{
						{ID: 11, FirstName: "Иван", LastName: "Петров"},
						{ID: 12, FirstName: "Анна", LastName: "Иванова"},
					},
				},
			},
		},
	}}
	svc := newService(nil, repo, nil)

	nodes, err := svc.GetProjectsStructure(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	// project root
	assert.Equal(t, int64(5), nodes[0].ID)
	assert.Nil(t, nodes[0].PID)
	assert.Equal(t, []string{"project"}, nodes[0].Tags)

	// leader gets a shifted id so it cannot collide with their staff node
	assert.Equal(t, int64(10+orgchart.LeaderIDOffset), nodes[1].ID)
	assert.Equal(t, int64(5), *nodes[1].PID)
	assert.Equal(t, []string{"Портал"}, nodes[1].Projects)

	// employees hang off the shifted leader id and inherit the project
	for _, n := range nodes[2:] {
		assert.Equal(t, nodes[1].ID, *n.PID)
		assert.Equal(t, []string{"Портал"}, n.Projects)
	}
}

func TestGetProjectsStructureSkipsLeaderlessGroups(t *testing.T) {
	repo := &fakeProjectRepo{projects: []orgchart.Project{
		{
			ID:   5,
			Name: "Портал",
			LeaderGroups: []orgchart.LeaderGroup{
				{Leader: nil, Employees: []orgchart.Employee{{ID: 11}}},
			},
		},
	}}
	svc := newService(nil, repo, nil)

	nodes, err := svc.GetProjectsStructure(context.Background())
	require.NoError(t, err)

	// only the project node survives
	require.Len(t, nodes, 1)
	assert.Equal(t, int64(5), nodes[0].ID)
}

func TestGetGlobalConfigNotFoundYieldsEmptyGraphs(t *testing.T) {
	repo := &fakeConfigRepo{findErr: orgchart.ErrConfigNotFound()}
	svc := newService(nil, nil, repo)

	cfg, err := svc.GetGlobalConfig(context.Background())
	require.NoError(t, err)

	assert.JSONEq(t, "[]", string(cfg.Peoples.Nodes))
	assert.JSONEq(t, "[]", string(cfg.Projects.Nodes))
}

func TestGetGlobalConfigPassesThrough(t *testing.T) {
	saved := &orgchart.GlobalConfig{
		Peoples: orgchart.Graph{
			Nodes: json.RawMessage(`[{"id":1}]`),
			Edges: json.RawMessage(`[]`),
		},
		Projects: orgchart.EmptyGraph(),
	}
	svc := newService(nil, nil, &fakeConfigRepo{cfg: saved})

	cfg, err := svc.GetGlobalConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved, cfg)
}

func TestPatchGlobalConfigDefaultsMissingGraphs(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := newService(nil, nil, repo)

	_, err := svc.PatchGlobalConfig(context.Background(),
		orgchart.Graph{Nodes: json.RawMessage(`[{"id":1}]`), Edges: json.RawMessage(`[]`)},
		orgchart.Graph{},
	)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"id":1}]`, string(repo.savedPeoples.Nodes))
	// missing projects graph is replaced with the empty payload
	assert.JSONEq(t, "[]", string(repo.savedProjects.Nodes))
	assert.JSONEq(t, "[]", string(repo.savedProjects.Edges))
}
