package orgchartsrv

import (
	"context"

	"github.com/orgstruct/bff/pkg/errx"
	"github.com/orgstruct/bff/pkg/logx"
	"github.com/orgstruct/bff/pkg/orgchart"
)

const (
	employeeQueryLimit = 2000
	projectQueryLimit  = 1000
)

// ChartService reshapes flat employee/project records into the node
// list the chart editor consumes, and manages the persisted layout.
type ChartService struct {
	employees orgchart.EmployeeRepository
	projects  orgchart.ProjectRepository
	configs   orgchart.GlobalConfigRepository
}

func NewChartService(
	employees orgchart.EmployeeRepository,
	projects orgchart.ProjectRepository,
	configs orgchart.GlobalConfigRepository,
) *ChartService {
	return &ChartService{
		employees: employees,
		projects:  projects,
		configs:   configs,
	}
}

// GetEmployees returns all published employees as chart nodes
func (s *ChartService) GetEmployees(ctx context.Context) ([]orgchart.ChartNode, error) {
	employees, err := s.employees.FindAllPublished(ctx, employeeQueryLimit)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load employees", errx.TypeInternal)
	}

	nodes := make([]orgchart.ChartNode, 0, len(employees))
	for _, e := range employees {
		nodes = append(nodes, e.ToNode())
	}
	return nodes, nil
}

// GetProjectsStructure flattens each project into a node subtree: the
// project itself, then per leader group a leader node (id shifted so it
// cannot collide with the leader's staff-chart node) and the group's
// employees attached beneath the leader. All nodes inherit the project
// name.
func (s *ChartService) GetProjectsStructure(ctx context.Context) ([]orgchart.ChartNode, error) {
	projects, err := s.projects.FindAllPublished(ctx, projectQueryLimit)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load projects", errx.TypeInternal)
	}

	result := make([]orgchart.ChartNode, 0, len(projects))
	for _, p := range projects {
		projectNode := p.ToNode()
		result = append(result, projectNode)

		for _, group := range p.LeaderGroups {
			if group.Leader == nil {
				continue
			}

			leaderNode := group.Leader.ToNode()
			leaderNode.ID += orgchart.LeaderIDOffset
			pid := projectNode.ID
			leaderNode.PID = &pid
			leaderNode.Projects = projectNode.Projects
			result = append(result, leaderNode)

			for _, emp := range group.Employees {
				empNode := emp.ToNode()
				leaderID := leaderNode.ID
				empNode.PID = &leaderID
				empNode.Projects = projectNode.Projects
				result = append(result, empNode)
			}
		}
	}

	return result, nil
}

// GetGlobalConfig returns the published layout, or empty graphs when
// nothing was saved yet
func (s *ChartService) GetGlobalConfig(ctx context.Context) (*orgchart.GlobalConfig, error) {
	cfg, err := s.configs.FindPublished(ctx)
	if err != nil {
		if e, ok := err.(*errx.Error); ok && e.Type == errx.TypeNotFound {
			return &orgchart.GlobalConfig{
				Peoples:  orgchart.EmptyGraph(),
				Projects: orgchart.EmptyGraph(),
			}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// PatchGlobalConfig saves both graphs (upsert) and publishes the result
func (s *ChartService) PatchGlobalConfig(ctx context.Context, peoples, projects orgchart.Graph) (*orgchart.GlobalConfig, error) {
	logx.Infof("[chart] patching global config")

	if peoples.Nodes == nil {
		peoples = orgchart.EmptyGraph()
	}
	if projects.Nodes == nil {
		projects = orgchart.EmptyGraph()
	}

	cfg, err := s.configs.Upsert(ctx, peoples, projects)
	if err != nil {
		return nil, errx.Wrap(err, "failed to save global config", errx.TypeInternal)
	}
	return cfg, nil
}
